// Package store caches solved tours on disk so that re-running the same
// instance with the same options skips the optimisation.
//
// Keys are xxhash digests of the ordered node list plus the options that
// influence the result; values use the tspio output encoding.
package store

import (
	"bytes"
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"

	"github.com/katalvlaran/planartsp/tsp"
	"github.com/katalvlaran/planartsp/tspio"
)

// ErrCorrupt indicates a cached value that cannot be decoded.
var ErrCorrupt = errors.New("store: corrupt cache entry")

// keyPrefix namespaces result entries and versions the key layout.
var keyPrefix = []byte("tour/v1/")

// Key identifies an instance: node ids and coordinates in input order,
// and MaxPasses (a pass bound can change the result). TimeLimit is not
// part of the key; results cut short by it are not stored by the command.
type Key [8]byte

// KeyOf computes the cache key of nodes solved with opts.
func KeyOf(nodes []tsp.Node, opts tsp.Options) Key {
	d := xxhash.New()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}
	put(uint64(len(nodes)))
	for i := range nodes {
		put(uint64(nodes[i].ID))
		put(uint64(nodes[i].X))
		put(uint64(nodes[i].Y))
	}
	put(uint64(opts.MaxPasses))

	var k Key
	binary.BigEndian.PutUint64(k[:], d.Sum64())

	return k
}

func (k Key) bytes() []byte {
	out := make([]byte, 0, len(keyPrefix)+len(k))
	out = append(out, keyPrefix...)

	return append(out, k[:]...)
}

// Store is a badger-backed result cache. It is safe for concurrent use.
type Store struct {
	db *badger.DB
}

// Open opens (or creates) a cache in dir. An empty dir opens an
// in-memory cache that is discarded on Close.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "store: open")
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return errors.Wrap(s.db.Close(), "store: close")
}

// Get returns the cached result for k. found is false on a miss.
func (s *Store) Get(k Key) (res tspio.Result, found bool, err error) {
	var raw []byte
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(k.bytes())
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return tspio.Result{}, false, errors.Wrap(err, "store: get")
	}
	if raw == nil {
		return tspio.Result{}, false, nil
	}

	res, err = tspio.ReadResult(bytes.NewReader(raw))
	if err != nil {
		return tspio.Result{}, false, errors.Wrapf(ErrCorrupt, "%x: %v", k[:], err)
	}

	return res, true, nil
}

// Put stores res under k, replacing any previous value.
func (s *Store) Put(k Key, res tspio.Result) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(k.bytes(), tspio.MarshalResult(res))
	})

	return errors.Wrap(err, "store: put")
}
