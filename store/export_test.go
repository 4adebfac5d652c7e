package store

import "github.com/dgraph-io/badger/v3"

// PutRawForTest stores an arbitrary value under k.
func PutRawForTest(s *Store, k Key, raw []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(k.bytes(), raw)
	})
}
