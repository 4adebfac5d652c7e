// Package tspio reads node lists and writes solved tours in the plain
// text formats used by the tsp2opt command.
//
// Input: one record per line, "id x y" as whitespace-separated integers.
// Blank lines and surrounding whitespace are ignored:
//
//	0 0 0
//	1 10 0
//
//	2 0 10
//
// Output: the total length on the first line, then one node id per line
// in tour order:
//
//	40
//	0
//	2
//	...
package tspio
