// Package icontables builds the in-memory icon lookup tables and runs the
// ordered matching algorithm over them.
//
// # Tables
//
// Each of the two database records (directories, files) becomes an
// IconTable. ByName holds every Icon in database order. The five dimension
// slices (ByInterpreter, ByLanguage, ByPath, ByScope, BySignature) reorder
// references into that same pool; they never own or copy an Icon.
//
// # Matching
//
// Every lookup has the same shape:
//
//  1. Return the cached Icon for the raw key, if any.
//  2. Otherwise scan the dimension's slice from the start.
//  3. The first Icon whose pattern matches wins. Priority is not consulted;
//     database order is the precedence.
//  4. Cache and return the winner, or return nil without caching.
//
// Misses are deliberately left uncached, so the cache only grows with keys
// that resolved to a rule and a repeated miss pays for a full scan.
//
// # Cache
//
// The cache belongs to the IconTables value and is keyed per (dimension,
// directory-or-file) slot. It is never evicted. Its correctness rests on the
// tables being immutable once built. ResetCache empties it for test
// isolation. A read-write mutex protects the maps; concurrent first lookups
// of the same key may both scan, which is harmless since the stored value
// is the same immutable Icon.
package icontables
