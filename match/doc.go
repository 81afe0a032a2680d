// Package match resolves ambiguous user-typed strings to canonical ticker
// symbols.
//
// The Index type builds an immutable in-memory representation of a listing
// corpus and answers best-match queries against it by combining three
// signals:
//   - Hashed character n-gram embeddings compared by cosine similarity
//   - Levenshtein edit distance normalized to a similarity
//   - Deterministic bonuses for prefix and substring containment
//
// A cheap character-set bitmask discards entries that share no letter or
// digit with the query before any scoring runs, so a single query stays
// sub-second over tens of thousands of entries.
//
// An Index is read-only after construction and safe to share across any
// number of concurrent queriers without locking. Rebuilding means
// constructing a new Index from a fresh corpus snapshot and swapping the
// reference.
package match
