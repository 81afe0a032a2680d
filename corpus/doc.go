// Package corpus supplies (ticker, company name) pairs to the matcher index.
//
// A Source abstracts where the pairs come from: a slice, a CSV symbol
// directory file, or a storage backend. The package also provides the
// company-name normalization applied when importing exchange symbol
// directories, which strips corporate suffixes and share-class phrases so
// that "APPLE INC. COMMON STOCK" indexes as "APPLE".
package corpus
