package match

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ScottTolleback1/portfolio/corpus"
)

// Defaults for index construction. All of them are fixed per Index instance
// and apply uniformly to corpus and query vectorization.
const (
	DefaultNGramSize    = 3
	DefaultEmbedDim     = 256
	DefaultWeightCosine = 0.6
	DefaultWeightLev    = 0.4
	DefaultThreshold    = 0.333
)

// Query-length cutoffs for the scorer. Short queries are far more likely to
// be ticker-like fragments, where exact character overlap matters more than
// n-gram similarity.
const (
	shortQueryLen       = 4
	containmentQueryLen = 6
)

// Match is the result of a best-match query. An empty Ticker with score 0
// means no acceptable match was found.
type Match struct {
	Ticker string
	Score  float64
}

// entry is one indexed corpus record.
type entry struct {
	ticker string
	name   string // upper-cased company name; all matching runs against it
	vec    []float64
	mask   uint64
}

// Index answers best-match queries over an immutable listing corpus.
type Index struct {
	entries   []entry
	byTicker  map[string]string // upper-cased ticker -> canonical ticker
	ngram     int
	dim       int
	wCos      float64
	wLev      float64
	threshold float64
	logger    *slog.Logger
}

// Option configures an Index at construction time.
type Option func(*Index) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(ix *Index) error {
		if logger == nil {
			logger = slog.Default()
		}
		ix.logger = logger
		return nil
	}
}

// WithNGramSize sets the n-gram window width used for embeddings.
// Default is 3.
func WithNGramSize(n int) Option {
	return func(ix *Index) error {
		if n < 1 {
			return ErrInvalidNGramSize
		}
		ix.ngram = n
		return nil
	}
}

// WithEmbedDim sets the embedding vector length.
// Default is 256.
func WithEmbedDim(dim int) Option {
	return func(ix *Index) error {
		if dim <= 0 {
			return ErrInvalidEmbedDim
		}
		ix.dim = dim
		return nil
	}
}

// WithWeights sets the base blend weights for cosine and edit-distance
// similarity. Defaults are 0.6 and 0.4.
func WithWeights(cosine, lev float64) Option {
	return func(ix *Index) error {
		if cosine < 0 || lev < 0 {
			return ErrInvalidWeights
		}
		ix.wCos = cosine
		ix.wLev = lev
		return nil
	}
}

// WithThreshold sets the acceptance threshold below which the best candidate
// is reported as no match. Default is 0.333.
func WithThreshold(threshold float64) Option {
	return func(ix *Index) error {
		if threshold < 0 || threshold > 1 {
			return ErrInvalidThreshold
		}
		ix.threshold = threshold
		return nil
	}
}

// New builds an Index from a fully-materialized corpus snapshot.
//
// Pairs with an empty ticker or name after trimming are skipped silently.
// Duplicate tickers keep the first occurrence; later ones are skipped with a
// warning. Construction fails only if the source itself cannot be read.
func New(ctx context.Context, src corpus.Source, opts ...Option) (*Index, error) {
	if src == nil {
		return nil, ErrSourceRequired
	}

	ix := &Index{
		byTicker:  make(map[string]string),
		ngram:     DefaultNGramSize,
		dim:       DefaultEmbedDim,
		wCos:      DefaultWeightCosine,
		wLev:      DefaultWeightLev,
		threshold: DefaultThreshold,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(ix); err != nil {
			return nil, err
		}
	}

	listings, err := src.Listings(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}

	skipped, duplicates := 0, 0
	for _, listing := range listings {
		ticker := strings.TrimSpace(listing.Ticker)
		name := strings.TrimSpace(listing.Name)
		if ticker == "" || name == "" {
			skipped++
			continue
		}

		key := strings.ToUpper(ticker)
		if _, exists := ix.byTicker[key]; exists {
			ix.logger.Warn("duplicate ticker in corpus, keeping first", "ticker", ticker)
			duplicates++
			continue
		}

		normalized := strings.ToUpper(name)
		ix.entries = append(ix.entries, entry{
			ticker: ticker,
			name:   normalized,
			vec:    vectorize(normalized, ix.ngram, ix.dim),
			mask:   charMask36(normalized),
		})
		ix.byTicker[key] = ticker
	}

	ix.logger.Info("matcher index built",
		"entries", len(ix.entries), "skipped", skipped, "duplicates", duplicates)
	return ix, nil
}

// Len returns the number of indexed entries.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// FindBestMatch resolves a raw user-typed string to the most likely ticker
// in the corpus, with a confidence score in [0, 1]. A typed ticker always
// wins with score 1.0. Below the acceptance threshold the result is
// ("", 0.0) rather than a forced guess.
//
// The call is a pure computation over immutable data and is safe to run
// concurrently from any number of goroutines.
func (ix *Index) FindBestMatch(raw string) Match {
	return ix.FindBestMatchWithMonitor(raw, nil)
}

// FindBestMatchWithMonitor is FindBestMatch with per-stage observation hooks.
func (ix *Index) FindBestMatchWithMonitor(raw string, monitor Monitor) Match {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	monitor.Start(raw)

	if raw == "" {
		result := Match{}
		monitor.Finish(result)
		return result
	}

	q := strings.ToUpper(raw)

	if ticker, ok := ix.byTicker[q]; ok {
		result := Match{Ticker: ticker, Score: 1.0}
		monitor.ExactTickerHit(ticker)
		monitor.Finish(result)
		return result
	}

	wCos, wLev := ix.wCos, ix.wLev
	if len(q) <= shortQueryLen {
		wCos *= 0.5
		wLev *= 1.5
	}

	qMask := charMask36(q)
	qVec := vectorize(q, ix.ngram, ix.dim)

	bestScore := -1.0
	bestTicker := ""
	for i := range ix.entries {
		e := &ix.entries[i]

		// Coarse filter: no shared letter or digit means the entry cannot
		// win; skip it before any expensive scoring.
		if qMask&e.mask == 0 {
			monitor.MaskSkip(e.ticker)
			continue
		}

		bonus := 0.0
		if len(q) <= containmentQueryLen {
			if strings.HasPrefix(e.name, q) {
				bonus = 0.2
			} else if strings.Contains(e.name, q) {
				bonus = 0.1
			}
		}

		score := wCos*cosineSimilarity(qVec, e.vec) + wLev*levSimilarity(q, e.name) + bonus
		monitor.Scored(e.ticker, score)

		// Strict > keeps the first entry encountered on ties, so corpus
		// order is the observable tie-break.
		if score > bestScore {
			bestScore = score
			bestTicker = e.ticker
		}
	}

	if bestScore < ix.threshold {
		result := Match{}
		monitor.Finish(result)
		return result
	}

	if bestScore > 1.0 {
		bestScore = 1.0
	}

	result := Match{Ticker: bestTicker, Score: bestScore}
	monitor.Finish(result)
	return result
}
