package match

import (
	"context"
	"testing"

	"github.com/ScottTolleback1/portfolio/core"
	"github.com/ScottTolleback1/portfolio/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingMonitor captures which entries were skipped and scored.
type recordingMonitor struct {
	skipped []string
	scored  map[string]float64
	result  Match
}

var _ Monitor = (*recordingMonitor)(nil)

func newRecordingMonitor() *recordingMonitor {
	return &recordingMonitor{scored: make(map[string]float64)}
}

func (m *recordingMonitor) Start(_ string)          {}
func (m *recordingMonitor) ExactTickerHit(_ string) {}
func (m *recordingMonitor) MaskSkip(ticker string)  { m.skipped = append(m.skipped, ticker) }
func (m *recordingMonitor) Scored(ticker string, score float64) {
	m.scored[ticker] = score
}
func (m *recordingMonitor) Finish(result Match) { m.result = result }

func defaultCorpus() corpus.SliceSource {
	return corpus.SliceSource{
		{Ticker: "AAPL", Name: "APPLE INC"},
		{Ticker: "MSFT", Name: "MICROSOFT CORP"},
	}
}

func newTestIndex(t *testing.T, src corpus.Source, opts ...Option) *Index {
	t.Helper()
	ix, err := New(context.Background(), src, opts...)
	require.NoError(t, err)
	return ix
}

func TestNew(t *testing.T) {
	t.Run("nil source", func(t *testing.T) {
		_, err := New(context.Background(), nil)
		assert.Equal(t, ErrSourceRequired, err)
	})

	t.Run("invalid options", func(t *testing.T) {
		src := defaultCorpus()
		_, err := New(context.Background(), src, WithNGramSize(0))
		assert.Equal(t, ErrInvalidNGramSize, err)

		_, err = New(context.Background(), src, WithEmbedDim(-1))
		assert.Equal(t, ErrInvalidEmbedDim, err)

		_, err = New(context.Background(), src, WithWeights(-0.1, 0.4))
		assert.Equal(t, ErrInvalidWeights, err)

		_, err = New(context.Background(), src, WithThreshold(1.5))
		assert.Equal(t, ErrInvalidThreshold, err)
	})

	t.Run("skips blank pairs", func(t *testing.T) {
		ix := newTestIndex(t, corpus.SliceSource{
			{Ticker: "AAPL", Name: "APPLE INC"},
			{Ticker: "", Name: "GHOST CORP"},
			{Ticker: "NONM", Name: "   "},
		})
		assert.Equal(t, 1, ix.Len())
	})

	t.Run("duplicate tickers keep first", func(t *testing.T) {
		ix := newTestIndex(t, corpus.SliceSource{
			{Ticker: "AAPL", Name: "APPLE INC"},
			{Ticker: "AAPL", Name: "APPLEBEES INTERNATIONAL"},
		})
		assert.Equal(t, 1, ix.Len())
		result := ix.FindBestMatch("aapl")
		assert.Equal(t, "AAPL", result.Ticker)
		assert.Equal(t, 1.0, result.Score)
	})
}

func TestFindBestMatch_ExactTicker(t *testing.T) {
	ix := newTestIndex(t, defaultCorpus())

	// Typed tickers always win with score 1.0, in any letter case.
	for _, q := range []string{"AAPL", "aapl", "aApL"} {
		result := ix.FindBestMatch(q)
		assert.Equal(t, "AAPL", result.Ticker, "query %q", q)
		assert.Equal(t, 1.0, result.Score, "query %q", q)
	}
}

func TestFindBestMatch_EmptyQuery(t *testing.T) {
	ix := newTestIndex(t, defaultCorpus())
	assert.Equal(t, Match{}, ix.FindBestMatch(""))
}

func TestFindBestMatch_EmptyCorpus(t *testing.T) {
	ix := newTestIndex(t, corpus.SliceSource{})
	assert.Equal(t, Match{}, ix.FindBestMatch("AAPL"))
	assert.Equal(t, Match{}, ix.FindBestMatch("anything at all"))
}

func TestFindBestMatch_Misspelling(t *testing.T) {
	ix := newTestIndex(t, defaultCorpus())

	result := ix.FindBestMatch("APLE")
	assert.Equal(t, "AAPL", result.Ticker)
	assert.Greater(t, result.Score, DefaultThreshold)
	assert.LessOrEqual(t, result.Score, 1.0)
}

func TestFindBestMatch_NoSharedCharacters(t *testing.T) {
	ix := newTestIndex(t, defaultCorpus())

	// "Z" appears in neither corpus name: every entry is coarse-filtered.
	monitor := newRecordingMonitor()
	result := ix.FindBestMatchWithMonitor("ZZZZZ", monitor)
	assert.Equal(t, Match{}, result)
	assert.Empty(t, monitor.scored)
	assert.ElementsMatch(t, []string{"AAPL", "MSFT"}, monitor.skipped)
}

func TestFindBestMatch_ExactCompanyName(t *testing.T) {
	ix := newTestIndex(t, defaultCorpus())

	result := ix.FindBestMatch("MICROSOFT CORP")
	assert.Equal(t, "MSFT", result.Ticker)
	assert.InDelta(t, 1.0, result.Score, 1e-9)
}

func TestFindBestMatch_ScoreClamped(t *testing.T) {
	// An exact name hit short enough for the prefix bonus pushes the raw
	// blended score above 1.0; the result must be capped.
	ix := newTestIndex(t, corpus.SliceSource{{Ticker: "AAPL", Name: "APPLE"}})

	result := ix.FindBestMatch("apple")
	assert.Equal(t, "AAPL", result.Ticker)
	assert.Equal(t, 1.0, result.Score)
}

func TestFindBestMatch_ScoreBounds(t *testing.T) {
	ix := newTestIndex(t, defaultCorpus())

	queries := []string{"", "A", "AP", "APL", "APLE", "MICRO", "MIKROSOFT",
		"microsoft corporation", "1234", "APPLE INC EXTRA WORDS HERE"}
	for _, q := range queries {
		result := ix.FindBestMatch(q)
		assert.GreaterOrEqual(t, result.Score, 0.0, "query %q", q)
		assert.LessOrEqual(t, result.Score, 1.0, "query %q", q)
	}
}

func TestFindBestMatch_Idempotent(t *testing.T) {
	ix := newTestIndex(t, defaultCorpus())

	first := ix.FindBestMatch("MIKROSOFT")
	second := ix.FindBestMatch("MIKROSOFT")
	assert.Equal(t, first, second)
}

func TestFindBestMatch_CoarseFilterSoundness(t *testing.T) {
	ix := newTestIndex(t, defaultCorpus())

	// Any entry sharing at least one character with the query must be
	// scored; the filter only drops entries that cannot possibly win.
	monitor := newRecordingMonitor()
	ix.FindBestMatchWithMonitor("APLE", monitor)

	// "P" occurs in both APPLE INC and MICROSOFT CORP.
	assert.Contains(t, monitor.scored, "AAPL")
	assert.Contains(t, monitor.scored, "MSFT")
	assert.Empty(t, monitor.skipped)
}

func TestFindBestMatch_Monotonicity(t *testing.T) {
	ix := newTestIndex(t, corpus.SliceSource{{Ticker: "AAPL", Name: "APPLE INC"}})

	near := newRecordingMonitor()
	ix.FindBestMatchWithMonitor("APLE INC", near)

	far := newRecordingMonitor()
	ix.FindBestMatchWithMonitor("XYZQ RANDOM", far)

	require.Contains(t, near.scored, "AAPL")
	require.Contains(t, far.scored, "AAPL")
	assert.Greater(t, near.scored["AAPL"], far.scored["AAPL"])
}

func TestFindBestMatch_BelowThreshold(t *testing.T) {
	ix := newTestIndex(t, defaultCorpus())

	// Shares a character so it gets scored, but nowhere near acceptance.
	monitor := newRecordingMonitor()
	result := ix.FindBestMatchWithMonitor("XQRW VVVVV JJJJ KKKK HHHH", monitor)
	assert.NotEmpty(t, monitor.scored)
	assert.Equal(t, Match{}, result)
}

func TestFindBestMatch_FirstEntryWinsTies(t *testing.T) {
	// Two identical names: the strict > comparison keeps the first.
	ix := newTestIndex(t, corpus.SliceSource{
		{Ticker: "ONE", Name: "TWIN WIDGET WORKS"},
		{Ticker: "TWO", Name: "TWIN WIDGET WORKS"},
	})

	result := ix.FindBestMatch("TWIN WIDGET WORKS")
	assert.Equal(t, "ONE", result.Ticker)
}

func TestFindBestMatch_ConcurrentQueries(t *testing.T) {
	ix := newTestIndex(t, defaultCorpus())

	done := make(chan Match, 32)
	for i := 0; i < 32; i++ {
		go func() {
			done <- ix.FindBestMatch("MICROSOFT CORP")
		}()
	}
	for i := 0; i < 32; i++ {
		result := <-done
		assert.Equal(t, "MSFT", result.Ticker)
	}
}

func TestFindBestMatch_CustomThreshold(t *testing.T) {
	// With the threshold at the ceiling only exact hits survive.
	ix := newTestIndex(t, defaultCorpus(), WithThreshold(1.0))

	assert.Equal(t, Match{}, ix.FindBestMatch("APLE"))

	result := ix.FindBestMatch("AAPL")
	assert.Equal(t, 1.0, result.Score)
}

func TestFindBestMatch_LoadFailurePropagates(t *testing.T) {
	src := corpus.SourceFunc(func(ctx context.Context) ([]core.Listing, error) {
		return nil, corpus.ErrSourceUnavailable
	})
	_, err := New(context.Background(), src)
	assert.ErrorIs(t, err, corpus.ErrSourceUnavailable)
}
