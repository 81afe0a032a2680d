package match

// Monitor provides hooks to observe a single query.
// Implement this interface to track which entries the coarse filter
// discarded and how the survivors scored.
type Monitor interface {
	Start(query string)
	ExactTickerHit(ticker string)
	MaskSkip(ticker string)
	Scored(ticker string, score float64)
	Finish(result Match)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)            {}
func (n *noopMonitor) ExactTickerHit(_ string)   {}
func (n *noopMonitor) MaskSkip(_ string)         {}
func (n *noopMonitor) Scored(_ string, _ float64) {}
func (n *noopMonitor) Finish(_ Match)            {}
