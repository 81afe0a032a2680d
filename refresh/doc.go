// Package refresh keeps stored market data current.
//
// Two collaborators live here. Waiter polls storage for data that a
// background process is expected to deliver, giving up after a bounded
// number of attempts instead of blocking forever. Pipeline is that
// background process: it drains the update queue on a worker pool,
// fetches fresh data through the Fetcher boundary, and writes it back
// to the repositories.
//
// Actual market-data transport lives behind the Fetcher interface so
// the package stays free of network concerns.
package refresh
