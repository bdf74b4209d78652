// Package trial runs timed reader/writer contention benchmarks on a
// shared record under interchangeable locking strategies.
package trial

// Result holds the elapsed times for one configuration after both
// strategies have run, keyed by strategy name.
type Result struct {
	Readers int              `json:"readers"`
	Writers int              `json:"writers"`
	Reads   int              `json:"reads"`
	Updates int              `json:"updates"`
	Times   map[string]int64 `json:"times"`
}
