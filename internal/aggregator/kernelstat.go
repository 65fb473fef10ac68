package aggregator

// KernelStat accumulates per-operation CPU time across every thread of a
// capture session. TotalUS includes time spent in nested child ranges,
// SelfUS excludes it; SelfUS <= TotalUS always holds and both only grow as
// more events are folded in. SampleShape keeps the first non-empty input
// shape seen for the operation and never changes afterwards.
type KernelStat struct {
	Calls       int64
	TotalUS     float64
	SelfUS      float64
	MaxUS       float64
	SampleShape string
}
