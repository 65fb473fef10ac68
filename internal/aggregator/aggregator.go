package aggregator

import (
	"github.com/ZenusZhang/qwen-riscv-qemu-demo/pkg/types"
)

// Aggregator folds per-thread range event sequences into one shared map of
// operation name -> KernelStat. It runs strictly after capture has finished,
// one thread's sequence at a time, so the map needs no locking.
type Aggregator struct {
	stats map[string]*KernelStat
}

// activeRange is one frame of the fold stack: the start event of a range
// that has not closed yet, plus the summed inclusive time of every child
// range that opened and closed inside it.
type activeRange struct {
	start     types.Event
	childTime float64
}

func New() *Aggregator {
	return &Aggregator{stats: make(map[string]*KernelStat)}
}

func (a *Aggregator) ensureStat(name string) *KernelStat {
	st, ok := a.stats[name]
	if !ok {
		st = &KernelStat{}
		a.stats[name] = st
	}
	return st
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Fold processes one thread's event sequence in emission order. A RangeEnd
// always closes the most recently opened unmatched RangeStart; an orphan
// RangeEnd on an empty stack is dropped. Negative inclusive or exclusive
// durations are clamped to zero, timestamp sources may be imprecise.
func (a *Aggregator) Fold(events []types.Event) {
	stack := make([]activeRange, 0, len(events))

	for _, ev := range events {
		switch ev.Kind {
		case types.RangeStart:
			stack = append(stack, activeRange{start: ev})

		case types.RangeEnd:
			if len(stack) == 0 {
				continue
			}
			active := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			inclusive := float64(ev.TS - active.start.TS)
			if inclusive < 0 {
				inclusive = 0
			}
			exclusive := inclusive - active.childTime
			if exclusive < 0 {
				exclusive = 0
			}

			st := a.ensureStat(active.start.Name)
			st.Calls++
			st.TotalUS += inclusive
			st.SelfUS += exclusive
			st.MaxUS = maxf(st.MaxUS, inclusive)
			if st.SampleShape == "" {
				st.SampleShape = types.FormatShape(active.start.Shapes)
			}

			if len(stack) > 0 {
				stack[len(stack)-1].childTime += inclusive
			}
		}
	}
}

// FoldAll folds every thread's sequence from a closed capture session.
func (a *Aggregator) FoldAll(threads map[uint32][]types.Event) {
	for _, events := range threads {
		a.Fold(events)
	}
}

// Stats returns the shared map. Callers must treat it as read-only.
func (a *Aggregator) Stats() map[string]*KernelStat {
	return a.stats
}
