package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ZenusZhang/qwen-riscv-qemu-demo/internal/aggregator"
)

// DefaultTopN bounds the number of rows shown in the summary table.
const DefaultTopN = 30

const ruleWidth = 126

type row struct {
	name string
	stat *aggregator.KernelStat
}

// Render prints the kernel CPU time summary: rows ordered by descending
// inclusive time, truncated to topN, with a footer summing self time across
// every entry (not just the displayed ones). Tie order between entries with
// equal inclusive time is unspecified. An empty stats map prints a notice
// instead of a table.
func Render(w io.Writer, stats map[string]*aggregator.KernelStat, topN int) error {
	if len(stats) == 0 {
		_, err := fmt.Fprintln(w, "No profiler events collected.")
		return err
	}
	if topN <= 0 {
		topN = DefaultTopN
	}

	ordered := make([]row, 0, len(stats))
	for name, st := range stats {
		ordered = append(ordered, row{name: name, stat: st})
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].stat.TotalUS > ordered[j].stat.TotalUS
	})

	var selfTotal float64
	for _, r := range ordered {
		selfTotal += r.stat.SelfUS
	}

	fmt.Fprintf(w, "\nKernel CPU time summary (top %d by inclusive time)\n", topN)
	fmt.Fprintf(w, "%-48s%10s%14s%14s%12s%12s%16s\n",
		"Kernel", "Calls", "Total(us)", "Self(us)", "Avg(us)", "Max(us)", "Shape")
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))

	limit := topN
	if len(ordered) < limit {
		limit = len(ordered)
	}
	for _, r := range ordered[:limit] {
		st := r.stat
		var avg float64
		if st.Calls > 0 {
			avg = st.TotalUS / float64(st.Calls)
		}
		name := r.name
		if len(name) > 48 {
			name = name[:48]
		}
		fmt.Fprintf(w, "%-48s%10d%14.2f%14.2f%12.2f%12.2f%16s\n",
			name, st.Calls, st.TotalUS, st.SelfUS, avg, st.MaxUS, st.SampleShape)
	}

	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
	_, err := fmt.Fprintf(w, "Self time total: %.2f us\n", selfTotal)
	return err
}
