package report

import (
	"strings"
	"testing"

	"github.com/ZenusZhang/qwen-riscv-qemu-demo/internal/aggregator"
)

func TestOrderedByInclusiveTime(t *testing.T) {
	stats := map[string]*aggregator.KernelStat{
		"A": {Calls: 1, TotalUS: 50, SelfUS: 50, MaxUS: 50},
		"B": {Calls: 1, TotalUS: 30, SelfUS: 30, MaxUS: 30},
		"C": {Calls: 1, TotalUS: 80, SelfUS: 80, MaxUS: 80},
	}

	var sb strings.Builder
	if err := Render(&sb, stats, DefaultTopN); err != nil {
		t.Fatal(err)
	}
	out := sb.String()

	posC := strings.Index(out, "C ")
	posA := strings.Index(out, "A ")
	posB := strings.Index(out, "B ")
	if posC < 0 || posA < 0 || posB < 0 {
		t.Fatalf("missing rows in output:\n%s", out)
	}
	if !(posC < posA && posA < posB) {
		t.Errorf("row order is not C, A, B:\n%s", out)
	}
}

func TestTruncatesToTopN(t *testing.T) {
	stats := make(map[string]*aggregator.KernelStat)
	for i := 0; i < 45; i++ {
		name := "op_" + strings.Repeat("x", i+1)
		stats[name] = &aggregator.KernelStat{Calls: 1, TotalUS: float64(i), SelfUS: float64(i)}
	}

	var sb strings.Builder
	if err := Render(&sb, stats, 30); err != nil {
		t.Fatal(err)
	}

	rows := 0
	for _, line := range strings.Split(sb.String(), "\n") {
		if strings.HasPrefix(line, "op_") {
			rows++
		}
	}
	if rows != 30 {
		t.Errorf("printed %d rows, want 30", rows)
	}
}

func TestFooterSumsAllEntriesNotJustDisplayed(t *testing.T) {
	stats := make(map[string]*aggregator.KernelStat)
	for i := 0; i < 40; i++ {
		name := "op_" + strings.Repeat("y", i+1)
		stats[name] = &aggregator.KernelStat{Calls: 1, TotalUS: float64(i + 1), SelfUS: 1}
	}

	var sb strings.Builder
	if err := Render(&sb, stats, 30); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(sb.String(), "Self time total: 40.00 us") {
		t.Errorf("footer does not sum every entry:\n%s", sb.String())
	}
}

func TestEmptyStatsPrintsNotice(t *testing.T) {
	var sb strings.Builder
	if err := Render(&sb, nil, DefaultTopN); err != nil {
		t.Fatal(err)
	}
	if got := sb.String(); got != "No profiler events collected.\n" {
		t.Errorf("got %q", got)
	}
}

func TestLongNamesTruncated(t *testing.T) {
	long := strings.Repeat("k", 80)
	stats := map[string]*aggregator.KernelStat{
		long: {Calls: 1, TotalUS: 10, SelfUS: 10},
	}

	var sb strings.Builder
	if err := Render(&sb, stats, DefaultTopN); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(sb.String(), long) {
		t.Error("kernel name not truncated to column width")
	}
	if !strings.Contains(sb.String(), strings.Repeat("k", 48)) {
		t.Error("truncated kernel name missing")
	}
}
