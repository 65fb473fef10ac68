package model

import (
	"context"

	"github.com/ZenusZhang/qwen-riscv-qemu-demo/internal/capture"
	"github.com/ZenusZhang/qwen-riscv-qemu-demo/pkg/types"
)

// ForwardRange is the range name emitted around every forward pass.
const ForwardRange = "model::forward"

// Instrumented wraps a model so every forward pass appears in the capture
// session as a top-level range carrying the input shape. Runtimes that emit
// their own nested kernel ranges end up as children of this range.
type Instrumented struct {
	inner types.Model
	sess  *capture.Session
}

func Instrument(m types.Model, sess *capture.Session) *Instrumented {
	return &Instrumented{inner: m, sess: sess}
}

func (m *Instrumented) Forward(ctx context.Context, ids, mask []int64) (*types.Logits, error) {
	tid := capture.CurrentThread()
	m.sess.RangeStart(tid, ForwardRange, [][]int64{{1, int64(len(ids))}})
	defer m.sess.RangeEnd(tid, ForwardRange)
	return m.inner.Forward(ctx, ids, mask)
}

func (m *Instrumented) Close() error {
	return m.inner.Close()
}
