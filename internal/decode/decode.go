// Package decode drives repeated forward passes of an external model,
// selecting each next token greedily until a budget or stop token is hit.
package decode

import (
	"context"
	"fmt"
	"time"

	"github.com/ZenusZhang/qwen-riscv-qemu-demo/pkg/logutil"
	"github.com/ZenusZhang/qwen-riscv-qemu-demo/pkg/types"
	"go.uber.org/zap"
)

type Options struct {
	// MaxNewTokens bounds how many tokens are appended to the prompt.
	MaxNewTokens int
	// StopToken ends generation immediately after it is appended. A
	// negative value disables early stopping.
	StopToken int64
}

// Run returns the prompt with up to MaxNewTokens generated tokens appended.
// Forward passes are strictly sequential; each pass sees the full sequence
// so far and an all-ones attention mask of the same length. Any model
// failure aborts the loop and discards partial output.
func Run(ctx context.Context, m types.Model, prompt []int64, opts Options) ([]int64, error) {
	logger := logutil.GetLogger()

	seq := make([]int64, len(prompt), len(prompt)+opts.MaxNewTokens)
	copy(seq, prompt)
	mask := make([]int64, len(prompt), len(prompt)+opts.MaxNewTokens)
	for i := range mask {
		mask[i] = 1
	}

	begin := time.Now()
	generated := 0
	for step := 0; step < opts.MaxNewTokens; step++ {
		logits, err := m.Forward(ctx, seq, mask)
		if err != nil {
			return nil, fmt.Errorf("%w: forward pass %d: %v", types.ErrModel, step, err)
		}

		last, err := logits.Last()
		if err != nil {
			return nil, fmt.Errorf("%w: forward pass %d: %v", types.ErrModel, step, err)
		}
		next := argmax(last)

		seq = append(seq, next)
		mask = append(mask, 1)
		generated++

		if opts.StopToken >= 0 && next == opts.StopToken {
			break
		}
	}

	logger.Info("decode finished",
		zap.Int("prompt_tokens", len(prompt)),
		zap.Int("generated_tokens", generated),
		zap.Duration("elapsed", time.Since(begin)))
	return seq, nil
}

// argmax returns the index of the largest logit; the first one wins on ties.
func argmax(logits []float32) int64 {
	best := 0
	for i, v := range logits {
		if v > logits[best] {
			best = i
		}
	}
	return int64(best)
}
