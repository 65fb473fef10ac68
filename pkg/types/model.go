package types

import (
	"context"
	"fmt"
)

// Logits is the output of one forward pass, a [1, SeqLen, VocabSize] tensor
// flattened row-major into Data.
type Logits struct {
	Data      []float32
	SeqLen    int
	VocabSize int
}

// Last returns the logits of the final sequence position.
func (l *Logits) Last() ([]float32, error) {
	if l.SeqLen <= 0 || l.VocabSize <= 0 || len(l.Data) < l.SeqLen*l.VocabSize {
		return nil, fmt.Errorf("malformed logits: seq_len=%d vocab=%d data=%d",
			l.SeqLen, l.VocabSize, len(l.Data))
	}
	off := (l.SeqLen - 1) * l.VocabSize
	return l.Data[off : off+l.VocabSize], nil
}

// Model is the external forward function. Both ids and mask are [1, L]
// tensors passed as flat slices of equal length.
type Model interface {
	Forward(ctx context.Context, ids, mask []int64) (*Logits, error)
	Close() error
}
