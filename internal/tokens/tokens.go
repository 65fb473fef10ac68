// Package tokens reads and writes token id files: whitespace separated
// integers, one document per file.
package tokens

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ZenusZhang/qwen-riscv-qemu-demo/pkg/types"
)

// Load parses every integer in the file. An unreadable, empty or
// unparseable file is an input error.
func Load(path string) ([]int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open tokens file %s: %v", types.ErrInput, path, err)
	}

	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: token file is empty: %s", types.ErrInput, path)
	}

	toks := make([]int64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid token %q in %s", types.ErrInput, f, path)
		}
		toks = append(toks, v)
	}
	return toks, nil
}

// Write emits the sequence as space separated integers with one trailing
// newline. A failure to create or write the file is an output error.
func Write(path string, toks []int64) error {
	var sb strings.Builder
	for i, t := range toks {
		if i != 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatInt(t, 10))
	}
	sb.WriteByte('\n')

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("%w: write tokens file %s: %v", types.ErrOutput, path, err)
	}
	return nil
}
