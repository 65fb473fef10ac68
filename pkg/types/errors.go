package types

import "errors"

// Error classes used for exit-code mapping at the CLI boundary. Components
// wrap these with fmt.Errorf("%w: ...") so callers can errors.Is on them.
var (
	ErrInput  = errors.New("input error")
	ErrModel  = errors.New("model error")
	ErrOutput = errors.New("output error")
)
