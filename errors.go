package tagcodec

import (
	"github.com/lonng/tagcodec/protocal/args"
)

// Errors that could be occurred during dispatch.
var (
	ErrMalformedArgs = args.ErrMalformed
)
