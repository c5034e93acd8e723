package labelcell

import "context"

type decodeOptions struct {
	strictCount bool
	logger      *Logger
	ctx         context.Context
}

// DecodeOption configures text decoding.
type DecodeOption func(*decodeOptions)

// WithStrictLabelCount rejects text cells whose leading count token differs
// from the cell's label count with *ErrLabelCountMismatch.
//
// By default the count token is consumed and ignored, which matches maps
// written by older tooling.
func WithStrictLabelCount() DecodeOption {
	return func(o *decodeOptions) {
		o.strictCount = true
	}
}

// WithDecodeLogger reports tolerated or rejected label count mismatches.
//
// If nil is passed, nothing is logged.
func WithDecodeLogger(l *Logger) DecodeOption {
	return func(o *decodeOptions) {
		o.logger = l
	}
}

// WithDecodeContext sets the context passed to the decode logger.
func WithDecodeContext(ctx context.Context) DecodeOption {
	return func(o *decodeOptions) {
		if ctx == nil {
			ctx = context.Background()
		}
		o.ctx = ctx
	}
}

func newDecodeOptions(optFns []DecodeOption) decodeOptions {
	o := decodeOptions{ctx: context.Background()}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}
