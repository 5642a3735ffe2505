package parse

import "log/slog"

type parseOpts struct {
	logger       *slog.Logger
	decodeBinary bool
	strict       bool
	issues       *[]error
}

type ParseOption func(*parseOpts)

// WithLogger sets the logger load issues and debug output go to.  The
// default is slog.Default().
func WithLogger(l *slog.Logger) ParseOption {
	return func(o *parseOpts) { o.logger = l }
}

// DecodeBinary enables base64 tile data, optionally compressed with gzip,
// zlib or zstd.  Without it such data yields no payload.
func DecodeBinary(v bool) ParseOption {
	return func(o *parseOpts) { o.decodeBinary = v }
}

// Strict makes a failed tile data step abort the load.
func Strict(v bool) ParseOption {
	return func(o *parseOpts) { o.strict = v }
}

// WithIssues collects the non fatal failures of a load into *dst.
func WithIssues(dst *[]error) ParseOption {
	return func(o *parseOpts) { o.issues = dst }
}

func newOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.logger == nil {
		pOpts.logger = slog.Default()
	}
	return pOpts
}
