package wall

import "go.uber.org/zap"

// DefaultMaxRows leaves the row count at its natural (cols+1)/2 + 2.
const DefaultMaxRows = 0

const panicMaxRowsInvalid = "wall: WithMaxRows: n must be non-negative"

// Option configures a NumberWall.
type Option func(*Options)

// Options holds the NumberWall settings.
type Options struct {
	// Logger receives per-row debug events and a completion summary.
	Logger *zap.Logger

	// MaxRows caps the number of rows built, counting the three seed rows.
	// Zero means no cap; values below 3 are raised to 3.
	MaxRows int
}

// DefaultOptions returns a silent logger and no row cap.
func DefaultOptions() Options {
	return Options{
		Logger:  zap.NewNop(),
		MaxRows: DefaultMaxRows,
	}
}

// WithLogger sets the logger. A nil logger has no effect.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxRows caps the number of rows. It panics on negative n.
func WithMaxRows(n int) Option {
	if n < 0 {
		panic(panicMaxRowsInvalid)
	}

	return func(o *Options) {
		o.MaxRows = n
	}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
