package bp

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvbayes/factor"
)

var (
	// ErrGraphNil is returned when a nil *factor.Graph is passed to New or Run.
	ErrGraphNil = errors.New("bp: graph is nil")

	// ErrBadIterations indicates a negative iteration count.
	ErrBadIterations = errors.New("bp: iteration count must be >= 0")
)

// Option configures optional behavior of an Engine.
type Option func(*options)

type options struct {
	logger *zap.Logger

	// onIteration, if non-nil, runs after the snapshot of every iteration
	// (including iteration 0). Returning an error aborts the run.
	onIteration func(iter int, r *factor.Report) error
}

func defaultOptions() options {
	return options{logger: zap.NewNop()}
}

// WithLogger attaches a structured logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithOnIteration installs fn as a per-iteration hook. It observes the
// report after the snapshot of iteration iter has been appended.
func WithOnIteration(fn func(iter int, r *factor.Report) error) Option {
	return func(o *options) {
		o.onIteration = fn
	}
}
