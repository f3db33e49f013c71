package shell

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/prim_kruskal"
)

// Options configures a Session.
type Options struct {
	Output     io.Writer
	Logger     *slog.Logger
	GraphLabel string // heads command 10 output
	MSTLabel   string // heads command 8 output
	MSTMethod  string // prim_kruskal.MethodPrim or MethodKruskal
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions writes to io.Discard, logs nowhere, and labels output
// "Graph" and "MST(G)" with Prim as the MST method.
func DefaultOptions() Options {
	return Options{
		Output:     io.Discard,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		GraphLabel: core.DefaultLabel,
		MSTLabel:   prim_kruskal.DefaultLabel,
		MSTMethod:  prim_kruskal.MethodPrim,
	}
}

// WithOutput sets where command results are written.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		if w != nil {
			o.Output = w
		}
	}
}

// WithLogger sets the diagnostics logger. Rejected commands are logged at
// Debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithGraphLabel sets the label printed by command 10.
func WithGraphLabel(label string) Option {
	return func(o *Options) {
		if label != "" {
			o.GraphLabel = label
		}
	}
}

// WithMSTLabel sets the label printed by command 8.
func WithMSTLabel(label string) Option {
	return func(o *Options) {
		if label != "" {
			o.MSTLabel = label
		}
	}
}

// WithMSTMethod selects the MST algorithm used by command 8.
func WithMSTMethod(method string) Option {
	return func(o *Options) {
		if method != "" {
			o.MSTMethod = method
		}
	}
}
