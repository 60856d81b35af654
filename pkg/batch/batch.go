package batch

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-propgen/pkg/attr"
	"github.com/goliatone/go-propgen/pkg/naming"
	"github.com/goliatone/go-propgen/pkg/writer"
)

// Option customises the runner configuration.
type Option func(*Runner)

// WithWriter injects a custom attribute writer.
func WithWriter(w *writer.Writer) Option {
	return func(r *Runner) {
		r.writer = w
	}
}

// WithWarningHandler routes non-fatal metadata warnings raised during a run.
// Ignored when a custom writer is also supplied.
func WithWarningHandler(fn func(writer.MetadataWarning)) Option {
	return func(r *Runner) {
		r.onWarning = fn
	}
}

// Request is the immutable description of one batch-apply invocation,
// constructed once per user action and passed by value.
type Request struct {
	// Count is how many attributes to generate. Must be at least 1.
	Count int
	// Type describes the kind, default and UI metadata of every generated
	// attribute.
	Type attr.TypeDescriptor
	// Naming controls how the Count attribute names are assembled.
	Naming naming.Config
	// Targets is the ordered set of containers every generated attribute is
	// applied to. Duplicate handles are collapsed by identity.
	Targets []attr.Container
	// Overwrite refreshes value and metadata of attributes that already
	// exist; when off, existing attributes are skipped untouched.
	Overwrite bool
}

// Summary tallies what one run did across all name/target pairs.
type Summary struct {
	Created int
	Updated int
	Skipped int
	Targets int
}

// String renders the short user-facing completion message.
func (s Summary) String() string {
	return fmt.Sprintf("created %d, updated %d, skipped %d across %d target(s)",
		s.Created, s.Updated, s.Skipped, s.Targets)
}

// Runner executes batch requests. The zero configuration is ready to use;
// options exist for dependency injection in tests and embedding hosts.
type Runner struct {
	writer    *writer.Writer
	onWarning func(writer.MetadataWarning)
}

// New constructs a Runner applying any provided options.
func New(options ...Option) *Runner {
	r := &Runner{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.writer == nil {
		r.writer = writer.New(writer.WithWarningHandler(r.onWarning))
	}
	return r
}

// Run validates the request, composes the attribute names, and applies each
// name to each target in order. The whole batch completes synchronously
// within one invocation. Hard errors abort the remainder of the batch
// immediately; containers already written in earlier iterations keep their
// values (partial application is accepted behavior, there is no rollback).
func (r *Runner) Run(ctx context.Context, req Request) (Summary, error) {
	if ctx == nil {
		return Summary{}, errors.New("batch: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}
	if req.Count < 1 {
		return Summary{}, fmt.Errorf("batch: count must be at least 1, got %d", req.Count)
	}
	if req.Type == nil {
		return Summary{}, ErrNilDescriptor
	}

	targets := dedupeTargets(req.Targets)
	if len(targets) == 0 {
		return Summary{}, ErrNoTargets
	}

	names, err := naming.Compose(req.Naming, req.Count)
	if err != nil {
		if errors.Is(err, naming.ErrEmptyName) {
			return Summary{}, err
		}
		return Summary{}, fmt.Errorf("batch: compose names: %w", err)
	}

	summary := Summary{Targets: len(targets)}
	for _, name := range names {
		for _, target := range targets {
			switch r.writer.Apply(target, name, req.Type, req.Overwrite) {
			case writer.ResultCreated:
				summary.Created++
			case writer.ResultUpdated:
				summary.Updated++
			case writer.ResultSkipped:
				summary.Skipped++
			}
		}
	}
	return summary, nil
}

// dedupeTargets collapses duplicate container handles while preserving the
// first-seen order.
func dedupeTargets(targets []attr.Container) []attr.Container {
	out := make([]attr.Container, 0, len(targets))
	seen := make(map[attr.Container]struct{}, len(targets))
	for _, target := range targets {
		if target == nil {
			continue
		}
		if _, ok := seen[target]; ok {
			continue
		}
		seen[target] = struct{}{}
		out = append(out, target)
	}
	return out
}
