// Package console collects projection inputs interactively from a terminal.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/okian/dime/internal/domain/projection"
	"github.com/okian/dime/pkg/logger"
	"github.com/okian/dime/pkg/metrics"
)

const defaultMaxAttempts = 3

// Option applies a configuration option to the Prompter.
type Option func(*Prompter)

// WithMaxAttempts bounds how often a malformed entry is re-prompted.
func WithMaxAttempts(n int) Option {
	return func(p *Prompter) {
		if n > 0 {
			p.maxAttempts = n
		}
	}
}

// WithLogger sets the logger used for rejected entries.
func WithLogger(l logger.Logger) Option {
	return func(p *Prompter) {
		if l != nil {
			p.logger = l
		}
	}
}

// Prompter reads one Inputs record field by field.
type Prompter struct {
	in          *bufio.Scanner
	out         io.Writer
	maxAttempts int
	logger      logger.Logger
}

// New creates a Prompter reading answers from r and writing prompts to w.
func New(r io.Reader, w io.Writer, opts ...Option) *Prompter {
	p := &Prompter{
		in:          bufio.NewScanner(r),
		out:         w,
		maxAttempts: defaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Collect prompts for every field in order and returns the filled record.
func (p *Prompter) Collect(ctx context.Context) (projection.Inputs, error) {
	var in projection.Inputs
	for i, f := range fields {
		if err := ctx.Err(); err != nil {
			return projection.Inputs{}, fmt.Errorf("collect inputs: %w", err)
		}
		if err := p.ask(ctx, &in, f, i == 0); err != nil {
			return projection.Inputs{}, err
		}
	}
	return in, nil
}

func (p *Prompter) ask(ctx context.Context, in *projection.Inputs, f field, first bool) error {
	var lastErr error
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		if _, err := io.WriteString(p.out, f.prompt); err != nil {
			return fmt.Errorf("write prompt %s: %w", f.key, err)
		}

		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return fmt.Errorf("read %s: %w", f.key, err)
			}
			if first {
				return ErrNoInput
			}
			return fmt.Errorf("read %s: %w", f.key, io.ErrUnexpectedEOF)
		}

		lastErr = f.apply(in, p.in.Text())
		if lastErr == nil {
			return nil
		}

		metrics.RecordInputError(f.key)
		if p.logger != nil {
			p.logger.Warn(ctx, "rejected input entry",
				logger.String("field", f.key),
				logger.Int("attempt", attempt),
				logger.Error(lastErr),
			)
		}
		_, _ = fmt.Fprintf(p.out, "  invalid entry: %v\n", lastErr)
	}
	return fmt.Errorf("%w: %s: %w", ErrMalformedInput, f.key, lastErr)
}
