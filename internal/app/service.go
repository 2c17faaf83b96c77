// Package service runs projections with logging and metrics around the pure
// engine.
package service

import (
	"context"
	"fmt"

	"github.com/okian/dime/internal/domain/model"
	"github.com/okian/dime/internal/domain/projection"
	"github.com/okian/dime/pkg/logger"
	"github.com/okian/dime/pkg/metrics"
)

// Service projects assists for one or many players.
type Service struct {
	engine  *projection.Engine
	logger  logger.Logger
	metrics *metrics.Manager
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithParams sets the model parameters. The engine keeps its own copy.
func WithParams(p projection.Params) Option {
	return func(s *Service) {
		s.engine = projection.New(p)
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics sets the metrics manager. Defaults to the process-wide one.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// New constructs a Service with the default model parameters.
func New(opts ...Option) *Service {
	s := &Service{
		engine:  projection.New(projection.DefaultParams()),
		metrics: metrics.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s
}

// Params returns the parameters projections are computed with.
func (s *Service) Params() projection.Params {
	return s.engine.Params()
}

// Project computes one projection and records it.
func (s *Service) Project(ctx context.Context, in projection.Inputs) model.Projection {
	res := s.engine.Project(in)
	p := model.NewProjection(in, res, s.engine.Params().Caps)

	for _, adj := range projection.Adjustments() {
		m := res.Multiplier(adj)
		s.metrics.RecordAdjustment(adj.String(), m)
		s.logger.Debug(ctx, "adjustment",
			logger.String("id", p.ID),
			logger.String("adjustment", adj.String()),
			logger.Float64("multiplier", m),
		)
	}

	bound := res.Capped()
	if bound != projection.BoundNone {
		s.metrics.RecordCapped(bound.String())
		s.logger.Debug(ctx, "aggregate multiplier capped",
			logger.String("id", p.ID),
			logger.String("bound", bound.String()),
			logger.Float64("uncapped", res.Uncapped),
		)
	}
	s.metrics.RecordProjection(res.Final, res.Projection)

	s.logger.Info(ctx, "projection computed",
		logger.String("id", p.ID),
		logger.String("player", in.PlayerName),
		logger.Float64("base", res.Base),
		logger.Float64("final_multiplier", res.Final),
		logger.Float64("projection", res.Projection),
	)
	return p
}

// ProjectAll projects each input in order. It stops at the first cancellation
// and returns the projections finished so far.
func (s *Service) ProjectAll(ctx context.Context, ins []projection.Inputs) ([]model.Projection, error) {
	out := make([]model.Projection, 0, len(ins))
	for i, in := range ins {
		if err := ctx.Err(); err != nil {
			return out, fmt.Errorf("project batch at %d of %d: %w", i, len(ins), err)
		}
		out = append(out, s.Project(ctx, in))
	}
	return out, nil
}
