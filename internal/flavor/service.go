package flavor

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// Text is the display text produced at the end of a round.
type Text struct {
	Message string
	Reward  string // Empty when the score is below the reward threshold
}

// Generator produces flavor strings from a final score.
type Generator interface {
	EndMessage(ctx context.Context, score int) (string, error)
	RewardText(ctx context.Context, score int) (string, error)
}

// Service fans out both requests and waits for both, substituting fallbacks
// for any failure. Generate never returns an error.
type Service struct {
	gen            Generator
	timeout        time.Duration
	rewardMinScore int
	logger         *log.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithTimeout bounds each request.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

// WithRewardMinScore skips the reward request below the given score.
func WithRewardMinScore(score int) Option {
	return func(s *Service) { s.rewardMinScore = score }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// NewService creates a service. A nil generator always uses fallbacks.
func NewService(gen Generator, opts ...Option) *Service {
	s := &Service{
		gen:     gen,
		timeout: 8 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	return s
}

// Generate requests the message and reward concurrently and returns once both
// have resolved or fallen back.
func (s *Service) Generate(ctx context.Context, score int) Text {
	var text Text
	var g errgroup.Group

	g.Go(func() error {
		text.Message = s.message(ctx, score)
		return nil
	})
	g.Go(func() error {
		text.Reward = s.reward(ctx, score)
		return nil
	})

	_ = g.Wait() // goroutines never fail
	return text
}

func (s *Service) message(ctx context.Context, score int) string {
	if s.gen == nil {
		return FallbackMessage(score)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	msg, err := s.gen.EndMessage(ctx, score)
	if err != nil || msg == "" {
		s.logFallback("message", err)
		return FallbackMessage(score)
	}
	return msg
}

func (s *Service) reward(ctx context.Context, score int) string {
	if score < s.rewardMinScore {
		return ""
	}
	if s.gen == nil {
		return FallbackRecipe(score)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	recipe, err := s.gen.RewardText(ctx, score)
	if err != nil || recipe == "" {
		s.logFallback("reward", err)
		return FallbackRecipe(score)
	}
	return recipe
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *Service) logFallback(kind string, err error) {
	var httpErr *HTTPError
	switch {
	case err == nil:
		s.logger.Warn("empty flavor response, using fallback", "kind", kind)
	case errors.Is(err, ErrNoAPIKey):
		s.logger.Debug("no API key, using fallback", "kind", kind)
	case errors.As(err, &httpErr) && httpErr.IsRateLimited():
		s.logger.Warn("flavor quota exceeded, using fallback", "kind", kind)
	default:
		s.logger.Error("flavor request failed, using fallback", "kind", kind, "error", err)
	}
}
