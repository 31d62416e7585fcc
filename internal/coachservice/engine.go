/*
Package coachservice turns nutrition totals, goals and context signals into a
short coaching message.

Generation is a pure function of the input and the calendar date: the seed
key is hashed into a mulberry32 stream, and that stream drives every choice
(wording variants, line count, line order, header and bullet). No global
random source is used.
*/
package coachservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// ErrGenerate is returned when the pipeline faults internally.
var ErrGenerate = errors.New("advice generation failed")

// PostProcessor may rewrite the rendered text. The engine works the same
// with or without one.
type PostProcessor func(ctx context.Context, advice string) (string, error)

// Engine runs the advice pipeline. The zero value is not usable; build one
// with NewEngine. An Engine holds no per-request state and is safe to share.
type Engine struct {
	log  zerolog.Logger
	now  func() time.Time
	post PostProcessor
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for pipeline diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithClock overrides the clock that supplies the seed date.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithPostProcessor installs a hook applied after rendering.
func WithPostProcessor(p PostProcessor) Option {
	return func(e *Engine) { e.post = p }
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		log: zerolog.Nop(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Date returns the UTC calendar date used in seed keys.
func (e *Engine) Date() string {
	return e.now().UTC().Format(time.DateOnly)
}

// Generate runs the pipeline for today's date.
func (e *Engine) Generate(ctx context.Context, in Input) (Result, error) {
	return e.GenerateOn(ctx, in, e.Date())
}

// GenerateOn runs seed -> pool -> recency filter -> select -> render -> post
// processing for the given date. Draws from the generator happen in exactly
// that order.
func (e *Engine) GenerateOn(ctx context.Context, in Input, date string) (res Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			e.log.Error().Interface("panic", rec).Msg("advice pipeline panicked")
			res = Result{}
			err = fmt.Errorf("%w: %v", ErrGenerate, rec)
		}
	}()

	key := SeedKey(in, date)
	seed := HashKey(key)
	r := NewRand(seed)

	pool := BuildPool(in, r)
	usable := FilterRecent(pool, in.Signals.RecentTopics)
	lines, topics := Select(r, usable)
	text, _ := Render(r, lines)

	e.log.Debug().
		Uint32("seed", seed).
		Int("pool_size", len(pool)).
		Int("usable_size", len(usable)).
		Int("lines", len(lines)).
		Msg("advice generated")

	if e.post != nil {
		processed, perr := e.post(ctx, text)
		if perr != nil {
			e.log.Warn().Err(perr).Msg("post-processor failed, keeping rendered advice")
		} else {
			text = processed
		}
	}

	return Result{
		Lines:      lines,
		TopicsUsed: topics,
		Text:       text,
		Seed:       seed,
		SeedKey:    key,
	}, nil
}
