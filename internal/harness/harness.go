package harness

import (
	"context"
	"log/slog"
	"time"

	"github.com/gnames/gnfmt"

	"github.com/gnames/sciparse/ent/parsed"
	"github.com/gnames/sciparse/internal/job"
	"github.com/gnames/sciparse/pkg/config"
	"github.com/gnames/sciparse/pkg/logger"
)

// Harness is the bounded-time execution wrapper around internal/job
// described in spec §4.7: it consults overrides, enforces the configured
// wall-clock deadline T per call, and converts pool saturation, timeouts,
// and worker panics into the two unparsable error kinds the rest of the
// parser promises to raise (spec §7's propagation policy).
type Harness struct {
	pool      *Pool
	timeout   time.Duration
	overrides *config.Overrides
}

// New builds a Harness from cfg. Returns *parsed.IllegalArgument if
// TimeoutMillis is non-positive -- spec §7's one programmer-error case.
func New(cfg *config.Config) (*Harness, error) {
	if cfg.TimeoutMillis <= 0 {
		return nil, parsed.NewIllegalArgument("harness: TimeoutMillis must be positive")
	}

	slog.SetDefault(logger.New(&cfg.Log))

	timeout := time.Duration(cfg.TimeoutMillis) * time.Millisecond
	return &Harness{
		pool:      NewPool(cfg.CorePoolSize, cfg.MaxPoolSize, 2*timeout),
		timeout:   timeout,
		overrides: cfg.Overrides(),
	}, nil
}

// ParseName runs job.ParseNameCtx under the harness's deadline T, first
// consulting the name override map (spec §4.6: "the harness consults them
// by exact string match before submitting a parsing job").
func (h *Harness) ParseName(input string, rankHint parsed.Rank, codeHint parsed.NomCode) (*parsed.ParsedName, error) {
	if override, ok := h.overrides.Name(input); ok {
		return override, nil
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	res, err := h.pool.Submit(ctx, h.timeout, func(ctx context.Context) (any, error) {
		return job.ParseNameCtx(ctx, input, rankHint, codeHint)
	})

	elapsed := time.Since(start)
	if err != nil {
		return h.convertNameError(input, res, err, elapsed)
	}

	p := res.(*parsed.ParsedName)
	slog.Debug("harness parsed name", "input", input, "elapsed", gnfmt.TimeString(elapsed.Seconds()))
	return p, nil
}

// ParseAuthorship is ParseName's authorship-parsing counterpart.
func (h *Harness) ParseAuthorship(input string) (*parsed.ParsedAuthorship, error) {
	if override, ok := h.overrides.Authorship(input); ok {
		return override, nil
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	res, err := h.pool.Submit(ctx, h.timeout, func(ctx context.Context) (any, error) {
		return job.ParseAuthorshipCtx(ctx, input)
	})

	elapsed := time.Since(start)
	if err != nil {
		return h.convertAuthorshipError(input, res, err)
	}

	p := res.(*parsed.ParsedAuthorship)
	slog.Debug("harness parsed authorship", "input", input, "elapsed", gnfmt.TimeString(elapsed.Seconds()))
	return p, nil
}

// convertNameError implements spec §7's propagation policy: the harness
// converts timeouts, cancellations, and unexpected worker panics into
// UnparsableName{NO_NAME, input} -- it never lets a raw pool/context error
// escape to the caller. When job.ParseNameCtx itself already produced a
// well-formed unparsable result (res is non-nil), that result is passed
// through unchanged rather than rebuilt.
func (h *Harness) convertNameError(input string, res any, err error, elapsed time.Duration) (*parsed.ParsedName, error) {
	if u, ok := err.(*parsed.UnparsableName); ok {
		if p, ok := res.(*parsed.ParsedName); ok && p != nil {
			return p, u
		}
		return &parsed.ParsedName{Verbatim: input, Type: u.Type, State: parsed.StateNone, Unparsed: []string{input}}, u
	}

	// Pool-level failure: deadline exceeded, admission timed out, or the
	// worker panicked. Cancellation is surfaced as NameType=NO_NAME
	// regardless of cause, per spec §4.7's job state machine.
	slog.Debug("harness job did not complete", "input", input, "elapsed", gnfmt.TimeString(elapsed.Seconds()), "reason", err)
	u := parsed.NewUnparsableName(parsed.TypeNoName, input)
	return &parsed.ParsedName{
		Verbatim: input,
		Type:     parsed.TypeNoName,
		State:    parsed.StateNone,
		Unparsed: []string{input},
	}, u
}

func (h *Harness) convertAuthorshipError(input string, res any, err error) (*parsed.ParsedAuthorship, error) {
	if u, ok := err.(*parsed.UnparsableAuthorship); ok {
		if p, ok := res.(*parsed.ParsedAuthorship); ok && p != nil {
			return p, u
		}
		return &parsed.ParsedAuthorship{Verbatim: input, State: parsed.StateNone, Unparsed: []string{input}}, u
	}

	slog.Debug("harness authorship job did not complete", "input", input, "reason", err)
	u := parsed.NewUnparsableAuthorship(input)
	return &parsed.ParsedAuthorship{
		Verbatim: input,
		State:    parsed.StateNone,
		Unparsed: []string{input},
	}, u
}

// Close shuts the harness's pool down. Idempotent. After Close, subsequent
// ParseName/ParseAuthorship calls observe the shutdown pool and return
// unparsable within one timeout -- spec §8 invariant 5.
func (h *Harness) Close() {
	h.pool.Shutdown()
}
