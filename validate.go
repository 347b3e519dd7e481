package fluentvalidation

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Validator holds an ordered set of rules for values of type T. Rules are
// evaluated in registration order. Register every rule before the first
// validation; afterwards a Validator is safe for concurrent use.
//
// Embed *Validator in a named type to build a reusable validator:
//
//	type AddressValidator struct {
//	    *v.Validator[Address]
//	}
//
//	func NewAddressValidator() AddressValidator {
//	    av := AddressValidator{v.New[Address]()}
//	    v.RuleForString(av.Validator, func(a Address) string { return a.City }).NotEmpty()
//	    return av
//	}
type Validator[T any] struct {
	rules       []Rule[T]
	concurrency int
	logger      *slog.Logger
}

// Option configures a Validator.
type Option func(*options)

type options struct {
	concurrency int
	logger      *slog.Logger
}

// WithMaxConcurrency limits how many rules ValidateAsync evaluates at once.
// Zero or less means no limit.
func WithMaxConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithLogger sets the logger used to report rule evaluation errors.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// New returns an empty Validator for T.
func New[T any](opts ...Option) *Validator[T] {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}
	return &Validator[T]{
		concurrency: o.concurrency,
		logger:      o.logger,
	}
}

// Add registers a rule. Rules are never removed.
func (v *Validator[T]) Add(r Rule[T]) {
	v.rules = append(v.rules, r)
}

// Len returns the number of registered rules.
func (v *Validator[T]) Len() int {
	return len(v.rules)
}

// Validate applies every rule to input on the calling goroutine and collects
// the failures in registration order. A panicking property extractor or
// validator propagates to the caller.
func (v *Validator[T]) Validate(input T) *Result {
	result := &Result{}
	for _, r := range v.rules {
		if o := r.Apply(input); o.IsFailure() {
			result.AddFailures(o.failures...)
		}
	}
	return result
}

// ValidateAsync applies every rule to input concurrently, one goroutine per
// rule, and collects the failures in registration order once all rules have
// finished. A rule that panics fails the whole call with an *EvaluationError.
// If ctx is done before every rule ran, ctx.Err() is returned. No partial
// result is ever returned.
func (v *Validator[T]) ValidateAsync(ctx context.Context, input T) (*Result, error) {
	outcomes := make([]*Outcome, len(v.rules))

	g, gctx := errgroup.WithContext(ctx)
	if v.concurrency > 0 {
		g.SetLimit(v.concurrency)
	}
	for i, r := range v.rules {
		g.Go(func() (err error) {
			if err := gctx.Err(); err != nil {
				return err
			}
			defer func() {
				if p := recover(); p != nil {
					err = &EvaluationError{Rule: i, Panic: p}
				}
			}()
			outcomes[i] = r.Apply(input)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		var evalErr *EvaluationError
		if errors.As(err, &evalErr) {
			v.logger.ErrorContext(ctx, "rule evaluation failed", slog.Any("error", err))
		} else {
			v.logger.DebugContext(ctx, "validation canceled", slog.Any("error", err))
		}
		return nil, err
	}

	result := &Result{}
	for _, o := range outcomes {
		if o.IsFailure() {
			result.AddFailures(o.failures...)
		}
	}
	return result, nil
}

// Unmarshal decodes JSON from b into a T, normalizes it (see [Normalizer])
// and validates it with Validate. The returned error is a decoding error
// only; validation failures are reported in the Result. A panicking rule
// propagates to the caller, as with Validate.
func (v *Validator[T]) Unmarshal(b []byte) (T, *Result, error) {
	var dst T
	if err := json.Unmarshal(b, &dst); err != nil {
		return dst, nil, err
	}
	normalize(context.Background(), &dst)
	return dst, v.Validate(dst), nil
}

// Decode is like Unmarshal but reads from r with a streaming decoder, as
// when reading an HTTP request body.
func (v *Validator[T]) Decode(r io.Reader) (T, *Result, error) {
	var dst T
	if err := json.NewDecoder(r).Decode(&dst); err != nil {
		return dst, nil, err
	}
	normalize(context.Background(), &dst)
	return dst, v.Validate(dst), nil
}

// DecodeContext is like Decode but passes ctx to [ContextNormalizer] and
// validates with ValidateAsync. Unlike Decode, a panicking rule is returned
// as an *EvaluationError, and a done ctx returns ctx.Err().
func (v *Validator[T]) DecodeContext(ctx context.Context, r io.Reader) (T, *Result, error) {
	var dst T
	if err := json.NewDecoder(r).Decode(&dst); err != nil {
		return dst, nil, err
	}
	normalize(ctx, &dst)
	res, err := v.ValidateAsync(ctx, dst)
	return dst, res, err
}
