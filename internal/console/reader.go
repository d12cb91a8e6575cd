// ============================================================================
// termio - Validated terminal input
// ============================================================================
//
// Package:     console
// Description: Generic prompt, validate and retry loop
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package console

import (
	"context"
	"errors"

	mdwerror "github.com/msto63/termio/foundation/core/error"
	mdwlog "github.com/msto63/termio/foundation/core/log"
)

// ParseFunc turns one raw line into an accepted value or a rejection
type ParseFunc[T any] func(line string) Result[T]

// Reader runs validated reads against a LineSource
type Reader struct {
	src      LineSource
	logger   *mdwlog.Logger
	messages *Messages
}

// Option configures a Reader
type Option func(*Reader)

// WithLogger sets the diagnostic logger
func WithLogger(logger *mdwlog.Logger) Option {
	return func(r *Reader) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMessages sets the rejection message catalog
func WithMessages(messages *Messages) Option {
	return func(r *Reader) {
		if messages != nil {
			r.messages = messages
		}
	}
}

// NewReader creates a Reader over src. Without options it logs nothing and
// uses the English messages.
func NewReader(src LineSource, opts ...Option) *Reader {
	r := &Reader{
		src:    src,
		logger: mdwlog.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.messages == nil {
		r.messages = DefaultMessages()
	}
	r.logger = r.logger.WithName("console")
	return r
}

// Source returns the underlying line source
func (r *Reader) Source() LineSource {
	return r.src
}

// Messages returns the rejection message catalog
func (r *Reader) Messages() *Messages {
	return r.messages
}

// WriteLine writes one output line through the source
func (r *Reader) WriteLine(text string) error {
	if err := r.src.WriteLine(text); err != nil {
		return deviceError(err, "console.WriteLine")
	}
	return nil
}

func (r *Reader) writeRejection(text string) error {
	var err error
	if ew, ok := r.src.(ErrorWriter); ok {
		err = ew.WriteError(text)
	} else {
		err = r.src.WriteLine(text)
	}
	if err != nil {
		return deviceError(err, "console.ReadValidated")
	}
	return nil
}

// ReadValidated prompts until parse accepts a line and returns its value.
// Each rejected line is answered with errorPrompt + ": " + reason. Only
// line source failures end the loop early.
func ReadValidated[T any](r *Reader, prompt, errorPrompt string, parse ParseFunc[T]) (T, error) {
	return ReadValidatedContext(context.Background(), r, prompt, errorPrompt, parse)
}

// ReadValidatedContext is ReadValidated with cancellation checked before
// every attempt. A read already blocked in the source is not interrupted.
func ReadValidatedContext[T any](ctx context.Context, r *Reader, prompt, errorPrompt string, parse ParseFunc[T]) (T, error) {
	var zero T

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, mdwerror.Wrap(err, "read canceled").
				WithCode(mdwerror.CodeCanceled).
				WithOperation("console.ReadValidated").
				WithDetail("prompt", prompt).
				WithDetail("attempt", attempt)
		}

		line, err := r.src.ReadLine(prompt)
		if err != nil {
			derr := deviceError(err, "console.ReadValidated").WithDetail("prompt", prompt)
			r.logger.LogError(derr, "read failed", mdwlog.Field("attempt", attempt))
			return zero, derr
		}
		r.logger.Trace("line read", mdwlog.Fields{"prompt": prompt, "attempt": attempt, "line": line})

		result := parse(line)
		if result.Ok() {
			r.logger.Debug("input accepted", mdwlog.Fields{"prompt": prompt, "attempt": attempt})
			return result.Value(), nil
		}

		r.logger.Debug("input rejected", mdwlog.Fields{
			"prompt":  prompt,
			"attempt": attempt,
			"code":    result.Code(),
			"reason":  result.Reason(),
		})

		if err := r.writeRejection(errorPrompt + ": " + result.Reason()); err != nil {
			r.logger.LogError(err, "write failed", mdwlog.Field("attempt", attempt))
			return zero, err
		}
	}
}

// deviceError classifies a line source failure
func deviceError(err error, operation string) *mdwerror.Error {
	if errors.Is(err, ErrAborted) {
		return mdwerror.Wrap(err, "terminal input aborted").
			WithCode(mdwerror.CodeAborted).
			WithOperation(operation)
	}
	return mdwerror.Wrap(err, "terminal device error").
		WithCode(mdwerror.CodeDeviceError).
		WithOperation(operation)
}
