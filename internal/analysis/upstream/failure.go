package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"

	"emotiai/pkg/deepseek"
	"emotiai/pkg/gemini"
	"emotiai/pkg/huggingface"
	"emotiai/pkg/llmprovider"
	"emotiai/pkg/openrouter"
	"emotiai/pkg/textrazor"
)

// Kind classifies why a provider call failed.
type Kind string

const (
	KindTransport Kind = "transport"
	KindTimeout   Kind = "timeout"
	KindStatus    Kind = "status"
	KindMalformed Kind = "malformed"
	KindDisabled  Kind = "disabled"
)

// ErrDisabled is the cause of every offline adapter failure.
var ErrDisabled = errors.New("provider disabled")

// Failure is the single error type adapters report for any provider problem.
type Failure struct {
	Provider string
	Kind     Kind
	Err      error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("upstream %s: %s: %v", f.Provider, f.Kind, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// malformed reports a payload that decoded but does not fit the result shape.
func malformed(provider, msg string) *Failure {
	return &Failure{Provider: provider, Kind: KindMalformed, Err: errors.New(msg)}
}

// statusCoder is implemented by every pkg client APIError.
type statusCoder interface {
	HTTPStatus() int
}

var malformedCauses = []error{
	huggingface.ErrInvalidResponse,
	textrazor.ErrInvalidResponse,
	openrouter.ErrInvalidResponse,
	deepseek.ErrInvalidResponse,
	gemini.ErrInvalidResponse,
	llmprovider.ErrEmptyCompletion,
}

// Classify turns a client error into a *Failure. An existing *Failure is returned unchanged.
func Classify(provider string, err error) *Failure {
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return &Failure{Provider: provider, Kind: kindOf(err), Err: err}
}

func kindOf(err error) Kind {
	var sc statusCoder
	if errors.As(err, &sc) {
		return KindStatus
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return KindTimeout
	}

	for _, cause := range malformedCauses {
		if errors.Is(err, cause) {
			return KindMalformed
		}
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return KindMalformed
	}

	return KindTransport
}
