// Package formbind renders HTML form markup bound to data models and
// aggregates validation errors for AJAX responses. The root package
// re-exports the form session and validation aggregator entry points so most
// callers only import this package.
package formbind

import (
	"github.com/goliatone/go-formbind/pkg/form"
	"github.com/goliatone/go-formbind/pkg/model"
	"github.com/goliatone/go-formbind/pkg/validate"
)

// Form is a form rendering session: Begin opens it, field begin/end pairs
// accumulate markup, End wraps the buffered content in the form boundary.
type Form = form.Form

// Config is the form session configuration surface.
type Config = form.Config

// Option customises a session at Begin time.
type Option = form.Option

// Field is the built-in field implementation.
type Field = form.Field

// FieldRenderer is the contract custom field implementations satisfy.
type FieldRenderer = form.FieldRenderer

// SummaryOptions configures ErrorSummary calls.
type SummaryOptions = form.SummaryOptions

// Event and Dispatcher cover the field render lifecycle hooks.
type (
	Event          = form.Event
	Dispatcher     = form.Dispatcher
	DispatcherFunc = form.DispatcherFunc
)

// Model is the contract bound data models implement.
type Model = model.Model

// ErrorMap maps input identifiers to ordered error messages, ready for use
// as an AJAX response body.
type ErrorMap = validate.ErrorMap

// Session misuse sentinels.
var (
	ErrUnbalancedField = form.ErrUnbalancedField
	ErrSessionClosed   = form.ErrSessionClosed
)

// Begin opens a form session targeting the action URL.
func Begin(action, method string, options map[string]any, opts ...Option) *Form {
	return form.Begin(action, method, options, opts...)
}

// DefaultConfig returns the documented session defaults.
func DefaultConfig() Config {
	return form.DefaultConfig()
}

// Validate runs full validation on the models and merges their errors into
// one identifier-keyed map.
func Validate(models ...Model) ErrorMap {
	return validate.Validate(models...)
}

// ValidateAttributes validates one model restricted to the listed
// attributes.
func ValidateAttributes(m Model, attributes []string) ErrorMap {
	return validate.ValidateAttributes(m, attributes)
}

// ValidateMultiple validates an ordered model sequence, namespacing each
// identifier with the model's positional index.
func ValidateMultiple(models []Model, attributes []string) ErrorMap {
	return validate.ValidateMultiple(models, attributes)
}
