package form

import (
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formbind/pkg/model"
	rendertemplate "github.com/goliatone/go-formbind/pkg/render/template"
)

// Validation-state targets: where state CSS classes are applied by the
// client-side layer.
const (
	ValidationStateOnContainer = "container"
	ValidationStateOnInput     = "input"
)

// Default CSS classes applied when Config leaves the class surface empty.
const (
	DefaultRequiredClass     = "required"
	DefaultErrorClass        = "has-error"
	DefaultSuccessClass      = "has-success"
	DefaultValidatingClass   = "validating"
	DefaultErrorSummaryClass = "error-summary"
)

// DefaultValidationDelay is the debounce applied by the client layer between
// keystrokes and validation round trips.
const DefaultValidationDelay = 500 * time.Millisecond

// FieldConfigFunc computes per-field default configuration from the bound
// model and attribute, taking the place of a static FieldConfig map.
type FieldConfigFunc func(m model.Model, attribute string) map[string]any

// Config is the form session configuration. The zero value is not usable
// directly; DefaultConfig fills the documented defaults and Begin applies it
// automatically.
type Config struct {
	// FieldConfig is the default configuration merged under every field's
	// per-call options. Ignored when FieldConfigFunc is set.
	FieldConfig map[string]any
	// FieldConfigFunc, when set, computes field defaults per (model,
	// attribute) pair.
	FieldConfigFunc FieldConfigFunc
	// FieldType selects the registered field implementation used by
	// CreateField when per-call options carry no "type" entry.
	FieldType string
	// Fields resolves field implementations by type name.
	Fields *Registry

	// CSS class surface consumed by field rendering and the client layer.
	RequiredCSSClass     string
	ErrorCSSClass        string
	SuccessCSSClass      string
	ValidatingCSSClass   string
	ErrorSummaryCSSClass string
	// ValidationStateOn is ValidationStateOnContainer or
	// ValidationStateOnInput.
	ValidationStateOn string

	// Behaviour flags surfaced to the external client-side validation layer
	// as data attributes on the form tag. This library never runs
	// client-side validation itself.
	EnableClientValidation bool
	EnableAjaxValidation   bool
	ValidationURL          string
	AjaxParam              string
	AjaxDataType           string
	ValidateOnSubmit       bool
	ValidateOnChange       bool
	ValidateOnBlur         bool
	ValidateOnType         bool
	ValidationDelay        time.Duration
	ScrollToError          bool
	ScrollToErrorOffset    int

	// EncodeErrorSummary controls whether summary messages are HTML-escaped
	// by default; SummaryOptions.Encode overrides per call.
	EncodeErrorSummary bool
	// Sanitizer scrubs unencoded summary messages. Defaults to the
	// bluemonday UGC policy.
	Sanitizer *bluemonday.Policy

	// Dispatcher receives before/after field render events. Nil disables
	// event publication.
	Dispatcher Dispatcher
	// Templates renders custom field layouts and summary templates when the
	// layout carries template syntax.
	Templates rendertemplate.TemplateRenderer

	// HiddenFields are rendered immediately after the opening form tag, in
	// sorted name order.
	HiddenFields []HiddenField
}

// DefaultConfig returns the documented session defaults.
func DefaultConfig() Config {
	return Config{
		FieldType:              DefaultFieldType,
		Fields:                 NewDefaultRegistry(),
		RequiredCSSClass:       DefaultRequiredClass,
		ErrorCSSClass:          DefaultErrorClass,
		SuccessCSSClass:        DefaultSuccessClass,
		ValidatingCSSClass:     DefaultValidatingClass,
		ErrorSummaryCSSClass:   DefaultErrorSummaryClass,
		ValidationStateOn:      ValidationStateOnContainer,
		EnableClientValidation: true,
		AjaxParam:              "ajax",
		AjaxDataType:           "json",
		ValidateOnSubmit:       true,
		ValidateOnChange:       true,
		ValidateOnBlur:         true,
		ValidationDelay:        DefaultValidationDelay,
		ScrollToError:          true,
		EncodeErrorSummary:     true,
	}
}

// normalize fills gaps a caller-supplied Config may have left open.
func (c *Config) normalize() {
	defaults := DefaultConfig()
	if c.FieldType == "" {
		c.FieldType = defaults.FieldType
	}
	if c.Fields == nil {
		c.Fields = defaults.Fields
	}
	if c.RequiredCSSClass == "" {
		c.RequiredCSSClass = defaults.RequiredCSSClass
	}
	if c.ErrorCSSClass == "" {
		c.ErrorCSSClass = defaults.ErrorCSSClass
	}
	if c.SuccessCSSClass == "" {
		c.SuccessCSSClass = defaults.SuccessCSSClass
	}
	if c.ValidatingCSSClass == "" {
		c.ValidatingCSSClass = defaults.ValidatingCSSClass
	}
	if c.ErrorSummaryCSSClass == "" {
		c.ErrorSummaryCSSClass = defaults.ErrorSummaryCSSClass
	}
	if c.ValidationStateOn == "" {
		c.ValidationStateOn = defaults.ValidationStateOn
	}
	if c.AjaxParam == "" {
		c.AjaxParam = defaults.AjaxParam
	}
	if c.AjaxDataType == "" {
		c.AjaxDataType = defaults.AjaxDataType
	}
	if c.ValidationDelay == 0 {
		c.ValidationDelay = defaults.ValidationDelay
	}
}

// Option customises a form session at Begin time.
type Option func(*Config)

// WithConfig replaces the whole configuration before the remaining options
// run. Missing values fall back to the documented defaults.
func WithConfig(cfg Config) Option {
	return func(target *Config) {
		*target = cfg
	}
}

// WithDispatcher injects the event dispatcher used for field render events.
func WithDispatcher(dispatcher Dispatcher) Option {
	return func(cfg *Config) {
		cfg.Dispatcher = dispatcher
	}
}

// WithTemplates injects a template renderer for custom field layouts.
func WithTemplates(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *Config) {
		cfg.Templates = renderer
	}
}

// WithFieldConfig sets the static per-field default configuration.
func WithFieldConfig(defaults map[string]any) Option {
	return func(cfg *Config) {
		cfg.FieldConfig = defaults
	}
}

// WithFieldConfigFunc sets a closure computing field defaults per (model,
// attribute) pair.
func WithFieldConfigFunc(fn FieldConfigFunc) Option {
	return func(cfg *Config) {
		cfg.FieldConfigFunc = fn
	}
}

// WithFieldRegistry overrides the field implementation registry.
func WithFieldRegistry(registry *Registry) Option {
	return func(cfg *Config) {
		if registry != nil {
			cfg.Fields = registry
		}
	}
}

// WithClientValidation toggles the client-side validation flag surfaced on
// the form tag.
func WithClientValidation(enabled bool) Option {
	return func(cfg *Config) {
		cfg.EnableClientValidation = enabled
	}
}

// WithAjaxValidation enables AJAX validation against the given endpoint.
func WithAjaxValidation(validationURL string) Option {
	return func(cfg *Config) {
		cfg.EnableAjaxValidation = true
		cfg.ValidationURL = validationURL
	}
}

// WithSanitizer overrides the policy used for unencoded summary messages.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(cfg *Config) {
		cfg.Sanitizer = policy
	}
}

// WithHiddenFields appends hidden inputs emitted after the form open tag.
func WithHiddenFields(fields ...HiddenField) Option {
	return func(cfg *Config) {
		cfg.HiddenFields = append(cfg.HiddenFields, fields...)
	}
}
