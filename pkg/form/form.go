// Package form renders HTML <form> markup bound to data models. A session is
// opened with Begin, accumulates nested field begin/end pairs plus arbitrary
// inner markup in an explicit capture buffer, and is closed with End, which
// wraps the buffered content in the form boundary tags.
//
// Sessions are request-scoped and single-threaded: one instance per render
// pass, discarded after End.
package form

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-formbind/pkg/htmlgen"
	"github.com/goliatone/go-formbind/pkg/model"
)

// Supported form submission methods.
const (
	MethodPost = "post"
	MethodGet  = "get"
)

// Form is a form rendering session. Exactly one capture is open per
// instance: Begin acquires it, End releases it — also on the error paths.
type Form struct {
	cfg     Config
	action  string
	method  string
	options map[string]any
	id      string

	buf    *Buffer
	stack  fieldStack
	closed bool
}

// Begin opens a form session and starts capturing output. The options map
// holds extra form tag attributes; when it carries no "id" one is
// synthesized, stable for the lifetime of the session. Begin must be paired
// with exactly one End call.
func Begin(action, method string, options map[string]any, opts ...Option) *Form {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	cfg.normalize()

	attrs := make(map[string]any, len(options))
	for key, value := range options {
		attrs[key] = value
	}

	id, _ := attrs["id"].(string)
	if strings.TrimSpace(id) == "" {
		id = "fb-" + uuid.NewString()
		attrs["id"] = id
	}

	method = strings.ToLower(strings.TrimSpace(method))
	if method != MethodGet {
		method = MethodPost
	}

	return &Form{
		cfg:     cfg,
		action:  action,
		method:  method,
		options: attrs,
		id:      id,
		buf:     &Buffer{},
	}
}

// ID returns the form tag identifier.
func (f *Form) ID() string { return f.id }

// Action returns the target URL.
func (f *Form) Action() string { return f.action }

// Method returns the normalized HTTP method ("post" or "get").
func (f *Form) Method() string { return f.method }

// Config returns the session configuration.
func (f *Form) Config() Config { return f.cfg }

// Buffer returns the active output capture, or nil once the session closed.
func (f *Form) Buffer() *Buffer { return f.buf }

// OpenFields reports how many fields are currently awaiting EndField.
func (f *Form) OpenFields() int { return f.stack.depth() }

// Write appends inner markup to the capture, implementing io.Writer so
// templates and fmt.Fprintf can target the session directly.
func (f *Form) Write(p []byte) (int, error) {
	if f.closed || f.buf == nil {
		return 0, ErrSessionClosed
	}
	return f.buf.Write(p)
}

// WriteString appends inner markup to the capture.
func (f *Form) WriteString(s string) error {
	_, err := f.Write([]byte(s))
	return err
}

// CreateField resolves the merged field configuration and instantiates the
// configured field implementation. The configuration is resolved as: session
// defaults (FieldConfig, or the FieldConfigFunc result), deep-merged with
// the per-call options under array-merge semantics. The implementation type
// comes from the merged "type" entry, falling back to Config.FieldType.
func (f *Form) CreateField(m model.Model, attribute string, options map[string]any) (FieldRenderer, error) {
	defaults := f.cfg.FieldConfig
	if f.cfg.FieldConfigFunc != nil {
		defaults = f.cfg.FieldConfigFunc(m, attribute)
	}
	merged := MergeOptions(defaults, options)

	fieldType := f.cfg.FieldType
	if explicit, ok := merged["type"].(string); ok && strings.TrimSpace(explicit) != "" {
		fieldType = strings.TrimSpace(explicit)
	}
	delete(merged, "type")

	factory, ok := f.cfg.Fields.Resolve(fieldType)
	if !ok {
		return nil, fmt.Errorf("form: field type %q not registered for attribute %q", fieldType, attribute)
	}
	return factory(f, m, attribute, merged), nil
}

// BeginField creates a field, pushes it onto the field stack, appends its
// opening markup to the capture, and returns that markup. Every BeginField
// needs a matching EndField before the session can End.
func (f *Form) BeginField(m model.Model, attribute string, options map[string]any) (string, error) {
	if f.closed {
		return "", ErrSessionClosed
	}
	field, err := f.CreateField(m, attribute, options)
	if err != nil {
		return "", err
	}
	f.stack.push(field)
	markup := field.Begin()
	f.buf.WriteString(markup)
	return markup, nil
}

// Field renders a complete field in one shot — container, layout parts, and
// a text input bound to the attribute — appends it to the capture, and
// returns the markup. Custom field types render as an empty begin/end pair
// unless they also implement interface{ Render(string) string }.
func (f *Form) Field(m model.Model, attribute string, options map[string]any) (string, error) {
	if f.closed {
		return "", ErrSessionClosed
	}
	field, err := f.CreateField(m, attribute, options)
	if err != nil {
		return "", err
	}

	var markup string
	switch impl := field.(type) {
	case *Field:
		markup = impl.Render(impl.TextInput())
	case interface{ Render(input string) string }:
		markup = impl.Render("")
	default:
		markup = field.Begin() + field.End()
	}
	f.buf.WriteString(markup)
	return markup, nil
}

// EndField pops the most recently opened field, appends its closing markup
// to the capture, and returns that markup. Ending a field with none open is
// a caller defect and fails with ErrUnbalancedField.
func (f *Form) EndField() (string, error) {
	if f.closed {
		return "", ErrSessionClosed
	}
	field, ok := f.stack.pop()
	if !ok {
		return "", fmt.Errorf("form: end field with no field open: %w", ErrUnbalancedField)
	}
	markup := field.End()
	f.buf.WriteString(markup)
	return markup, nil
}

// End stops the capture and returns the opening form tag, the buffered inner
// content in write order, and the closing tag. Ending with fields still open
// is a caller defect and fails with ErrUnbalancedField; the capture is
// released before the error propagates, so the session is spent either way.
func (f *Form) End() (string, error) {
	if f.closed {
		return "", ErrSessionClosed
	}

	// Release the capture first: misuse errors must not leave the session
	// half-open.
	content := f.buf.String()
	f.buf = nil
	f.closed = true

	if open := f.stack.depth(); open > 0 {
		return "", fmt.Errorf("form: end form with %d open field(s): %w", open, ErrUnbalancedField)
	}

	var builder strings.Builder
	builder.Grow(len(content) + 256)
	builder.WriteString(htmlgen.BeginTag("form", f.tagAttributes()))
	builder.WriteString(renderHiddenFields(f.cfg.HiddenFields))
	builder.WriteString(content)
	builder.WriteString(htmlgen.EndTag("form"))
	return builder.String(), nil
}

// tagAttributes assembles the form tag attribute map: caller options plus
// action/method plus the data attributes consumed by the external
// client-side validation layer.
func (f *Form) tagAttributes() map[string]any {
	attrs := make(map[string]any, len(f.options)+12)
	for key, value := range f.options {
		attrs[key] = value
	}
	attrs["action"] = f.action
	attrs["method"] = f.method

	if !f.cfg.EnableClientValidation && !f.cfg.EnableAjaxValidation {
		return attrs
	}

	if f.cfg.EnableClientValidation {
		attrs["data-fb-client-validation"] = true
	}
	if f.cfg.EnableAjaxValidation {
		attrs["data-fb-ajax-validation"] = true
		attrs["data-fb-validation-url"] = f.cfg.ValidationURL
		attrs["data-fb-ajax-param"] = f.cfg.AjaxParam
		attrs["data-fb-ajax-type"] = f.cfg.AjaxDataType
	}
	if triggers := f.validationTriggers(); triggers != "" {
		attrs["data-fb-validate-on"] = triggers
	}
	attrs["data-fb-validation-delay"] = f.cfg.ValidationDelay.Milliseconds()
	attrs["data-fb-state-on"] = f.cfg.ValidationStateOn
	if f.cfg.ScrollToError {
		attrs["data-fb-scroll-to-error"] = true
		if f.cfg.ScrollToErrorOffset != 0 {
			attrs["data-fb-scroll-offset"] = f.cfg.ScrollToErrorOffset
		}
	}
	return attrs
}

func (f *Form) validationTriggers() string {
	triggers := make([]string, 0, 4)
	if f.cfg.ValidateOnSubmit {
		triggers = append(triggers, "submit")
	}
	if f.cfg.ValidateOnChange {
		triggers = append(triggers, "change")
	}
	if f.cfg.ValidateOnBlur {
		triggers = append(triggers, "blur")
	}
	if f.cfg.ValidateOnType {
		triggers = append(triggers, "type")
	}
	return strings.Join(triggers, " ")
}
