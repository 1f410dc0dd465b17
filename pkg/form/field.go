package form

import (
	"strings"

	"github.com/goliatone/go-formbind/pkg/htmlgen"
	"github.com/goliatone/go-formbind/pkg/model"
)

// DefaultFieldLayout arranges the field parts inside the container. Custom
// layouts may use the same placeholders, or template syntax when the session
// carries a template renderer.
const DefaultFieldLayout = "{label}\n{input}\n{hint}\n{error}"

// Field option keys recognized by the built-in implementation. The merged
// field configuration is an open map so custom implementations can carry
// their own entries.
const (
	optTag          = "tag"
	optOptions      = "options"
	optLayout       = "layout"
	optLabel        = "label"
	optLabelOptions = "labelOptions"
	optError        = "errorOptions"
	optHint         = "hint"
	optHintOptions  = "hintOptions"
	optInputOptions = "inputOptions"
)

// Field is the built-in FieldRenderer: a container tag carrying validation
// state classes, with label/input/hint/error part renderers. Fields live
// between their Begin and End calls and are never reused.
type Field struct {
	form      *Form
	model     model.Model
	attribute string
	options   map[string]any
}

func newField(owner *Form, m model.Model, attribute string, options map[string]any) *Field {
	if options == nil {
		options = map[string]any{}
	}
	return &Field{form: owner, model: m, attribute: attribute, options: options}
}

// Model returns the bound model.
func (f *Field) Model() model.Model { return f.model }

// Attribute returns the bound attribute expression.
func (f *Field) Attribute() string { return f.attribute }

// Options returns the merged field configuration. Mutations are visible to
// subsequent part renderers, which is how before-render listeners adjust a
// field.
func (f *Field) Options() map[string]any { return f.options }

// InputID returns the DOM identifier of the field's input.
func (f *Field) InputID() string {
	return model.InputID(f.model, f.attribute)
}

// Begin publishes the before-render event and returns the container opening
// tag with the field's state classes applied.
func (f *Field) Begin() string {
	f.form.NotifyBeforeFieldRender(f)

	attrs := f.containerAttributes()
	return htmlgen.BeginTag(f.containerTag(), attrs)
}

// End returns the container closing tag and publishes the after-render
// event.
func (f *Field) End() string {
	markup := htmlgen.EndTag(f.containerTag())
	f.form.NotifyAfterFieldRender(f)
	return markup
}

// Render produces the complete field markup: container begin, the layout
// expanded around the supplied input markup, and container end.
func (f *Field) Render(input string) string {
	var builder strings.Builder
	builder.WriteString(f.Begin())
	builder.WriteByte('\n')
	builder.WriteString(f.expandLayout(input))
	builder.WriteByte('\n')
	builder.WriteString(f.End())
	return builder.String()
}

// Label renders the field label tag bound to the input identifier. The label
// text comes from the "label" option, the model, or the attribute name, in
// that order.
func (f *Field) Label() string {
	attrs := MergeOptions(map[string]any{"class": "control-label"}, mapOption(f.options, optLabelOptions))
	attrs["for"] = f.InputID()

	text := stringOption(f.options, optLabel)
	if text == "" {
		text = model.Label(f.model, f.attribute)
	}
	return htmlgen.Tag("label", htmlgen.Encode(text), attrs)
}

// Error renders the first validation error of the attribute. The tag is
// always emitted — empty when the attribute is clean — so the client layer
// has a stable target to update.
func (f *Field) Error() string {
	attrs := MergeOptions(map[string]any{"class": "help-block"}, mapOption(f.options, optError))

	message := ""
	if errors := f.model.Errors()[model.ParseAttribute(f.attribute).Name]; len(errors) > 0 {
		message = htmlgen.Encode(errors[0])
	}
	return htmlgen.Tag("div", message, attrs)
}

// Hint renders the field hint, or nothing when no hint is configured.
func (f *Field) Hint() string {
	text := stringOption(f.options, optHint)
	if text == "" {
		return ""
	}
	attrs := MergeOptions(map[string]any{"class": "hint-block"}, mapOption(f.options, optHintOptions))
	return htmlgen.Tag("div", htmlgen.Encode(text), attrs)
}

// Input renders an <input> control of the given type bound to the model
// attribute, prefilled from the model value when one is exposed.
func (f *Field) Input(inputType string, overrides map[string]any) string {
	attrs := MergeOptions(mapOption(f.options, optInputOptions), overrides)
	attrs["type"] = inputType
	attrs["id"] = f.InputID()
	attrs["name"] = model.InputName(f.model, f.attribute)
	if _, ok := attrs["value"]; !ok {
		if value := model.Value(f.model, f.attribute); value != nil {
			attrs["value"] = value
		}
	}
	if f.form.cfg.ValidationStateOn == ValidationStateOnInput {
		f.applyStateClasses(attrs)
	}
	return htmlgen.BeginTag("input", attrs)
}

// TextInput renders a text input control.
func (f *Field) TextInput() string {
	return f.Input("text", nil)
}

func (f *Field) containerTag() string {
	if tag := stringOption(f.options, optTag); tag != "" {
		return tag
	}
	return "div"
}

func (f *Field) containerAttributes() map[string]any {
	attrs := MergeOptions(map[string]any{"class": "form-group"}, mapOption(f.options, optOptions))
	htmlgen.AddClass(attrs, "field-"+f.InputID())
	if f.form.cfg.ValidationStateOn == ValidationStateOnContainer {
		f.applyStateClasses(attrs)
	}
	return attrs
}

func (f *Field) applyStateClasses(attrs map[string]any) {
	if model.IsRequired(f.model, f.attribute) {
		htmlgen.AddClass(attrs, f.form.cfg.RequiredCSSClass)
	}
	name := model.ParseAttribute(f.attribute).Name
	if len(f.model.Errors()[name]) > 0 {
		htmlgen.AddClass(attrs, f.form.cfg.ErrorCSSClass)
	}
}

// expandLayout substitutes the field parts into the layout. Layouts carrying
// template syntax render through the session's template renderer; rendering
// failures fall back to plain placeholder substitution so markup is never
// lost.
func (f *Field) expandLayout(input string) string {
	layout := stringOption(f.options, optLayout)
	if layout == "" {
		layout = DefaultFieldLayout
	}

	label := f.Label()
	hint := f.Hint()
	errorMarkup := f.Error()

	if renderer := f.form.cfg.Templates; renderer != nil && isTemplateLayout(layout) {
		rendered, err := renderer.RenderString(layout, map[string]any{
			"label": label,
			"input": input,
			"hint":  hint,
			"error": errorMarkup,
		})
		if err == nil {
			return rendered
		}
		layout = DefaultFieldLayout
	}

	replacer := strings.NewReplacer(
		"{label}", label,
		"{input}", input,
		"{hint}", hint,
		"{error}", errorMarkup,
	)
	return replacer.Replace(layout)
}

func isTemplateLayout(layout string) bool {
	return strings.Contains(layout, "{{") || strings.Contains(layout, "{%")
}

func stringOption(options map[string]any, key string) string {
	value, _ := options[key].(string)
	return strings.TrimSpace(value)
}

func mapOption(options map[string]any, key string) map[string]any {
	value, _ := options[key].(map[string]any)
	return value
}
