package form

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/goliatone/go-formbind/pkg/model"
)

func createTestField(t *testing.T, f *Form, m model.Model, attribute string, options map[string]any) *Field {
	t.Helper()
	field, err := f.CreateField(m, attribute, options)
	if err != nil {
		t.Fatalf("create field: %v", err)
	}
	concrete, ok := field.(*Field)
	if !ok {
		t.Fatalf("expected built-in field, got %T", field)
	}
	return concrete
}

func TestFieldBeginAppliesStateClasses(t *testing.T) {
	f := Begin("/save", "post", nil)
	user := newUserModel()
	user.Validate("email")

	clean := createTestField(t, f, user, "name", nil)
	if got := clean.Begin(); !strings.Contains(got, `class="form-group field-user-name required"`) {
		t.Fatalf("expected required class without error class, got: %s", got)
	}

	failed := createTestField(t, f, user, "email", nil)
	got := failed.Begin()
	if !strings.Contains(got, "has-error") {
		t.Fatalf("expected error class on invalid attribute, got: %s", got)
	}
	if !strings.Contains(got, "field-user-email") {
		t.Fatalf("expected attribute class, got: %s", got)
	}
	if failed.End() != "</div>" {
		t.Fatalf("expected container close tag, got: %s", failed.End())
	}
}

func TestFieldStateOnInputMovesClassesToControl(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ValidationStateOn = ValidationStateOnInput
	f := Begin("/save", "post", nil, WithConfig(cfg))

	user := newUserModel()
	user.Validate("email")
	field := createTestField(t, f, user, "email", nil)

	if container := field.Begin(); strings.Contains(container, "has-error") {
		t.Fatalf("expected no state class on container, got: %s", container)
	}
	if input := field.TextInput(); !strings.Contains(input, "has-error") {
		t.Fatalf("expected state class on input, got: %s", input)
	}
}

func TestFieldPartsAndLayout(t *testing.T) {
	f := Begin("/save", "post", nil)
	user := newUserModel()
	user.Validate()

	field := createTestField(t, f, user, "email", map[string]any{
		"hint": "We never share it.",
	})

	label := field.Label()
	if !strings.Contains(label, `for="user-email"`) || !strings.Contains(label, ">Email<") {
		t.Fatalf("unexpected label markup: %s", label)
	}

	errorTag := field.Error()
	if !strings.Contains(errorTag, "Email cannot be blank.") {
		t.Fatalf("expected first error message, got: %s", errorTag)
	}

	hint := field.Hint()
	if !strings.Contains(hint, "We never share it.") {
		t.Fatalf("expected hint markup, got: %s", hint)
	}

	input := field.TextInput()
	if !strings.Contains(input, `name="User[email]"`) || !strings.Contains(input, `id="user-email"`) {
		t.Fatalf("expected bound input, got: %s", input)
	}

	rendered := field.Render(input)
	for _, part := range []string{label, input, hint, "Email cannot be blank."} {
		if !strings.Contains(rendered, part) {
			t.Fatalf("expected rendered field to contain %q, got:\n%s", part, rendered)
		}
	}
	if !strings.HasPrefix(rendered, "<div ") || !strings.HasSuffix(rendered, "</div>") {
		t.Fatalf("expected container around layout, got:\n%s", rendered)
	}
}

func TestFieldErrorTagAlwaysRendered(t *testing.T) {
	f := Begin("/save", "post", nil)
	user := newUserModel()

	field := createTestField(t, f, user, "name", nil)
	if got := field.Error(); got != `<div class="help-block"></div>` {
		t.Fatalf("expected empty error placeholder, got: %s", got)
	}
}

func TestFieldInputPrefillsModelValue(t *testing.T) {
	f := Begin("/save", "post", nil)
	user := newUserModel()

	field := createTestField(t, f, user, "name", nil)
	if input := field.TextInput(); !strings.Contains(input, `value="Ada"`) {
		t.Fatalf("expected prefilled value, got: %s", input)
	}
}

// recordingRenderer stubs the template seam so layout dispatch can be
// asserted without a real engine.
type recordingRenderer struct {
	output  string
	err     error
	strings int
}

func (r *recordingRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	return r.RenderString(name, data, out...)
}

func (r *recordingRenderer) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	return r.output, r.err
}

func (r *recordingRenderer) RenderString(content string, data any, out ...io.Writer) (string, error) {
	r.strings++
	return r.output, r.err
}

func (r *recordingRenderer) RegisterFilter(string, func(any, any) (any, error)) error { return nil }

func (r *recordingRenderer) GlobalContext(any) error { return nil }

func TestFieldCustomLayoutThroughTemplates(t *testing.T) {
	engine := &recordingRenderer{output: "templated"}
	f := Begin("/save", "post", nil, WithTemplates(engine))

	field := createTestField(t, f, newUserModel(), "name", map[string]any{
		"layout": "{{ label }}{{ input }}",
	})
	rendered := field.Render("<input>")
	if !strings.Contains(rendered, "templated") {
		t.Fatalf("expected template-rendered layout, got:\n%s", rendered)
	}
	if engine.strings != 1 {
		t.Fatalf("expected one RenderString call, got %d", engine.strings)
	}
}

func TestFieldLayoutFallsBackWhenTemplateFails(t *testing.T) {
	engine := &recordingRenderer{err: errors.New("boom")}
	f := Begin("/save", "post", nil, WithTemplates(engine))

	field := createTestField(t, f, newUserModel(), "name", map[string]any{
		"layout": "{{ broken",
	})
	rendered := field.Render("<input data-marker>")
	if !strings.Contains(rendered, "<input data-marker>") {
		t.Fatalf("expected fallback layout to keep input markup, got:\n%s", rendered)
	}
}
