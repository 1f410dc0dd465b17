package htmlgen

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRenderAttributesOrdersKnownAttributesFirst(t *testing.T) {
	got := RenderAttributes(map[string]any{
		"data-delay": 500,
		"class":      "form-control",
		"id":         "login-form",
		"autofocus":  true,
		"hidden":     false,
		"title":      nil,
	})

	want := ` id="login-form" class="form-control" autofocus data-delay="500"`
	if got != want {
		t.Fatalf("unexpected attribute markup\n got: %s\nwant: %s", got, want)
	}
}

func TestRenderAttributesEncodesValues(t *testing.T) {
	got := RenderAttributes(map[string]any{"value": `"><script>`})
	if strings.Contains(got, "<script>") {
		t.Fatalf("expected encoded value, got: %s", got)
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Fatalf("expected entities in value, got: %s", got)
	}
}

func TestTagRoundTrip(t *testing.T) {
	got := Tag("div", "inner", map[string]any{"class": "box"})
	want := `<div class="box">inner</div>`
	if got != want {
		t.Fatalf("unexpected tag markup\n got: %s\nwant: %s", got, want)
	}

	if BeginTag("", nil) != "" {
		t.Fatal("expected empty begin tag for empty name")
	}
	if Tag("", "content", nil) != "content" {
		t.Fatal("expected raw content for empty tag name")
	}
}

func TestAddAndRemoveClass(t *testing.T) {
	attrs := map[string]any{"class": "form-group"}

	AddClass(attrs, "required", "form-group", "has-error")
	if diff := cmp.Diff("form-group required has-error", attrs["class"]); diff != "" {
		t.Fatalf("unexpected class list after add (-want +got):\n%s", diff)
	}

	RemoveClass(attrs, "has-error")
	if diff := cmp.Diff("form-group required", attrs["class"]); diff != "" {
		t.Fatalf("unexpected class list after remove (-want +got):\n%s", diff)
	}

	RemoveClass(attrs, "form-group", "required")
	if _, ok := attrs["class"]; ok {
		t.Fatalf("expected class attribute removed, got %v", attrs["class"])
	}
}
