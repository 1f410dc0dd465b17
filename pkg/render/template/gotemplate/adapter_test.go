package gotemplate

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"
)

func TestNewRequiresTemplateSource(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatal("expected error when neither base dir nor fs.FS is provided")
	}
}

func TestRenderStringSubstitutesContext(t *testing.T) {
	engine := NewStringEngine()

	got, err := engine.RenderString("Hello {{ name }}!", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "Hello Ada!" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestRenderStringWritesToSinks(t *testing.T) {
	engine := NewStringEngine()

	var sink bytes.Buffer
	got, err := engine.RenderString("{{ value }}", map[string]any{"value": 42}, &sink)
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "42" || sink.String() != "42" {
		t.Fatalf("expected output mirrored to sink, got %q / %q", got, sink.String())
	}
}

func TestRenderTemplateLoadsFromFS(t *testing.T) {
	files := fstest.MapFS{
		"layouts/field.tpl": {Data: []byte("<span>{{ label }}</span>")},
	}
	engine, err := New(WithFS(files))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.RenderTemplate("layouts/field", map[string]any{"label": "Name"})
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	if got != "<span>Name</span>" {
		t.Fatalf("unexpected output: %q", got)
	}

	// Second render hits the compiled-template cache.
	if _, err := engine.RenderTemplate("layouts/field.tpl", map[string]any{"label": "Again"}); err != nil {
		t.Fatalf("cached render: %v", err)
	}
}

func TestRenderDispatchesOnContent(t *testing.T) {
	engine := NewStringEngine()

	got, err := engine.Render("inline {{ kind }}", map[string]any{"kind": "layout"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "inline layout" {
		t.Fatalf("unexpected output: %q", got)
	}

	if _, err := engine.Render("missing/template", nil); err == nil {
		t.Fatal("expected error for unknown template path")
	}
}

func TestGlobalContextSeedsEveryRender(t *testing.T) {
	engine := NewStringEngine(WithGlobalData(map[string]any{"brand": "acme"}))

	got, err := engine.RenderString("{{ brand }}-{{ local }}", map[string]any{"local": "x"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "acme-x" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestRegisterFilter(t *testing.T) {
	engine := NewStringEngine()

	err := engine.RegisterFilter("fbshout", func(input any, _ any) (any, error) {
		s, _ := input.(string)
		return strings.ToUpper(s), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("fbshout", nil); err == nil {
		t.Fatal("expected error for nil filter")
	}

	got, err := engine.RenderString("{{ word|fbshout }}", map[string]any{"word": "loud"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "LOUD" {
		t.Fatalf("unexpected output: %q", got)
	}
}
