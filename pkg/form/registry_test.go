package form

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbind/pkg/model"
)

type staticField struct {
	begin, end string
}

func (s staticField) Begin() string { return s.begin }
func (s staticField) End() string   { return s.end }

func TestRegistryResolveAndNames(t *testing.T) {
	registry := NewDefaultRegistry()
	if _, ok := registry.Resolve(DefaultFieldType); !ok {
		t.Fatal("expected built-in field type registered")
	}
	if _, ok := registry.Resolve("missing"); ok {
		t.Fatal("expected unknown type unresolved")
	}

	registry.Register("fieldset", func(*Form, model.Model, string, map[string]any) FieldRenderer {
		return staticField{begin: "<fieldset>", end: "</fieldset>"}
	})

	if diff := cmp.Diff([]string{"field", "fieldset"}, registry.Names()); diff != "" {
		t.Fatalf("unexpected registry names (-want +got):\n%s", diff)
	}
}

func TestRegistryCloneIsolation(t *testing.T) {
	base := NewDefaultRegistry()
	cloned := base.Clone()
	cloned.Register("custom", func(*Form, model.Model, string, map[string]any) FieldRenderer {
		return staticField{}
	})

	if _, ok := base.Resolve("custom"); ok {
		t.Fatal("expected clone registration not to leak into base registry")
	}
	if _, ok := cloned.Resolve("custom"); !ok {
		t.Fatal("expected clone to resolve its own registration")
	}
}

func TestCustomFieldTypeSelection(t *testing.T) {
	registry := NewDefaultRegistry()
	registry.Register("fieldset", func(*Form, model.Model, string, map[string]any) FieldRenderer {
		return staticField{begin: "<fieldset>", end: "</fieldset>"}
	})

	f := Begin("/save", "post", nil, WithFieldRegistry(registry))
	user := newUserModel()

	markup, err := f.BeginField(user, "name", map[string]any{"type": "fieldset"})
	if err != nil {
		t.Fatalf("begin field: %v", err)
	}
	if markup != "<fieldset>" {
		t.Fatalf("expected custom field markup, got: %s", markup)
	}
	closing, err := f.EndField()
	if err != nil {
		t.Fatalf("end field: %v", err)
	}
	if closing != "</fieldset>" {
		t.Fatalf("expected custom closing markup, got: %s", closing)
	}

	out, err := f.End()
	if err != nil {
		t.Fatalf("end form: %v", err)
	}
	if !strings.Contains(out, "<fieldset></fieldset>") {
		t.Fatalf("expected custom field buffered, got:\n%s", out)
	}
}

func TestSessionDefaultFieldType(t *testing.T) {
	registry := NewDefaultRegistry()
	registry.Register("static", func(*Form, model.Model, string, map[string]any) FieldRenderer {
		return staticField{begin: "<x>", end: "</x>"}
	})

	cfg := DefaultConfig()
	cfg.Fields = registry
	cfg.FieldType = "static"
	f := Begin("/save", "post", nil, WithConfig(cfg))

	field, err := f.CreateField(newUserModel(), "name", nil)
	if err != nil {
		t.Fatalf("create field: %v", err)
	}
	if _, ok := field.(staticField); !ok {
		t.Fatalf("expected session default field type, got %T", field)
	}
}
