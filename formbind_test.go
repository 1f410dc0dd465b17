package formbind

import (
	"strings"
	"testing"

	"github.com/goliatone/go-formbind/pkg/model"
)

func TestSessionRoundTrip(t *testing.T) {
	user := model.NewMapModel("User").
		Set("name", "").
		AddRule("name", model.Required())
	user.Validate()

	f := Begin("/users", "post", map[string]any{"id": "signup"})
	if err := f.WriteString(f.ErrorSummary([]Model{user}, SummaryOptions{})); err != nil {
		t.Fatalf("write summary: %v", err)
	}
	if _, err := f.Field(user, "name", nil); err != nil {
		t.Fatalf("render field: %v", err)
	}

	markup, err := f.End()
	if err != nil {
		t.Fatalf("end form: %v", err)
	}

	for _, fragment := range []string{
		`<form id="signup"`,
		`class="error-summary"`,
		"Name cannot be blank.",
		`id="user-name"`,
		"</form>",
	} {
		if !strings.Contains(markup, fragment) {
			t.Fatalf("expected %q in markup, got:\n%s", fragment, markup)
		}
	}
}

func TestValidateEntryPoints(t *testing.T) {
	blank := model.NewMapModel("User").Set("name", "").AddRule("name", model.Required())
	filled := model.NewMapModel("User").Set("name", "ok").AddRule("name", model.Required())

	if got := Validate(blank); len(got["user-name"]) != 1 {
		t.Fatalf("expected single name error, got %v", got)
	}

	got := ValidateMultiple([]Model{blank, filled}, nil)
	if len(got) != 1 || len(got["user-0-name"]) != 1 {
		t.Fatalf("expected only the first model to contribute, got %v", got)
	}

	if got := ValidateAttributes(filled, []string{"name"}); len(got) != 0 {
		t.Fatalf("expected no errors for valid model, got %v", got)
	}
}
