package validate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-formbind/pkg/model"
)

func newUser(name string) *model.MapModel {
	return model.NewMapModel("User").
		Set("name", name).
		Set("email", "").
		AddRule("name", model.Required()).
		AddRule("email", model.Required())
}

func TestValidateCollectsAllAttributes(t *testing.T) {
	user := newUser("")

	got := Validate(user)
	want := ErrorMap{
		"user-name":  {"Name cannot be blank."},
		"user-email": {"Email cannot be blank."},
	}
	assert.Equal(t, want, got)
}

func TestValidateMergesMultipleModels(t *testing.T) {
	user := newUser("")
	profile := model.NewMapModel("Profile").AddRule("bio", model.Required())

	got := Validate(user, profile)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"Bio cannot be blank."}, got["profile-bio"])
	assert.Equal(t, []string{"Name cannot be blank."}, got["user-name"])
}

func TestValidateAttributesFilterNeverAddsKeys(t *testing.T) {
	full := Validate(newUser(""))

	filtered := ValidateAttributes(newUser(""), []string{"name"})
	require.Len(t, filtered, 1)
	for key := range filtered {
		assert.Contains(t, full, key, "filtering must not introduce new identifiers")
	}

	empty := ValidateAttributes(newUser(""), nil)
	assert.Equal(t, full, empty, "nil filter means validate everything")
}

func TestValidateMultipleNamespacesByIndex(t *testing.T) {
	first := newUser("")
	second := newUser("ok")
	second.Set("email", "dev@example.com")

	got := ValidateMultiple([]model.Model{first, second}, nil)
	want := ErrorMap{
		"user-0-name":  {"Name cannot be blank."},
		"user-0-email": {"Email cannot be blank."},
	}
	assert.Equal(t, want, got, "only the invalid model contributes entries")
}

func TestValidateMultipleKeysDisjointAcrossIndices(t *testing.T) {
	first := newUser("")
	second := newUser("")

	got := ValidateMultiple([]model.Model{first, second}, []string{"name"})
	require.Len(t, got, 2)
	assert.Contains(t, got, "user-0-name")
	assert.Contains(t, got, "user-1-name")
}

func TestValidateMultipleSkipsCleanModels(t *testing.T) {
	blank := model.NewMapModel("User").Set("name", "").AddRule("name", model.Required())
	filled := model.NewMapModel("User").Set("name", "ok").AddRule("name", model.Required())

	got := ValidateMultiple([]model.Model{blank, filled}, nil)
	assert.Equal(t, ErrorMap{"user-0-name": {"Name cannot be blank."}}, got)
}

func TestValidateRepopulatesModelErrorState(t *testing.T) {
	user := newUser("ok")
	user.Set("email", "dev@example.com")
	user.AddError("name", "stale message")

	got := Validate(user)
	assert.Empty(t, got)
	assert.False(t, user.HasErrors(), "validation side effect replaces stale error state")
}

func TestErrorMapNormalizesMessages(t *testing.T) {
	m := model.NewMapModel("Post")
	m.AddError("title", "  Title cannot be blank.  ")
	m.AddError("title", "Title cannot be blank.")
	m.AddError("title", "")

	got := collect(m, identityExpr)
	assert.Equal(t, ErrorMap{"post-title": {"Title cannot be blank."}}, got)
}

func TestErrorMapIsJSONSerializable(t *testing.T) {
	payload, err := json.Marshal(ErrorMap{"user-0-name": {"Name cannot be blank."}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"user-0-name":["Name cannot be blank."]}`, string(payload))
}
