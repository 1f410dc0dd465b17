package form

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-formbind/pkg/htmlgen"
)

// HiddenField represents a hidden input emitted right after the opening form
// tag. Use the helpers (CSRFToken, VersionField) for the common cases.
type HiddenField struct {
	Name  string
	Value string
}

// Hidden returns a HiddenField for an arbitrary name/value pair.
func Hidden(name string, value any) HiddenField {
	return HiddenField{
		Name:  strings.TrimSpace(name),
		Value: fmt.Sprint(value),
	}
}

// CSRFToken constructs a hidden field carrying the provided token. Callers
// supply the input name their backend expects (for example "_csrf").
func CSRFToken(name, token string) HiddenField {
	return Hidden(name, token)
}

// VersionField constructs a hidden field used for optimistic locking or
// version-aware submissions.
func VersionField(name string, version any) HiddenField {
	return Hidden(name, version)
}

// renderHiddenFields emits hidden inputs in sorted name order so output is
// deterministic. Fields with empty names are dropped; later duplicates win.
func renderHiddenFields(fields []HiddenField) string {
	if len(fields) == 0 {
		return ""
	}

	byName := make(map[string]string, len(fields))
	for _, field := range fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			continue
		}
		byName[name] = field.Value
	}
	if len(byName) == 0 {
		return ""
	}

	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)

	var builder strings.Builder
	for _, name := range names {
		builder.WriteString(htmlgen.BeginTag("input", map[string]any{
			"type":  "hidden",
			"name":  name,
			"value": byName[name],
		}))
	}
	return builder.String()
}
