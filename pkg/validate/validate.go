// Package validate aggregates model validation errors into maps keyed by
// stable input identifiers, ready to serialize as AJAX response bodies.
//
// Every entry point runs the models' own validation before collecting: the
// return value is pure, but the models' internal error state is repopulated
// as a documented side effect.
package validate

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formbind/pkg/model"
)

// ErrorMap maps input identifiers to ordered error message lists. Only
// attributes with at least one message appear. The map marshals directly to
// the JSON shape client-side validators consume.
type ErrorMap map[string][]string

// Merge folds other into the map, appending messages on key collisions.
func (e ErrorMap) Merge(other ErrorMap) {
	for key, messages := range other {
		e[key] = append(e[key], messages...)
	}
}

// HasErrors reports whether any identifier carries messages.
func (e ErrorMap) HasErrors() bool {
	return len(e) > 0
}

// Validate runs full validation on every model and merges the results into
// one map keyed by input identifier.
func Validate(models ...model.Model) ErrorMap {
	out := ErrorMap{}
	for _, m := range models {
		if m == nil {
			continue
		}
		m.Validate()
		out.Merge(collect(m, identityExpr))
	}
	return out
}

// ValidateAttributes validates a single model restricted to the listed
// attributes (all rule-covered attributes when the list is empty). Filtering
// never introduces identifiers that a full Validate would not produce.
func ValidateAttributes(m model.Model, attributes []string) ErrorMap {
	if m == nil {
		return ErrorMap{}
	}
	m.Validate(attributes...)
	return collect(m, identityExpr)
}

// ValidateMultiple validates an ordered sequence of models with a shared
// attribute filter, namespacing each identifier with the model's positional
// index ("user-0-name") so tabular input sets stay disambiguated even when
// the models share attribute names.
func ValidateMultiple(models []model.Model, attributes []string) ErrorMap {
	out := ErrorMap{}
	for index, m := range models {
		if m == nil {
			continue
		}
		m.Validate(attributes...)
		prefix := fmt.Sprintf("[%d]", index)
		out.Merge(collect(m, func(attribute string) string {
			return prefix + attribute
		}))
	}
	return out
}

func identityExpr(attribute string) string { return attribute }

// collect maps the model's current error state into identifier keys. The
// expr hook rewrites attribute names into expressions before identifier
// derivation (used for tabular index prefixes).
func collect(m model.Model, expr func(attribute string) string) ErrorMap {
	out := ErrorMap{}
	for attribute, messages := range m.Errors() {
		normalized := normalizeMessages(messages)
		if len(normalized) == 0 {
			continue
		}
		out[model.InputID(m, expr(attribute))] = normalized
	}
	return out
}

// normalizeMessages trims whitespace and drops empties and duplicates while
// preserving order.
func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))
	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
