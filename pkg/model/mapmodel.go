package model

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Rule validates one attribute value and returns a message when the value is
// invalid, or "" when it passes. The label is the attribute's display label
// so messages can be phrased for humans.
type Rule func(label string, value any) string

// Required rejects nil values and blank strings.
func Required() Rule {
	return func(label string, value any) string {
		switch v := value.(type) {
		case nil:
			return fmt.Sprintf("%s cannot be blank.", label)
		case string:
			if strings.TrimSpace(v) == "" {
				return fmt.Sprintf("%s cannot be blank.", label)
			}
		}
		return ""
	}
}

// MaxLength rejects strings longer than limit characters.
func MaxLength(limit int) Rule {
	return func(label string, value any) string {
		if s, ok := value.(string); ok && len([]rune(s)) > limit {
			return fmt.Sprintf("%s should contain at most %d characters.", label, limit)
		}
		return ""
	}
}

// Matches rejects values whose string form fails the supplied predicate.
func Matches(describe string, predicate func(value any) bool) Rule {
	return func(label string, value any) string {
		if predicate(value) {
			return ""
		}
		return fmt.Sprintf("%s %s.", label, describe)
	}
}

// MapModel is a dynamic Model backed by an attribute map with per-attribute
// rules. It exists so callers (and tests) have a concrete model without
// pulling in a schema layer; production models usually implement Model
// directly on their own structs.
type MapModel struct {
	ErrorBag

	name       string
	attributes map[string]any
	rules      map[string][]Rule
	labels     map[string]string
	order      []string
}

// NewMapModel constructs an empty model with the given form name.
func NewMapModel(formName string) *MapModel {
	return &MapModel{
		name:       strings.TrimSpace(formName),
		attributes: make(map[string]any),
		rules:      make(map[string][]Rule),
		labels:     make(map[string]string),
	}
}

// FromJSON builds a MapModel from the top-level members of a JSON document,
// such as an AJAX validation request body. Nested values are stored as
// decoded any values.
func FromJSON(formName string, payload []byte) *MapModel {
	m := NewMapModel(formName)
	gjson.ParseBytes(payload).ForEach(func(key, value gjson.Result) bool {
		m.Set(key.String(), value.Value())
		return true
	})
	return m
}

// FormName implements Model.
func (m *MapModel) FormName() string { return m.name }

// Set assigns an attribute value, registering the attribute on first use.
func (m *MapModel) Set(attribute string, value any) *MapModel {
	if _, seen := m.attributes[attribute]; !seen {
		m.order = append(m.order, attribute)
	}
	m.attributes[attribute] = value
	return m
}

// Get returns the attribute value, or nil when unset.
func (m *MapModel) Get(attribute string) any {
	return m.attributes[attribute]
}

// AttributeValue implements Valuer.
func (m *MapModel) AttributeValue(attribute string) any {
	return m.Get(attribute)
}

// AddRule appends validation rules for an attribute.
func (m *MapModel) AddRule(attribute string, rules ...Rule) *MapModel {
	if _, seen := m.attributes[attribute]; !seen {
		m.Set(attribute, nil)
	}
	m.rules[attribute] = append(m.rules[attribute], rules...)
	return m
}

// SetLabel overrides the generated display label for an attribute.
func (m *MapModel) SetLabel(attribute, label string) *MapModel {
	m.labels[attribute] = label
	return m
}

// AttributeLabel implements Labeled.
func (m *MapModel) AttributeLabel(attribute string) string {
	if label := m.labels[attribute]; label != "" {
		return label
	}
	return DefaultLabel(attribute)
}

// IsAttributeRequired implements RequiredChecker by probing for a Required
// rule outcome against an empty value.
func (m *MapModel) IsAttributeRequired(attribute string) bool {
	for _, rule := range m.rules[attribute] {
		if rule(m.AttributeLabel(attribute), nil) != "" {
			return true
		}
	}
	return false
}

// Validate implements Model: it clears previous errors for the targeted
// attributes and re-runs their rules in declaration order.
func (m *MapModel) Validate(attributes ...string) {
	targets := attributes
	if len(targets) == 0 {
		targets = m.ruleCoveredAttributes()
		m.ClearErrors()
	} else {
		m.ClearErrors(targets...)
	}

	for _, attribute := range targets {
		label := m.AttributeLabel(attribute)
		for _, rule := range m.rules[attribute] {
			if message := rule(label, m.attributes[attribute]); message != "" {
				m.AddError(attribute, message)
			}
		}
	}
}

func (m *MapModel) ruleCoveredAttributes() []string {
	covered := make([]string, 0, len(m.rules))
	for _, attribute := range m.order {
		if len(m.rules[attribute]) > 0 {
			covered = append(covered, attribute)
		}
	}
	return covered
}
