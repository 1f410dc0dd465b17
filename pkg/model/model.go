// Package model defines the contract form sessions and the validation
// aggregator expect from bound data models, plus the identifier scheme that
// ties model attributes to DOM inputs.
package model

import "strings"

// Model is the minimal surface a data model exposes to the form layer. The
// validation rules themselves live with the model; Validate re-runs them for
// the given attribute subset (all rule-covered attributes when none are
// passed) and repopulates the model's error state as a side effect.
type Model interface {
	// FormName scopes input names and identifiers, typically the model's
	// type name (e.g. "User").
	FormName() string
	// Validate runs the model's own rules for the listed attributes, or for
	// every rule-covered attribute when the list is empty.
	Validate(attributes ...string)
	// Errors returns the message lists produced by the last validation pass,
	// keyed by attribute name. Attributes without errors are absent.
	Errors() map[string][]string
}

// Labeled is implemented by models that provide their own attribute labels.
// Models without it fall back to DefaultLabel.
type Labeled interface {
	AttributeLabel(attribute string) string
}

// RequiredChecker is implemented by models that can report whether an
// attribute carries a required rule, letting fields render required styling.
type RequiredChecker interface {
	IsAttributeRequired(attribute string) bool
}

// Valuer is implemented by models that can surface attribute values for
// input prefilling. Models without it render empty inputs.
type Valuer interface {
	AttributeValue(attribute string) any
}

// Value resolves the current value of a model attribute, or nil when the
// model exposes no values.
func Value(m Model, attribute string) any {
	valuer, ok := m.(Valuer)
	if !ok {
		return nil
	}
	return valuer.AttributeValue(ParseAttribute(attribute).Name)
}

// Label resolves the display label for an attribute, preferring the model's
// own labels when available.
func Label(m Model, attribute string) string {
	expr := ParseAttribute(attribute)
	if labeled, ok := m.(Labeled); ok {
		if label := strings.TrimSpace(labeled.AttributeLabel(expr.Name)); label != "" {
			return label
		}
	}
	return DefaultLabel(expr.Name)
}

// IsRequired reports whether the model marks the attribute as required.
// Models that do not implement RequiredChecker never report required.
func IsRequired(m Model, attribute string) bool {
	checker, ok := m.(RequiredChecker)
	if !ok {
		return false
	}
	return checker.IsAttributeRequired(ParseAttribute(attribute).Name)
}

// ErrorBag is an embeddable per-attribute error store. Messages keep their
// insertion order within each attribute. The zero value is ready to use.
type ErrorBag struct {
	errors map[string][]string
}

// AddError appends a message to the attribute's error list.
func (b *ErrorBag) AddError(attribute, message string) {
	if b.errors == nil {
		b.errors = make(map[string][]string)
	}
	b.errors[attribute] = append(b.errors[attribute], message)
}

// Errors returns the stored messages keyed by attribute. Only attributes
// with at least one message appear.
func (b *ErrorBag) Errors() map[string][]string {
	if len(b.errors) == 0 {
		return map[string][]string{}
	}
	out := make(map[string][]string, len(b.errors))
	for attribute, messages := range b.errors {
		out[attribute] = append([]string(nil), messages...)
	}
	return out
}

// AttributeErrors returns the messages recorded for one attribute.
func (b *ErrorBag) AttributeErrors(attribute string) []string {
	return append([]string(nil), b.errors[attribute]...)
}

// FirstError returns the first message recorded for the attribute, or "".
func (b *ErrorBag) FirstError(attribute string) string {
	if messages := b.errors[attribute]; len(messages) > 0 {
		return messages[0]
	}
	return ""
}

// HasErrors reports whether any attribute (or the given attribute, when one
// is passed) has messages.
func (b *ErrorBag) HasErrors(attribute ...string) bool {
	if len(attribute) == 0 {
		return len(b.errors) > 0
	}
	return len(b.errors[attribute[0]]) > 0
}

// ClearErrors drops messages for the listed attributes, or every message
// when none are listed.
func (b *ErrorBag) ClearErrors(attributes ...string) {
	if len(attributes) == 0 {
		b.errors = nil
		return
	}
	for _, attribute := range attributes {
		delete(b.errors, attribute)
	}
}
