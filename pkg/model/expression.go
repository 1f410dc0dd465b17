package model

import (
	"regexp"
	"strings"
)

// attributePattern recognises attribute expressions: an optional tabular
// prefix ("[0]name"), the attribute name, and an optional array suffix
// ("name[0]" / "dates[begin]").
var attributePattern = regexp.MustCompile(`^(\[.*\])?([\w\.\+\-]+)(\[.*\])?$`)

// Attribute is a parsed attribute expression. Prefix carries the tabular
// index part ("[0]"), Name the bare attribute, Suffix any trailing array
// selector.
type Attribute struct {
	Prefix string
	Name   string
	Suffix string
}

// String reassembles the original expression.
func (a Attribute) String() string {
	return a.Prefix + a.Name + a.Suffix
}

// ParseAttribute splits an attribute expression into its parts. Expressions
// that do not match the supported grammar degrade to a bare name so
// identifier derivation stays total; callers that need strict validation use
// ValidAttribute.
func ParseAttribute(expression string) Attribute {
	matches := attributePattern.FindStringSubmatch(strings.TrimSpace(expression))
	if matches == nil {
		return Attribute{Name: strings.TrimSpace(expression)}
	}
	return Attribute{Prefix: matches[1], Name: matches[2], Suffix: matches[3]}
}

// ValidAttribute reports whether the expression matches the supported
// attribute grammar.
func ValidAttribute(expression string) bool {
	return attributePattern.MatchString(strings.TrimSpace(expression))
}

// InputName derives the submitted input name for a model attribute, e.g.
// ("User", "[0]name") -> "User[0][name]".
func InputName(m Model, expression string) string {
	attr := ParseAttribute(expression)
	formName := strings.TrimSpace(m.FormName())
	if formName == "" {
		return attr.Prefix + attr.Name + attr.Suffix
	}
	return formName + attr.Prefix + "[" + attr.Name + "]" + attr.Suffix
}

var inputIDReplacer = strings.NewReplacer(
	"[]", "",
	"][", "-",
	"[", "-",
	"]", "",
	" ", "-",
	".", "-",
)

// InputID derives the stable DOM identifier for a model attribute. The id is
// the lowercased input name with bracket groups folded into dashes, e.g.
// ("User", "[0]name") -> "user-0-name". It doubles as the key scheme of
// validation error maps.
func InputID(m Model, expression string) string {
	return strings.ToLower(inputIDReplacer.Replace(InputName(m, expression)))
}
