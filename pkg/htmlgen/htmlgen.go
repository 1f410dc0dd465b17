package htmlgen

import (
	"fmt"
	"html"
	"sort"
	"strings"
)

// attributeOrder lists well-known attributes rendered ahead of everything
// else so generated markup stays stable across runs. Remaining attributes are
// emitted in sorted order.
var attributeOrder = []string{
	"type",
	"id",
	"class",
	"name",
	"value",
	"href",
	"src",
	"action",
	"method",
	"for",
	"srcset",
	"form",
	"checked",
	"required",
	"disabled",
	"readonly",
	"alt",
	"title",
	"rel",
	"media",
}

// Encode escapes special characters into HTML entities.
func Encode(content string) string {
	return html.EscapeString(content)
}

// RenderAttributes renders a tag attribute map into its HTML representation,
// including a leading space when any attribute is emitted. Boolean values
// follow the HTML5 convention: true renders the bare attribute name, false
// omits the attribute entirely. Nil values are skipped, everything else is
// formatted with fmt and encoded.
func RenderAttributes(attributes map[string]any) string {
	if len(attributes) == 0 {
		return ""
	}

	var builder strings.Builder
	for _, name := range sortAttributeNames(attributes) {
		value := attributes[name]
		switch v := value.(type) {
		case nil:
			continue
		case bool:
			if v {
				builder.WriteByte(' ')
				builder.WriteString(name)
			}
		default:
			builder.WriteByte(' ')
			builder.WriteString(name)
			builder.WriteString(`="`)
			builder.WriteString(Encode(fmt.Sprint(v)))
			builder.WriteByte('"')
		}
	}
	return builder.String()
}

// BeginTag renders the opening tag of an element. An empty name yields an
// empty string so callers can make wrappers optional.
func BeginTag(name string, attributes map[string]any) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return "<" + name + RenderAttributes(attributes) + ">"
}

// EndTag renders the closing tag of an element.
func EndTag(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return "</" + name + ">"
}

// Tag renders a complete element with raw (pre-encoded) content.
func Tag(name, content string, attributes map[string]any) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return content
	}
	return BeginTag(name, attributes) + content + EndTag(name)
}

// AddClass appends one or more CSS classes to the "class" attribute,
// skipping classes already present.
func AddClass(attributes map[string]any, classes ...string) {
	if attributes == nil {
		return
	}
	existing := strings.Fields(fmt.Sprint(attributes["class"]))
	if attributes["class"] == nil {
		existing = nil
	}
	for _, class := range classes {
		class = strings.TrimSpace(class)
		if class == "" || containsToken(existing, class) {
			continue
		}
		existing = append(existing, class)
	}
	if len(existing) == 0 {
		return
	}
	attributes["class"] = strings.Join(existing, " ")
}

// RemoveClass drops CSS classes from the "class" attribute. When no classes
// remain the attribute is deleted.
func RemoveClass(attributes map[string]any, classes ...string) {
	if attributes == nil || attributes["class"] == nil {
		return
	}
	existing := strings.Fields(fmt.Sprint(attributes["class"]))
	keep := make([]string, 0, len(existing))
	for _, token := range existing {
		if containsToken(classes, token) {
			continue
		}
		keep = append(keep, token)
	}
	if len(keep) == 0 {
		delete(attributes, "class")
		return
	}
	attributes["class"] = strings.Join(keep, " ")
}

func containsToken(tokens []string, candidate string) bool {
	for _, token := range tokens {
		if token == candidate {
			return true
		}
	}
	return false
}

func sortAttributeNames(attributes map[string]any) []string {
	names := make([]string, 0, len(attributes))
	for name := range attributes {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		ri, rj := attributeRank(names[i]), attributeRank(names[j])
		if ri != rj {
			return ri < rj
		}
		return names[i] < names[j]
	})
	return names
}

func attributeRank(name string) int {
	for idx, known := range attributeOrder {
		if known == name {
			return idx
		}
	}
	return len(attributeOrder)
}
