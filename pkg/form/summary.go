package form

import (
	"sort"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formbind/pkg/htmlgen"
	"github.com/goliatone/go-formbind/pkg/model"
)

// DefaultSummaryHeader frames the error list when SummaryOptions.Header is
// empty.
const DefaultSummaryHeader = "<p>Please fix the following errors:</p>"

// SummaryOptions configures a single ErrorSummary call.
type SummaryOptions struct {
	// Header overrides the default framing text above the error list. It is
	// emitted raw, so callers own its escaping.
	Header string
	// Footer is emitted raw below the error list.
	Footer string
	// Encode overrides the session's EncodeErrorSummary setting. When
	// encoding is off, messages pass through the session sanitizer instead.
	Encode *bool
	// Attributes become container tag attributes; a "class" entry is merged
	// with the configured summary class.
	Attributes map[string]any
}

// ErrorSummary aggregates the current validation errors of one or more
// models into a single container. The container is always rendered — hidden
// via inline style when no errors exist — so the client layer can reveal it
// without re-rendering. This call reads the models' error state as-is; it
// does not run validation.
func (f *Form) ErrorSummary(models []model.Model, opts SummaryOptions) string {
	lines := collectSummaryLines(models)

	encode := f.cfg.EncodeErrorSummary
	if opts.Encode != nil {
		encode = *opts.Encode
	}

	items := make([]string, 0, len(lines))
	for _, line := range lines {
		if encode {
			items = append(items, htmlgen.Encode(line))
		} else {
			items = append(items, f.sanitizer().Sanitize(line))
		}
	}

	header := opts.Header
	if header == "" {
		header = DefaultSummaryHeader
	}

	var content strings.Builder
	content.WriteString(header)
	content.WriteString("<ul>")
	for _, item := range items {
		content.WriteString("<li>")
		content.WriteString(item)
		content.WriteString("</li>")
	}
	content.WriteString("</ul>")
	content.WriteString(opts.Footer)

	attrs := MergeOptions(opts.Attributes)
	htmlgen.AddClass(attrs, f.cfg.ErrorSummaryCSSClass)
	if len(items) == 0 {
		appendStyle(attrs, "display:none")
	}

	return htmlgen.Tag("div", content.String(), attrs)
}

func (f *Form) sanitizer() *bluemonday.Policy {
	if f.cfg.Sanitizer != nil {
		return f.cfg.Sanitizer
	}
	return bluemonday.UGCPolicy()
}

// collectSummaryLines flattens model errors in model order, attributes
// sorted per model so the output is deterministic.
func collectSummaryLines(models []model.Model) []string {
	var lines []string
	for _, m := range models {
		if m == nil {
			continue
		}
		errors := m.Errors()
		attributes := make([]string, 0, len(errors))
		for attribute := range errors {
			attributes = append(attributes, attribute)
		}
		sort.Strings(attributes)
		for _, attribute := range attributes {
			for _, message := range errors[attribute] {
				if trimmed := strings.TrimSpace(message); trimmed != "" {
					lines = append(lines, trimmed)
				}
			}
		}
	}
	return lines
}

func appendStyle(attrs map[string]any, style string) {
	existing, _ := attrs["style"].(string)
	existing = strings.TrimSpace(existing)
	if existing != "" && !strings.HasSuffix(existing, ";") {
		existing += "; "
	}
	attrs["style"] = existing + style
}
