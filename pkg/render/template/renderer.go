// Package template defines the rendering seam form sessions use for custom
// field layouts and summary templates.
package template

import "io"

// TemplateRenderer mirrors the github.com/goliatone/go-template engine
// contract so engines can be swapped without touching the form layer.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
