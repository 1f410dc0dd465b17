// Package config loads form session configuration from YAML files and
// go-theme manifests.
package config

import (
	"fmt"
	"os"
	"time"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbind/pkg/form"
)

// File is the YAML shape of a form configuration overlay. Pointer fields
// distinguish "absent" from explicit zero values so files only override what
// they mention.
type File struct {
	Classes struct {
		Required     string `yaml:"required"`
		Error        string `yaml:"error"`
		Success      string `yaml:"success"`
		Validating   string `yaml:"validating"`
		ErrorSummary string `yaml:"errorSummary"`
	} `yaml:"classes"`
	ValidationStateOn string `yaml:"validationStateOn"`

	ClientValidation *bool  `yaml:"clientValidation"`
	AjaxValidation   *bool  `yaml:"ajaxValidation"`
	ValidationURL    string `yaml:"validationUrl"`
	AjaxParam        string `yaml:"ajaxParam"`
	AjaxDataType     string `yaml:"ajaxDataType"`

	ValidateOnSubmit  *bool `yaml:"validateOnSubmit"`
	ValidateOnChange  *bool `yaml:"validateOnChange"`
	ValidateOnBlur    *bool `yaml:"validateOnBlur"`
	ValidateOnType    *bool `yaml:"validateOnType"`
	ValidationDelayMS *int  `yaml:"validationDelayMs"`

	ScrollToError       *bool `yaml:"scrollToError"`
	ScrollToErrorOffset *int  `yaml:"scrollToErrorOffset"`

	EncodeErrorSummary *bool `yaml:"encodeErrorSummary"`
}

// Load reads a YAML overlay from disk and applies it to the default form
// configuration.
func Load(path string) (form.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return form.Config{}, fmt.Errorf("config: read %q: %w", path, err)
	}
	return Parse(data)
}

// Parse applies a YAML overlay to the default form configuration.
func Parse(data []byte) (form.Config, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return form.Config{}, fmt.Errorf("config: parse yaml: %w", err)
	}
	return Apply(form.DefaultConfig(), file), nil
}

// Apply overlays the file values onto cfg, leaving unmentioned settings
// untouched.
func Apply(cfg form.Config, file File) form.Config {
	if file.Classes.Required != "" {
		cfg.RequiredCSSClass = file.Classes.Required
	}
	if file.Classes.Error != "" {
		cfg.ErrorCSSClass = file.Classes.Error
	}
	if file.Classes.Success != "" {
		cfg.SuccessCSSClass = file.Classes.Success
	}
	if file.Classes.Validating != "" {
		cfg.ValidatingCSSClass = file.Classes.Validating
	}
	if file.Classes.ErrorSummary != "" {
		cfg.ErrorSummaryCSSClass = file.Classes.ErrorSummary
	}
	if file.ValidationStateOn != "" {
		cfg.ValidationStateOn = file.ValidationStateOn
	}

	if file.ClientValidation != nil {
		cfg.EnableClientValidation = *file.ClientValidation
	}
	if file.AjaxValidation != nil {
		cfg.EnableAjaxValidation = *file.AjaxValidation
	}
	if file.ValidationURL != "" {
		cfg.ValidationURL = file.ValidationURL
	}
	if file.AjaxParam != "" {
		cfg.AjaxParam = file.AjaxParam
	}
	if file.AjaxDataType != "" {
		cfg.AjaxDataType = file.AjaxDataType
	}

	if file.ValidateOnSubmit != nil {
		cfg.ValidateOnSubmit = *file.ValidateOnSubmit
	}
	if file.ValidateOnChange != nil {
		cfg.ValidateOnChange = *file.ValidateOnChange
	}
	if file.ValidateOnBlur != nil {
		cfg.ValidateOnBlur = *file.ValidateOnBlur
	}
	if file.ValidateOnType != nil {
		cfg.ValidateOnType = *file.ValidateOnType
	}
	if file.ValidationDelayMS != nil {
		cfg.ValidationDelay = time.Duration(*file.ValidationDelayMS) * time.Millisecond
	}

	if file.ScrollToError != nil {
		cfg.ScrollToError = *file.ScrollToError
	}
	if file.ScrollToErrorOffset != nil {
		cfg.ScrollToErrorOffset = *file.ScrollToErrorOffset
	}

	if file.EncodeErrorSummary != nil {
		cfg.EncodeErrorSummary = *file.EncodeErrorSummary
	}
	return cfg
}

// Theme token keys mapped onto the CSS class surface by FromTheme.
const (
	TokenRequiredClass     = "class.required"
	TokenErrorClass        = "class.error"
	TokenSuccessClass      = "class.success"
	TokenValidatingClass   = "class.validating"
	TokenErrorSummaryClass = "class.errorSummary"
)

// FromTheme resolves a go-theme selection and maps its manifest tokens onto
// the default configuration's CSS class surface. Tokens outside the class.*
// namespace are ignored.
func FromTheme(selector theme.ThemeSelector, name, variant string) (form.Config, error) {
	cfg := form.DefaultConfig()
	if selector == nil {
		return cfg, fmt.Errorf("config: theme selector is nil")
	}

	selection, err := selector.Select(name, variant)
	if err != nil {
		return cfg, fmt.Errorf("config: select theme %q/%q: %w", name, variant, err)
	}
	if selection == nil || selection.Manifest == nil {
		return cfg, nil
	}

	tokens := selection.Manifest.Tokens
	if class := tokens[TokenRequiredClass]; class != "" {
		cfg.RequiredCSSClass = class
	}
	if class := tokens[TokenErrorClass]; class != "" {
		cfg.ErrorCSSClass = class
	}
	if class := tokens[TokenSuccessClass]; class != "" {
		cfg.SuccessCSSClass = class
	}
	if class := tokens[TokenValidatingClass]; class != "" {
		cfg.ValidatingCSSClass = class
	}
	if class := tokens[TokenErrorSummaryClass]; class != "" {
		cfg.ErrorSummaryCSSClass = class
	}
	return cfg, nil
}
