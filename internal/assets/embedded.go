package assets

import (
	"embed"
	"fmt"
)

//go:embed templates/*
var templates embed.FS

// DefaultTemplateName is the embedded shell used when no template is
// supplied.
const DefaultTemplateName = "default"

// LoadTemplate loads an embedded HTML template by name.
// The name should not include the .html extension.
func LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := templates.ReadFile("templates/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	return string(content), nil
}

// DefaultTemplate returns the default document shell. The template is
// embedded, so a read failure is a build defect, not a runtime condition.
func DefaultTemplate() string {
	content, err := LoadTemplate(DefaultTemplateName)
	if err != nil {
		panic("assets: missing embedded default template: " + err.Error())
	}
	return content
}
