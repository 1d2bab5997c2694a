package md2html

import (
	"fmt"
	"os"

	"github.com/alnah/go-md2html/internal/assets"
	"github.com/alnah/go-md2html/internal/fileutil"
)

// ResolveTemplate loads template content from a file path or an embedded
// template name. Strings containing a path separator are read from disk;
// anything else is looked up among the embedded templates. Both failure
// modes surface as ErrMissingTemplate.
func ResolveTemplate(nameOrPath string) (string, error) {
	if fileutil.IsFilePath(nameOrPath) {
		content, err := os.ReadFile(nameOrPath) // #nosec G304 -- template path is user-provided by design
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrMissingTemplate, err)
		}
		return string(content), nil
	}

	content, err := assets.LoadTemplate(nameOrPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMissingTemplate, err)
	}
	return content, nil
}
