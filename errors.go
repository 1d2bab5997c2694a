package md2html

import "errors"

// Sentinel errors for conversion operations.
//
// Parsing itself never fails: malformed front matter, fences, and lists
// degrade via documented heuristics. Errors only arise from file access
// and template configuration.
var (
	ErrMissingInput    = errors.New("input file not found or unreadable")
	ErrMissingTemplate = errors.New("template not found or unreadable")
	ErrInvalidTemplate = errors.New("template must contain {{content}} placeholder")
	ErrWriteOutput     = errors.New("failed to write output file")
)
