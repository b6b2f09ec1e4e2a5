package main

import (
	"errors"
	"os"

	resume2pdf "github.com/alnah/go-resume2pdf"
	"github.com/alnah/go-resume2pdf/internal/config"
	"github.com/alnah/go-resume2pdf/internal/yamlutil"
)

// Exit codes for resume2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful generation
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, input shape, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitCompile = 4 // External engine/tool errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is/As to check wrapped errors, so callers must wrap with
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Compiler errors (exit 4)
	var compErr *resume2pdf.CompilationError
	if errors.As(err, &compErr) ||
		errors.Is(err, resume2pdf.ErrNoEngine) ||
		errors.Is(err, resume2pdf.ErrNoHTMLTool) {
		return ExitCompile
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, resume2pdf.ErrReadResume) ||
		errors.Is(err, resume2pdf.ErrWriteTex) {
		return ExitIO
	}

	// Usage/validation errors (exit 2)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrBadFormat) ||
		errors.Is(err, ErrBadTimeout) ||
		errors.Is(err, resume2pdf.ErrEmptyName) ||
		errors.Is(err, resume2pdf.ErrRenderTex) ||
		errors.Is(err, config.ErrInvalidDimension) ||
		errors.Is(err, config.ErrInvalidColor) ||
		errors.Is(err, config.ErrSidebarTooWide) ||
		errors.Is(err, yamlutil.ErrNilData) ||
		errors.Is(err, yamlutil.ErrInputTooLarge) {
		return ExitUsage
	}

	return ExitGeneral
}
