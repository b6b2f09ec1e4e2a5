package resume2pdf

import (
	"errors"
	"fmt"
)

// Sentinel errors for library operations.
var (
	ErrNoEngine   = errors.New("no LaTeX engine found: install xelatex or pdflatex to render PDFs")
	ErrNoHTMLTool = errors.New("no LaTeX-to-HTML tool found: install pandoc or htlatex to render HTML output")
	ErrEmptyName  = errors.New("resume must have a full_name")
	ErrReadResume = errors.New("failed to read resume file")
	ErrRenderTex  = errors.New("LaTeX template rendering failed")
	ErrWriteTex   = errors.New("failed to write LaTeX source")
)

// CompilationError reports a nonzero exit from an external engine or tool.
// Log holds the combined stdout and stderr of the failed invocation.
type CompilationError struct {
	Tool     string
	ExitCode int
	Log      string
}

func (e *CompilationError) Error() string {
	return fmt.Sprintf("%s failed with exit code %d", e.Tool, e.ExitCode)
}
