package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	resume2pdf "github.com/alnah/go-resume2pdf"
	"github.com/alnah/go-resume2pdf/internal/config"
	"github.com/alnah/go-resume2pdf/internal/yamlutil"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "generic", err: errors.New("boom"), want: ExitGeneral},
		{name: "no input", err: ErrNoInput, want: ExitUsage},
		{name: "bad format", err: ErrBadFormat, want: ExitUsage},
		{name: "bad timeout", err: ErrBadTimeout, want: ExitUsage},
		{name: "empty name", err: resume2pdf.ErrEmptyName, want: ExitUsage},
		{name: "render failure", err: resume2pdf.ErrRenderTex, want: ExitUsage},
		{name: "invalid color", err: config.ErrInvalidColor, want: ExitUsage},
		{name: "sidebar too wide", err: config.ErrSidebarTooWide, want: ExitUsage},
		{name: "oversized yaml", err: yamlutil.ErrInputTooLarge, want: ExitUsage},
		{name: "file missing", err: os.ErrNotExist, want: ExitIO},
		{name: "read failure", err: resume2pdf.ErrReadResume, want: ExitIO},
		{name: "write failure", err: resume2pdf.ErrWriteTex, want: ExitIO},
		{name: "no engine", err: resume2pdf.ErrNoEngine, want: ExitCompile},
		{name: "no html tool", err: resume2pdf.ErrNoHTMLTool, want: ExitCompile},
		{
			name: "compilation error",
			err:  &resume2pdf.CompilationError{Tool: "xelatex", ExitCode: 1},
			want: ExitCompile,
		},
		{
			name: "wrapped compilation error",
			err:  fmt.Errorf("compiling cv.tex: %w", &resume2pdf.CompilationError{Tool: "pdflatex", ExitCode: 2}),
			want: ExitCompile,
		},
		{
			name: "wrapped sentinel",
			err:  fmt.Errorf("loading cv.yaml: %w", resume2pdf.ErrReadResume),
			want: ExitIO,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
