package resume2pdf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alnah/go-resume2pdf/internal/fileutil"
)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	engines      []string
	htmlTools    []string
	staticDir    string
	templatePath string
	timeout      time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithEngines sets the PDF engine candidates, in priority order.
func WithEngines(engines ...string) Option {
	return func(s *Service) { s.cfg.engines = engines }
}

// WithHTMLTools sets the HTML conversion tool candidates, in priority order.
func WithHTMLTools(tools ...string) Option {
	return func(s *Service) { s.cfg.htmlTools = tools }
}

// WithStaticDir sets the directory probed for font resources.
func WithStaticDir(dir string) Option {
	return func(s *Service) { s.cfg.staticDir = dir }
}

// WithTemplate sets a LaTeX template file replacing the embedded default.
func WithTemplate(path string) Option {
	return func(s *Service) { s.cfg.templatePath = path }
}

// WithCompileTimeout bounds each external tool invocation. Zero (the
// default) means no timeout, matching the engines' blocking contract.
// Panics if d < 0.
func WithCompileTimeout(d time.Duration) Option {
	if d < 0 {
		panic("resume2pdf: WithCompileTimeout duration must not be negative")
	}
	return func(s *Service) { s.cfg.timeout = d }
}

// WithCompiler injects a Compiler (e.g. by tests).
func WithCompiler(c *Compiler) Option {
	return func(s *Service) { s.compiler = c }
}

// Service orchestrates the résumé-to-document pipeline: context building,
// template rendering, compilation, log persistence and artifact cleanup.
type Service struct {
	cfg      serviceConfig
	compiler *Compiler
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g. WithEngines).
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.compiler == nil {
		s.compiler = NewCompiler()
		s.compiler.Runner = &ExecRunner{Timeout: s.cfg.timeout}
	}
	return s
}

// RenderTeX builds the rendering context for data and renders it to LaTeX
// source without touching the filesystem (beyond the font directory probe).
func (s *Service) RenderTeX(data ResumeData) (string, error) {
	if data.FullName == "" {
		return "", ErrEmptyName
	}
	renderer, err := newTexRenderer(s.cfg.templatePath)
	if err != nil {
		return "", err
	}
	return renderer.Render(BuildContext(data, s.cfg.staticDir))
}

// GeneratePDF renders data to LaTeX, writes the source next to outPath and
// compiles it to a PDF at outPath.
//
// On compilation failure the engine's log is persisted beside the source as
// a .log file before the error is returned. Auxiliary artifacts are cleaned
// up whether compilation succeeds or fails; the log survives only the
// failure path.
func (s *Service) GeneratePDF(data ResumeData, outPath string) (string, error) {
	texPath, err := s.writeTex(data, outPath)
	if err != nil {
		return "", err
	}

	preserveLog := false
	defer func() { s.compiler.Cleanup(texPath, preserveLog) }()

	pdfPath, err := s.compiler.ToPDF(texPath, s.cfg.engines)
	if err != nil {
		var compErr *CompilationError
		if errors.As(err, &compErr) && compErr.Log != "" {
			logPath := fileutil.ReplaceExt(texPath, ".log")
			if werr := os.WriteFile(logPath, []byte(compErr.Log), 0o644); werr == nil {
				preserveLog = true
			}
		}
		return "", fmt.Errorf("compiling %s: %w", filepath.Base(texPath), err)
	}

	if pdfPath != outPath {
		if err := os.Rename(pdfPath, outPath); err != nil {
			return "", fmt.Errorf("moving artifact to %s: %w", outPath, err)
		}
	}
	return outPath, nil
}

// GenerateHTML renders data to LaTeX, writes the source next to outPath and
// converts it to a standalone HTML document at outPath. Unlike the PDF
// path, no log is persisted on failure: the last tool's failure details
// travel in the returned error instead.
func (s *Service) GenerateHTML(data ResumeData, outPath string) (string, error) {
	texPath, err := s.writeTex(data, outPath)
	if err != nil {
		return "", err
	}

	defer s.compiler.Cleanup(texPath, false)

	htmlPath, err := s.compiler.ToHTML(texPath, s.cfg.htmlTools)
	if err != nil {
		return "", fmt.Errorf("converting %s: %w", filepath.Base(texPath), err)
	}

	if htmlPath != outPath {
		if err := os.Rename(htmlPath, outPath); err != nil {
			return "", fmt.Errorf("moving artifact to %s: %w", outPath, err)
		}
	}
	return outPath, nil
}

// writeTex renders data and writes the LaTeX source as outPath's .tex
// sibling, creating the output directory if needed.
func (s *Service) writeTex(data ResumeData, outPath string) (string, error) {
	tex, err := s.RenderTeX(data)
	if err != nil {
		return "", err
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("%w: %v", ErrWriteTex, err)
		}
	}

	texPath := fileutil.ReplaceExt(outPath, ".tex")
	if err := os.WriteFile(texPath, []byte(tex), 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", ErrWriteTex, err)
	}
	return texPath, nil
}
