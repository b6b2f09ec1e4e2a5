package resume2pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/alnah/go-resume2pdf/internal/fileutil"
)

// Default candidate binaries, in priority order.
var (
	DefaultEngines   = []string{"xelatex", "pdflatex"}
	DefaultHTMLTools = []string{"pandoc", "htlatex"}
)

// Auxiliary extensions LaTeX engines leave beside the source document.
var auxExtensions = []string{".aux", ".log", ".out"}

// CommandRunner abstracts subprocess execution to enable testing without
// real engines. Run executes name in dir and returns the captured output
// streams; a nonzero exit surfaces as the error.
type CommandRunner interface {
	Run(dir, name string, args ...string) (stdout, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec. A zero Timeout means
// the invocation blocks until the subprocess exits.
type ExecRunner struct {
	Timeout time.Duration
}

func (r *ExecRunner) Run(dir, name string, args ...string) (string, string, error) {
	ctx := context.Background()
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// Compiler drives external LaTeX tooling. The zero value is not usable;
// construct with NewCompiler.
//
// The PDF and HTML paths have deliberately different fallback policies.
// ToPDF commits to the first engine present on PATH and never retries a
// failed compile with another engine; ToHTML walks the candidate tools
// until one succeeds. Keep that asymmetry: the engines produce identical
// artifacts only in the HTML case.
type Compiler struct {
	Runner   CommandRunner
	LookPath func(name string) (string, error)
}

// NewCompiler returns a Compiler backed by os/exec and exec.LookPath.
func NewCompiler() *Compiler {
	return &Compiler{
		Runner:   &ExecRunner{},
		LookPath: exec.LookPath,
	}
}

// ToPDF compiles texPath with the first candidate engine found on PATH.
//
// The engine runs non-interactively, halts on the first internal error, and
// writes its auxiliary output into the document's directory. A nonzero exit
// returns a *CompilationError carrying the exit code and the combined
// output; no further engine is tried. On success the returned path is
// texPath with a .pdf extension; the engine is trusted to have produced it.
func (c *Compiler) ToPDF(texPath string, engines []string) (string, error) {
	if len(engines) == 0 {
		engines = DefaultEngines
	}

	engine := ""
	for _, candidate := range engines {
		if _, err := c.LookPath(candidate); err == nil {
			engine = candidate
			break
		}
	}
	if engine == "" {
		return "", ErrNoEngine
	}

	dir, texArg := splitTexPath(texPath)
	stdout, stderr, err := c.Runner.Run(dir, engine,
		"-interaction=nonstopmode",
		"-halt-on-error",
		"-output-directory", dir,
		texArg,
	)
	if err != nil {
		return "", &CompilationError{
			Tool:     engine,
			ExitCode: exitCodeOf(err),
			Log:      stdout + "\n" + stderr,
		}
	}

	return fileutil.ReplaceExt(texPath, ".pdf"), nil
}

// ToHTML converts texPath with the first candidate tool that is both
// present on PATH and succeeds.
//
// Tools missing from PATH are skipped. A resolvable tool that fails is
// recorded and the next candidate is tried; when every resolvable tool has
// failed the last failure is returned, and when none resolved at all the
// error is ErrNoHTMLTool. On success the artifact is at texPath with a
// .html extension; a tool that succeeds without producing output gets an
// empty placeholder written so success always implies the file exists.
func (c *Compiler) ToHTML(texPath string, tools []string) (string, error) {
	if len(tools) == 0 {
		tools = DefaultHTMLTools
	}

	// The canonical target must be absolute: the tools run with dir as
	// their working directory, so a relative -o argument would resolve
	// against dir instead of the caller's working directory.
	htmlPath := fileutil.ReplaceExt(texPath, ".html")
	if abs, err := filepath.Abs(htmlPath); err == nil {
		htmlPath = abs
	}
	dir, texArg := splitTexPath(texPath)

	var lastErr *CompilationError
	for _, tool := range tools {
		if _, err := c.LookPath(tool); err != nil {
			continue
		}

		var args []string
		switch tool {
		case "pandoc":
			args = []string{texArg, "-f", "latex", "-t", "html5", "-s", "-o", htmlPath}
		case "htlatex":
			args = []string{texArg, "html"}
		default:
			continue
		}

		stdout, stderr, err := c.Runner.Run(dir, tool, args...)
		if err != nil {
			lastErr = &CompilationError{
				Tool:     tool,
				ExitCode: exitCodeOf(err),
				Log:      stdout + "\n" + stderr,
			}
			continue
		}

		if tool == "htlatex" {
			// htlatex writes <base>.html into the working directory
			// rather than honoring an output flag.
			generated := filepath.Join(dir, fileutil.ReplaceExt(filepath.Base(texPath), ".html"))
			if generated != htmlPath && fileutil.FileExists(generated) {
				_ = os.Rename(generated, htmlPath)
			}
		}
		if !fileutil.FileExists(htmlPath) {
			if werr := os.WriteFile(htmlPath, nil, 0o644); werr != nil {
				return "", fmt.Errorf("writing placeholder HTML: %w", werr)
			}
		}
		return htmlPath, nil
	}

	if lastErr != nil {
		return "", lastErr
	}
	return "", ErrNoHTMLTool
}

// Cleanup removes the auxiliary files sharing texPath's base name (.aux,
// .log, .out), keeping the .log when preserveLog is set. Removal is best
// effort and never fails.
func (c *Compiler) Cleanup(texPath string, preserveLog bool) {
	for _, ext := range auxExtensions {
		if preserveLog && ext == ".log" {
			continue
		}
		_ = os.Remove(fileutil.ReplaceExt(texPath, ext))
	}
}

// splitTexPath resolves the working directory for an invocation and the
// path argument handed to the tool (absolute paths pass through, relative
// ones are reduced to the base name since the tool runs in dir).
func splitTexPath(texPath string) (dir, texArg string) {
	dir = filepath.Dir(texPath)
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	texArg = texPath
	if !filepath.IsAbs(texPath) {
		texArg = filepath.Base(texPath)
	}
	return dir, texArg
}

// exitCodeOf extracts a process exit code from err, falling back to -1 for
// errors that carry none (e.g. a start failure or timeout).
func exitCodeOf(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) {
		return coded.ExitCode()
	}
	return -1
}
