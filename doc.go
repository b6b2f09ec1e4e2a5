// Package resume2pdf renders structured résumé data as a LaTeX document and
// compiles it to PDF or HTML with external tools.
//
// # Quick Start
//
// Load a résumé, create a service, and generate:
//
//	data, err := resume2pdf.LoadResume("resume.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	svc := resume2pdf.New()
//	pdfPath, err := svc.GeneratePDF(data, "out/resume.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Pipeline
//
// Generation follows these stages:
//
//  1. Context building: résumé fields, contact lines, skill groups and dated
//     sections become a RenderContext of LaTeX-safe strings (inline Markdown
//     subset converted, everything else escaped).
//  2. Template rendering: the context fills an embedded LaTeX template
//     (overridable via WithTemplate).
//  3. Compilation: the .tex file is handed to an external engine. PDF output
//     tries the first resolvable engine exactly once (xelatex, then
//     pdflatex). HTML output walks the candidate tools (pandoc, then
//     htlatex) until one succeeds.
//
// The PDF and HTML policies are deliberately asymmetric; see Compiler.
//
// # Markdown Subset
//
// Free-text fields support bold (**x** or __x__), italic (*x* or _x_), code
// spans (`x`), links ([label](url)), bullet lists (-, *, +) and numbered
// lists (1.). Anything else is escaped and rendered literally. Conversion
// never fails: unbalanced markers degrade to plain text.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := resume2pdf.New(
//	    resume2pdf.WithEngines("tectonic", "xelatex"),
//	    resume2pdf.WithStaticDir("/usr/share/resume2pdf/static"),
//	    resume2pdf.WithCompileTimeout(2 * time.Minute),
//	)
//
// # Diagnostics
//
// When PDF compilation fails, the engine's combined output is written next
// to the source document as a .log file and the returned error unwraps to a
// *CompilationError carrying the exit code and log text. Auxiliary engine
// byproducts (.aux, .out) are always removed.
package resume2pdf
