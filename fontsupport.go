package resume2pdf

import "strings"

// fontFallbackBlock defines the six contact icon macros without any font
// resources: it uses the fontawesome package when the TeX installation
// provides it and plain-text stand-ins otherwise.
const fontFallbackBlock = `\IfFileExists{fontawesome.sty}{%
  \usepackage{fontawesome}%
  \providecommand{\faLocation}{\faMapMarker}%
}{
  \newcommand{\faPhone}{\textbf{P}}
  \newcommand{\faEnvelope}{\textbf{@}}
  \newcommand{\faLinkedin}{\textbf{in}}
  \newcommand{\faGlobe}{\textbf{W}}
  \newcommand{\faGithub}{\textbf{GH}}
  \newcommand{\faLocation}{\textbf{A}}
}`

// fontSupportBlock returns the LaTeX preamble fragment that defines the
// contact icon macros.
//
// With a resolved Font Awesome directory the fragment branches at compile
// time: classic engines (pdfTeX) cannot load OTF fonts and take the
// fallback path, while fontspec-capable engines bind each macro to its
// glyph in the Solid and Brands faces. Without a directory only the
// fallback fragment is emitted.
func fontSupportBlock(fontDir string) string {
	if fontDir == "" {
		return fontFallbackBlock
	}

	fontspec := `\usepackage{fontspec}
\newfontfamily\FAFreeSolid[
    Path=` + fontDir + `,
    Scale=0.72,
]{Font Awesome 6 Free-Solid-900.otf}
\newfontfamily\FAFreeBrands[
    Path=` + fontDir + `,
    Scale=0.72,
]{Font Awesome 6 Brands-Regular-400.otf}
\newcommand{\faPhone}{%
  {\FAFreeSolid\symbol{"F095}}%
}
\newcommand{\faEnvelope}{%
  {\FAFreeSolid\symbol{"F0E0}}%
}
\newcommand{\faLinkedin}{%
  {\FAFreeBrands\symbol{"F08C}}%
}
\newcommand{\faGlobe}{%
  {\FAFreeSolid\symbol{"F0AC}}%
}
\newcommand{\faGithub}{%
  {\FAFreeBrands\symbol{"F09B}}%
}
\newcommand{\faLocation}{%
  {\FAFreeSolid\symbol{"F3C5}}%
}`

	lines := []string{`\usepackage{iftex}`, `\ifPDFTeX`}
	lines = append(lines, indentLines(fontFallbackBlock)...)
	lines = append(lines, `\else`)
	lines = append(lines, indentLines(fontspec)...)
	lines = append(lines, `\fi`)
	return strings.Join(lines, "\n")
}

// indentLines prefixes every non-empty line with two spaces.
func indentLines(block string) []string {
	lines := strings.Split(block, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		if line == "" {
			out[i] = ""
		} else {
			out[i] = "  " + line
		}
	}
	return out
}
