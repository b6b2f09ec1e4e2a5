package resume2pdf

import (
	"regexp"
	"strconv"
	"strings"
)

// latexEscaper maps LaTeX special characters in body text to their escaped
// forms. Single pass, so already-escaped output is never touched twice.
var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"~", `\textasciitilde{}`,
	"^", `\textasciicircum{}`,
)

// EscapeLaTeX escapes LaTeX special characters in text.
func EscapeLaTeX(text string) string {
	return latexEscaper.Replace(text)
}

// urlEscaper covers the narrower set of characters that break hyperlink
// targets. Hyperref reads its argument near-verbatim, so applying the full
// body escaping table here would corrupt the URL.
var urlEscaper = strings.NewReplacer(
	"%", `\%`,
	"#", `\#`,
	"&", `\&`,
	"_", `\_`,
)

// EscapeURL escapes characters that break LaTeX hyperlink URLs.
func EscapeURL(url string) string {
	return urlEscaper.Replace(url)
}

// Precompiled patterns for the inline conversion passes.
var (
	codeSpanPattern = regexp.MustCompile("`([^`]+)`")
	linkPattern     = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	boldStarPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)
	boldLowPattern  = regexp.MustCompile(`__(.+?)__`)
	italicLowShape  = regexp.MustCompile(`_(.+?)_`)
)

// ConvertInline converts the supported Markdown subset (code spans, links,
// bold, italic) in text to LaTeX and escapes everything else.
//
// It is total: unbalanced or malformed markers never match a pass and fall
// through to the escaping step as literal text. Each matched span is
// replaced by a placeholder token so later passes and the escaping step skip
// it, then restored by exact substring substitution at the end.
func ConvertInline(text string) string {
	c := &inlineConverter{source: text}
	return c.convert(text)
}

// inlineConverter holds the placeholder table for one conversion call.
type inlineConverter struct {
	source  string
	counter int
	tokens  []string
	spans   []string
}

// convert runs the ordered passes. Order matters: code spans must win over
// every other construct, links over emphasis, and bold over italic so that
// a ** run is never consumed as two single-* italics.
func (c *inlineConverter) convert(text string) string {
	working := text
	working = replaceSubmatches(codeSpanPattern, working, c.codeSpan)
	working = replaceSubmatches(linkPattern, working, c.link)
	working = replaceSubmatches(boldStarPattern, working, c.bold)
	working = replaceSubmatches(boldLowPattern, working, c.bold)
	working = c.italicStarPass(working)
	working = replaceSubmatches(italicLowShape, working, c.italic)

	escaped := EscapeLaTeX(working)
	// Restore newest first: a span can embed tokens minted before it (an
	// italic wrapping an already-tokenized bold), never after.
	for i := len(c.tokens) - 1; i >= 0; i-- {
		escaped = strings.ReplaceAll(escaped, c.tokens[i], c.spans[i])
	}
	return escaped
}

// placeholder records rendered and returns a token standing in for it.
// Tokens are NUL-delimited counters; a counter value whose token happens to
// occur in the input is skipped, so no ordinary input text can collide with
// a live token during this conversion call.
func (c *inlineConverter) placeholder(rendered string) string {
	for {
		tok := "\x00" + strconv.Itoa(c.counter) + "\x00"
		c.counter++
		if strings.Contains(c.source, tok) {
			continue
		}
		c.tokens = append(c.tokens, tok)
		c.spans = append(c.spans, rendered)
		return tok
	}
}

func (c *inlineConverter) codeSpan(groups []string) string {
	return c.placeholder(`\texttt{` + EscapeLaTeX(groups[1]) + `}`)
}

func (c *inlineConverter) link(groups []string) string {
	return c.placeholder(`\href{` + EscapeURL(groups[2]) + `}{` + ConvertInline(groups[1]) + `}`)
}

func (c *inlineConverter) bold(groups []string) string {
	return c.placeholder(`\textbf{` + ConvertInline(groups[1]) + `}`)
}

func (c *inlineConverter) italic(groups []string) string {
	return c.placeholder(`\textit{` + ConvertInline(groups[1]) + `}`)
}

// italicStarPass matches *text* where both delimiters are lone asterisks
// (not adjacent to another asterisk). The boundary rule keeps leftovers of
// an unmatched ** run from being consumed as italics. RE2 has no lookbehind,
// so the pass is a hand scan rather than a pattern.
func (c *inlineConverter) italicStarPass(s string) string {
	loneStar := func(i int) bool {
		if s[i] != '*' {
			return false
		}
		if i > 0 && s[i-1] == '*' {
			return false
		}
		if i+1 < len(s) && s[i+1] == '*' {
			return false
		}
		return true
	}

	var b strings.Builder
	i := 0
	for i < len(s) {
		if !loneStar(i) {
			b.WriteByte(s[i])
			i++
			continue
		}
		// Nearest closing lone asterisk with non-empty content on the
		// same line (the content of an inline span never spans lines).
		end := -1
		for j := i + 2; j < len(s); j++ {
			if s[j] == '\n' {
				break
			}
			if loneStar(j) {
				end = j
				break
			}
		}
		if end < 0 {
			b.WriteByte(s[i])
			i++
			continue
		}
		b.WriteString(c.italic([]string{s[i : end+1], s[i+1 : end]}))
		i = end + 1
	}
	return b.String()
}

// replaceSubmatches applies f to every match of re in s, passing the full
// match and capture groups, and splices the returned replacement in without
// rescanning it.
func replaceSubmatches(re *regexp.Regexp, s string, f func(groups []string) string) string {
	matches := re.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return s
	}
	var b strings.Builder
	last := 0
	for _, idx := range matches {
		b.WriteString(s[last:idx[0]])
		groups := make([]string, 0, len(idx)/2)
		for g := 0; g < len(idx); g += 2 {
			if idx[g] < 0 {
				groups = append(groups, "")
			} else {
				groups = append(groups, s[idx[g]:idx[g+1]])
			}
		}
		b.WriteString(f(groups))
		last = idx[1]
	}
	b.WriteString(s[last:])
	return b.String()
}
