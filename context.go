package resume2pdf

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alnah/go-resume2pdf/internal/fileutil"
)

// Contact icon macro names, in the fixed order contact lines are emitted.
const (
	iconLocation = "faLocation"
	iconPhone    = "faPhone"
	iconEnvelope = "faEnvelope"
	iconGithub   = "faGithub"
	iconGlobe    = "faGlobe"
	iconLinkedin = "faLinkedin"
)

// Default skill category titles, used when the résumé's titles mapping does
// not override them.
var defaultSkillTitles = map[string]string{
	"expertise":     "Expertise",
	"programming":   "Programming",
	"keyskills":     "Key Skills",
	"certification": "Certifications",
}

// BuildContext assembles the full LaTeX rendering context from résumé data.
// staticDir is probed for a fonts/fontawesome directory to decide how the
// contact icon macros are defined; pass "" to skip the probe. Everything in
// the returned context is LaTeX-safe and ordered exactly as the input was.
func BuildContext(data ResumeData, staticDir string) RenderContext {
	return RenderContext{
		FullName:         ConvertInline(data.FullName),
		Headline:         ConvertInline(data.JobTitle),
		ContactLines:     buildContactLines(data),
		SummaryBlocks:    ParseBlocks(data.Description),
		SkillSections:    buildSkillSections(data),
		Sections:         buildSections(data.Body),
		FontSupportBlock: fontSupportBlock(fontAwesomeDir(staticDir)),
	}
}

// FormatDateRange renders an entry's date range:
// equal start and end collapse to one value, both present join with an
// en dash, a single value stands alone, neither yields "".
func FormatDateRange(start, end string) string {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	switch {
	case start != "" && end != "":
		if start == end {
			return ConvertInline(start)
		}
		return ConvertInline(start + " -- " + end)
	case end != "":
		return ConvertInline(end)
	case start != "":
		return ConvertInline(start)
	}
	return ""
}

// linkify converts text and, when link is set, wraps the result in a
// hyperlink. Empty text yields "".
func linkify(text, link string) string {
	if text == "" {
		return ""
	}
	rendered := ConvertInline(text)
	if link != "" {
		return `\href{` + EscapeURL(link) + `}{` + rendered + `}`
	}
	return rendered
}

func iconPrefix(icon string) string {
	return `\` + icon + `\enspace `
}

// contactLink renders an icon-prefixed hyperlink whose visible label is the
// raw value, escaped but not markdown-converted.
func contactLink(icon, url, label string) string {
	return iconPrefix(icon) + `\href{` + EscapeURL(url) + `}{\nolinkurl{` + EscapeLaTeX(label) + `}}`
}

// buildContactLines emits one line per present contact field, in fixed
// order: location, phone, email, github, web, linkedin. Absent fields
// contribute nothing.
func buildContactLines(data ResumeData) []string {
	var lines []string

	var parts []string
	for _, part := range data.Address {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if joined := strings.Join(parts, ", "); joined != "" {
		lines = append(lines, iconPrefix(iconLocation)+ConvertInline(joined))
	}

	// Phone numbers carry no markdown; escape only.
	if data.Phone != "" {
		lines = append(lines, iconPrefix(iconPhone)+EscapeLaTeX(data.Phone))
	}

	if data.Email != "" {
		lines = append(lines, contactLink(iconEnvelope, "mailto:"+data.Email, data.Email))
	}

	githubAdded := false
	if data.GitHub != "" {
		url := data.GitHub
		if !strings.HasPrefix(url, "http") {
			url = "https://github.com/" + strings.TrimLeft(url, "/")
		}
		lines = append(lines, contactLink(iconGithub, url, data.GitHub))
		githubAdded = true
	}

	if data.Web != "" {
		icon := iconGlobe
		if strings.Contains(strings.ToLower(data.Web), "github.com") {
			icon = iconGithub
		}
		// A web line pointing back at github is redundant with the line
		// already emitted above.
		if !(icon == iconGithub && githubAdded) {
			lines = append(lines, contactLink(icon, data.Web, data.Web))
		}
	}

	if data.LinkedIn != "" {
		url := data.LinkedIn
		if !strings.HasPrefix(url, "http") {
			url = "https://www.linkedin.com/" + strings.TrimLeft(url, "/")
		}
		lines = append(lines, contactLink(iconLinkedin, url, data.LinkedIn))
	}

	return lines
}

// buildSkillSections walks the four skill categories in fixed order,
// normalizes each through FormatSkillGroups, converts every item and title,
// and drops groups left without items.
func buildSkillSections(data ResumeData) []SkillSection {
	var sections []SkillSection

	appendGroups := func(raw any, category string) {
		defaultTitle := defaultSkillTitles[category]
		if override, ok := data.Titles[category]; ok && override != "" {
			defaultTitle = override
		}
		for _, group := range FormatSkillGroups(raw) {
			var items []string
			for _, item := range group.Items {
				if item == nil {
					continue
				}
				text := fmt.Sprint(item)
				if text == "" {
					continue
				}
				items = append(items, ConvertInline(text))
			}
			if len(items) == 0 {
				continue
			}
			title := group.Title
			if title == "" {
				title = defaultTitle
			}
			sections = append(sections, SkillSection{
				Title: ConvertInline(title),
				Items: items,
			})
		}
	}

	appendGroups(data.Expertise, "expertise")
	appendGroups(data.Programming, "programming")
	appendGroups(data.KeySkills, "keyskills")
	appendGroups(data.Certification, "certification")

	return sections
}

// buildSections renders body groups in source order. Entries without a
// title do not survive; a section with no surviving entries is dropped.
func buildSections(body []BodySection) []Section {
	var sections []Section

	for _, group := range body {
		var entries []Entry
		for _, raw := range group.Entries {
			title := linkify(raw.Title, raw.TitleLink)
			if title == "" {
				continue
			}
			entries = append(entries, Entry{
				Title:     title,
				Subtitle:  linkify(raw.Company, raw.CompanyLink),
				DateRange: FormatDateRange(raw.Start, raw.End),
				Blocks:    ParseBlocks(raw.Description),
			})
		}
		if len(entries) == 0 {
			continue
		}
		sections = append(sections, Section{
			Title:   ConvertInline(group.Name),
			Entries: entries,
		})
	}

	return sections
}

// fontAwesomeDir resolves the Font Awesome OTF directory under staticDir,
// returning "" when staticDir is empty or the directory does not exist.
// The result uses forward slashes and a trailing slash, as fontspec's Path
// option expects.
func fontAwesomeDir(staticDir string) string {
	if staticDir == "" {
		return ""
	}
	candidate := filepath.Join(staticDir, "fonts", "fontawesome")
	if !fileutil.DirExists(candidate) {
		return ""
	}
	abs, err := filepath.Abs(candidate)
	if err != nil {
		return ""
	}
	return filepath.ToSlash(abs) + "/"
}
