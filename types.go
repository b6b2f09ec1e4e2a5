package resume2pdf

// ResumeData is the decoded résumé input. LoadResume produces it from YAML;
// callers may also construct it directly.
//
// The four skill category fields accept the flexible shapes résumé files use
// in the wild (a list of strings, a mapping of group title to items, a list
// of {title, items} groups, or a single scalar); FormatSkillGroups
// normalizes them.
type ResumeData struct {
	FullName    string
	JobTitle    string
	Address     []string
	Phone       string
	Email       string
	GitHub      string
	Web         string
	LinkedIn    string
	Description string

	Expertise     any
	Programming   any
	KeySkills     any
	Certification any
	Titles        map[string]string

	Body []BodySection
}

// BodySection is one named group of dated entries, in source order.
type BodySection struct {
	Name    string
	Entries []EntryData
}

// EntryData is one raw entry inside a body section.
type EntryData struct {
	Title       string
	TitleLink   string
	Company     string
	CompanyLink string
	Start       string
	End         string
	Description string
}

// Entry is a rendered dated item inside a section. All strings are
// LaTeX-safe; Subtitle and DateRange are empty when absent.
type Entry struct {
	Title     string
	Subtitle  string
	DateRange string
	Blocks    []Block
}

// Section is a rendered top-level résumé section (Experience, Education...).
type Section struct {
	Title   string
	Entries []Entry
}

// SkillSection is one rendered skill group.
type SkillSection struct {
	Title string
	Items []string
}

// RenderContext is the complete, immutable input to the LaTeX template.
// It is rebuilt from scratch on every render.
type RenderContext struct {
	FullName         string
	Headline         string
	ContactLines     []string
	SummaryBlocks    []Block
	SkillSections    []SkillSection
	Sections         []Section
	FontSupportBlock string
}
