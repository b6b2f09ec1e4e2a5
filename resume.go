package resume2pdf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/alnah/go-resume2pdf/internal/config"
	"github.com/alnah/go-resume2pdf/internal/yamlutil"
)

// rawResume mirrors the YAML input shape. Loose fields stay untyped here
// and are normalized into ResumeData.
type rawResume struct {
	FullName      string            `yaml:"full_name"`
	JobTitle      string            `yaml:"job_title"`
	Address       any               `yaml:"address"`
	Phone         flexString        `yaml:"phone"`
	Email         string            `yaml:"email"`
	Github        string            `yaml:"github"`
	Web           string            `yaml:"web"`
	Linkedin      string            `yaml:"linkedin"`
	Description   string            `yaml:"description"`
	Expertise     any               `yaml:"expertise"`
	Programming   any               `yaml:"programming"`
	Keyskills     any               `yaml:"keyskills"`
	Certification any               `yaml:"certification"`
	Titles        map[string]string `yaml:"titles"`
	Body          yaml.MapSlice     `yaml:"body"`
	Config        *config.Page      `yaml:"config"`
}

// flexString accepts any YAML scalar where résumé files are sloppy about
// quoting (phone numbers, bare years).
type flexString string

func (s *flexString) UnmarshalYAML(unmarshal func(any) error) error {
	var v any
	if err := unmarshal(&v); err != nil {
		return err
	}
	*s = flexString(scalarString(v))
	return nil
}

// LoadResume reads and decodes a résumé YAML file, validating its optional
// config block.
func LoadResume(path string) (ResumeData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ResumeData{}, fmt.Errorf("%w: %v", ErrReadResume, err)
	}
	return ParseResume(raw, filepath.Base(path))
}

// ParseResume decodes résumé YAML. filename is used in validation error
// messages and may be empty.
func ParseResume(data []byte, filename string) (ResumeData, error) {
	var r rawResume
	if err := yamlutil.Unmarshal(data, &r); err != nil {
		return ResumeData{}, fmt.Errorf("parsing resume: %w", err)
	}

	if r.Config != nil {
		if err := r.Config.Validate(filename); err != nil {
			return ResumeData{}, err
		}
	}

	return ResumeData{
		FullName:      r.FullName,
		JobTitle:      r.JobTitle,
		Address:       addressParts(r.Address),
		Phone:         string(r.Phone),
		Email:         r.Email,
		GitHub:        r.Github,
		Web:           r.Web,
		LinkedIn:      r.Linkedin,
		Description:   r.Description,
		Expertise:     r.Expertise,
		Programming:   r.Programming,
		KeySkills:     r.Keyskills,
		Certification: r.Certification,
		Titles:        r.Titles,
		Body:          bodySections(r.Body),
	}, nil
}

// addressParts normalizes the address field: a scalar becomes a single
// part, a list keeps its non-empty parts in order.
func addressParts(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case []any:
		var parts []string
		for _, part := range v {
			if text := scalarString(part); text != "" {
				parts = append(parts, text)
			}
		}
		return parts
	default:
		if text := scalarString(v); text != "" {
			return []string{text}
		}
		return nil
	}
}

// bodySections converts the ordered body mapping into typed sections,
// preserving source order. Groups whose value is not a list and entries
// that are not mappings are skipped.
func bodySections(body yaml.MapSlice) []BodySection {
	var sections []BodySection
	for _, item := range body {
		entries, ok := item.Value.([]any)
		if !ok {
			continue
		}
		section := BodySection{Name: scalarString(item.Key)}
		for _, raw := range entries {
			fields, ok := mappingFields(raw)
			if !ok {
				continue
			}
			section.Entries = append(section.Entries, EntryData{
				Title:       fields["title"],
				TitleLink:   fields["title_link"],
				Company:     fields["company"],
				CompanyLink: fields["company_link"],
				Start:       fields["start"],
				End:         fields["end"],
				Description: fields["description"],
			})
		}
		sections = append(sections, section)
	}
	return sections
}

// mappingFields flattens a decoded mapping into string fields.
func mappingFields(value any) (map[string]string, bool) {
	fields := map[string]string{}
	switch m := value.(type) {
	case yaml.MapSlice:
		for _, item := range m {
			fields[scalarString(item.Key)] = scalarString(item.Value)
		}
	case map[string]any:
		for key, val := range m {
			fields[key] = scalarString(val)
		}
	default:
		return nil, false
	}
	return fields, true
}

// scalarString renders a decoded YAML scalar as a string; nil becomes "".
func scalarString(value any) string {
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}
