package resume2pdf

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/alnah/go-resume2pdf/internal/config"
)

const sampleYAML = `full_name: Jane Doe
job_title: Engineer
address:
  - Paris
  - France
phone: 555123456
email: jane@e.com
github: octocat
linkedin: in/jane
description: |
  Builds **things**.
programming:
  - Go
  - Python
titles:
  programming: Languages
body:
  Experience:
    - title: Engineer
      company: Acme
      company_link: https://acme.io
      start: 2020
      end: 2022
      description: |
        - shipped
  Education:
    - title: BSc
      start: 2016
`

func TestParseResume(t *testing.T) {
	t.Parallel()

	data, err := ParseResume([]byte(sampleYAML), "sample.yaml")
	if err != nil {
		t.Fatalf("ParseResume: %v", err)
	}

	if data.FullName != "Jane Doe" || data.JobTitle != "Engineer" {
		t.Errorf("identity fields = %q / %q", data.FullName, data.JobTitle)
	}
	if !reflect.DeepEqual(data.Address, []string{"Paris", "France"}) {
		t.Errorf("address = %#v", data.Address)
	}
	// Unquoted numerics decode as strings.
	if data.Phone != "555123456" {
		t.Errorf("phone = %q", data.Phone)
	}
	if data.Titles["programming"] != "Languages" {
		t.Errorf("titles = %#v", data.Titles)
	}

	if len(data.Body) != 2 {
		t.Fatalf("body = %#v", data.Body)
	}
	if data.Body[0].Name != "Experience" || data.Body[1].Name != "Education" {
		t.Errorf("section order = %q, %q", data.Body[0].Name, data.Body[1].Name)
	}
	entry := data.Body[0].Entries[0]
	if entry.Title != "Engineer" || entry.Company != "Acme" || entry.CompanyLink != "https://acme.io" {
		t.Errorf("entry = %#v", entry)
	}
	if entry.Start != "2020" || entry.End != "2022" {
		t.Errorf("dates = %q / %q", entry.Start, entry.End)
	}
	if !strings.Contains(entry.Description, "- shipped") {
		t.Errorf("description = %q", entry.Description)
	}
}

func TestParseResume_FeedsContextBuilder(t *testing.T) {
	t.Parallel()

	data, err := ParseResume([]byte(sampleYAML), "")
	if err != nil {
		t.Fatal(err)
	}
	ctx := BuildContext(data, "")

	if len(ctx.Sections) != 2 {
		t.Fatalf("sections = %#v", ctx.Sections)
	}
	if ctx.Sections[0].Entries[0].DateRange != "2020 -- 2022" {
		t.Errorf("date range = %q", ctx.Sections[0].Entries[0].DateRange)
	}
	if len(ctx.SkillSections) != 1 || ctx.SkillSections[0].Title != "Languages" {
		t.Errorf("skill sections = %#v", ctx.SkillSections)
	}
	if len(ctx.SummaryBlocks) != 1 || !strings.Contains(ctx.SummaryBlocks[0].Text, `\textbf{things}`) {
		t.Errorf("summary = %#v", ctx.SummaryBlocks)
	}
}

func TestParseResume_ScalarAddress(t *testing.T) {
	t.Parallel()

	data, err := ParseResume([]byte("full_name: Jane\naddress: Lyon, France\n"), "")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(data.Address, []string{"Lyon, France"}) {
		t.Errorf("address = %#v", data.Address)
	}
}

func TestParseResume_ConfigValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name: "valid config accepted",
			yaml: "full_name: Jane\nconfig:\n  page_width: 210\n  page_height: 297\n  theme_color: \"#0395DE\"\n",
		},
		{
			name:    "bad color rejected",
			yaml:    "full_name: Jane\nconfig:\n  theme_color: blue\n",
			wantErr: config.ErrInvalidColor,
		},
		{
			name:    "sidebar wider than page rejected",
			yaml:    "full_name: Jane\nconfig:\n  page_width: 100\n  sidebar_width: 150\n",
			wantErr: config.ErrSidebarTooWide,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseResume([]byte(tt.yaml), "t.yaml")
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadResume(t *testing.T) {
	t.Parallel()

	t.Run("reads a file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "resume.yaml")
		if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
			t.Fatal(err)
		}
		data, err := LoadResume(path)
		if err != nil {
			t.Fatalf("LoadResume: %v", err)
		}
		if data.FullName != "Jane Doe" {
			t.Errorf("full name = %q", data.FullName)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadResume(filepath.Join(t.TempDir(), "ghost.yaml"))
		if !errors.Is(err, ErrReadResume) {
			t.Errorf("err = %v, want ErrReadResume", err)
		}
	})
}
