// Package config validates the optional page configuration block a résumé
// file may carry.
package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Sentinel errors for config validation.
var (
	ErrInvalidDimension = errors.New("page dimensions must be positive")
	ErrInvalidColor     = errors.New("invalid color format, expected hex like #0395DE or #FFF")
	ErrSidebarTooWide   = errors.New("sidebar width must be less than page width")
)

var validate = validator.New()

// Page holds layout and color settings from a résumé's config block.
// Dimensions are millimeters; zero means unset.
type Page struct {
	PageWidth    float64 `yaml:"page_width" validate:"omitempty,gt=0"`
	PageHeight   float64 `yaml:"page_height" validate:"omitempty,gt=0"`
	SidebarWidth float64 `yaml:"sidebar_width" validate:"omitempty,gt=0"`

	ThemeColor         string `yaml:"theme_color" validate:"omitempty,hexcolor"`
	SidebarColor       string `yaml:"sidebar_color" validate:"omitempty,hexcolor"`
	BarBackgroundColor string `yaml:"bar_background_color" validate:"omitempty,hexcolor"`
	Date2Color         string `yaml:"date2_color" validate:"omitempty,hexcolor"`
	FrameColor         string `yaml:"frame_color" validate:"omitempty,hexcolor"`
}

// Validate checks dimensions and colors. The filename, when given, prefixes
// error messages so multi-file runs stay diagnosable.
func (p *Page) Validate(filename string) error {
	prefix := ""
	if filename != "" {
		prefix = filename + ": "
	}

	if err := validate.Struct(p); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			if fe.Tag() == "hexcolor" {
				return fmt.Errorf("%s%w: field %s has %q", prefix, ErrInvalidColor, fe.Field(), fe.Value())
			}
			return fmt.Errorf("%s%w: field %s has %v", prefix, ErrInvalidDimension, fe.Field(), fe.Value())
		}
		return fmt.Errorf("%svalidating config: %w", prefix, err)
	}

	if p.SidebarWidth > 0 && p.PageWidth > 0 && p.SidebarWidth >= p.PageWidth {
		return fmt.Errorf("%s%w: sidebar %.1fmm, page %.1fmm",
			prefix, ErrSidebarTooWide, p.SidebarWidth, p.PageWidth)
	}
	return nil
}
