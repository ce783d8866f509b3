// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/splatter"
)

// ErrInvalidTheme is returned when a theme file cannot be decoded.
var ErrInvalidTheme = errors.New("draw: invalid theme")

// KindColors overrides the theme colors for one primitive kind.
type KindColors struct {
	Fill      splatter.Color
	Stroke    splatter.Color
	HasFill   bool
	HasStroke bool
}

// Theme supplies the colors used by primitives that were not given one.
type Theme struct {
	Background splatter.Color
	Fill       splatter.Color
	Stroke     splatter.Color
	Primitives map[Kind]KindColors
}

// DefaultTheme returns a theme with a white background and black fills and
// strokes.
func DefaultTheme() Theme {
	return Theme{
		Background: splatter.White,
		Fill:       splatter.Black,
		Stroke:     splatter.Black,
	}
}

// FillColor returns the fill color for primitives of kind k.
func (t *Theme) FillColor(k Kind) splatter.Color {
	if kc, ok := t.Primitives[k]; ok && kc.HasFill {
		return kc.Fill
	}
	return t.Fill
}

// StrokeColor returns the stroke color for primitives of kind k.
func (t *Theme) StrokeColor(k Kind) splatter.Color {
	if kc, ok := t.Primitives[k]; ok && kc.HasStroke {
		return kc.Stroke
	}
	return t.Stroke
}

// Color returns the fill or stroke color for k depending on opts.
func (t *Theme) Color(k Kind, opts Options) splatter.Color {
	if opts.IsStroke() {
		return t.StrokeColor(k)
	}
	return t.FillColor(k)
}

// themeFile is the YAML form of a theme:
//
//	background: "#202020"
//	fill: white
//	stroke: "#ff8800"
//	primitives:
//	  rect:
//	    fill: steelblue
type themeFile struct {
	Background string                   `yaml:"background"`
	Fill       string                   `yaml:"fill"`
	Stroke     string                   `yaml:"stroke"`
	Primitives map[string]themeKindFile `yaml:"primitives"`
}

type themeKindFile struct {
	Fill   string `yaml:"fill"`
	Stroke string `yaml:"stroke"`
}

// ParseTheme decodes a YAML theme. Colors are CSS-style strings: "#rgb",
// "#rrggbb", "#rrggbbaa" or a named color. Missing entries keep the values
// of DefaultTheme.
func ParseTheme(data []byte) (Theme, error) {
	var f themeFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Theme{}, fmt.Errorf("%w: %w", ErrInvalidTheme, err)
	}

	t := DefaultTheme()
	if err := setColor(&t.Background, nil, f.Background, "background"); err != nil {
		return Theme{}, err
	}
	if err := setColor(&t.Fill, nil, f.Fill, "fill"); err != nil {
		return Theme{}, err
	}
	if err := setColor(&t.Stroke, nil, f.Stroke, "stroke"); err != nil {
		return Theme{}, err
	}

	for name, kf := range f.Primitives {
		k, err := ParseKind(name)
		if err != nil {
			return Theme{}, fmt.Errorf("%w: %w", ErrInvalidTheme, err)
		}
		var kc KindColors
		if err := setColor(&kc.Fill, &kc.HasFill, kf.Fill, name+".fill"); err != nil {
			return Theme{}, err
		}
		if err := setColor(&kc.Stroke, &kc.HasStroke, kf.Stroke, name+".stroke"); err != nil {
			return Theme{}, err
		}
		if t.Primitives == nil {
			t.Primitives = make(map[Kind]KindColors)
		}
		t.Primitives[k] = kc
	}
	return t, nil
}

func setColor(dst *splatter.Color, set *bool, s, field string) error {
	if s == "" {
		return nil
	}
	c, err := splatter.ParseColor(s)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidTheme, field, err)
	}
	*dst = c
	if set != nil {
		*set = true
	}
	return nil
}

// LoadTheme reads a YAML theme file.
func LoadTheme(name string) (Theme, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return Theme{}, fmt.Errorf("draw: load theme: %w", err)
	}
	t, err := ParseTheme(data)
	if err != nil {
		return Theme{}, err
	}
	splatter.Logger().Debug("loaded theme", "path", name, "kinds", len(t.Primitives))
	return t, nil
}
