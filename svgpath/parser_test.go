// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package svgpath

import (
	"errors"
	"slices"
	"testing"

	"github.com/chewxy/math32"

	"github.com/gogpu/splatter"
	"github.com/gogpu/splatter/path"
)

func pt(x, y float32) splatter.Point { return splatter.Pt(x, y) }

func TestParse(t *testing.T) {
	basic := []path.Segment{
		path.MoveTo(pt(10, 0)),
		path.LineTo(pt(20, 0)),
		path.LineTo(pt(30, 0)),
		path.LineTo(pt(30, 10)),
		path.CubicTo(pt(40, 10), pt(50, 10), pt(50, 0)),
		path.QuadTo(pt(55, 10), pt(60, 0)),
		path.ClosePath(),
	}
	tests := []struct {
		name string
		d    string
		want []path.Segment
	}{
		{"absolute", "M10 0L20 0H30V10C40 10 50 10 50 0Q55 10 60 0Z", basic},
		{"relative", "m10 0l10 0h10v10c10 0 20 0 20 -10q5 10 10 0z", basic},
		{"smooth cubic", "M0 0C0 10 10 10 10 0S20 -10 20 0", []path.Segment{
			path.MoveTo(pt(0, 0)),
			path.CubicTo(pt(0, 10), pt(10, 10), pt(10, 0)),
			path.CubicTo(pt(10, -10), pt(20, -10), pt(20, 0)),
		}},
		{"smooth quadratic", "M0 0Q5 10 10 0T20 0", []path.Segment{
			path.MoveTo(pt(0, 0)),
			path.QuadTo(pt(5, 10), pt(10, 0)),
			path.QuadTo(pt(15, -10), pt(20, 0)),
		}},
		{"smooth cubic without previous cubic", "M5 5S10 10 20 0", []path.Segment{
			path.MoveTo(pt(5, 5)),
			path.CubicTo(pt(5, 5), pt(10, 10), pt(20, 0)),
		}},
		{"implicit line-to after move", "M0 0 10 0 10 10", []path.Segment{
			path.MoveTo(pt(0, 0)),
			path.LineTo(pt(10, 0)),
			path.LineTo(pt(10, 10)),
		}},
		{"implicit relative line-to", "m1 1 2 2", []path.Segment{
			path.MoveTo(pt(1, 1)),
			path.LineTo(pt(3, 3)),
		}},
		{"compact numbers", "M1e1,2L-3.5.5", []path.Segment{
			path.MoveTo(pt(10, 2)),
			path.LineTo(pt(-3.5, 0.5)),
		}},
		{"relative after close starts at sub-path start", "M5 5L10 5Zl1 1", []path.Segment{
			path.MoveTo(pt(5, 5)),
			path.LineTo(pt(10, 5)),
			path.ClosePath(),
			path.LineTo(pt(6, 6)),
		}},
		{"degenerate arc radius is a line", "M0 0A0 5 0 0 1 10 0", []path.Segment{
			path.MoveTo(pt(0, 0)),
			path.LineTo(pt(10, 0)),
		}},
		{"empty", "  ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.d)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.d, err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Parse(%q) =\n  %v\nwant\n  %v", tt.d, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"5",
		"MM",
		"M0 0 A10 10 0 2 0 20 0",
		"M0 0z1",
		"M0 0 L1",
	}
	for _, d := range tests {
		t.Run(d, func(t *testing.T) {
			if _, err := Parse(d); !errors.Is(err, ErrSyntax) {
				t.Errorf("Parse(%q) error = %v, want ErrSyntax", d, err)
			}
		})
	}
}

func TestParseArc(t *testing.T) {
	segs, err := Parse("M0 0A10 10 0 0 1 20 0")
	if err != nil {
		t.Fatal(err)
	}
	if len(segs) < 3 {
		t.Fatalf("got %d segments, want a move and at least two cubics", len(segs))
	}
	center := pt(10, 0)
	var minY float32
	for _, s := range segs[1:] {
		if s.Op != path.OpCubicTo {
			t.Fatalf("segment %v is not a cubic", s)
		}
		end := s.EndPoint()
		if d := end.Distance(center); math32.Abs(d-10) > 1e-3 {
			t.Errorf("arc point %v is %v from center, want 10", end, d)
		}
		minY = min(minY, end.Y)
	}
	if got := segs[len(segs)-1].EndPoint(); got != pt(20, 0) {
		t.Errorf("arc ends at %v, want (20,0)", got)
	}
	// Positive sweep runs through increasing angles: from 180 to 360 degrees.
	if minY > -9.99 {
		t.Errorf("arc never reached y = -10 (min y %v)", minY)
	}
}

func TestParseLargeArcFlags(t *testing.T) {
	small, err := Parse("M0 0A10 10 0 0 0 10 10")
	if err != nil {
		t.Fatal(err)
	}
	large, err := Parse("M0 0A10 10 0 1 0 10 10")
	if err != nil {
		t.Fatal(err)
	}
	if len(large) <= len(small) {
		t.Errorf("large arc produced %d segments, small %d; want more for the large arc", len(large), len(small))
	}
}

func TestParserFeedsConverter(t *testing.T) {
	events := slices.Collect(path.NewConverter(NewParser("M0 0L10 0L10 10M20 20L30 20Z")).All())
	if err := path.Validate(slices.Values(events)); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	var ends, closes int
	for _, e := range events {
		if e.Kind == path.KindEnd {
			ends++
			if e.Close {
				closes++
			}
		}
	}
	if ends != 2 || closes != 1 {
		t.Errorf("ends=%d closes=%d, want 2 1", ends, closes)
	}
}
