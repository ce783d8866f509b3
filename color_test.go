package splatter

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
)

func approxColor(a, b Color, eps float32) bool {
	return math32.Abs(a.R-b.R) < eps && math32.Abs(a.G-b.G) < eps &&
		math32.Abs(a.B-b.B) < eps && math32.Abs(a.A-b.A) < eps
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#fff", White},
		{"#000000", Black},
		{"ff0000", RGB(1, 0, 0)},
		{"#00ff0000", RGBA(0, 1, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Hex(tt.in)
			if err != nil {
				t.Fatalf("Hex(%q) error: %v", tt.in, err)
			}
			if !approxColor(got, tt.want, 1e-4) {
				t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#zzzzzz", "#1234567"} {
		if _, err := Hex(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("Hex(%q) error = %v, want ErrInvalidColor", in, err)
		}
	}
}

func TestSRGBMidGrayIsLinearized(t *testing.T) {
	c := SRGB(0.5, 0.5, 0.5, 1)
	// sRGB 0.5 is roughly 0.214 linear.
	if c.R < 0.2 || c.R > 0.23 {
		t.Errorf("SRGB(0.5).R = %v, want about 0.214", c.R)
	}
	if got := c.NRGBA(); got.R < 126 || got.R > 129 {
		t.Errorf("NRGBA() round trip R = %d, want about 128", got.R)
	}
}

func TestParseColor(t *testing.T) {
	got, err := ParseColor("Red")
	if err != nil {
		t.Fatalf("ParseColor(Red) error: %v", err)
	}
	if !approxColor(got, RGB(1, 0, 0), 1e-4) {
		t.Errorf("ParseColor(Red) = %v, want red", got)
	}
	if _, err := ParseColor("not-a-color"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("ParseColor(bad) error = %v, want ErrInvalidColor", err)
	}
}

func TestColorChannelsRoundTrip(t *testing.T) {
	c := RGBA(0.1, 0.2, 0.3, 0.4)
	ch := c.Channels()
	if got := ColorFromChannels(ch[:]); got != c {
		t.Errorf("ColorFromChannels(Channels()) = %v, want %v", got, c)
	}
	if got := Black.Lerp(White, 0.25); !approxColor(got, RGB(0.25, 0.25, 0.25), 1e-6) {
		t.Errorf("Lerp() = %v, want 0.25 gray", got)
	}
}
