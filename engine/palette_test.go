package engine

import (
	"reflect"
	"testing"
)

func TestShadesSizeLaw(t *testing.T) {
	base := ParseHex("#2b6cb0")
	for n := 1; n <= 25; n++ {
		shades := Shades(base, n)
		if len(shades) != n {
			t.Errorf("Shades(base, %d) returned %d shades", n, len(shades))
		}
	}
}

func TestShadesSingleReturnsBase(t *testing.T) {
	base := ParseHex("#2b6cb0")
	shades := Shades(base, 1)
	if len(shades) != 1 || shades[0] != "#2b6cb0" {
		t.Errorf("expected [#2b6cb0], got %v", shades)
	}
}

func TestShadesNonPositiveCount(t *testing.T) {
	base := ParseHex("#2b6cb0")
	for _, n := range []int{0, -1, -10} {
		if shades := Shades(base, n); len(shades) != 0 {
			t.Errorf("Shades(base, %d) should be empty, got %v", n, shades)
		}
	}
}

func TestShadesAnchors(t *testing.T) {
	// Hand-computed anchors for the default base color.
	shades := Shades(ParseHex("#2b6cb0"), 2)
	want := []string{"#b4cbe3", "#1b4672"}
	if !reflect.DeepEqual(shades, want) {
		t.Errorf("expected anchors %v, got %v", want, shades)
	}
}

func TestShadesMonotonicLuminance(t *testing.T) {
	bases := []string{"#2b6cb0", "#ff0000", "#00f2ff", "#123456", "#ffffff", "#000000"}
	for _, baseHex := range bases {
		base := ParseHex(baseHex)
		for _, n := range []int{2, 3, 5, 10} {
			shades := Shades(base, n)
			prev := ParseHex(shades[0]).Luminance()
			for i := 1; i < len(shades); i++ {
				lum := ParseHex(shades[i]).Luminance()
				if lum >= prev {
					t.Errorf("base %s n=%d: shade %d luminance %.2f not below %.2f",
						baseHex, n, i, lum, prev)
				}
				prev = lum
			}
		}
	}
}

func TestShadesDeterministic(t *testing.T) {
	base := ParseHex("#00f2ff")
	first := Shades(base, 7)
	for i := 0; i < 5; i++ {
		if got := Shades(base, 7); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differed: %v vs %v", i, got, first)
		}
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGB
	}{
		{"long form", "#2b6cb0", RGB{43, 108, 176}},
		{"short form", "#fff", RGB{255, 255, 255}},
		{"no hash", "2b6cb0", RGB{43, 108, 176}},
		{"surrounding space", "  #2b6cb0 ", RGB{43, 108, 176}},
		{"malformed falls back to default", "not-a-color", RGB{43, 108, 176}},
		{"wrong length falls back to default", "#12345", RGB{43, 108, 176}},
		{"empty falls back to default", "", RGB{43, 108, 176}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseHex(tt.input); got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
