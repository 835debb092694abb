package match

import (
	"math"
	"testing"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "lowercases",
			in:   "Super Mario Bros",
			want: "super mario bros",
		},
		{
			name: "strips punctuation",
			in:   "Hello, World!",
			want: "hello world",
		},
		{
			name: "collapses whitespace",
			in:   "  a \t b\n c  ",
			want: "a b c",
		},
		{
			name: "punctuation only",
			in:   "?!...",
			want: "",
		},
		{
			name: "hyphen removed without split",
			in:   "Half-Life",
			want: "halflife",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeText(tt.in); got != tt.want {
				t.Fatalf("NormalizeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSimilarityIdentity(t *testing.T) {
	inputs := []string{"x", "Mario", "Super Mario Bros", "a longer string with several words"}
	for _, in := range inputs {
		if got := Similarity(in, in); got != 1.0 {
			t.Fatalf("Similarity(%q, %q) = %v, want 1.0", in, in, got)
		}
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{
			name: "both empty",
			a:    "",
			b:    "",
			want: 1.0,
		},
		{
			name: "both empty after normalization",
			a:    "?!",
			b:    "...",
			want: 1.0,
		},
		{
			name: "one empty",
			a:    "mario",
			b:    "",
			want: 0.0,
		},
		{
			name: "equal after normalization",
			a:    "Super Mario!",
			b:    "super mario",
			want: 1.0,
		},
		{
			name: "kitten sitting",
			a:    "kitten",
			b:    "sitting",
			want: 1.0 - 3.0/7.0,
		},
		{
			name: "bros brothers",
			a:    "super mario bros",
			b:    "super mario brothers",
			want: 0.8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Similarity(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Fatalf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if sym := Similarity(tt.b, tt.a); math.Abs(sym-got) > 1e-9 {
				t.Fatalf("Similarity is not symmetric: %v vs %v", got, sym)
			}
		})
	}
}
