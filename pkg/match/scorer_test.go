package match

import (
	"math"
	"strings"
	"testing"

	"github.com/OFFIS-RIT/orbit/pkg/common"
)

func TestScoreIdentifierVeto(t *testing.T) {
	tests := []struct {
		name string
		a    common.Entity
		b    common.Entity
	}{
		{
			name: "different qids with identical labels",
			a:    common.Entity{Name: "Mercury", ID: "Q308"},
			b:    common.Entity{Name: "Mercury", ID: "Q925"},
		},
		{
			name: "different qids with identical descriptions",
			a: common.Entity{
				Name:        "Mercury",
				URI:         "http://www.wikidata.org/entity/Q308",
				Description: "the smallest planet in the solar system",
			},
			b: common.Entity{
				Name:        "Mercury",
				URI:         "http://www.wikidata.org/entity/Q925",
				Description: "the smallest planet in the solar system",
			},
		},
		{
			name: "different dbpedia resources",
			a:    common.Entity{Name: "Mercury", URI: "https://dbpedia.org/resource/Mercury_(planet)"},
			b:    common.Entity{Name: "Mercury", URI: "https://dbpedia.org/resource/Mercury_(element)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Score(tt.a, tt.b)
			if result.Confidence != 0 {
				t.Fatalf("confidence = %v, want exactly 0", result.Confidence)
			}
			if result.ShouldMerge || result.NeedsReview {
				t.Fatalf("vetoed match classified as merge=%v review=%v", result.ShouldMerge, result.NeedsReview)
			}
		})
	}
}

func TestScoreFactors(t *testing.T) {
	longDesc := strings.Repeat("a classic platform game ", 3)

	tests := []struct {
		name        string
		a           common.Entity
		b           common.Entity
		want        float64
		shouldMerge bool
		needsReview bool
	}{
		{
			name:        "matching qid",
			a:           common.Entity{Name: "Alpha", ID: "Q42"},
			b:           common.Entity{Name: "Omega", ID: "Q42"},
			want:        0.95,
			shouldMerge: true,
		},
		{
			name:        "matching dbpedia uri",
			a:           common.Entity{Name: "Alpha", URI: "https://dbpedia.org/resource/Thing"},
			b:           common.Entity{Name: "Omega", ExternalLinks: []string{"https://dbpedia.org/resource/Thing"}},
			want:        0.90,
			shouldMerge: true,
		},
		{
			name: "bidirectional same-as",
			a: common.Entity{
				Name:        "Alpha",
				URI:         "http://example.org/a",
				SameAsLinks: []string{"http://example.org/b"},
			},
			b: common.Entity{
				Name:        "Omega",
				URI:         "http://example.org/b",
				SameAsLinks: []string{"http://example.org/a"},
			},
			want:        0.85,
			shouldMerge: true,
		},
		{
			name: "unidirectional same-as",
			a: common.Entity{
				Name:        "Alpha",
				URI:         "http://example.org/a",
				SameAsLinks: []string{"http://example.org/b"},
			},
			b: common.Entity{
				Name: "Omega",
				URI:  "http://example.org/b",
			},
			want:        0.65,
			needsReview: true,
		},
		{
			name:        "exact label after normalization",
			a:           common.Entity{Name: "Mario!"},
			b:           common.Entity{Name: "mario"},
			want:        0.80,
			needsReview: true,
		},
		{
			name: "description similarity alone",
			a:    common.Entity{Name: "Alpha Centauri", Description: longDesc},
			b:    common.Entity{Name: "Zebra", Description: longDesc},
			want: 0.60,
		},
		{
			name: "stacked evidence clamps to one",
			a: common.Entity{
				Name:        "Mario",
				ID:          "Q2432",
				URI:         "http://example.org/a",
				SameAsLinks: []string{"http://example.org/b"},
			},
			b: common.Entity{
				Name:        "Mario",
				ID:          "Q2432",
				URI:         "http://example.org/b",
				SameAsLinks: []string{"http://example.org/a"},
			},
			want:        1.0,
			shouldMerge: true,
		},
		{
			name: "no evidence",
			a:    common.Entity{Name: "Alpha Centauri"},
			b:    common.Entity{Name: "Zebra"},
			want: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Score(tt.a, tt.b)
			if math.Abs(result.Confidence-tt.want) > 1e-9 {
				t.Fatalf("confidence = %v, want %v (factors: %+v)", result.Confidence, tt.want, result.Factors)
			}
			if result.ShouldMerge != tt.shouldMerge {
				t.Fatalf("shouldMerge = %v, want %v", result.ShouldMerge, tt.shouldMerge)
			}
			if result.NeedsReview != tt.needsReview {
				t.Fatalf("needsReview = %v, want %v", result.NeedsReview, tt.needsReview)
			}
			if tt.want > 0 && len(result.Factors) == 0 {
				t.Fatal("positive confidence without recorded factors")
			}
		})
	}
}

func TestScoreSymmetry(t *testing.T) {
	longDesc := strings.Repeat("an Italian plumber who jumps ", 2)

	entities := []common.Entity{
		{Name: "Super Mario Bros", ID: "Q854479", Source: common.SourceDBpedia},
		{Name: "Super Mario Brothers", ID: "Q854479", Source: common.SourceWikidata},
		{Name: "Mario", Description: longDesc},
		{Name: "Mario!", URI: "http://example.org/mario", SameAsLinks: []string{"http://example.org/other"}},
		{Name: "Nintendo", URI: "https://dbpedia.org/resource/Nintendo"},
		{Name: "", Label: "Platform game"},
	}

	for i := range entities {
		for j := range entities {
			forward := Score(entities[i], entities[j]).Confidence
			backward := Score(entities[j], entities[i]).Confidence
			if math.Abs(forward-backward) > 1e-9 {
				t.Fatalf("score not symmetric for %d/%d: %v vs %v", i, j, forward, backward)
			}
		}
	}
}

func TestScoreLabelSimilarityBelowCutoff(t *testing.T) {
	// 0.8 similarity is below the 0.85 cutoff, so the label contributes
	// nothing on its own.
	a := common.Entity{Name: "super mario bros"}
	b := common.Entity{Name: "super mario brothers"}
	result := Score(a, b)
	if result.Confidence != 0 {
		t.Fatalf("confidence = %v, want 0 (factors: %+v)", result.Confidence, result.Factors)
	}
}
