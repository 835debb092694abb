package match

import (
	"github.com/OFFIS-RIT/orbit/internal/util"
	"github.com/OFFIS-RIT/orbit/pkg/common"
)

// Confidence thresholds for classifying a match result. At or above
// AutoMergeThreshold two entities are merged without review; between
// ReviewThreshold and AutoMergeThreshold the pair is flagged for review.
const (
	AutoMergeThreshold = 0.85
	ReviewThreshold    = 0.65
)

// Evidence weights, applied in fixed order. Identifier equality is
// authoritative and cheap; textual evidence is probabilistic and additive,
// capped so no single weak signal can cross the auto-merge line on its own.
const (
	weightWikidataID    = 0.95
	weightDBpediaURI    = 0.90
	weightWikipediaURL  = 0.90
	weightSameAsBoth    = 0.85
	weightSameAsOneWay  = 0.65
	weightLabelExact    = 0.80
	weightLabelSim      = 0.70
	weightDescSim       = 0.60
	labelSimCutoff      = 0.85
	descSimCutoff       = 0.70
	minDescriptionChars = 20
)

// Factor records one piece of evidence that contributed to a match score.
// Similarity is only set for similarity-based factors.
type Factor struct {
	Name       string  `json:"name"`
	Weight     float64 `json:"weight"`
	Similarity float64 `json:"similarity,omitempty"`
}

// MatchResult is the outcome of comparing two entities.
type MatchResult struct {
	Confidence  float64  `json:"confidence"`
	Factors     []Factor `json:"factors"`
	ShouldMerge bool     `json:"should_merge"`
	NeedsReview bool     `json:"needs_review"`
}

// Score decides how likely two entities are to denote the same real-world
// thing, returning a confidence in [0, 1] together with the contributing
// factors.
//
// Two entities carrying different canonical identifiers of the same kind
// score exactly 0 regardless of any textual similarity; identifier mismatch
// is a hard veto that short-circuits all other evidence. Score is symmetric
// in its arguments.
func Score(a, b common.Entity) MatchResult {
	idsA := ExtractIdentifiers(a)
	idsB := ExtractIdentifiers(b)

	if name, ok := identifierMismatch(idsA, idsB); ok {
		return classify(0, []Factor{{Name: name}})
	}

	var score float64
	var factors []Factor
	add := func(name string, weight, similarity float64) {
		score += weight
		factors = append(factors, Factor{Name: name, Weight: weight, Similarity: similarity})
	}

	if idsA.Wikidata != "" && idsA.Wikidata == idsB.Wikidata {
		add("wikidata-id", weightWikidataID, 0)
	}
	if idsA.DBpedia != "" && idsA.DBpedia == idsB.DBpedia {
		add("dbpedia-uri", weightDBpediaURI, 0)
	}
	if idsA.Wikipedia != "" && idsA.Wikipedia == idsB.Wikipedia {
		add("wikipedia-url", weightWikipediaURL, 0)
	}

	aRefsB := refersTo(a, b)
	bRefsA := refersTo(b, a)
	if aRefsB && bRefsA {
		add("same-as-bidirectional", weightSameAsBoth, 0)
	} else if aRefsB || bRefsA {
		add("same-as-unidirectional", weightSameAsOneWay, 0)
	}

	labelA := NormalizeText(a.DisplayName())
	labelB := NormalizeText(b.DisplayName())
	if labelA != "" && labelA == labelB {
		add("label-exact", weightLabelExact, 1)
	} else if labelA != "" && labelB != "" {
		if sim := Similarity(a.DisplayName(), b.DisplayName()); sim > labelSimCutoff {
			add("label-similarity", sim*weightLabelSim, sim)
		}
	}

	if len(a.Description) > minDescriptionChars && len(b.Description) > minDescriptionChars {
		if sim := Similarity(a.Description, b.Description); sim > descSimCutoff {
			add("description-similarity", sim*weightDescSim, sim)
		}
	}

	return classify(util.Clamp01(score), factors)
}

func classify(confidence float64, factors []Factor) MatchResult {
	return MatchResult{
		Confidence:  confidence,
		Factors:     factors,
		ShouldMerge: confidence >= AutoMergeThreshold,
		NeedsReview: confidence >= ReviewThreshold && confidence < AutoMergeThreshold,
	}
}

// identifierMismatch reports whether the two entities carry different
// canonical identifiers of the same kind, which vetoes the match.
func identifierMismatch(a, b Identifiers) (string, bool) {
	if a.Wikidata != "" && b.Wikidata != "" && a.Wikidata != b.Wikidata {
		return "wikidata-id-mismatch", true
	}
	if a.DBpedia != "" && b.DBpedia != "" && a.DBpedia != b.DBpedia {
		return "dbpedia-uri-mismatch", true
	}
	if a.Wikipedia != "" && b.Wikipedia != "" && a.Wikipedia != b.Wikipedia {
		return "wikipedia-url-mismatch", true
	}
	return "", false
}

// refersTo reports whether one of a's sameAs assertions points at one of
// b's own URIs.
func refersTo(a, b common.Entity) bool {
	if len(a.SameAsLinks) == 0 {
		return false
	}
	targets := make(map[string]struct{}, 1+len(b.ExternalLinks))
	if b.URI != "" {
		targets[b.URI] = struct{}{}
	}
	for _, link := range b.ExternalLinks {
		targets[link] = struct{}{}
	}
	for _, link := range a.SameAsLinks {
		if _, ok := targets[link]; ok {
			return true
		}
	}
	return false
}
