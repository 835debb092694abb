package resolve

import (
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/OFFIS-RIT/orbit/pkg/common"
	"github.com/OFFIS-RIT/orbit/pkg/match"
)

// sourceRank orders entity sources for merge decisions. Lower is better.
func sourceRank(source string) int {
	switch strings.ToLower(source) {
	case common.SourceWikidata:
		return 0
	case common.SourceDBpedia:
		return 1
	case common.SourceWikipedia:
		return 2
	default:
		return 3
	}
}

// mergeGroup folds an equivalence class of entities into one canonical
// entity. Name, description, and source tag come from the highest-priority
// source that provides them; link sets, types, and sources are unioned;
// property bags are concatenated per key; the confidence is the mean over
// the members' positive confidences.
func mergeGroup(group []common.Entity) (common.Entity, error) {
	id, err := gonanoid.New()
	if err != nil {
		return common.Entity{}, err
	}

	merged := common.Entity{
		ID:    id,
		Level: group[0].Level,
	}

	bestNameRank := len(group) + 4
	bestDescRank := bestNameRank

	externalLinks := newStringSet()
	sameAsLinks := newStringSet()
	sources := newStringSet()
	types := newStringSet()

	var confidenceSum float64
	var confidenceCount int

	for _, member := range group {
		rank := sourceRank(member.Source)
		if name := member.DisplayName(); name != "" && rank < bestNameRank {
			merged.Name = name
			merged.Source = member.Source
			bestNameRank = rank
		}
		if member.Description != "" && rank < bestDescRank {
			merged.Description = member.Description
			bestDescRank = rank
		}

		externalLinks.add(member.ExternalLinks...)
		sameAsLinks.add(member.SameAsLinks...)
		sources.add(member.Source)
		sources.add(member.Sources...)
		types.add(member.Types...)

		for key, values := range member.Properties {
			if merged.Properties == nil {
				merged.Properties = make(map[string][]string)
			}
			merged.Properties[key] = append(merged.Properties[key], values...)
		}

		if member.Confidence > 0 {
			confidenceSum += member.Confidence
			confidenceCount++
		}

		if member.Level < merged.Level {
			merged.Level = member.Level
		}
		if member.IsRoot {
			merged.IsRoot = true
		}

		ref := member.ID
		if ref == "" {
			ref = member.DisplayName()
		}
		merged.MergedFrom = append(merged.MergedFrom, ref)
	}

	merged.ExternalLinks = externalLinks.values
	merged.SameAsLinks = sameAsLinks.values
	merged.Sources = sources.values
	merged.Types = types.values
	merged.URI = canonicalURI(group)

	if confidenceCount > 0 {
		merged.Confidence = confidenceSum / float64(confidenceCount)
	} else {
		merged.Confidence = common.DefaultConfidence
	}

	return merged, nil
}

// canonicalURI picks the merged entity's URI by identifier priority:
// Wikidata entity URI, then DBpedia resource URI, then Wikipedia page URL,
// then the first URI or external link any member declares.
func canonicalURI(group []common.Entity) string {
	for _, member := range group {
		if ids := match.ExtractIdentifiers(member); ids.Wikidata != "" {
			return ids.WikidataURI()
		}
	}
	for _, member := range group {
		if ids := match.ExtractIdentifiers(member); ids.DBpediaURI != "" {
			return ids.DBpediaURI
		}
	}
	for _, member := range group {
		if ids := match.ExtractIdentifiers(member); ids.WikipediaURL != "" {
			return ids.WikipediaURL
		}
	}
	for _, member := range group {
		if member.URI != "" {
			return member.URI
		}
		if len(member.ExternalLinks) > 0 {
			return member.ExternalLinks[0]
		}
	}
	return ""
}

// stringSet is an order-preserving set of strings.
type stringSet struct {
	values []string
	seen   map[string]struct{}
}

func newStringSet() *stringSet {
	return &stringSet{seen: make(map[string]struct{})}
}

func (s *stringSet) add(values ...string) {
	for _, value := range values {
		if value == "" {
			continue
		}
		if _, ok := s.seen[value]; ok {
			continue
		}
		s.seen[value] = struct{}{}
		s.values = append(s.values, value)
	}
}
