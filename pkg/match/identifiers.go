package match

import (
	"regexp"
	"strings"

	"github.com/OFFIS-RIT/orbit/pkg/common"
)

var (
	reWikidataID  = regexp.MustCompile(`^[Qq]\d+$`)
	reWikidataURI = regexp.MustCompile(`(?i)wikidata\.org/(?:wiki|entity)/(Q\d+)`)
	reDBpediaURI  = regexp.MustCompile(`(?i)dbpedia\.org/(?:resource|page)/([^/?#\s]+)`)
	reWikipedia   = regexp.MustCompile(`(?i)([a-z]+)\.wikipedia\.org/wiki/([^?#\s]+)`)
)

// Identifiers holds the canonical identifiers extracted from one entity's
// declared fields and URI-shaped link strings. A zero value in a field means
// the entity carries no identifier of that kind.
type Identifiers struct {
	// Wikidata is the bare QID, uppercased (e.g. "Q854479").
	Wikidata string
	// DBpedia is the resource name from a DBpedia resource/page URI.
	DBpedia string
	// DBpediaURI is the raw URI the DBpedia resource name was found in.
	DBpediaURI string
	// Wikipedia is the language-qualified page title (e.g. "en:Miyamoto").
	Wikipedia string
	// WikipediaURL is the raw URL the Wikipedia title was found in.
	WikipediaURL string
}

// WikidataURI returns the canonical entity URI for the extracted QID, or ""
// when the entity has none.
func (ids Identifiers) WikidataURI() string {
	if ids.Wikidata == "" {
		return ""
	}
	return "http://www.wikidata.org/entity/" + ids.Wikidata
}

// ExtractIdentifiers pulls canonical identifiers out of an entity's ID, URI,
// and link sets. For each identifier kind the first match wins, in the order
// ID, URI, external links, sameAs links.
func ExtractIdentifiers(e common.Entity) Identifiers {
	var ids Identifiers

	if reWikidataID.MatchString(e.ID) {
		ids.Wikidata = strings.ToUpper(e.ID)
	}

	candidates := make([]string, 0, 2+len(e.ExternalLinks)+len(e.SameAsLinks))
	candidates = append(candidates, e.ID, e.URI)
	candidates = append(candidates, e.ExternalLinks...)
	candidates = append(candidates, e.SameAsLinks...)

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if ids.Wikidata == "" {
			if m := reWikidataURI.FindStringSubmatch(candidate); m != nil {
				ids.Wikidata = strings.ToUpper(m[1])
			}
		}
		if ids.DBpedia == "" {
			if m := reDBpediaURI.FindStringSubmatch(candidate); m != nil {
				ids.DBpedia = m[1]
				ids.DBpediaURI = candidate
			}
		}
		if ids.Wikipedia == "" {
			if m := reWikipedia.FindStringSubmatch(candidate); m != nil {
				ids.Wikipedia = strings.ToLower(m[1]) + ":" + m[2]
				ids.WikipediaURL = candidate
			}
		}
	}

	return ids
}
