// Package search ranks the document corpus against free-text questions
// and assembles the context handed to the answer generator.
package search

import (
	"sort"
	"strings"

	"github.com/maint-agent/backend/internal/models"
)

// Match is one document scored against a query. Matches only exist for
// the duration of a single query.
type Match struct {
	DocumentID string
	Content    string
	Score      float64
}

// Rank scores every document against the query and returns the matches
// ordered by descending score. A query token matches a document when it
// appears anywhere in the lowercased content as a substring; each
// distinct token counts at most once. The score is the fraction of
// query tokens that matched, so it is always in (0, 1] — documents with
// no matching token are excluded entirely.
//
// Tokenization is deliberately naive: lowercase, split on whitespace,
// no stemming or punctuation stripping. Ties keep corpus order.
func Rank(query string, docs []models.Document) []Match {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return nil
	}

	var matches []Match
	for _, doc := range docs {
		content := strings.ToLower(doc.Content)
		hits := 0
		for _, tok := range tokens {
			if strings.Contains(content, tok) {
				hits++
			}
		}
		if hits == 0 {
			continue
		}
		matches = append(matches, Match{
			DocumentID: doc.ID,
			Content:    doc.Content,
			Score:      float64(hits) / float64(len(tokens)),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}
