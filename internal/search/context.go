package search

import (
	"strings"
	"unicode/utf8"

	"github.com/maint-agent/backend/internal/models"
)

const (
	// DefaultContextDocs is how many top matches feed the model context.
	DefaultContextDocs = 2
	// DefaultDisplayDocs is how many matches become display sections.
	DefaultDisplayDocs = 3
	// ExcerptLimit caps display excerpts, in characters.
	ExcerptLimit = 500
)

// Assemble selects the top matches and produces both the model context
// and the display sections. The context concatenates the full content
// of the top contextDocs matches so the model sees complete manual
// sections; only the display excerpts are truncated.
func Assemble(ranked []Match, contextDocs, displayDocs int) (string, []models.Section) {
	if len(ranked) == 0 {
		return "", nil
	}
	if displayDocs < len(ranked) {
		ranked = ranked[:displayDocs]
	}

	var contents []string
	for i, m := range ranked {
		if i >= contextDocs {
			break
		}
		contents = append(contents, m.Content)
	}
	context := strings.Join(contents, "\n\n")

	sections := make([]models.Section, 0, len(ranked))
	for _, m := range ranked {
		sections = append(sections, models.Section{
			Source:  m.DocumentID,
			Excerpt: Excerpt(m.Content),
		})
	}
	return context, sections
}

// Excerpt truncates content to ExcerptLimit characters, appending an
// ellipsis marker when truncation happened.
func Excerpt(content string) string {
	if utf8.RuneCountInString(content) <= ExcerptLimit {
		return content
	}
	runes := []rune(content)
	return string(runes[:ExcerptLimit]) + "..."
}
