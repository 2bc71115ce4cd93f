// Package query composes ranking, context assembly and answer
// generation into one request/response cycle.
package query

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/maint-agent/backend/internal/docstore"
	"github.com/maint-agent/backend/internal/models"
	"github.com/maint-agent/backend/internal/search"
)

// Fixed answers for the terminal no-data paths.
const (
	NoDocumentsAnswer = "No documents have been uploaded yet. Please upload some equipment manuals or maintenance documents first."
	NoMatchesAnswer   = "No relevant information found in the uploaded documents. Try using different keywords or upload more comprehensive manuals."
)

// Confidence is a fixed indicator of which path produced the answer,
// not a statistically derived score.
const (
	ConfidenceNone     = 0.0
	ConfidenceDegraded = 0.25
	ConfidenceAnswered = 0.9
)

// Generator produces an answer from a question and assembled context.
// The bool reports whether the external service was actually reached.
type Generator interface {
	Generate(ctx context.Context, question, docContext string) (string, bool)
}

// Service orchestrates one query against the document corpus.
type Service struct {
	store       *docstore.Store
	generator   Generator
	contextDocs int
	displayDocs int
	logger      *log.Logger
}

// NewService creates a Service. Non-positive doc limits get the
// package defaults from the search package.
func NewService(store *docstore.Store, gen Generator, contextDocs, displayDocs int, logger *log.Logger) *Service {
	if contextDocs <= 0 {
		contextDocs = search.DefaultContextDocs
	}
	if displayDocs <= 0 {
		displayDocs = search.DefaultDisplayDocs
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		store:       store,
		generator:   gen,
		contextDocs: contextDocs,
		displayDocs: displayDocs,
		logger:      logger,
	}
}

// Answer runs the full pipeline for one question. The corpus snapshot
// is copied out before the completion call is issued, so no store lock
// is held while the external request blocks.
func (s *Service) Answer(ctx context.Context, question string) models.QueryResult {
	queryID := uuid.New().String()

	docs := s.store.Snapshot()
	if len(docs) == 0 {
		s.logger.Info("query against empty corpus", "query_id", queryID)
		return models.QueryResult{
			Answer:     NoDocumentsAnswer,
			Sections:   []models.Section{},
			Confidence: ConfidenceNone,
		}
	}

	ranked := search.Rank(question, docs)
	if len(ranked) == 0 {
		s.logger.Info("query matched no documents", "query_id", queryID, "corpus_size", len(docs))
		return models.QueryResult{
			Answer:     NoMatchesAnswer,
			Sections:   []models.Section{},
			Confidence: ConfidenceNone,
		}
	}

	docContext, sections := search.Assemble(ranked, s.contextDocs, s.displayDocs)

	answer, reached := s.generator.Generate(ctx, question, docContext)

	confidence := ConfidenceAnswered
	if !reached {
		confidence = ConfidenceDegraded
	}
	s.logger.Info("query answered",
		"query_id", queryID,
		"matches", len(ranked),
		"top_score", ranked[0].Score,
		"ai_reached", reached,
	)

	return models.QueryResult{
		Answer:     answer,
		Sections:   sections,
		Confidence: confidence,
	}
}
