// stub_generator.go - Stub answer generator for testing
package testutil

import (
	"context"
	"sync"
)

// StubGenerator implements the query.Generator interface with canned
// responses, recording what it was asked.
type StubGenerator struct {
	mu sync.Mutex

	// Response to return from Generate.
	Answer  string
	Reached bool

	// Recorded by Generate.
	Calls        int
	LastQuestion string
	LastContext  string
}

// NewStubGenerator creates a stub that reports a successful generation.
func NewStubGenerator(answer string) *StubGenerator {
	return &StubGenerator{Answer: answer, Reached: true}
}

func (g *StubGenerator) Generate(_ context.Context, question, docContext string) (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Calls++
	g.LastQuestion = question
	g.LastContext = docContext
	return g.Answer, g.Reached
}
