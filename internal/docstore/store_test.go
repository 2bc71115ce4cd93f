package docstore

import (
	"fmt"
	"sync"
	"testing"

	"github.com/maint-agent/backend/internal/models"
)

func TestPutAndSnapshot(t *testing.T) {
	s := New()

	s.Put("a.txt", "alpha", models.KindText)
	s.Put("b.pdf", "beta", models.KindPDF)

	if s.Count() != 2 {
		t.Fatalf("expected 2 documents, got %d", s.Count())
	}

	docs := s.Snapshot()
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents in snapshot, got %d", len(docs))
	}
	if docs[0].ID != "a.txt" || docs[1].ID != "b.pdf" {
		t.Errorf("snapshot not in insertion order: %s, %s", docs[0].ID, docs[1].ID)
	}
	if docs[0].Size != 5 {
		t.Errorf("expected size 5, got %d", docs[0].Size)
	}
	if docs[1].Kind != models.KindPDF {
		t.Errorf("expected pdf kind, got %s", docs[1].Kind)
	}
}

func TestPutOverwrites(t *testing.T) {
	s := New()

	s.Put("manual.txt", "first version", models.KindText)
	s.Put("other.txt", "unrelated", models.KindText)
	s.Put("manual.txt", "second version, longer", models.KindText)

	if s.Count() != 2 {
		t.Fatalf("overwrite must not add an entry: got %d", s.Count())
	}

	docs := s.Snapshot()
	if docs[0].ID != "manual.txt" {
		t.Errorf("overwrite must keep insertion slot, got %s first", docs[0].ID)
	}
	if docs[0].Content != "second version, longer" {
		t.Errorf("expected latest content, got %q", docs[0].Content)
	}
	if docs[0].Size != len("second version, longer") {
		t.Errorf("size must reflect latest content, got %d", docs[0].Size)
	}
}

func TestSizeCountsCharacters(t *testing.T) {
	s := New()
	doc := s.Put("notes.txt", "3µm Öl", models.KindText)
	if doc.Size != 6 {
		t.Errorf("expected 6 characters, got %d", doc.Size)
	}
}

func TestDelete(t *testing.T) {
	s := New()
	s.Put("a.txt", "alpha", models.KindText)

	if !s.Delete("a.txt") {
		t.Errorf("expected delete to report removal")
	}
	if s.Count() != 0 {
		t.Errorf("expected empty store, got %d", s.Count())
	}
	if s.Delete("ghost.txt") {
		t.Errorf("deleting an unknown id must report false")
	}
	if s.Count() != 0 {
		t.Errorf("failed delete must not change the store")
	}
}

func TestDeleteThenReinsertMovesToEnd(t *testing.T) {
	s := New()
	s.Put("a.txt", "alpha", models.KindText)
	s.Put("b.txt", "beta", models.KindText)
	s.Delete("a.txt")
	s.Put("a.txt", "alpha again", models.KindText)

	docs := s.Snapshot()
	if docs[0].ID != "b.txt" || docs[1].ID != "a.txt" {
		t.Errorf("reinsert after delete must append: %s, %s", docs[0].ID, docs[1].ID)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	s := New()
	s.Put("a.txt", "alpha", models.KindText)

	snap := s.Snapshot()
	s.Put("a.txt", "mutated", models.KindText)
	s.Put("b.txt", "beta", models.KindText)

	if len(snap) != 1 || snap[0].Content != "alpha" {
		t.Errorf("snapshot must not observe later writes: %+v", snap)
	}
}

func TestList(t *testing.T) {
	s := New()
	s.Put("m.pdf", "pdf body", models.KindPDF)

	list := s.List()
	if len(list) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(list))
	}
	want := models.DocumentInfo{Filename: "m.pdf", Size: 8, Kind: models.KindPDF}
	if list[0] != want {
		t.Errorf("expected %+v, got %+v", want, list[0])
	}
}

func TestConcurrentAccess(t *testing.T) {
	s := New()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Put(fmt.Sprintf("doc-%d.txt", n), "content", models.KindText)
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				for _, d := range s.Snapshot() {
					_ = d.Content
				}
				s.Count()
			}
		}()
	}
	wg.Wait()

	if s.Count() != 8 {
		t.Errorf("expected 8 documents, got %d", s.Count())
	}
}
