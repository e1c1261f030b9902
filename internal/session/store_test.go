package session

import (
	"encoding/json"
	"sync"
	"testing"
	"time"
)

func TestStorePutGet(t *testing.T) {
	s := NewStore(time.Hour)

	sess := s.Put("", "cv.txt", "JOHN SMITH\nWORK EXPERIENCE")
	if sess.ID == "" {
		t.Fatal("expected a generated session id")
	}
	if sess.Filename != "cv.txt" {
		t.Errorf("expected filename %q, got %q", "cv.txt", sess.Filename)
	}
	if sess.ContentLen != len("JOHN SMITH\nWORK EXPERIENCE") {
		t.Errorf("unexpected content length %d", sess.ContentLen)
	}

	got, ok := s.Get(sess.ID)
	if !ok {
		t.Fatal("expected session to be found")
	}
	if got.Document().Text() != "JOHN SMITH\nWORK EXPERIENCE" {
		t.Errorf("unexpected document text %q", got.Document().Text())
	}

	if _, ok := s.Get("missing"); ok {
		t.Error("expected missing session to not be found")
	}
}

func TestStorePutReplaces(t *testing.T) {
	s := NewStore(time.Hour)

	s.Put(DefaultID, "old.txt", "old content")
	s.Put(DefaultID, "new.txt", "new content")

	if s.Len() != 1 {
		t.Fatalf("expected 1 session, got %d", s.Len())
	}
	sess, ok := s.Get(DefaultID)
	if !ok {
		t.Fatal("expected default session")
	}
	if sess.Filename != "new.txt" {
		t.Errorf("expected replacement filename, got %q", sess.Filename)
	}
	if sess.Document().Text() != "new content" {
		t.Errorf("expected replacement document, got %q", sess.Document().Text())
	}
}

func TestStoreCleanup(t *testing.T) {
	s := NewStore(50 * time.Millisecond)

	s.Put("stale", "a.txt", "a")
	time.Sleep(80 * time.Millisecond)
	s.Put("fresh", "b.txt", "b")

	s.Cleanup()

	if _, ok := s.Get("stale"); ok {
		t.Error("expected stale session to be evicted")
	}
	if _, ok := s.Get("fresh"); !ok {
		t.Error("expected fresh session to survive")
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 session after cleanup, got %d", s.Len())
	}
}

func TestStoreGetRefreshesTTL(t *testing.T) {
	s := NewStore(80 * time.Millisecond)

	s.Put("live", "a.txt", "a")
	time.Sleep(50 * time.Millisecond)
	s.Get("live")
	time.Sleep(50 * time.Millisecond)

	s.Cleanup()
	if _, ok := s.Get("live"); !ok {
		t.Error("expected refreshed session to survive cleanup")
	}
}

func TestStoreGetReturnsCopy(t *testing.T) {
	s := NewStore(time.Hour)
	s.Put(DefaultID, "cv.txt", "content")

	sess, ok := s.Get(DefaultID)
	if !ok {
		t.Fatal("expected session")
	}
	sess.Filename = "mutated.txt"

	again, _ := s.Get(DefaultID)
	if again.Filename != "cv.txt" {
		t.Errorf("stored session mutated through a returned copy: %q", again.Filename)
	}
}

// Readers encode sessions outside the store lock, so Get must hand out
// copies: the stored LastUsed is written under the mutex on every Get.
func TestStoreConcurrentGetAndEncode(t *testing.T) {
	s := NewStore(time.Hour)
	s.Put(DefaultID, "cv.txt", "JOHN SMITH\nWORK EXPERIENCE")

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				sess, ok := s.Get(DefaultID)
				if !ok {
					t.Error("expected session")
					return
				}
				if _, err := json.Marshal(sess); err != nil {
					t.Errorf("marshal: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestNewID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		if len(id) != 26 {
			t.Fatalf("expected 26-char id, got %d (%q)", len(id), id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
