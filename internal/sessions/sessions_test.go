package sessions

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestNewID(t *testing.T) {
	a, b := NewID("alice"), NewID("alice")
	if a == b {
		t.Error("NewID() should be unique")
	}
	if !strings.HasPrefix(string(a), "alice-") {
		t.Errorf("NewID(alice) = %q, expected alice- prefix", a)
	}
	if !strings.HasPrefix(string(NewID("")), "anon-") {
		t.Error("empty user should get the anon prefix")
	}
}

func TestRegistryAddRemove(t *testing.T) {
	r := NewRegistry(0)
	now := time.Now()

	r.Add(Info{ID: "b", User: "bob", Started: now.Add(time.Second)})
	r.Add(Info{ID: "a", User: "alice", Started: now})

	if r.Count() != 2 {
		t.Fatalf("Count() = %d, expected 2", r.Count())
	}
	if s, ok := r.Get("a"); !ok || s.User != "alice" {
		t.Errorf("Get(a) = %+v, %v", s, ok)
	}

	list := r.List()
	if len(list) != 2 || list[0].ID != "a" || list[1].ID != "b" {
		t.Errorf("List() = %+v, expected oldest first", list)
	}

	r.Remove("a")
	if _, ok := r.Get("a"); ok {
		t.Error("removed session should be gone")
	}
	if r.Count() != 1 {
		t.Errorf("Count() = %d, expected 1", r.Count())
	}
}

func TestRegistryLimit(t *testing.T) {
	r := NewRegistry(2)

	if err := r.Add(Info{ID: "a"}); err != nil {
		t.Fatal(err)
	}
	if err := r.Add(Info{ID: "b"}); err != nil {
		t.Fatal(err)
	}
	if err := r.Add(Info{ID: "c"}); !errors.Is(err, ErrFull) {
		t.Errorf("Add() over limit error = %v, expected ErrFull", err)
	}
	// Re-adding a known session is an update, not a new slot
	if err := r.Add(Info{ID: "a", User: "again"}); err != nil {
		t.Errorf("Add() of existing id = %v, expected nil", err)
	}

	r.Remove("b")
	if err := r.Add(Info{ID: "c"}); err != nil {
		t.Errorf("Add() after Remove() = %v, expected nil", err)
	}
}

func TestRegistryConcurrent(t *testing.T) {
	r := NewRegistry(0)
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := NewID("p")
			r.Add(Info{ID: id})
			r.Count()
			r.Remove(id)
		}()
	}
	wg.Wait()

	if r.Count() != 0 {
		t.Errorf("Count() = %d after all sessions left, expected 0", r.Count())
	}
}
