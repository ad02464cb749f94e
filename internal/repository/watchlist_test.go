package repository

import (
	"errors"
	"sync"
	"testing"
)

func TestCreateAssignsUniqueIDs(t *testing.T) {
	r := NewWatchlistRepository()

	first := r.Create(1, "Inception", "English", false)
	second := r.Create(1, "Inception", "English", false)

	if first.ID == second.ID {
		t.Fatalf("expected distinct ids, both were %d", first.ID)
	}
	if second.ID <= first.ID {
		t.Errorf("expected monotonic ids, got %d then %d", first.ID, second.ID)
	}
	if first.Watched || second.Watched {
		t.Error("expected watched to default to false")
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	r := NewWatchlistRepository()
	r.Create(1, "Seven Samurai", "Japanese", true)
	r.Create(1, "Amélie", "French", false)
	r.Create(1, "Parasite", "Korean", true)

	all := r.List(1, "")
	if len(all) != 3 {
		t.Fatalf("expected 3 movies, got %d", len(all))
	}
	for i, title := range []string{"Seven Samurai", "Amélie", "Parasite"} {
		if all[i].Title != title {
			t.Errorf("position %d: expected %q, got %q", i, title, all[i].Title)
		}
	}
}

func TestListStatusFilter(t *testing.T) {
	r := NewWatchlistRepository()
	r.Create(1, "Seven Samurai", "Japanese", true)
	r.Create(1, "Amélie", "French", false)
	r.Create(1, "Parasite", "Korean", true)

	watched := r.List(1, FilterWatched)
	if len(watched) != 2 {
		t.Fatalf("expected 2 watched movies, got %d", len(watched))
	}
	if watched[0].Title != "Seven Samurai" || watched[1].Title != "Parasite" {
		t.Errorf("watched filter reordered results: %q, %q", watched[0].Title, watched[1].Title)
	}

	unwatched := r.List(1, FilterUnwatched)
	if len(unwatched) != 1 || unwatched[0].Title != "Amélie" {
		t.Errorf("unexpected unwatched result: %+v", unwatched)
	}
}

func TestGetMissingMovie(t *testing.T) {
	r := NewWatchlistRepository()
	if _, err := r.Get(1, 42); !errors.Is(err, ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestReplace(t *testing.T) {
	r := NewWatchlistRepository()
	m := r.Create(1, "Inception", "English", false)

	updated, err := r.Replace(1, m.ID, "Oldboy", "Korean", true)
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if updated.ID != m.ID {
		t.Errorf("replace changed id from %d to %d", m.ID, updated.ID)
	}
	if updated.Title != "Oldboy" || updated.Language != "Korean" || !updated.Watched {
		t.Errorf("unexpected movie after replace: %+v", updated)
	}

	if _, err := r.Replace(1, 999, "x", "y", false); !errors.Is(err, ErrMovieNotFound) {
		t.Errorf("expected ErrMovieNotFound for missing id, got %v", err)
	}
}

func TestPatchOnlyTouchesProvidedFields(t *testing.T) {
	r := NewWatchlistRepository()
	m := r.Create(1, "Inception", "English", false)

	watched := true
	updated, err := r.Patch(1, m.ID, MoviePatch{Watched: &watched})
	if err != nil {
		t.Fatalf("patch failed: %v", err)
	}
	if !updated.Watched {
		t.Error("patch did not apply watched")
	}
	if updated.Title != "Inception" || updated.Language != "English" {
		t.Errorf("patch touched untouched fields: %+v", updated)
	}

	// 空 patch 是合法的 no-op
	same, err := r.Patch(1, m.ID, MoviePatch{})
	if err != nil {
		t.Fatalf("empty patch failed: %v", err)
	}
	if same != updated {
		t.Errorf("empty patch changed the record: %+v", same)
	}
}

func TestRemove(t *testing.T) {
	r := NewWatchlistRepository()
	m := r.Create(1, "Inception", "English", false)

	if err := r.Remove(1, m.ID); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, err := r.Get(1, m.ID); !errors.Is(err, ErrMovieNotFound) {
		t.Errorf("expected movie gone after remove, got %v", err)
	}
	if err := r.Remove(1, m.ID); !errors.Is(err, ErrMovieNotFound) {
		t.Errorf("expected ErrMovieNotFound on double remove, got %v", err)
	}
}

func TestUsersAreIsolated(t *testing.T) {
	r := NewWatchlistRepository()
	m := r.Create(1, "Inception", "English", false)

	if got := r.List(2, ""); len(got) != 0 {
		t.Fatalf("user 2 sees user 1's movies: %+v", got)
	}
	if _, err := r.Get(2, m.ID); !errors.Is(err, ErrMovieNotFound) {
		t.Errorf("user 2 can fetch user 1's movie by guessed id")
	}
}

func TestConcurrentCreates(t *testing.T) {
	r := NewWatchlistRepository()

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			r.Create(1, "Inception", "English", false)
		}()
	}
	wg.Wait()

	movies := r.List(1, "")
	if len(movies) != n {
		t.Fatalf("expected %d movies, got %d", n, len(movies))
	}
	seen := make(map[int]bool, n)
	for _, m := range movies {
		if seen[m.ID] {
			t.Fatalf("duplicate id %d under concurrent creates", m.ID)
		}
		seen[m.ID] = true
	}
}
