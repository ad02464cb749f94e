package repository

import (
	"strings"
	"testing"
)

func newTestUsers(t *testing.T) *UserRepository {
	t.Helper()
	r, err := NewUserRepository([]SeedUser{
		{ID: 1, Username: "alice", Password: "alice-secret-1"},
		{ID: 2, Username: "bob", Password: "bob-secret-2"},
	})
	if err != nil {
		t.Fatalf("seed users: %v", err)
	}
	return r
}

func TestFindByUsername(t *testing.T) {
	r := newTestUsers(t)

	u := r.FindByUsername("alice")
	if u == nil || u.ID != 1 {
		t.Fatalf("unexpected lookup result: %+v", u)
	}
	if r.FindByUsername("charlie") != nil {
		t.Error("expected nil for unknown username")
	}
}

func TestFindByID(t *testing.T) {
	r := newTestUsers(t)

	u := r.FindByID(2)
	if u == nil || u.Username != "bob" {
		t.Fatalf("unexpected lookup result: %+v", u)
	}
	if r.FindByID(99) != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestCheckPassword(t *testing.T) {
	r := newTestUsers(t)
	u := r.FindByUsername("alice")

	if !r.CheckPassword(u, "alice-secret-1") {
		t.Error("correct password rejected")
	}
	if r.CheckPassword(u, "wrong") {
		t.Error("wrong password accepted")
	}
}

func TestPasswordsAreHashed(t *testing.T) {
	r := newTestUsers(t)
	u := r.FindByUsername("alice")

	if u.PasswordHash == "alice-secret-1" {
		t.Fatal("password stored in plaintext")
	}
	if !strings.HasPrefix(u.PasswordHash, "$2") {
		t.Errorf("expected a bcrypt hash, got %q", u.PasswordHash)
	}
}

func TestDuplicateSeedsRejected(t *testing.T) {
	if _, err := NewUserRepository([]SeedUser{
		{ID: 1, Username: "alice", Password: "x"},
		{ID: 1, Username: "bob", Password: "y"},
	}); err == nil {
		t.Error("expected error for duplicate seed id")
	}

	if _, err := NewUserRepository([]SeedUser{
		{ID: 1, Username: "alice", Password: "x"},
		{ID: 2, Username: "alice", Password: "y"},
	}); err == nil {
		t.Error("expected error for duplicate seed username")
	}
}
