package kv

import (
	"testing"
)

func TestLevelDBStore(t *testing.T) {
	dir := t.TempDir()

	s, err := NewLevelDBStore(dir)
	if err != nil {
		t.Fatalf("NewLevelDBStore() error = %v", err)
	}

	key := Key{Scope: Archival, Name: "vote/0"}
	if _, ok, err := s.Get(key); err != nil || ok {
		t.Fatalf("Get() on fresh store = %v, %v", ok, err)
	}

	b := NewBatch()
	b.Set(key, []byte("record"))
	b.Set(Key{Instance, "total_votes"}, []byte("1"))
	if err := s.Apply(b); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	v, ok, err := s.Get(key)
	if err != nil || !ok || string(v) != "record" {
		t.Fatalf("Get() = %q, %v, %v", v, ok, err)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	// State survives a reopen.
	s, err = NewLevelDBStore(dir)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	defer s.Close()

	v, ok, err = s.Get(key)
	if err != nil || !ok || string(v) != "record" {
		t.Fatalf("Get() after reopen = %q, %v, %v", v, ok, err)
	}
	v, ok, err = s.Get(Key{Instance, "total_votes"})
	if err != nil || !ok || string(v) != "1" {
		t.Fatalf("instance Get() after reopen = %q, %v, %v", v, ok, err)
	}
}

func TestLevelDBScopeSeparation(t *testing.T) {
	s, err := NewLevelDBStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLevelDBStore() error = %v", err)
	}
	defer s.Close()

	b := NewBatch()
	b.Set(Key{Instance, "x"}, []byte("instance"))
	b.Set(Key{Archival, "x"}, []byte("archival"))
	if err := s.Apply(b); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	v, _, _ := s.Get(Key{Instance, "x"})
	if string(v) != "instance" {
		t.Errorf("instance/x = %q", v)
	}
	v, _, _ = s.Get(Key{Archival, "x"})
	if string(v) != "archival" {
		t.Errorf("archival/x = %q", v)
	}
}
