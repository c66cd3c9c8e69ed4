package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "ledger.json")
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if _, err := s.Read(); !errors.Is(err, ErrNotFound) {
		t.Errorf("Read before first write = %v, want ErrNotFound", err)
	}

	want := []byte(`{"2026-03-10":[]}`)
	if err := s.Write(want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := s.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("Read = %s, want %s", got, want)
	}

	// overwrite replaces the whole blob
	want2 := []byte(`{}`)
	if err := s.Write(want2); err != nil {
		t.Fatalf("second Write: %v", err)
	}
	got, err = s.Read()
	if err != nil {
		t.Fatalf("second Read: %v", err)
	}
	if string(got) != string(want2) {
		t.Errorf("Read after overwrite = %s, want %s", got, want2)
	}
}

func TestFileStoreRequiresPath(t *testing.T) {
	if _, err := NewFileStore(""); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestMemoryStoreIsolatesCallers(t *testing.T) {
	s := NewMemoryStore()

	if _, err := s.Read(); !errors.Is(err, ErrNotFound) {
		t.Errorf("Read before first write = %v, want ErrNotFound", err)
	}

	in := []byte("abc")
	if err := s.Write(in); err != nil {
		t.Fatalf("Write: %v", err)
	}
	in[0] = 'z' // caller mutates its buffer after the write

	got, err := s.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != "abc" {
		t.Errorf("store shared the caller's buffer: %s", got)
	}

	got[0] = 'q' // and the other way around
	again, _ := s.Read()
	if string(again) != "abc" {
		t.Errorf("store shared its internal buffer: %s", again)
	}
}
