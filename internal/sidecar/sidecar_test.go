package sidecar

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDirFor(t *testing.T) {
	got := DirFor("/Volumes/Kindle/documents/My Book.azw3")
	want := filepath.Join("/Volumes/Kindle/documents", "My Book.sdr")
	if got != want {
		t.Fatalf("DirFor = %q, want %q", got, want)
	}
}

func TestMoveCompanionCreatesDirAndMoves(t *testing.T) {
	dir := t.TempDir()
	book := filepath.Join(dir, "documents", "Book.azw3")
	if err := os.MkdirAll(filepath.Dir(book), 0o755); err != nil {
		t.Fatal(err)
	}
	companion := filepath.Join(dir, "WordWise.en.B01X.db")
	if err := os.WriteFile(companion, []byte("lookup"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := MoveCompanion(companion, book); err != nil {
		t.Fatal(err)
	}

	moved := filepath.Join(dir, "documents", "Book.sdr", "WordWise.en.B01X.db")
	got, err := os.ReadFile(moved)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "lookup" {
		t.Fatalf("moved content = %q", got)
	}
	if _, err := os.Stat(companion); !os.IsNotExist(err) {
		t.Fatal("local companion should be deleted after move")
	}
}

func TestMoveCompanionOverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	book := filepath.Join(dir, "Book.azw3")
	sdr := filepath.Join(dir, "Book.sdr")
	if err := os.MkdirAll(sdr, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sdr, "XRAY.B01X.db"), []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}
	companion := filepath.Join(dir, "XRAY.B01X.db")
	if err := os.WriteFile(companion, []byte("fresh"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := MoveCompanion(companion, book); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(filepath.Join(sdr, "XRAY.B01X.db"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "fresh" {
		t.Fatalf("content = %q", got)
	}
}

func TestMoveCompanionAbsentIsNoop(t *testing.T) {
	dir := t.TempDir()
	book := filepath.Join(dir, "Book.azw3")

	if err := MoveCompanion(filepath.Join(dir, "missing.db"), book); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "Book.sdr")); !os.IsNotExist(err) {
		t.Fatal("sidecar directory should not be created for absent companion")
	}
}
