package main

import (
	"os"
	"path/filepath"
	"testing"

	"worddumb/internal/testsupport"
)

func TestSendToMountedKindle(t *testing.T) {
	env := setupCLITestEnv(t)

	library := filepath.Join(env.baseDir, "library")
	bookPath := filepath.Join(library, "Book.kfx")
	testsupport.WriteFile(t, bookPath, "book")
	testsupport.WriteFile(t, filepath.Join(library, "WordWise.en.B01X.db"), "lookup")
	testsupport.WriteFile(t, filepath.Join(library, "XRAY.B01X.db"), "xray")

	mount := filepath.Join(env.baseDir, "kindle")
	if err := os.MkdirAll(mount, 0o755); err != nil {
		t.Fatal(err)
	}

	out, _, err := runCLI(t, []string{
		"send",
		"--book", bookPath,
		"--asin", "B01X",
		"--language", "eng",
		"--mount", mount,
	}, env.configPath)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	requireContains(t, out, "Sent Book to device")

	if _, err := os.Stat(filepath.Join(mount, "documents", "Book.kfx")); err != nil {
		t.Fatalf("book not uploaded: %v", err)
	}
	sdr := filepath.Join(mount, "documents", "Book.sdr")
	for _, name := range []string{"WordWise.en.B01X.db", "XRAY.B01X.db"} {
		if _, err := os.Stat(filepath.Join(sdr, name)); err != nil {
			t.Fatalf("companion %s missing: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(library, "WordWise.en.B01X.db")); !os.IsNotExist(err) {
		t.Fatal("local lookup db should be deleted")
	}
	if _, err := os.Stat(filepath.Join(mount, "system", "kll", "kll.en.zh.klld")); err != nil {
		t.Fatalf("dictionary not provisioned: %v", err)
	}

	// The recorded upload job settles once the continuation runs.
	out, _, err = runCLI(t, []string{"jobs"}, env.configPath)
	if err != nil {
		t.Fatalf("jobs: %v", err)
	}
	requireContains(t, out, "completed")
	requireContains(t, out, "B01X")
}

func TestSendWithoutDeviceFails(t *testing.T) {
	env := setupCLITestEnv(t)

	bookPath := filepath.Join(env.baseDir, "library", "Book.azw3")
	testsupport.WriteFile(t, bookPath, "book")

	_, _, err := runCLI(t, []string{
		"send",
		"--book", bookPath,
		"--asin", "B01X",
	}, env.configPath)
	if err == nil {
		t.Fatal("send without a reachable device must fail")
	}
	requireContains(t, err.Error(), "no Kindle reachable")
}

func TestSendRejectsUnknownFormat(t *testing.T) {
	env := setupCLITestEnv(t)

	bookPath := filepath.Join(env.baseDir, "library", "Book.txt")
	testsupport.WriteFile(t, bookPath, "book")

	_, _, err := runCLI(t, []string{
		"send",
		"--book", bookPath,
		"--asin", "B01X",
	}, env.configPath)
	if err == nil {
		t.Fatal("unsupported format must fail")
	}
	requireContains(t, err.Error(), "unsupported book format")
}
