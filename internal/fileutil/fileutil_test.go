package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileCreates(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.txt")

	if err := WriteFile(dst, []byte("hello\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello\n" {
		t.Fatalf("content mismatch: got %q", got)
	}
}

func TestWriteFileOverwritesLongerContent(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(dst, []byte("previous content that is longer"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := WriteFile(dst, []byte("short"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "short" {
		t.Fatalf("expected truncated content, got %q", got)
	}
}

func TestWriteFileEmptyData(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(dst, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := WriteFile(dst, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 0 {
		t.Fatalf("expected empty file, got %d bytes", info.Size())
	}
}

func TestWriteFileMissingDirectory(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "missing", "out.txt")
	if err := WriteFile(dst, []byte("x"), 0o644); err == nil {
		t.Fatal("expected error for missing parent directory")
	}
}
