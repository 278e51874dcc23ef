package fileutil

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "out.pdf")

	err := WriteAtomic(testFile, 0644, func(w io.Writer) error {
		_, err := w.Write([]byte("hello world"))
		return err
	})
	if err != nil {
		t.Fatalf("WriteAtomic failed: %v", err)
	}

	data, err := os.ReadFile(testFile)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(data) != "hello world" {
		t.Errorf("File content mismatch: got %q, want %q", string(data), "hello world")
	}

	info, err := os.Stat(testFile)
	if err != nil {
		t.Fatalf("Failed to stat file: %v", err)
	}
	if info.Mode().Perm() != 0644 {
		t.Errorf("File permissions mismatch: got %o, want %o", info.Mode().Perm(), 0644)
	}

	// Verify no temp files remain
	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	for _, entry := range entries {
		if entry.Name() != "out.pdf" {
			t.Errorf("Unexpected file in directory: %s", entry.Name())
		}
	}
}

func TestWriteAtomicWriterFailure(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "out.pdf")

	wantErr := errors.New("render blew up")
	err := WriteAtomic(testFile, 0644, func(w io.Writer) error {
		// Partial output before the failure must never reach testFile.
		if _, werr := w.Write([]byte("partial")); werr != nil {
			return werr
		}
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Expected writer error to propagate, got %v", err)
	}

	if _, err := os.Stat(testFile); !os.IsNotExist(err) {
		t.Errorf("Destination file exists after failed write")
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("Failed to read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Temp file left behind after failed write: %v", entries[0].Name())
	}
}

func TestWriteAtomicOverwrite(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "out.pdf")

	write := func(content string) error {
		return WriteAtomic(testFile, 0644, func(w io.Writer) error {
			_, err := w.Write([]byte(content))
			return err
		})
	}

	if err := write("initial"); err != nil {
		t.Fatalf("Initial write failed: %v", err)
	}
	if err := write("updated content"); err != nil {
		t.Fatalf("Overwrite failed: %v", err)
	}

	data, err := os.ReadFile(testFile)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(data) != "updated content" {
		t.Errorf("File content mismatch: got %q, want %q", string(data), "updated content")
	}
}

func TestWriteAtomicInvalidDir(t *testing.T) {
	t.Parallel()

	err := WriteAtomic("/nonexistent/dir/out.pdf", 0644, func(w io.Writer) error {
		return nil
	})
	if err == nil {
		t.Error("Expected error when writing to non-existent directory")
	}
}
