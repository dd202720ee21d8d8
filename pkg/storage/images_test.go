package storage

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kisansetu/kisansetu-server/pkg/config"
)

func newTestStore(t *testing.T) *ImageStore {
	t.Helper()
	store, err := NewImageStore(config.MediaConfig{
		Dir:         t.TempDir(),
		PublicPath:  "/Images",
		BaseURL:     "https://api.kisansetu.example",
		MaxUploadMB: 1,
	})
	if err != nil {
		t.Fatalf("NewImageStore: %v", err)
	}
	return store
}

func TestIngestDataURIWritesFile(t *testing.T) {
	store := newTestStore(t)

	payload := base64.StdEncoding.EncodeToString([]byte("fake-png-bytes"))
	relative, err := store.Ingest("data:image/png;base64," + payload)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	if !strings.HasPrefix(relative, "/Images/") || !strings.HasSuffix(relative, ".png") {
		t.Fatalf("unexpected relative path %q", relative)
	}

	onDisk := filepath.Join(store.dir, filepath.Base(relative))
	raw, err := os.ReadFile(onDisk)
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(raw) != "fake-png-bytes" {
		t.Fatalf("stored bytes do not match upload")
	}
}

func TestIngestNormalizesAbsoluteURL(t *testing.T) {
	store := newTestStore(t)

	relative, err := store.Ingest("https://api.kisansetu.example/Images/abc.png")
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if relative != "/Images/abc.png" {
		t.Fatalf("expected relative path, got %q", relative)
	}
}

func TestIngestPassesRelativeThrough(t *testing.T) {
	store := newTestStore(t)

	relative, err := store.Ingest("/Images/abc.png")
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if relative != "/Images/abc.png" {
		t.Fatalf("expected unchanged path, got %q", relative)
	}

	empty, err := store.Ingest("   ")
	if err != nil {
		t.Fatalf("Ingest blank: %v", err)
	}
	if empty != "" {
		t.Fatalf("expected empty result for blank input, got %q", empty)
	}
}

func TestIngestRejectsOversizedUpload(t *testing.T) {
	store := newTestStore(t)

	big := base64.StdEncoding.EncodeToString(make([]byte, 2*1024*1024))
	if _, err := store.Ingest("data:image/png;base64," + big); err == nil {
		t.Fatal("expected upload limit error")
	}
}

func TestPublicURL(t *testing.T) {
	store := newTestStore(t)

	if got := store.PublicURL("/Images/abc.png"); got != "https://api.kisansetu.example/Images/abc.png" {
		t.Fatalf("unexpected public url %q", got)
	}
	if got := store.PublicURL(""); got != "" {
		t.Fatalf("expected empty url for empty path, got %q", got)
	}
}

func TestRemoveMissingFileIsNoError(t *testing.T) {
	store := newTestStore(t)
	if err := store.Remove("/Images/never-existed.png"); err != nil {
		t.Fatalf("Remove returned error for missing file: %v", err)
	}
}
