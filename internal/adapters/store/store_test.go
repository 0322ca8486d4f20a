package store_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/access-ci/nvport/internal/adapters/store"
	"github.com/access-ci/nvport/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "nvport_state.json")

	s, err := store.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	info := domain.ArtifactInfo{
		Name:      "portable-image",
		Path:      "out/nvda_portable.zip",
		Checksum:  "abc123",
		Timestamp: time.Now(),
	}

	if err := s.Put(info); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := s.Get("portable-image")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil")
	}
	if got.Checksum != info.Checksum {
		t.Errorf("expected Checksum %q, got %q", info.Checksum, got.Checksum)
	}
}

func TestStore_GetUnknownReturnsNil(t *testing.T) {
	s, err := store.NewStore(filepath.Join(t.TempDir(), "nvport_state.json"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	got, err := s.Get("never-stored")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestStore_Persistence(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "nvport_state.json")

	s1, err := store.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore 1 failed: %v", err)
	}

	info := domain.ArtifactInfo{
		Name:     "addon-bundle",
		Path:     "out/at-automation.nvda-addon",
		Checksum: "deadbeef",
	}
	if err := s1.Put(info); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	// A fresh instance on the same path sees the record.
	s2, err := store.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore 2 failed: %v", err)
	}

	got, err := s2.Get("addon-bundle")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil")
	}
	if got.Path != info.Path {
		t.Errorf("expected Path %q, got %q", info.Path, got.Path)
	}
}

func TestStore_GetReturnsNewestRecord(t *testing.T) {
	s, err := store.NewStore(filepath.Join(t.TempDir(), "nvport_state.json"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if err := s.Put(domain.ArtifactInfo{Name: "installer", Checksum: "old"}); err != nil {
		t.Fatalf("Put 1 failed: %v", err)
	}
	if err := s.Put(domain.ArtifactInfo{Name: "installer", Checksum: "new"}); err != nil {
		t.Fatalf("Put 2 failed: %v", err)
	}

	got, err := s.Get("installer")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil || got.Checksum != "new" {
		t.Fatalf("expected newest record, got %+v", got)
	}
}

func TestStore_HistorySurvivesReload(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "nvport_state.json")

	s1, err := store.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore 1 failed: %v", err)
	}
	for _, sum := range []string{"run1", "run2", "run3"} {
		if err := s1.Put(domain.ArtifactInfo{Name: "portable-image", Checksum: sum}); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}

	s2, err := store.NewStore(storePath)
	if err != nil {
		t.Fatalf("NewStore 2 failed: %v", err)
	}

	hist := s2.History("portable-image")
	if len(hist) != 3 {
		t.Fatalf("expected 3 records, got %d", len(hist))
	}
	if hist[0].Checksum != "run1" || hist[2].Checksum != "run3" {
		t.Errorf("history out of order: %+v", hist)
	}
}

func TestStore_CorruptFileFails(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "nvport_state.json")
	if err := os.WriteFile(storePath, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := store.NewStore(storePath); err == nil {
		t.Fatal("expected error for corrupt store file")
	}
}
