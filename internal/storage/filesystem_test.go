package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestNewFileStoreRequiresPath(t *testing.T) {
	if _, err := NewFileStore("  "); err == nil {
		t.Fatalf("expected error for empty base path")
	}
}

func TestWriteCreatesNestedDirectories(t *testing.T) {
	root := filepath.Join(t.TempDir(), "generated_assets")
	store, err := NewFileStore(root)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	path, err := store.Write(context.Background(), "shoe_x/1x1/shoe_x_1x1_v1.png", []byte("png"))
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	want := filepath.Join(root, "shoe_x", "1x1", "shoe_x_1x1_v1.png")
	if path != want {
		t.Fatalf("path = %q, want %q", path, want)
	}
	data, err := store.ReadFile(path)
	if err != nil || string(data) != "png" {
		t.Fatalf("read back = %q, %v", data, err)
	}
}

func TestWriteRejectsTraversal(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	for _, key := range []string{"", "..", "../escape.png", "a/../../escape.png"} {
		if _, err := store.Write(context.Background(), key, []byte("x")); err == nil {
			t.Fatalf("expected error for key %q", key)
		}
	}
}

func TestWriteHonorsCanceledContext(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.Write(ctx, "a.png", nil); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestExistingAssets(t *testing.T) {
	root := t.TempDir()
	store, err := NewFileStore(root)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if dir, files := store.ExistingAssets("shoe_x", "1x1"); dir != "" || files != nil {
		t.Fatalf("expected miss on empty store, got %q %v", dir, files)
	}

	dir, err := store.EnsureDir(context.Background(), "shoe_x/1x1")
	if err != nil {
		t.Fatalf("ensure dir: %v", err)
	}
	if got, _ := store.ExistingAssets("shoe_x", "1x1"); got != "" {
		t.Fatalf("empty directory must not count as existing")
	}

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write txt: %v", err)
	}
	if got, _ := store.ExistingAssets("shoe_x", "1x1"); got != "" {
		t.Fatalf("non-png files must not count as existing")
	}

	// A zero-byte PNG still counts.
	for _, name := range []string{"b.png", "a.png"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatalf("write png: %v", err)
		}
	}
	got, files := store.ExistingAssets("shoe_x", "1x1")
	if got != dir {
		t.Fatalf("dir = %q, want %q", got, dir)
	}
	if len(files) != 2 || filepath.Base(files[0]) != "a.png" || filepath.Base(files[1]) != "b.png" {
		t.Fatalf("files = %v, want sorted a.png, b.png", files)
	}

	if got, _ := store.ExistingAssets("shoe_x", "9x16"); got != "" {
		t.Fatalf("other ratios must not be affected")
	}
	if got, _ := store.ExistingAssets("..", "x"); got != "" {
		t.Fatalf("traversal keys must miss")
	}
}

func TestExistingAssetsTreatsProductNameLiterally(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()
	// promo1 would be matched by a "promo*" pattern.
	if _, err := store.Write(ctx, "promo1/1x1/other.png", nil); err != nil {
		t.Fatalf("seed promo1: %v", err)
	}

	tests := []struct {
		product string
		seed    bool
		want    int
	}{
		{product: "shoe[1]", seed: true, want: 1},
		{product: "shoe[x", seed: true, want: 1},
		{product: "shoe?", seed: true, want: 1},
		{product: "promo*", seed: true, want: 1},
		{product: "promo?", seed: false, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.product, func(t *testing.T) {
			var seeded string
			if tt.seed {
				seeded, err = store.Write(ctx, tt.product+"/1x1/a.png", nil)
				if err != nil {
					t.Fatalf("seed: %v", err)
				}
			}
			dir, files := store.ExistingAssets(tt.product, "1x1")
			if len(files) != tt.want {
				t.Fatalf("files = %v, want %d", files, tt.want)
			}
			if tt.want == 0 {
				if dir != "" {
					t.Fatalf("dir = %q, want miss", dir)
				}
				return
			}
			if files[0] != seeded {
				t.Fatalf("files[0] = %q, want %q", files[0], seeded)
			}
			if dir != store.Path(tt.product, "1x1") {
				t.Fatalf("dir = %q, want %q", dir, store.Path(tt.product, "1x1"))
			}
		})
	}
}

func TestExistingAssetsIgnoresPNGDirectories(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := store.EnsureDir(context.Background(), "shoe_x/1x1/nested.png"); err != nil {
		t.Fatalf("ensure dir: %v", err)
	}
	if dir, files := store.ExistingAssets("shoe_x", "1x1"); dir != "" || files != nil {
		t.Fatalf("directory named *.png must not count, got %q %v", dir, files)
	}
}
