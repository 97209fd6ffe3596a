package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRepoRootContainsGoMod(t *testing.T) {
	root := RepoRoot(t)
	if _, err := os.Stat(filepath.Join(root, "go.mod")); err != nil {
		t.Fatalf("expected go.mod at %s: %v", root, err)
	}
}

func TestGoldenPathUnderTestdata(t *testing.T) {
	path := GoldenPath(t, "example.golden")
	if filepath.Base(filepath.Dir(path)) != "testdata" {
		t.Fatalf("expected golden under testdata, got %s", path)
	}
}
