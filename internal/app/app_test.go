package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSource(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return path
}

func TestLoadBuildsTreeFromSource(t *testing.T) {
	path := writeSource(t, "menu.yaml", "- Breakfast:\n    - Eggs\n    - Bacon\n- Coffee\n")
	tr, err := Load(Config{Source: path, Title: "Breakfast Menu", ExpandAll: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Len() != 4 {
		t.Fatalf("expected 4 nodes, got %d", tr.Len())
	}
	if tr.Options.MenuTitle != "Breakfast Menu" || !tr.Options.ExpandAll {
		t.Fatalf("expected options from config, got %+v", tr.Options)
	}
}

func TestLoadNumbersInstances(t *testing.T) {
	path := writeSource(t, "menu.json", `["Coffee"]`)
	first, err := Load(Config{Source: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Load(Config{Source: path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("expected distinct tree ids, got %s twice", first.ID)
	}
	if second.All()[0].ID != second.ID+"_menuitem_0" {
		t.Fatalf("expected node id under %s, got %s", second.ID, second.All()[0].ID)
	}
}

func TestLoadPropagatesSourceErrors(t *testing.T) {
	if _, err := Load(Config{Source: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestExportToWriterAndFile(t *testing.T) {
	path := writeSource(t, "menu.html", "<ul><li>Breakfast<ul><li>Eggs</li></ul></li></ul>")
	tr, err := Load(Config{Source: path, Title: "Menu"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	if err := Export(tr, ExportStdout, &buf); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(buf.String(), `role="tree"`) {
		t.Fatalf("expected tree markup, got %s", buf.String())
	}

	out := filepath.Join(t.TempDir(), "menu.out.html")
	if err := Export(tr, out, nil); err != nil {
		t.Fatalf("export to file failed: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if string(data) != buf.String() {
		t.Fatalf("expected file export to match stdout export")
	}
}
