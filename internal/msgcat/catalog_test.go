package msgcat

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedCatalogLoads(t *testing.T) {
	c, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := c.Render("cli.banner", nil)
	if err != nil {
		t.Fatalf("Render(cli.banner): %v", err)
	}
	if !strings.Contains(out, "chesskit") {
		t.Fatalf("banner = %q, want it to mention chesskit", out)
	}
}

func TestRenderWithData(t *testing.T) {
	c, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := c.Render("cli.turn", map[string]any{"Colour": "white"})
	if err != nil {
		t.Fatalf("Render(cli.turn): %v", err)
	}
	if !strings.Contains(out, "white") {
		t.Fatalf("turn line = %q, want the colour substituted", out)
	}

	// missingkey=error surfaces template data gaps instead of printing <no value>.
	if _, err := c.Render("cli.turn", map[string]any{}); err == nil {
		t.Fatal("rendering with missing data succeeded")
	}
}

func TestRenderUnknownKey(t *testing.T) {
	c, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := c.Render("cli.no_such_key", nil); err == nil {
		t.Fatal("unknown key rendered without error")
	}
}

func TestOverrideDirectory(t *testing.T) {
	dir := t.TempDir()
	override := "cli:\n  banner: \"custom banner\"\nextra:\n  greeting: \"hello {{.Name}}\"\n"
	if err := os.WriteFile(filepath.Join(dir, "override.yaml"), []byte(override), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}

	c, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := c.Render("cli.banner", nil)
	if err != nil {
		t.Fatalf("Render(cli.banner): %v", err)
	}
	if out != "custom banner" {
		t.Fatalf("banner = %q, want the override", out)
	}

	// Keys untouched by the override keep their embedded defaults.
	if _, err := c.Render("cli.help", nil); err != nil {
		t.Fatalf("Render(cli.help): %v", err)
	}

	out, err = c.Render("extra.greeting", map[string]any{"Name": "magnus"})
	if err != nil {
		t.Fatalf("Render(extra.greeting): %v", err)
	}
	if out != "hello magnus" {
		t.Fatalf("greeting = %q", out)
	}
}

func TestDuplicateOverrideKeysRejected(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.yaml", "b.yaml"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("cli:\n  banner: \"dup\"\n"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	if _, err := New(dir); err == nil {
		t.Fatal("duplicate override keys accepted")
	}
}

func TestNonStringLeafRejected(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("cli:\n  retries: 3\n"), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}
	if _, err := New(dir); err == nil {
		t.Fatal("numeric leaf accepted")
	}
}
