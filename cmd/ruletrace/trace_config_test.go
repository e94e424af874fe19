package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, manifestName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[trace]
forward = false
backward = true
color = "off"
snippet_width = 16
`)

	m, ok, err := loadManifest(dir)
	if err != nil {
		t.Fatalf("loadManifest() error = %v", err)
	}
	if !ok {
		t.Fatal("loadManifest() did not find the manifest")
	}

	section := m.Config.Trace
	if section.Forward == nil || *section.Forward {
		t.Errorf("forward = %v, want false", section.Forward)
	}
	if section.Backward == nil || !*section.Backward {
		t.Errorf("backward = %v, want true", section.Backward)
	}
	if section.Color != "off" {
		t.Errorf("color = %q, want %q", section.Color, "off")
	}
	if section.SnippetWidth != 16 {
		t.Errorf("snippet_width = %d, want 16", section.SnippetWidth)
	}
}

func TestLoadManifest_WalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[trace]\nforward = false\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	m, ok, err := loadManifest(nested)
	if err != nil || !ok {
		t.Fatalf("loadManifest() = (%v, %v), want found", ok, err)
	}
	if m.Path != filepath.Join(root, manifestName) {
		t.Errorf("Path = %q, want manifest in %q", m.Path, root)
	}
}

func TestLoadManifest_UnsetFieldsStayNil(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[trace]\nsnippet_width = 8\n")

	m, ok, err := loadManifest(dir)
	if err != nil || !ok {
		t.Fatalf("loadManifest() = (%v, %v), want found", ok, err)
	}
	if m.Config.Trace.Forward != nil || m.Config.Trace.Backward != nil {
		t.Errorf("unset booleans decoded non-nil: %+v", m.Config.Trace)
	}
}

func TestLoadManifest_InvalidColor(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[trace]\ncolor = \"sometimes\"\n")

	if _, _, err := loadManifest(dir); err == nil {
		t.Error("loadManifest() accepted an invalid color mode")
	}
}

func TestLoadManifest_NegativeWidth(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[trace]\nsnippet_width = -1\n")

	if _, _, err := loadManifest(dir); err == nil {
		t.Error("loadManifest() accepted a negative snippet width")
	}
}

func TestValidateColorMode(t *testing.T) {
	for _, mode := range []string{"", "auto", "on", "off"} {
		if err := validateColorMode(mode); err != nil {
			t.Errorf("validateColorMode(%q) = %v, want nil", mode, err)
		}
	}
	if err := validateColorMode("maybe"); err == nil {
		t.Error("validateColorMode(\"maybe\") = nil, want error")
	}
}
