package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeScene(t *testing.T, root, name, data string) {
	t.Helper()
	dir := filepath.Join(root, "scenes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
		t.Fatalf("write scene: %v", err)
	}
}

func TestRealMainWritesProfileOnFailedLoad(t *testing.T) {
	root := t.TempDir()
	profiles := t.TempDir()

	code := realMain([]string{"-root", root, "-scene", "missing", "-dump", "-profile", "cpu", "-profile-dir", profiles})
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if _, err := os.Stat(filepath.Join(profiles, "cpu.pprof")); err != nil {
		t.Fatalf("profile should be flushed before exit: %v", err)
	}
}

func TestRealMainAcceptsSceneExtension(t *testing.T) {
	root := t.TempDir()
	writeScene(t, root, "demo.dt", `{"sceneName":"demo","composite":{}}`)

	if code := realMain([]string{"-root", root, "-scene", "demo.dt", "-dump"}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
}

func TestRealMainRejectsBadFlags(t *testing.T) {
	if code := realMain([]string{"-profile", "trace"}); code != 2 {
		t.Fatalf("expected exit code 2 for unknown profile mode, got %d", code)
	}
	if code := realMain([]string{"-config", filepath.Join(t.TempDir(), "none.yaml")}); code != 1 {
		t.Fatalf("expected exit code 1 for missing config, got %d", code)
	}
}
