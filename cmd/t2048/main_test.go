package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("t2048 %s: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "t2048.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConfigCommand(t *testing.T) {
	path := writeConfig(t, "grid:\n  size: 5\n")
	out := execute(t, "config", "--config", path, "--win", "1024", "--log-level", "error")
	for _, want := range []string{"size: 5", "threshold: 1024", "weights:"} {
		if !strings.Contains(out, want) {
			t.Errorf("config output missing %q:\n%s", want, out)
		}
	}
}

func TestAutoplayCommand(t *testing.T) {
	path := writeConfig(t, "grid:\n  size: 3\nwin:\n  threshold: 64\n")
	out := execute(t, "autoplay", "--config", path, "--seed", "3", "--games", "2",
		"--policy", "priority", "--log-level", "error")
	if !strings.Contains(out, "Games: 2") {
		t.Errorf("autoplay summary missing:\n%s", out)
	}
	if strings.Count(out, "game ") != 2 {
		t.Errorf("want one line per game:\n%s", out)
	}
}
