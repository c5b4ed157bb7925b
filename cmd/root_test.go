package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"movie-booking-cli/logging"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(BuildInfo{Version: "1.2.3", Commit: "abc123"})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestMoviesCmd_PrintsCatalog(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "movies", "--log-dir", dir)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	for _, title := range []string{"Kalki 2898ad", "Bahubali : The Conclusion", "RRR", "Pushpa"} {
		if !strings.Contains(out, title) {
			t.Fatalf("expected %q in output, got:\n%s", title, out)
		}
	}
	if !strings.Contains(out, "Sci-Fi") || !strings.Contains(out, "Drama") {
		t.Fatalf("expected genres in output, got:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(dir, logging.FileName)); err != nil {
		t.Fatalf("expected log file in %s, got %v", dir, err)
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if strings.TrimSpace(out) != "movie-booking 1.2.3 (abc123)" {
		t.Fatalf("unexpected version output: %q", out)
	}
}

func TestRootCmd_InvalidConfigFile(t *testing.T) {
	_, err := execute(t, "movies", "--log-dir", t.TempDir(), "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}
