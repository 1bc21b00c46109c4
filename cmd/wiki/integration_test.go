package main

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/csheth/wiki/internal/tuitest"
)

func TestWikiStartsAndPersistsTheme(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the binary")
	}
	t.Parallel()

	binary := buildBinary(t, moduleDir(t))
	work := t.TempDir()
	state := filepath.Join(work, "state.yaml")

	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{binary, "--no-alt-screen", "--state", state},
		Dir:     work,
		Env:     []string{"XDG_CONFIG_HOME=" + filepath.Join(work, "xdg"), "WIKI_DEBUG="},
		Width:   120,
		Height:  32,
		Steps: []tuitest.Step{
			{WaitFor: "Contents", Input: []byte("t")},
			{WaitFor: "☀", Input: tuitest.KeyCtrlC},
		},
		Timeout:        10 * time.Second,
		AllowInterrupt: true,
	})
	if err != nil {
		t.Fatalf("run CLI: %v", err)
	}

	plain := rec.PlainOutput()
	for _, want := range []string{"Personal Wiki", "Contents", "Introduction", "References"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("output missing %q\n%s", want, plain)
		}
	}

	data, err := os.ReadFile(state)
	if err != nil {
		t.Fatalf("read state: %v", err)
	}
	if !strings.Contains(string(data), "theme: dark") {
		t.Fatalf("state = %q, want theme: dark", data)
	}
}

func moduleDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller unavailable")
	}
	return filepath.Dir(file)
}

func buildBinary(t *testing.T, cmdDir string) string {
	t.Helper()
	name := "wiki-integration"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	binPath := filepath.Join(t.TempDir(), name)
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = cmdDir
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build CLI: %v\n%s", err, output)
	}
	return binPath
}
