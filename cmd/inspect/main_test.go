package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_LoadErrorGoesToStderr(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{filepath.Join(t.TempDir(), "none.json")}, &stdout, &stderr)
	if code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want nothing", stdout.String())
	}
	if !strings.HasPrefix(stderr.String(), "Error: ") {
		t.Errorf("stderr = %q, want an Error line", stderr.String())
	}
}

func TestRun_Summary(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-pixel=0,0", "basic"}, &stdout, &stderr); code != 2 {
		t.Errorf("unknown flag exit code = %d, want 2", code)
	}

	stdout.Reset()
	stderr.Reset()
	if code := run([]string{"basic"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, stderr %q", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "spheres=") || stderr.Len() != 0 {
		t.Errorf("stdout = %q, stderr = %q", stdout.String(), stderr.String())
	}
}
