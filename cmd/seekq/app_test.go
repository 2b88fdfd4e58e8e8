package main

import (
	"bytes"
	"strings"
	"testing"

	"pkt.systems/seekd/internal/version"
)

func executeRootCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCommandPrintsCurrentVersion(t *testing.T) {
	stdout, stderr, err := executeRootCommand(t, "", "version")
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}
	if stderr != "" {
		t.Fatalf("expected empty stderr, got %q", stderr)
	}
	want := version.Module() + " " + version.Current() + "\n"
	if stdout != want {
		t.Fatalf("unexpected stdout: got %q want %q", stdout, want)
	}
}

func TestBuildCommandReadsStdin(t *testing.T) {
	def := "text: tv\nhitsPerPage: 5\n"
	stdout, _, err := executeRootCommand(t, def, "build")
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if stdout != "hitsPerPage=5&query=tv\n" {
		t.Fatalf("unexpected canonical string %q", stdout)
	}
}

func TestBuildCommandRejectsBadEnum(t *testing.T) {
	def := "queryType: banana\n"
	_, _, err := executeRootCommand(t, def, "build")
	if err == nil || !strings.Contains(err.Error(), "queryType") {
		t.Fatalf("expected queryType error, got %v", err)
	}
}

func TestParseCommandEmitsSortedYAML(t *testing.T) {
	stdout, _, err := executeRootCommand(t, "", "parse", "query=tv%20set&bad&page=2")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	want := "page: \"2\"\nquery: tv set\n"
	if stdout != want {
		t.Fatalf("unexpected output: got %q want %q", stdout, want)
	}
}

func TestParseCommandEmptyInput(t *testing.T) {
	stdout, _, err := executeRootCommand(t, "", "parse", "")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if strings.TrimSpace(stdout) != "{}" {
		t.Fatalf("expected empty map, got %q", stdout)
	}
}
