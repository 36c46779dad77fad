package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"
)

const testInput = `{"a": 1, "b": {"c": [1, 2], "d": "x"}}`

func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errs bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errs)
	err := cmd.Execute()
	return out.String(), err
}

func TestRun(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"Tree", testInput, nil, `.
├── a: 1
└── b
    ├── c [2 elements]
    └── d: x
`},
		{"Plain", testInput, []string{"--plain"}, `.
    a: 1
    b
        c [2 elements]
        d: x
`},
		{"Path", testInput, []string{"--path", "b"}, `.
├── c [2 elements]
└── d: x
`},
		{"PathScalar", testInput, []string{"--path", "b.c[-1]"}, "2\n"},
		{"YAML", "c: [1, 2]\nd: x\n", []string{"--yaml"}, `.
├── c [2 elements]
└── d: x
`},
		{"HuJSON", "[{\"n\": 1}, // first\n {\"n\": 2},]", []string{"-"}, `. [2 elements]
├── # 1
│   └── n: 1
└── # 2
    └── n: 2
`},
		{"NeverColor", `[{"n":1}]`, []string{"--color=never"}, `. [1 elements]
└── # 1
    └── n: 1
`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := runCmd(t, tc.stdin, tc.args...)
			if err != nil {
				t.Fatalf("Execute %q: unexpected error: %v", tc.args, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Output (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestRunFiles(t *testing.T) {
	dir := t.TempDir()
	p1 := filepath.Join(dir, "one.json")
	p2 := filepath.Join(dir, "two.json")
	if err := os.WriteFile(p1, []byte(`{"x": true}`), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p2, []byte(`null`), 0600); err != nil {
		t.Fatal(err)
	}
	got, err := runCmd(t, "", p1, p2)
	if err != nil {
		t.Fatalf("Execute: unexpected error: %v", err)
	}
	if want := ".\n└── x: true\nnull\n"; got != want {
		t.Errorf("Output: got %q, want %q", got, want)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
	}{
		{"BadJSON", `{"a":`, nil},
		{"BadYAML", "a: [1", []string{"--yaml"}},
		{"BadPath", testInput, []string{"--path", "a..b"}},
		{"MissingKey", testInput, []string{"--path", "nonesuch"}},
		{"BadColor", testInput, []string{"--color", "sometimes"}},
		{"NoFile", "", []string{filepath.Join(t.TempDir(), "missing.json")}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := runCmd(t, tc.stdin, tc.args...)
			if err == nil {
				t.Fatalf("Execute %q: got %q, want error", tc.args, got)
			}
			t.Logf("Got expected error: %v", err)
		})
	}
}

func TestColor(t *testing.T) {
	got, err := runCmd(t, testInput, "--color", "always")
	if err != nil {
		t.Fatalf("Execute: unexpected error: %v", err)
	}
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("Output has no escape sequences: %q", got)
	}
	if !strings.Contains(got, "a: 1") {
		t.Errorf("Output is missing labels: %q", got)
	}
}

func TestColorize(t *testing.T) {
	st := lipgloss.NewStyle()
	tests := []struct {
		line string
		n    int
	}{
		{".", 0},
		{"├── a: 1", len("├── ")},
		{"│   └── b", len("│   └── ")},
		{"        c", len("        ")},
		{"    └── ", len("    └── ")},
		{"  x", 0},
	}
	for _, tc := range tests {
		if got := prefixLen(tc.line); got != tc.n {
			t.Errorf("prefixLen(%q): got %d, want %d", tc.line, got, tc.n)
		}
	}
	tree := ".\n├── a\n└── b"
	if got := colorize(tree, st); got != tree {
		t.Errorf("colorize with empty style: got %q, want %q", got, tree)
	}
}
