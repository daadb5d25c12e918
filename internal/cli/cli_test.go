package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommand(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()

	if root.Use != "tinge" {
		t.Errorf("root.Use = %q, want %q", root.Use, "tinge")
	}

	want := []string{"render", "palette", "effects", "theme", "preview", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	c.SetLogLevel(LogDebug)
	if got := c.Logger.GetLevel(); got != LogDebug {
		t.Errorf("log level = %v, want %v", got, LogDebug)
	}
}

func TestThemeListCommand(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"theme", "list", "testdata/demo.toml"})

	if err := root.Execute(); err != nil {
		t.Fatalf("theme list error: %v", err)
	}

	got := strings.Fields(out.String())
	want := []string{"error", "link", "muted"}
	if len(got) != len(want) {
		t.Fatalf("theme list = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("theme list[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
