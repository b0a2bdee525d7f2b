package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/drift/pkg/features"
	"github.com/matzehuels/drift/pkg/prng"
)

// execute runs the root command with args and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	want := []string{"features", "capture", "record", "play", "serve", "browse", "slots", "cache", "completion"}
	for _, name := range want {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	for _, flag := range []string{"config", "seed", "combination"} {
		if root.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("missing persistent flag --%s", flag)
		}
	}
}

func TestFeaturesJSON(t *testing.T) {
	out, err := execute(t, "features", "--json", "--seed", "fixed-test-seed", "--combination", "0")
	if err != nil {
		t.Fatal(err)
	}
	var got features.Summary
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}

	set, err := features.Derive(0, prng.New("fixed-test-seed"))
	if err != nil {
		t.Fatal(err)
	}
	if got.Label != set.Label || got.Filename != set.Filename() {
		t.Errorf("got %q / %q, want %q / %q", got.Label, got.Filename, set.Label, set.Filename())
	}
}

func TestFeaturesTable(t *testing.T) {
	out, err := execute(t, "features", "--seed", "table", "--combination", "42")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"combination", "42 / ", "background", "tempo"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestFeaturesInvalidSeed(t *testing.T) {
	if _, err := execute(t, "features", "--seed", "two words"); err == nil {
		t.Error("expected an error for a seed with whitespace")
	}
}

func TestLoadConfigFileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drift.toml")
	body := "seed = \"from-file\"\ncombination = 7\nwidth = 48\nheight = 32\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "--config", path, "features", "--json")
	if err != nil {
		t.Fatal(err)
	}
	var got features.Summary
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatal(err)
	}
	if got.Seed != "from-file" || got.Combination != 7 {
		t.Errorf("file values not used: seed %q combination %d", got.Seed, got.Combination)
	}

	out, err = execute(t, "--config", path, "--seed", "from-flag", "-c", "9", "features", "--json")
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatal(err)
	}
	if got.Seed != "from-flag" || got.Combination != 9 {
		t.Errorf("flags did not override: seed %q combination %d", got.Seed, got.Combination)
	}
}

func TestSlotsDOT(t *testing.T) {
	out, err := execute(t, "slots")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "digraph G {") || !strings.Contains(out, features.SlotPalette) {
		t.Errorf("unexpected DOT output:\n%s", out)
	}
	if _, err := execute(t, "slots", "--format", "pdf"); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestCaptureCommand(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, "capture", "--seed", "cli", "-c", "5", "--frames", "12", "--out", dir, "--no-cache"); err != nil {
		t.Fatal(err)
	}
	set, err := features.Derive(5, prng.New("cli"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, set.Filename())); err != nil {
		t.Errorf("capture not written: %v", err)
	}
}

func TestCaptureAllRange(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, "capture", "--seed", "cli", "--all", "--from", "10", "--to", "13", "--frames", "5", "--out", dir); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Errorf("wrote %d files, want 3", len(entries))
	}
}

func TestRecordCommand(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, "record", "--seed", "rec", "-c", "1", "-n", "6", "--every", "2", "--out", dir); err != nil {
		t.Fatal(err)
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "*-000?.png"))
	if len(matches) != 3 {
		t.Errorf("recorded %d frames, want 3: %v", len(matches), matches)
	}
}

func TestCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		out, err := execute(t, "completion", shell)
		if err != nil || !strings.Contains(out, "drift") {
			t.Errorf("completion %s: err %v, %d bytes", shell, err, len(out))
		}
	}
	if _, err := execute(t, "completion", "tcsh"); err == nil {
		t.Error("expected an error for an unsupported shell")
	}
}

func TestCachePath(t *testing.T) {
	out, err := execute(t, "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, appName) {
		t.Errorf("cache path %q does not mention %s", out, appName)
	}
}
