package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	vaultDir   string
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	vaultDir := filepath.Join(base, "vault")
	logDir := filepath.Join(base, "logs")
	if err := os.MkdirAll(vaultDir, 0o755); err != nil {
		t.Fatalf("create vault dir: %v", err)
	}

	configPath := filepath.Join(base, "config.toml")
	content := fmt.Sprintf("[paths]\nvault_dir = %q\nlog_dir = %q\n", vaultDir, logDir)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return &cliTestEnv{vaultDir: vaultDir, configPath: configPath, baseDir: base}
}

func (env *cliTestEnv) seed(t *testing.T, relPath, content string) {
	t.Helper()
	full := filepath.Join(env.vaultDir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatalf("create media dir: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		t.Fatalf("seed %s: %v", relPath, err)
	}
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

func TestCLIListAndShow(t *testing.T) {
	env := setupCLITestEnv(t)
	env.seed(t, "Salsa/On1/Beginner/cross-body-lead.mp4", "media")
	env.seed(t, "Tango/ocho.mp4", "media")

	out, _, err := runCLI(t, env.configPath, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "cross-body-lead")
	requireContains(t, out, "ocho")
	requireContains(t, out, "2 step(s)")

	out, _, err = runCLI(t, env.configPath, "list", "--dance", "Salsa")
	if err != nil {
		t.Fatalf("list --dance: %v", err)
	}
	requireContains(t, out, "cross-body-lead")
	if strings.Contains(out, "ocho") {
		t.Fatalf("dance filter leaked: %s", out)
	}

	out, _, err = runCLI(t, env.configPath, "show", "Tango/ocho.mp4")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "Tango")
	requireContains(t, out, "ocho")

	_, _, err = runCLI(t, env.configPath, "show", "Tango/missing.mp4")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestCLISetRenamesAndWritesSidecar(t *testing.T) {
	env := setupCLITestEnv(t)
	env.seed(t, "Salsa/old-name.mp4", "media")

	out, _, err := runCLI(t, env.configPath, "set", "Salsa/old-name.mp4",
		"--name", "New Name!", "--dance", "Salsa", "--class", "Beginner")
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	requireContains(t, out, "Updated Salsa/new-name.mp4")
	requireContains(t, out, "renamed from Salsa/old-name.mp4")

	renamed := filepath.Join(env.vaultDir, "Salsa", "new-name.mp4")
	if _, err := os.Stat(renamed); err != nil {
		t.Fatalf("media not renamed: %v", err)
	}
	sidecar, err := os.ReadFile(filepath.Join(env.vaultDir, "Salsa", "new-name.md"))
	if err != nil {
		t.Fatalf("sidecar missing: %v", err)
	}
	requireContains(t, string(sidecar), "stepName: New Name!")
	requireContains(t, string(sidecar), "classLevel: Beginner")
}

func TestCLISetMissingFileReportsNothingToUpdate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env.configPath, "set", "Salsa/gone.mp4", "--name", "Whatever")
	if err != nil {
		t.Fatalf("set on missing file must not error: %v", err)
	}
	requireContains(t, out, "nothing to update")
}

func TestCLIPlayedIncrementsCounter(t *testing.T) {
	env := setupCLITestEnv(t)
	env.seed(t, "Salsa/step.mp4", "media")

	for i := 0; i < 2; i++ {
		if _, _, err := runCLI(t, env.configPath, "played", "Salsa/step.mp4"); err != nil {
			t.Fatalf("played: %v", err)
		}
	}

	sidecar, err := os.ReadFile(filepath.Join(env.vaultDir, "Salsa", "step.md"))
	if err != nil {
		t.Fatalf("sidecar missing: %v", err)
	}
	requireContains(t, string(sidecar), "playCount: 2")

	_, _, err = runCLI(t, env.configPath, "played", "Salsa/missing.mp4")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestCLIOrganizeAndImport(t *testing.T) {
	env := setupCLITestEnv(t)
	env.seed(t, "inbox/clip.mp4", "payload")
	env.seed(t, "inbox/clip.md", "---\nstepName: Basic Step\ndance: Salsa\n---\n\n#DanceLibrary #salsa\n")

	out, _, err := runCLI(t, env.configPath, "organize", "inbox/clip.mp4")
	if err != nil {
		t.Fatalf("organize: %v", err)
	}
	requireContains(t, out, "Organized inbox/clip.mp4 -> Library/salsa/basic-step.mp4")

	external := filepath.Join(env.baseDir, "download.mp4")
	if err := os.WriteFile(external, []byte("fresh"), 0o644); err != nil {
		t.Fatalf("write import source: %v", err)
	}
	out, _, err = runCLI(t, env.configPath, "import", external)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	requireContains(t, out, "Imported")
	requireContains(t, out, "Library/download.mp4")
}
