// Package testsupport provides shared helpers for package tests: temp-dir
// configs and vault seeding.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"stepvault/internal/config"
	"stepvault/internal/vault"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.VaultDir = filepath.Join(base, "vault")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	if err := os.MkdirAll(cfg.Paths.VaultDir, 0o755); err != nil {
		t.Fatalf("mkdir vault: %v", err)
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithFolderTemplate overrides the organizer folder template.
func WithFolderTemplate(template string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Organizer.FolderTemplate = template
	}
}

// WithLibraryFolder overrides the organizer library folder.
func WithLibraryFolder(folder string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Organizer.LibraryFolder = folder
	}
}

// NewVault opens a directory vault over the config's vault dir.
func NewVault(t testing.TB, cfg *config.Config) *vault.Dir {
	t.Helper()
	v, err := vault.NewDir(cfg.Paths.VaultDir)
	if err != nil {
		t.Fatalf("open vault: %v", err)
	}
	return v
}

// Seed writes a file into the vault, creating parent folders as needed.
func Seed(t testing.TB, v vault.Vault, path, content string) {
	t.Helper()
	if err := v.WriteText(path, content); err != nil {
		t.Fatalf("seed %s: %v", path, err)
	}
}
