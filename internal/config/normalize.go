package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeScanner()
	c.normalizeOrganizer()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.VaultDir) == "" {
		c.Paths.VaultDir = defaultVaultDir
	}
	if c.Paths.VaultDir, err = expandPath(c.Paths.VaultDir); err != nil {
		return fmt.Errorf("paths.vault_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeScanner() {
	c.Scanner.RootFolder = normalizeFolder(c.Scanner.RootFolder)
	c.Scanner.MediaExtensions = normalizeExtensions(c.Scanner.MediaExtensions)
	c.Scanner.ImageExtensions = normalizeExtensions(c.Scanner.ImageExtensions)
	if len(c.Scanner.MediaExtensions) == 0 {
		c.Scanner.MediaExtensions = Default().Scanner.MediaExtensions
	}
	if len(c.Scanner.ImageExtensions) == 0 {
		c.Scanner.ImageExtensions = Default().Scanner.ImageExtensions
	}
}

func (c *Config) normalizeOrganizer() {
	c.Organizer.LibraryFolder = normalizeFolder(c.Organizer.LibraryFolder)
	c.Organizer.FolderTemplate = strings.TrimSpace(c.Organizer.FolderTemplate)
	if c.Organizer.FolderTemplate == "" {
		c.Organizer.FolderTemplate = defaultFolderTemplate
	}
	c.Organizer.FilenameTemplate = strings.TrimSpace(c.Organizer.FilenameTemplate)
	if c.Organizer.FilenameTemplate == "" {
		c.Organizer.FilenameTemplate = defaultFilenameTemplate
	}
	c.Organizer.ImportExtensions = normalizeExtensions(c.Organizer.ImportExtensions)
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// normalizeFolder trims whitespace and path separators so vault-relative
// folders are stored without leading/trailing slashes.
func normalizeFolder(folder string) string {
	folder = strings.TrimSpace(folder)
	folder = strings.ReplaceAll(folder, "\\", "/")
	return strings.Trim(folder, "/")
}

func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	seen := map[string]struct{}{}
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		ext = strings.TrimPrefix(ext, ".")
		if ext == "" {
			continue
		}
		if _, ok := seen[ext]; ok {
			continue
		}
		seen[ext] = struct{}{}
		out = append(out, ext)
	}
	return out
}
