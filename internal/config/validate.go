package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateOrganizer(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.VaultDir) == "" {
		return errors.New("paths.vault_dir must be set")
	}
	return nil
}

func (c *Config) validateOrganizer() error {
	for _, tpl := range []struct {
		name  string
		value string
	}{
		{"organizer.folder_template", c.Organizer.FolderTemplate},
		{"organizer.filename_template", c.Organizer.FilenameTemplate},
	} {
		if strings.Contains(tpl.value, "..") {
			return fmt.Errorf("%s must not contain path traversal", tpl.name)
		}
	}
	if strings.Contains(c.Organizer.FilenameTemplate, "/") {
		return errors.New("organizer.filename_template must not contain path separators")
	}
	if strings.Contains(c.Organizer.LibraryFolder, "..") {
		return errors.New("organizer.library_folder must stay inside the vault")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
}
