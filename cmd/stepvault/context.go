package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"stepvault/internal/config"
	"stepvault/internal/logging"
	"stepvault/internal/services"
	"stepvault/internal/vault"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) openVault() (*vault.Dir, *config.Config, *slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, nil, nil, err
	}
	v, err := vault.NewDir(cfg.Paths.VaultDir)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open vault: %w", err)
	}
	return v, cfg, logger, nil
}

// withVaultLock serializes mutating commands through a file lock in the log
// directory. Scans run unlocked; they tolerate files changing underneath.
func (c *commandContext) withVaultLock(fn func() error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	lock := flock.New(filepath.Join(cfg.Paths.LogDir, "stepvault.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire vault lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("another stepvault instance holds the vault lock")
	}
	defer func() {
		_ = lock.Unlock()
	}()
	return fn()
}

// operationContext tags the command context with an operation name, the
// target path, and a fresh correlation ID so every log line from one
// invocation can be tied together.
func operationContext(cmd *cobra.Command, operation, path string) context.Context {
	ctx := services.WithRequestID(cmd.Context(), uuid.NewString())
	ctx = services.WithOperation(ctx, operation)
	return services.WithPath(ctx, path)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
