package organizer

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"stepvault/internal/config"
	"stepvault/internal/library"
	"stepvault/internal/logging"
	"stepvault/internal/services"
	"stepvault/internal/sidecar"
	"stepvault/internal/textutil"
	"stepvault/internal/vault"
)

// Organizer stages media files into the configured library folder using
// the folder and filename templates.
type Organizer struct {
	vault  vault.Vault
	cfg    *config.Config
	logger *slog.Logger
}

// New constructs an organizer over the given vault.
func New(v vault.Vault, cfg *config.Config, logger *slog.Logger) *Organizer {
	return &Organizer{vault: v, cfg: cfg, logger: logging.NewComponentLogger(logger, "organizer")}
}

// Organize copies a vault media file to its template-derived destination
// under the library folder and returns the destination path. The source
// and its sidecar are left untouched; a fresh sidecar is written at the
// destination only when none exists there yet.
func (o *Organizer) Organize(ctx context.Context, mediaPath string) (string, error) {
	logger := logging.WithContext(ctx, o.logger)

	if _, err := o.vault.Stat(mediaPath); err != nil {
		if vault.IsNotExist(err) {
			return "", services.Wrap(services.ErrNotFound, "organizer", "resolve source", "media file not found", err)
		}
		return "", services.Wrap(services.ErrTransient, "organizer", "resolve source", "failed to organize file", err)
	}

	_, base, ext := vault.SplitPath(mediaPath)
	if err := o.checkExtension(ext); err != nil {
		return "", err
	}

	rec := sidecar.Record{}
	if text, err := o.vault.ReadText(library.SidecarPathFor(mediaPath)); err == nil {
		rec = sidecar.RecordOf(sidecar.Parse(text))
	} else if !vault.IsNotExist(err) {
		logger.Warn("source sidecar unreadable, organizing on basename only",
			logging.String("path", mediaPath), logging.Error(err))
	}

	payload, err := o.vault.ReadBinary(mediaPath)
	if err != nil {
		return "", services.Wrap(services.ErrTransient, "organizer", "read source", "failed to organize file", err)
	}

	dest, err := o.stage(rec, base, ext, payload)
	if err != nil {
		return "", err
	}
	logger.Info("media file organized",
		logging.String("from", mediaPath), logging.String("to", dest))
	return dest, nil
}

// Import copies a file from outside the vault into the organized library.
// The intake allow-list is wider than the scanner's media list; formats
// accepted for intake only (avi) are stored but never get a preview.
func (o *Organizer) Import(ctx context.Context, osPath string) (string, error) {
	logger := logging.WithContext(ctx, o.logger)

	ext := filepath.Ext(osPath)
	if err := o.checkExtension(ext); err != nil {
		return "", err
	}
	base := strings.TrimSuffix(filepath.Base(osPath), ext)

	payload, err := os.ReadFile(osPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", services.Wrap(services.ErrNotFound, "organizer", "read import", "import source not found", err)
		}
		return "", services.Wrap(services.ErrTransient, "organizer", "read import", "failed to import file", err)
	}

	dest, err := o.stage(sidecar.Record{}, base, ext, payload)
	if err != nil {
		return "", err
	}
	logger.Info("media file imported",
		logging.String("from", osPath), logging.String("to", dest))
	return dest, nil
}

// stage performs the shared destination computation and write sequence:
// template expansion, folder creation, collision-safe filename allocation,
// binary copy, and a fresh sidecar when the destination has none.
func (o *Organizer) stage(rec sidecar.Record, base, ext string, payload []byte) (string, error) {
	name := rec.StepName
	if name == "" {
		name = base
	}
	values := map[string]string{
		"dance":    rec.Dance,
		"style":    rec.Style,
		"class":    rec.Class,
		"stepName": name,
	}

	folder := expandTemplate(o.cfg.Organizer.FolderTemplate, values)
	destDir := o.cfg.Organizer.LibraryFolder
	if folder != "" {
		if destDir != "" {
			destDir += "/"
		}
		destDir += folder
	}

	if destDir != "" {
		if err := o.vault.CreateFolder(destDir); err != nil {
			return "", services.Wrap(services.ErrTransient, "organizer", "create folder", "failed to organize file", err)
		}
	}

	filename := expandTemplate(o.cfg.Organizer.FilenameTemplate, values)
	if filename == "" {
		filename = textutil.Slugify(base)
	}

	dest, err := vault.NextAvailablePath(o.vault, destDir, filename, strings.ToLower(ext))
	if err != nil {
		return "", services.Wrap(services.ErrTransient, "organizer", "allocate filename", "failed to organize file", err)
	}

	if err := o.vault.WriteBinary(dest, payload); err != nil {
		return "", services.Wrap(services.ErrTransient, "organizer", "copy media", "failed to organize file", err)
	}

	destSidecar := library.SidecarPathFor(dest)
	if !vault.Exists(o.vault, destSidecar) {
		if rec.StepName == "" {
			rec.StepName = name
		}
		doc := sidecar.DocumentOf(rec)
		if err := o.vault.WriteText(destSidecar, doc.Serialize()); err != nil {
			return "", services.Wrap(services.ErrTransient, "organizer", "write sidecar", "failed to organize file", err)
		}
	}

	return dest, nil
}

func (o *Organizer) checkExtension(ext string) error {
	extension := strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, allowed := range o.cfg.ImportExtensions() {
		if extension == allowed {
			return nil
		}
	}
	return services.Wrap(services.ErrValidation, "organizer", "check extension",
		"unsupported media format "+strings.ToLower(ext), nil)
}
