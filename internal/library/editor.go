package library

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"stepvault/internal/logging"
	"stepvault/internal/services"
	"stepvault/internal/sidecar"
	"stepvault/internal/textutil"
	"stepvault/internal/vault"
)

// Patch is a partial metadata update; nil fields are left untouched.
type Patch struct {
	StepName     *string
	Description  *string
	Dance        *string
	Style        *string
	Class        *string
	PlayCount    *int
	LastPlayedAt *int64
}

// Editor merges metadata patches into sidecars and keeps media/sidecar
// pairs synchronized across renames.
type Editor struct {
	vault  vault.Vault
	logger *slog.Logger
	now    func() time.Time
}

// NewEditor constructs an editor over the given vault.
func NewEditor(v vault.Vault, logger *slog.Logger) *Editor {
	return &Editor{
		vault:  v,
		logger: logging.NewComponentLogger(logger, "editor"),
		now:    time.Now,
	}
}

// SetClock overrides the time source (used in tests).
func (e *Editor) SetClock(now func() time.Time) { e.now = now }

// Upsert merges a metadata patch into the sidecar next to mediaPath,
// creating the sidecar when absent. When the patch carries a new step name
// whose slug differs from the current basename, the media file is renamed
// to the slug (collision suffixes appended as needed) and the sidecar is
// renamed alongside it. The possibly-updated media path is returned; the
// caller must re-key on it.
//
// A media file that vanished before the call is a silent no-op, consistent
// with editing after an external delete.
func (e *Editor) Upsert(ctx context.Context, mediaPath string, patch Patch) (string, error) {
	logger := logging.WithContext(ctx, e.logger)

	if _, err := e.vault.Stat(mediaPath); err != nil {
		if vault.IsNotExist(err) {
			logger.Debug("media file missing, skipping upsert", logging.String("path", mediaPath))
			return mediaPath, nil
		}
		return mediaPath, services.Wrap(services.ErrTransient, "upsert", "resolve media", "failed to update step", err)
	}

	newPath := mediaPath
	oldSidecar := SidecarPathFor(mediaPath)
	renamed := false
	oldSidecarKept := false

	if patch.StepName != nil && strings.TrimSpace(*patch.StepName) != "" {
		slug := textutil.Slugify(*patch.StepName)
		dir, base, ext := vault.SplitPath(mediaPath)
		// A basename that already equals the slug, modulo a collision
		// counter, is treated as already renamed so repeated upserts with
		// the same patch converge on one path.
		if slug != "" && slug != base && slug != textutil.TrimCounterSuffix(base) {
			dest, err := vault.NextAvailablePath(e.vault, dir, slug, ext)
			if err != nil {
				return mediaPath, services.Wrap(services.ErrTransient, "upsert", "allocate filename", "failed to update step", err)
			}
			if err := e.vault.Rename(mediaPath, dest); err != nil {
				return mediaPath, services.Wrap(services.ErrTransient, "upsert", "rename media", "failed to update step", err)
			}
			renamed = true
			newPath = dest
			logger.Info("media file renamed",
				logging.String("from", mediaPath), logging.String("to", dest))

			newSidecar := SidecarPathFor(dest)
			if vault.Exists(e.vault, oldSidecar) {
				switch {
				case vault.Exists(e.vault, newSidecar):
					// Never overwrite a pre-existing sidecar at the target
					// name; the old copy stays behind instead of losing data.
					oldSidecarKept = true
					logger.Warn("sidecar already exists at target name, keeping old copy",
						logging.String("old", oldSidecar), logging.String("target", newSidecar))
				default:
					if err := e.vault.Rename(oldSidecar, newSidecar); err != nil {
						// The old sidecar now holds the only copy of any
						// un-merged fields; it must survive the cleanup below.
						oldSidecarKept = true
						logger.Warn("sidecar rename failed, old sidecar kept",
							logging.String("old", oldSidecar), logging.Error(err))
					}
				}
			}
		}
	}

	newSidecar := SidecarPathFor(newPath)
	doc := sidecar.NewDocument()
	if text, err := e.vault.ReadText(newSidecar); err == nil {
		doc = sidecar.Parse(text)
	} else if !vault.IsNotExist(err) {
		return newPath, services.Wrap(services.ErrTransient, "upsert", "read sidecar", "failed to update step", err)
	}

	applyPatch(doc, patch)
	doc.Body = sidecar.ApplyTagLine(doc.Body, sidecar.RecordOf(doc).Dance)

	if err := e.vault.WriteText(newSidecar, doc.Serialize()); err != nil {
		return newPath, services.Wrap(services.ErrTransient, "upsert", "write sidecar", "failed to update step", err)
	}

	// Only now that a sidecar definitely exists at the new path is the
	// orphan from the rename safe to remove. A sidecar left behind by a
	// name conflict or a failed rename holds unmerged data and stays.
	if renamed && oldSidecar != newSidecar && !oldSidecarKept && vault.Exists(e.vault, oldSidecar) {
		if err := e.vault.Delete(oldSidecar); err != nil {
			logger.Warn("failed to remove orphaned sidecar",
				logging.String("path", oldSidecar), logging.Error(err))
		}
	}

	logger.Info("step metadata updated", logging.String("path", newPath))
	return newPath, nil
}

// MarkPlayed increments the play counter and stamps the last-played time.
func (e *Editor) MarkPlayed(ctx context.Context, mediaPath string) (string, error) {
	count := 1
	if text, err := e.vault.ReadText(SidecarPathFor(mediaPath)); err == nil {
		count = sidecar.RecordOf(sidecar.Parse(text)).PlayCount + 1
	}
	millis := e.now().UnixMilli()
	return e.Upsert(ctx, mediaPath, Patch{PlayCount: &count, LastPlayedAt: &millis})
}

func applyPatch(doc *sidecar.Document, patch Patch) {
	if patch.StepName != nil {
		doc.Set(sidecar.KeyStepName, strings.TrimSpace(*patch.StepName))
	}
	if patch.Description != nil {
		doc.Set(sidecar.KeyDescription, strings.TrimSpace(*patch.Description))
	}
	if patch.Dance != nil {
		doc.Set(sidecar.KeyDance, strings.TrimSpace(*patch.Dance))
	}
	if patch.Style != nil {
		sidecar.SetStyle(doc, strings.TrimSpace(*patch.Style))
	}
	if patch.Class != nil {
		sidecar.SetClass(doc, strings.TrimSpace(*patch.Class))
	}
	if patch.PlayCount != nil {
		sidecar.SetPlayCount(doc, *patch.PlayCount)
	}
	if patch.LastPlayedAt != nil {
		sidecar.SetLastPlayedAt(doc, *patch.LastPlayedAt)
	}
}
