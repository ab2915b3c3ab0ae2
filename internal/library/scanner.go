package library

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"stepvault/internal/config"
	"stepvault/internal/logging"
	"stepvault/internal/services"
	"stepvault/internal/sidecar"
	"stepvault/internal/vault"
)

// Scanner enumerates media files in the vault and projects them into items.
type Scanner struct {
	vault  vault.Vault
	cfg    *config.Config
	logger *slog.Logger
}

// NewScanner constructs a scanner over the given vault.
func NewScanner(v vault.Vault, cfg *config.Config, logger *slog.Logger) *Scanner {
	return &Scanner{vault: v, cfg: cfg, logger: logging.NewComponentLogger(logger, "scanner")}
}

// Scan lists every media file under root (the whole vault when root is
// empty) and returns one item per file, ordered by path ascending. A
// failure to read an individual sidecar never aborts the scan; the item
// simply keeps its path-inferred defaults.
func (s *Scanner) Scan(ctx context.Context, root string) ([]Item, error) {
	logger := logging.WithContext(ctx, s.logger)
	root = strings.Trim(strings.TrimSpace(root), "/")

	files, err := s.vault.List()
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "scanner", "list vault", "failed to scan library", err)
	}

	mediaExts := extensionSet(s.cfg.Scanner.MediaExtensions)
	imageExts := extensionSet(s.cfg.Scanner.ImageExtensions)

	byPath := make(map[string]vault.FileInfo, len(files))
	byDir := make(map[string][]vault.FileInfo)
	for _, fi := range files {
		byPath[fi.Path] = fi
		dir, _, _ := vault.SplitPath(fi.Path)
		byDir[dir] = append(byDir[dir], fi)
	}
	for _, siblings := range byDir {
		sort.Slice(siblings, func(i, j int) bool { return siblings[i].Path < siblings[j].Path })
	}

	var items []Item
	for _, fi := range files {
		dir, base, ext := vault.SplitPath(fi.Path)
		extension := strings.ToLower(strings.TrimPrefix(ext, "."))
		if _, ok := mediaExts[extension]; !ok {
			continue
		}
		if root != "" && !strings.HasPrefix(fi.Path, root+"/") {
			continue
		}

		item := Item{
			Path:      fi.Path,
			Basename:  base,
			Extension: extension,
			Name:      base,
			AddedAt:   fi.ModTime,
		}

		// Category inference walks the folder segments relative to the root:
		// first segment names the dance, second the style, third the class.
		relDir := dir
		if root != "" {
			relDir = strings.TrimPrefix(dir, root)
			relDir = strings.Trim(relDir, "/")
		}
		if relDir != "" {
			segments := strings.Split(relDir, "/")
			if len(segments) >= 1 {
				item.Dance = segments[0]
			}
			if len(segments) >= 2 {
				item.Style = segments[1]
			}
			if len(segments) >= 3 {
				item.Class = segments[2]
			}
		}

		for _, sibling := range byDir[dir] {
			_, sibBase, sibExt := vault.SplitPath(sibling.Path)
			sibExtension := strings.ToLower(strings.TrimPrefix(sibExt, "."))
			if _, ok := imageExts[sibExtension]; !ok {
				continue
			}
			if strings.EqualFold(sibBase, base) {
				item.ThumbnailPath = sibling.Path
				break
			}
		}

		if scPath := SidecarPathFor(fi.Path); hasFile(byPath, scPath) {
			text, err := s.vault.ReadText(scPath)
			if err != nil {
				logger.Warn("sidecar unreadable, using path-inferred metadata",
					logging.String("path", fi.Path), logging.Error(err))
			} else {
				applyRecord(&item, sidecar.RecordOf(sidecar.Parse(text)))
			}
		}

		items = append(items, item)
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Path < items[j].Path })
	logger.Debug("scan completed", logging.String("root", root), logging.Int("items", len(items)))
	return items, nil
}

// applyRecord overlays sidecar values onto the path-inferred item; only
// non-empty recognized fields override.
func applyRecord(item *Item, rec sidecar.Record) {
	if rec.StepName != "" {
		item.Name = rec.StepName
	}
	if rec.Description != "" {
		item.Description = rec.Description
	}
	if rec.Dance != "" {
		item.Dance = rec.Dance
	}
	if rec.Style != "" {
		item.Style = rec.Style
	}
	if rec.Class != "" {
		item.Class = rec.Class
	}
	if rec.PlayCount > 0 {
		item.PlayCount = rec.PlayCount
	}
	if rec.LastPlayedAt > 0 {
		item.LastPlayedAt = rec.LastPlayedAt
	}
}

func hasFile(byPath map[string]vault.FileInfo, filePath string) bool {
	_, ok := byPath[filePath]
	return ok
}

func extensionSet(exts []string) map[string]struct{} {
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		set[strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))] = struct{}{}
	}
	return set
}
