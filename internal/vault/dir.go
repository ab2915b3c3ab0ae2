package vault

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrPathEscape is returned when a resolved path escapes the vault boundary.
var ErrPathEscape = fmt.Errorf("path escapes vault boundary")

// Dir is a Vault backed by a directory on disk.
type Dir struct {
	root string
}

// NewDir opens a directory-backed vault rooted at root. The directory must
// already exist.
func NewDir(root string) (*Dir, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve vault root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("open vault: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open vault: %s is not a directory", abs)
	}
	return &Dir{root: abs}, nil
}

// Root returns the absolute filesystem path of the vault root.
func (d *Dir) Root() string { return d.root }

// safePath resolves a vault-relative path against the root and validates it
// stays within the vault boundary.
func (d *Dir) safePath(relPath string) (string, error) {
	abs := filepath.Join(d.root, filepath.FromSlash(relPath))
	abs = filepath.Clean(abs)
	if abs != d.root && !strings.HasPrefix(abs, d.root+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrPathEscape, relPath)
	}
	return abs, nil
}

// List walks the vault and returns every file, skipping hidden directories
// and hidden files (.obsidian, .git, .DS_Store and friends).
func (d *Dir) List() ([]FileInfo, error) {
	var files []FileInfo
	err := filepath.WalkDir(d.root, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			// A directory vanishing mid-walk is not fatal to the listing.
			return nil
		}
		if entry.IsDir() {
			if p != d.root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(entry.Name(), ".") {
			return nil
		}
		info, err := entry.Info()
		if err != nil {
			return nil
		}
		rel, err := filepath.Rel(d.root, p)
		if err != nil {
			return nil
		}
		files = append(files, FileInfo{
			Path:    filepath.ToSlash(rel),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list vault: %w", err)
	}
	return files, nil
}

func (d *Dir) Stat(filePath string) (FileInfo, error) {
	abs, err := d.safePath(filePath)
	if err != nil {
		return FileInfo{}, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return FileInfo{}, err
	}
	if info.IsDir() {
		return FileInfo{}, fmt.Errorf("stat %s: %w", filePath, fs.ErrNotExist)
	}
	return FileInfo{Path: filePath, Size: info.Size(), ModTime: info.ModTime()}, nil
}

func (d *Dir) ReadText(filePath string) (string, error) {
	data, err := d.ReadBinary(filePath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (d *Dir) WriteText(filePath, content string) error {
	return d.WriteBinary(filePath, []byte(content))
}

func (d *Dir) ReadBinary(filePath string) ([]byte, error) {
	abs, err := d.safePath(filePath)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(abs)
}

func (d *Dir) WriteBinary(filePath string, data []byte) error {
	abs, err := d.safePath(filePath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return err
	}
	return os.WriteFile(abs, data, 0o644)
}

func (d *Dir) Rename(oldPath, newPath string) error {
	oldAbs, err := d.safePath(oldPath)
	if err != nil {
		return err
	}
	newAbs, err := d.safePath(newPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(newAbs), 0o755); err != nil {
		return err
	}
	return os.Rename(oldAbs, newAbs)
}

func (d *Dir) Delete(filePath string) error {
	abs, err := d.safePath(filePath)
	if err != nil {
		return err
	}
	return os.Remove(abs)
}

func (d *Dir) CreateFolder(folderPath string) error {
	abs, err := d.safePath(folderPath)
	if err != nil {
		return err
	}
	return os.MkdirAll(abs, 0o755)
}
