package vault

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"time"
)

// FileInfo describes one file inside the vault.
type FileInfo struct {
	Path    string // vault-relative, slash-separated
	Size    int64
	ModTime time.Time
}

// Vault is the file-tree capability surface the core operates against.
// Paths are vault-relative and slash-separated; implementations reject
// paths that escape the vault root.
type Vault interface {
	// List enumerates every file in the vault, in unspecified order.
	List() ([]FileInfo, error)
	// Stat returns info for a single file. The error wraps fs.ErrNotExist
	// when no file exists at the path.
	Stat(filePath string) (FileInfo, error)
	ReadText(filePath string) (string, error)
	// WriteText creates or replaces a text file, creating parent folders
	// as needed.
	WriteText(filePath, content string) error
	ReadBinary(filePath string) ([]byte, error)
	WriteBinary(filePath string, data []byte) error
	Rename(oldPath, newPath string) error
	Delete(filePath string) error
	// CreateFolder creates the folder and any missing ancestors;
	// an already existing folder is not an error.
	CreateFolder(folderPath string) error
}

// Exists reports whether a file is present at the path. Errors other than
// not-exist are treated as absent; callers that need the distinction use
// Stat directly.
func Exists(v Vault, filePath string) bool {
	_, err := v.Stat(filePath)
	return err == nil
}

// IsNotExist reports whether err indicates a missing file.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

const maxPathAttempts = 10000

// NextAvailablePath allocates a collision-free path inside dir for the given
// base name and extension (with leading dot, may be empty). The first free
// candidate among "base", "base 2", "base 3", … wins, so repeated
// allocations produce deterministically ordered distinct paths.
func NextAvailablePath(v Vault, dir, base, ext string) (string, error) {
	for attempt := 1; attempt <= maxPathAttempts; attempt++ {
		name := base
		if attempt > 1 {
			name = fmt.Sprintf("%s %d", base, attempt)
		}
		candidate := path.Join(dir, name+ext)
		if _, err := v.Stat(candidate); err != nil {
			if IsNotExist(err) {
				return candidate, nil
			}
			return "", err
		}
	}
	return "", fmt.Errorf("exhausted filename slots for %s in %s", base, dir)
}

// SplitPath breaks a vault path into its parent folder, basename (without
// extension), and extension (with leading dot, possibly empty).
func SplitPath(filePath string) (dir, base, ext string) {
	dir = path.Dir(filePath)
	if dir == "." {
		dir = ""
	}
	name := path.Base(filePath)
	ext = path.Ext(name)
	base = name[:len(name)-len(ext)]
	return dir, base, ext
}
