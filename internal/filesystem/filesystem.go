// Package filesystem provides the file system operations used to render trees.
package filesystem

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"github.com/taigrr/cli-commands/internal/types"
)

// Service provides file system operations over an afero filesystem.
type Service struct {
	fs afero.Afero
}

// New creates a new Service. A nil fs means the host filesystem.
func New(fs afero.Fs) *Service {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Service{fs: afero.Afero{Fs: fs}}
}

// Fs returns the underlying filesystem.
func (s *Service) Fs() afero.Fs {
	return s.fs.Fs
}

// ListDirectory lists the subdirectories and regular files of a directory.
// Symlinks are classified by what they point at; broken links and special
// files are left out.
func (s *Service) ListDirectory(path string) (types.DirectoryListing, error) {
	entries, err := s.fs.ReadDir(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.DirectoryListing{}, fmt.Errorf("directory not found: %s", path)
		}
		if errors.Is(err, fs.ErrPermission) {
			return types.DirectoryListing{}, fmt.Errorf("permission denied: %s", path)
		}
		return types.DirectoryListing{}, fmt.Errorf("failed to list directory: %s - %w", path, err)
	}

	files := []string{}
	directories := []string{}

	for _, entry := range entries {
		info := entry
		if entry.Mode()&os.ModeSymlink != 0 {
			target, err := s.fs.Stat(filepath.Join(path, entry.Name()))
			if err != nil {
				continue
			}
			info = target
		}

		if info.IsDir() {
			directories = append(directories, entry.Name())
		} else if info.Mode().IsRegular() {
			files = append(files, entry.Name())
		}
	}

	sort.Strings(files)
	sort.Strings(directories)

	return types.DirectoryListing{
		Files:       files,
		Directories: directories,
	}, nil
}

// ContainsFile reports whether any regular file below root satisfies match.
// A symlinked root is followed. Nested symlinks to files are matched by
// their own name; nested symlinks to directories are not descended.
// Unreadable parts of the subtree are skipped.
func (s *Service) ContainsFile(root string, match func(name string) bool) bool {
	pending := []string{root}
	for len(pending) > 0 {
		dir := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		entries, err := s.fs.ReadDir(dir)
		if err != nil {
			continue
		}

		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			info := entry
			if entry.Mode()&os.ModeSymlink != 0 {
				target, err := s.fs.Stat(path)
				if err != nil || target.IsDir() {
					continue
				}
				info = target
			}

			if info.IsDir() {
				pending = append(pending, path)
				continue
			}
			if info.Mode().IsRegular() && match(entry.Name()) {
				return true
			}
		}
	}
	return false
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to expand %s: %w", path, err)
	}
	return filepath.Join(home, path[1:]), nil
}

// CreateOutput creates (or truncates) the file at path for writing.
// Parent directories are not created.
func (s *Service) CreateOutput(path string) (io.WriteCloser, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}

	f, err := s.fs.Create(expanded)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("output directory not found: %s", filepath.Dir(expanded))
		}
		if errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("permission denied: %s", expanded)
		}
		return nil, fmt.Errorf("failed to create output file: %s - %w", expanded, err)
	}
	return f, nil
}
