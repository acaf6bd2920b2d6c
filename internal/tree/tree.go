// Package tree renders a directory as an indented tree drawing.
package tree

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/taigrr/cli-commands/internal/filesystem"
	"github.com/taigrr/cli-commands/internal/pathfilter"
)

const (
	BaseIndent       = "   "
	ConnectorLast    = " └─ "
	ConnectorNotLast = " ├─ "
	IndentLast       = "    "
	IndentNotLast    = " │  "
)

// Renderer draws directory trees using a filesystem service and a path filter.
type Renderer struct {
	fileSystem *filesystem.Service
	pathFilter *pathfilter.PathFilter
}

// New creates a new Renderer.
func New(fsvc *filesystem.Service, pf *pathfilter.PathFilter) *Renderer {
	if fsvc == nil {
		fsvc = filesystem.New(nil)
	}
	if pf == nil {
		pf = pathfilter.New(nil)
	}
	return &Renderer{
		fileSystem: fsvc,
		pathFilter: pf,
	}
}

// stackItem is one pending output line. Directories carry the prefix their
// own children are drawn with.
type stackItem struct {
	pathname    string
	line        string
	childPrefix string
	isDir       bool
}

// Render writes the tree rooted at directory to out. The first line is the
// directory exactly as given; every entry below it gets its own line.
func (r *Renderer) Render(out io.Writer, directory string) error {
	if _, err := fmt.Fprintln(out, directory); err != nil {
		return err
	}

	stack, err := r.children(directory, BaseIndent)
	if err != nil {
		return err
	}

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, err := io.WriteString(out, item.line+"\n"); err != nil {
			return err
		}

		if item.isDir {
			children, err := r.children(item.pathname, item.childPrefix)
			if err != nil {
				return err
			}
			stack = append(stack, children...)
		}
	}

	return nil
}

// String renders the tree into a string.
func (r *Renderer) String(directory string) (string, error) {
	var sb strings.Builder
	if err := r.Render(&sb, directory); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// children returns the visible entries of dir in reverse display order,
// ready to be pushed onto the work stack.
func (r *Renderer) children(dir, prefix string) ([]stackItem, error) {
	listing, err := r.fileSystem.ListDirectory(dir)
	if err != nil {
		return nil, err
	}

	directories := r.pathFilter.FilterDirectories(listing.Directories)
	files := r.pathFilter.FilterFiles(listing.Files)

	if r.pathFilter.HasOnly() {
		kept := directories[:0]
		for _, name := range directories {
			if r.fileSystem.ContainsFile(filepath.Join(dir, name), r.pathFilter.MatchesOnly) {
				kept = append(kept, name)
			}
		}
		directories = kept
	}

	total := len(directories) + len(files)
	items := make([]stackItem, 0, total)

	for i, name := range directories {
		isLast := i == total-1
		connector, indent := ConnectorNotLast, IndentNotLast
		if isLast {
			connector, indent = ConnectorLast, IndentLast
		}
		items = append(items, stackItem{
			pathname:    filepath.Join(dir, name),
			line:        prefix + connector + name,
			childPrefix: prefix + indent,
			isDir:       true,
		})
	}

	for i, name := range files {
		connector := ConnectorNotLast
		if len(directories)+i == total-1 {
			connector = ConnectorLast
		}
		items = append(items, stackItem{
			pathname: filepath.Join(dir, name),
			line:     prefix + connector + name,
		})
	}

	slices.Reverse(items)
	return items, nil
}
