// Package fs provides filesystem-backed file discovery and artifact
// writers for corpus generation.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/llmtxt"
)

// Ensure Discoverer implements llmtxt.Discoverer at compile time.
var _ llmtxt.Discoverer = (*Discoverer)(nil)

// Discoverer finds input files under a root directory using doublestar
// glob patterns (supports "**" for recursive matching).
type Discoverer struct{}

// NewDiscoverer creates a new Discoverer.
func NewDiscoverer() *Discoverer {
	return &Discoverer{}
}

// Discover returns the absolute paths of files under root matching
// pattern, deduplicated by cleaned absolute path and sorted
// lexicographically. Directories are never returned.
func (d *Discoverer) Discover(ctx context.Context, root, pattern string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, llmtxt.Errorf(llmtxt.ENOTFOUND, "source root %q does not exist", root)
		}
		return nil, llmtxt.Errorf(llmtxt.EINTERNAL, "stat source root %q: %v", root, err)
	}
	if !info.IsDir() {
		return nil, llmtxt.Errorf(llmtxt.EINVALID, "source root %q is not a directory", root)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, llmtxt.Errorf(llmtxt.EINVALID, "resolve source root %q: %v", root, err)
	}

	matches, err := doublestar.Glob(os.DirFS(absRoot), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, llmtxt.Errorf(llmtxt.EINVALID, "invalid pattern %q: %v", pattern, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(matches))
	paths := make([]string, 0, len(matches))
	for _, m := range matches {
		abs := filepath.Clean(filepath.Join(absRoot, filepath.FromSlash(m)))
		if seen[abs] {
			continue
		}
		seen[abs] = true
		paths = append(paths, abs)
	}

	sort.Strings(paths)

	return paths, nil
}
