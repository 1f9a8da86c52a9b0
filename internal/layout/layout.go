// Package layout locates the input and output tables under the project root.
package layout

import (
	"fmt"
	"os"
	"path/filepath"
)

// Fixed locations relative to the project root.
const (
	DataDir         = "data"
	ConflictsFile   = "pcconflicts.csv"
	RegistrantsFile = "registrants.csv"
	OutputFile      = "meeting_conflicts.csv"
)

// Layout resolves file paths for one project root.
type Layout struct {
	Root string
}

// New creates a layout rooted at root.
func New(root string) Layout {
	return Layout{Root: root}
}

// DataDir returns the directory holding all three tables.
func (l Layout) DataDir() string {
	return filepath.Join(l.Root, DataDir)
}

// ConflictsPath returns the path of the conflicts table.
func (l Layout) ConflictsPath() string {
	return filepath.Join(l.DataDir(), ConflictsFile)
}

// RegistrantsPath returns the path of the registrants table.
func (l Layout) RegistrantsPath() string {
	return filepath.Join(l.DataDir(), RegistrantsFile)
}

// OutputPath returns the path of the generated meeting conflicts table.
func (l Layout) OutputPath() string {
	return filepath.Join(l.DataDir(), OutputFile)
}

// RootFor returns the project root for a program at executable: two levels
// above the directory containing it. When that root has no data directory,
// workDir is used instead.
func RootFor(executable, workDir string) string {
	root := filepath.Dir(filepath.Dir(filepath.Dir(executable)))

	if info, err := os.Stat(filepath.Join(root, DataDir)); err == nil && info.IsDir() {
		return root
	}

	return workDir
}

// Discover builds the layout for the running program.
func Discover() (Layout, error) {
	wd, err := os.Getwd()
	if err != nil {
		return Layout{}, fmt.Errorf("getting working directory: %w", err)
	}

	exe, err := os.Executable()
	if err != nil {
		return New(wd), nil
	}

	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return New(RootFor(exe, wd)), nil
}
