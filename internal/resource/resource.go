// Package resource builds a designer resource folder: the stylesheet, its
// recolored icons and a .qrc manifest that compiles them under :/vscode/.
package resource

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/shaharia-lab/vstyle/internal/engine"
	"github.com/shaharia-lab/vstyle/internal/filesystem"
)

const (
	// DirName is the folder created inside the target path
	DirName        = "vstyle_resources"
	svgDirName     = "svg"
	stylesheetName = "stylesheet.qss"
	manifestName   = "resource.qrc"
	resourcePrefix = "vscode"
)

// ErrDirectoryNotEmpty is returned when the resource folder already exists
var ErrDirectoryNotEmpty = errors.New("this folder contains files, resources can only be built into an empty folder")

type rcc struct {
	XMLName   xml.Name  `xml:"RCC"`
	Version   string    `xml:"version,attr"`
	Resources qresource `xml:"qresource"`
}

type qresource struct {
	Prefix string  `xml:"prefix,attr"`
	Files  []qfile `xml:"file"`
}

type qfile struct {
	Alias string `xml:"alias,attr"`
	Path  string `xml:",chardata"`
}

// Result lists what Build wrote
type Result struct {
	Dir        string
	Stylesheet string
	Manifest   string
	Icons      []string
}

// Build renders theme with custom colors into <path>/vstyle_resources.
// The folder must not exist.
func Build(e *engine.Engine, path string, theme any, custom map[string]string) (*Result, error) {
	dir := filepath.Join(path, DirName)
	if err := filesystem.CreateEmptyDir(dir); err != nil {
		if errors.Is(err, filesystem.ErrDirectoryExists) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotEmpty, dir)
		}
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	svgDir := filepath.Join(dir, svgDirName)
	stylesheet, err := e.LoadStylesheetForDesigner(theme, custom, svgDir)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Dir:        dir,
		Stylesheet: filepath.Join(dir, stylesheetName),
		Manifest:   filepath.Join(dir, manifestName),
	}
	if err := os.WriteFile(res.Stylesheet, []byte(stylesheet), 0644); err != nil {
		return nil, fmt.Errorf("failed to write stylesheet: %w", err)
	}

	res.Icons, err = listIcons(svgDir)
	if err != nil {
		return nil, err
	}
	if err := writeManifest(res.Manifest, res.Icons); err != nil {
		return nil, err
	}
	return res, nil
}

func listIcons(svgDir string) ([]string, error) {
	if err := os.MkdirAll(svgDir, 0755); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(svgDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list icons: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Manifest renders the .qrc document for the icon file names
func Manifest(icons []string) ([]byte, error) {
	doc := rcc{Version: "1.0", Resources: qresource{Prefix: resourcePrefix}}
	for _, name := range icons {
		doc.Resources.Files = append(doc.Resources.Files, qfile{Alias: name, Path: svgDirName + "/" + name})
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode resource manifest: %w", err)
	}
	return append(out, '\n'), nil
}

func writeManifest(path string, icons []string) error {
	data, err := Manifest(icons)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
