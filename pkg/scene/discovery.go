package scene

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Info describes a scene available to the CLI
type Info struct {
	ID          string `json:"id"`                 // Name or path passed to -scene
	DisplayName string `json:"displayName"`        // Human-readable name
	Description string `json:"description"`        // Optional description
	Type        string `json:"type"`               // "builtin" or "file"
	FilePath    string `json:"filePath,omitempty"` // Description file (file type only)
}

// ListBuiltins returns the built-in scenes sorted by ID
func ListBuiltins() []Info {
	var infos []Info
	for _, name := range Names() {
		d, _ := Builtin(name)
		infos = append(infos, Info{
			ID:          name,
			DisplayName: titleCase(name),
			Description: d.Description,
			Type:        "builtin",
		})
	}
	return infos
}

// ListFiles scans dir for YAML and JSON scene descriptions. Files that fail
// to parse are reported in the returned map rather than aborting the scan.
// A missing directory yields no scenes and no error.
func ListFiles(ctx context.Context, dir string) ([]Info, map[string]error, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, errors.Wrapf(err, "scene: scanning %s", dir)
	}

	var infos []Info
	failed := make(map[string]error)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		filePath := filepath.Join(dir, entry.Name())
		if _, err := FormatFromPath(filePath); err != nil {
			continue
		}

		d, err := Load(ctx, filePath)
		if err != nil {
			failed[filePath] = err
			continue
		}
		infos = append(infos, Info{
			ID:          filePath,
			DisplayName: titleCase(d.Name),
			Description: d.Description,
			Type:        "file",
			FilePath:    filePath,
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].DisplayName < infos[j].DisplayName
	})
	return infos, failed, nil
}

// titleCase converts a filename-style string to title case
// e.g., "pinhole-shading" -> "Pinhole Shading"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
