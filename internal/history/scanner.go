package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nao1215/beacon/internal/artifact"
	"github.com/nao1215/beacon/internal/model"
	"github.com/nao1215/beacon/internal/runner"
)

// RawRunDir is one run directory as found on disk, before any artifact has
// been parsed.
type RawRunDir struct {
	// Name is the directory name: "<base>_<YYYYMMDD>_<HHMMSS>".
	Name string

	// BaseName is the run base name recovered from the directory name.
	BaseName string

	// Timestamp is the run start time recovered from the directory name.
	Timestamp time.Time

	// Path is the run directory path.
	Path string

	// ArtifactPaths lists the report artifact files inside the directory,
	// in lexical order.
	ArtifactPaths []string

	// Metadata is the opaque content of the metadata file, if present.
	Metadata string
}

// Scan enumerates the run directories under reportsRoot. Directories whose
// names do not follow the run naming convention are skipped silently; a
// reports root may contain anything. A missing root yields an empty result,
// not an error, because a fresh installation has no reports yet.
func Scan(reportsRoot string) ([]RawRunDir, error) {
	entries, err := os.ReadDir(reportsRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read reports root %s: %w", reportsRoot, err)
	}

	var dirs []RawRunDir
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		baseName, ts, ok := model.ParseRunDirName(entry.Name())
		if !ok {
			continue
		}

		dir := filepath.Join(reportsRoot, entry.Name())
		raw := RawRunDir{
			Name:      entry.Name(),
			BaseName:  baseName,
			Timestamp: ts,
			Path:      dir,
		}

		if err := fillRunDir(&raw); err != nil {
			return nil, err
		}

		dirs = append(dirs, raw)
	}

	return dirs, nil
}

// fillRunDir lists the artifacts of one run directory and reads its
// optional metadata file.
func fillRunDir(raw *RawRunDir) error {
	entries, err := os.ReadDir(raw.Path)
	if err != nil {
		return fmt.Errorf("failed to read run directory %s: %w", raw.Path, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasSuffix(name, artifact.Ext) {
			raw.ArtifactPaths = append(raw.ArtifactPaths, filepath.Join(raw.Path, name))
			continue
		}

		if name == runner.MetadataFilename {
			data, err := os.ReadFile(filepath.Join(raw.Path, name)) //nolint:gosec // Path is under the reports root
			if err != nil {
				// Metadata is display text only; a vanished or unreadable
				// file must not fail the scan.
				continue
			}
			raw.Metadata = strings.TrimSpace(string(data))
		}
	}

	return nil
}
