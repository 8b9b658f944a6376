package model

import (
	"fmt"
	"regexp"
	"time"
)

// TimestampLayout is the time.Parse layout embedded in run directory names.
// Run directories are named "<base>_<YYYYMMDD>_<HHMMSS>". This layout is a
// persisted on-disk format; changing it breaks every existing reports root.
const TimestampLayout = "20060102_150405"

// runDirPattern matches run directory names. The base name is greedy so that
// base names containing underscores still parse; the trailing date and time
// groups are fixed-width.
var runDirPattern = regexp.MustCompile(`^(.+)_(\d{8})_(\d{6})$`)

// RunDirName builds the directory name for a run started at ts.
func RunDirName(baseName string, ts time.Time) string {
	return fmt.Sprintf("%s_%s", baseName, ts.Format(TimestampLayout))
}

// ParseRunDirName splits a directory name into its base name and timestamp.
// It returns ok=false for names that do not follow the run naming convention,
// including names whose digit groups are not a real calendar date or time.
// Callers must skip such directories silently; a reports root may contain
// unrelated directories.
func ParseRunDirName(name string) (baseName string, ts time.Time, ok bool) {
	m := runDirPattern.FindStringSubmatch(name)
	if m == nil {
		return "", time.Time{}, false
	}

	ts, err := time.Parse(TimestampLayout, m[2]+"_"+m[3])
	if err != nil {
		return "", time.Time{}, false
	}

	return m[1], ts, true
}
