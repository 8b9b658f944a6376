package history

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nao1215/beacon/internal/model"
)

// SortKey selects the collection ordering for history listings.
type SortKey string

// Supported sort keys.
const (
	// SortByName orders collections alphabetically by base name.
	SortByName SortKey = "name"

	// SortByScore orders collections by their newest run's score,
	// worst first, so regressions surface at the top.
	SortByScore SortKey = "score"

	// SortByTime orders collections by their newest run's start time,
	// most recently audited first.
	SortByTime SortKey = "time"

	// SortByRuns orders collections by run count, largest history first.
	SortByRuns SortKey = "runs"
)

// ParseSortKey validates a user-supplied sort key.
func ParseSortKey(s string) (SortKey, error) {
	switch key := SortKey(strings.ToLower(strings.TrimSpace(s))); key {
	case SortByName, SortByScore, SortByTime, SortByRuns:
		return key, nil
	default:
		return "", fmt.Errorf("unknown sort key %q (valid: name, score, time, runs)", s)
	}
}

// SortCollections orders collections in place by the given key. The sort is
// stable, so collections tying on the key keep their first-seen order.
func SortCollections(collections []*model.Collection, key SortKey) {
	sort.SliceStable(collections, func(i, j int) bool {
		a, b := collections[i], collections[j]
		switch key {
		case SortByScore:
			return a.LastScore() < b.LastScore()
		case SortByTime:
			at, bt := a.LastRun(), b.LastRun()
			if at == nil || bt == nil {
				return bt == nil && at != nil
			}
			return at.Timestamp.After(bt.Timestamp)
		case SortByRuns:
			return len(a.Runs) > len(b.Runs)
		default:
			return a.Name < b.Name
		}
	})
}
