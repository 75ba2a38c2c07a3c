package library

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Kaylain7/E-library/pkg/types"
)

// Query describes one read of the filtered/sorted view. The zero value
// means: all tags, no pattern, stored order.
type Query struct {
	Pattern *regexp.Regexp // nil = no pattern filter
	Tag     string         // "" = all tags
	Sort    string         // one of the types.Sort* keys; unknown = stored order
}

// Query returns the derived view: records filtered by exact tag, then
// by the search pattern matched against title, author, tag, and notes,
// then stably sorted by the active sort key. The projection never
// mutates the stored collection or its order.
func (s *Store) Query(q Query) []types.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.Record, 0, len(s.records))
	for _, r := range s.records {
		if q.Tag != "" && r.Tag != q.Tag {
			continue
		}
		if q.Pattern != nil && !q.Pattern.MatchString(searchText(r)) {
			continue
		}
		out = append(out, r)
	}
	sortRecords(out, q.Sort)
	return out
}

// UniqueTags returns the distinct non-empty tag values across all
// records, alphabetically sorted.
func (s *Store) UniqueTags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	tags := []string{}
	for _, r := range s.records {
		if r.Tag != "" && !seen[r.Tag] {
			seen[r.Tag] = true
			tags = append(tags, r.Tag)
		}
	}
	sort.Strings(tags)
	return tags
}

// searchText is the haystack a search pattern matches against.
func searchText(r types.Record) string {
	return strings.Join([]string{r.Title, r.Author, r.Tag, r.Notes}, " ")
}

// sortRecords stably sorts records in place by the given key. An
// unknown key leaves the order untouched.
func sortRecords(records []types.Record, key string) {
	var less func(a, b types.Record) bool
	switch key {
	case types.SortDateDesc:
		less = func(a, b types.Record) bool { return calendarDate(b).Before(calendarDate(a)) }
	case types.SortDateAsc:
		less = func(a, b types.Record) bool { return calendarDate(a).Before(calendarDate(b)) }
	case types.SortTitleAsc:
		c := newTitleCollator()
		less = func(a, b types.Record) bool { return c.CompareString(a.Title, b.Title) < 0 }
	case types.SortTitleDesc:
		c := newTitleCollator()
		less = func(a, b types.Record) bool { return c.CompareString(b.Title, a.Title) < 0 }
	case types.SortPagesDesc:
		less = func(a, b types.Record) bool { return b.Pages < a.Pages }
	case types.SortPagesAsc:
		less = func(a, b types.Record) bool { return a.Pages < b.Pages }
	default:
		return
	}
	sort.SliceStable(records, func(i, j int) bool { return less(records[i], records[j]) })
}

// newTitleCollator builds the locale-aware comparator used for title
// ordering, so "a" sorts next to "A" rather than after "Z".
func newTitleCollator() *collate.Collator {
	return collate.New(language.English, collate.Loose)
}

// calendarDate parses a record's dateAdded; records that somehow carry
// an unparseable date sort as the zero time rather than panicking.
func calendarDate(r types.Record) time.Time {
	t, err := time.Parse("2006-01-02", r.DateAdded)
	if err != nil {
		return time.Time{}
	}
	return t
}
