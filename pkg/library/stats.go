package library

import (
	"math"
	"time"
)

// DayCount is the number of records added on one calendar day.
type DayCount struct {
	Date  string
	Count int
}

// Summary holds the aggregate reading statistics shown on the
// dashboard: collection totals, the dominant tag, progress against the
// reading-goal page cap, and the trailing week of additions.
type Summary struct {
	Books      int
	TotalPages float64
	AvgPages   float64 // rounded mean, 0 for an empty collection
	TopTag     string  // "" when no record carries a tag
	TagCounts  map[string]int
	PageCap    int
	Remaining  float64 // PageCap - TotalPages; negative once exceeded
	CapReached bool
	LastWeek   []DayCount // 7 entries, oldest first, ending today
}

// Summarize computes the dashboard aggregates from the current
// collection and settings.
func (s *Store) Summarize() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum := Summary{
		Books:     len(s.records),
		TagCounts: make(map[string]int),
		PageCap:   s.settings.PageCap,
	}
	for _, r := range s.records {
		sum.TotalPages += r.Pages
		if r.Tag != "" {
			sum.TagCounts[r.Tag]++
		}
	}
	if sum.Books > 0 {
		sum.AvgPages = math.Round(sum.TotalPages / float64(sum.Books))
	}

	// Highest count wins; ties break alphabetically so the result is
	// deterministic.
	best := 0
	for tag, n := range sum.TagCounts {
		if n > best || (n == best && (sum.TopTag == "" || tag < sum.TopTag)) {
			best = n
			sum.TopTag = tag
		}
	}

	sum.Remaining = float64(sum.PageCap) - sum.TotalPages
	sum.CapReached = sum.TotalPages >= float64(sum.PageCap)

	perDay := make(map[string]int, len(s.records))
	for _, r := range s.records {
		perDay[r.DateAdded]++
	}
	today := time.Now()
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i).Format("2006-01-02")
		sum.LastWeek = append(sum.LastWeek, DayCount{Date: day, Count: perDay[day]})
	}
	return sum
}
