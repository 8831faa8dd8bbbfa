// Package metrics holds the pure derived-data functions shared by the
// dashboard screens. The wear thresholds live here and nowhere else so the
// overview, the alerts badge and the notification view cannot drift apart.
package metrics

import (
	"math"

	"github.com/JasperRosales/aircraft-system-fe/api"
)

const (
	WarningThreshold  = 50.0
	CriticalThreshold = 80.0
)

type Bucket int

const (
	Good Bucket = iota
	Warning
	Critical
)

func (b Bucket) String() string {
	switch b {
	case Warning:
		return "warning"
	case Critical:
		return "critical"
	default:
		return "good"
	}
}

// Classify maps a usage percent onto its wear bucket:
// good < 50, 50 <= warning < 80, critical >= 80.
func Classify(usagePercent float64) Bucket {
	switch {
	case usagePercent >= CriticalThreshold:
		return Critical
	case usagePercent >= WarningThreshold:
		return Warning
	default:
		return Good
	}
}

// Percent is the server's wear formula. The client never substitutes this
// for a server-supplied usage_percent; it exists for display of in-progress
// form values and for tests asserting agreement with the server.
func Percent(usageHours, usageLimitHours float64) float64 {
	if usageLimitHours <= 0 {
		return 0
	}
	return usageHours / usageLimitHours * 100
}

// Summary are the overview panel numbers for one filtered part set.
type Summary struct {
	Total    int
	Good     int
	Warning  int
	Critical int

	// Rounded to the nearest integer for display; all zero when Total is.
	GoodPct     int
	WarningPct  int
	CriticalPct int
}

func Summarize(parts []api.PlanePart) Summary {
	var s Summary
	s.Total = len(parts)
	for _, p := range parts {
		switch Classify(p.UsagePercent) {
		case Critical:
			s.Critical++
		case Warning:
			s.Warning++
		default:
			s.Good++
		}
	}
	if s.Total > 0 {
		s.GoodPct = roundPct(s.Good, s.Total)
		s.WarningPct = roundPct(s.Warning, s.Total)
		s.CriticalPct = roundPct(s.Critical, s.Total)
	}
	return s
}

func roundPct(count, total int) int {
	return int(math.Round(float64(count) / float64(total) * 100))
}

// FilterByModel returns the parts whose owning plane's model matches. An
// empty model means "all planes". This is a client-side filter over lists
// that were already fetched in full.
func FilterByModel(parts []api.PlanePart, planes []api.Plane, model string) []api.PlanePart {
	if model == "" {
		return parts
	}
	byID := make(map[int]string, len(planes))
	for _, pl := range planes {
		byID[pl.ID] = pl.Model
	}
	var out []api.PlanePart
	for _, p := range parts {
		if byID[p.PlaneID] == model {
			out = append(out, p)
		}
	}
	return out
}

// SplitAlerts partitions an alert set into critical (>=80) and warning
// ([50,80)) groups. A part never lands in both.
func SplitAlerts(parts []api.PlanePart) (critical, warning []api.PlanePart) {
	for _, p := range parts {
		switch Classify(p.UsagePercent) {
		case Critical:
			critical = append(critical, p)
		case Warning:
			warning = append(warning, p)
		}
	}
	return critical, warning
}
