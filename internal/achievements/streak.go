package achievements

import (
	"fmt"
	"sort"
	"time"
)

// TruncateDay drops the clock portion of t in UTC. All streak arithmetic
// works on these day-truncated values.
func TruncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(earlier, later time.Time) int {
	return int(TruncateDay(later).Sub(TruncateDay(earlier)).Hours() / 24)
}

// DistinctDatesDesc deduplicates to calendar days, most recent first.
func DistinctDatesDesc(dates []time.Time) []time.Time {
	seen := make(map[time.Time]bool, len(dates))
	out := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		day := TruncateDay(d)
		if seen[day] {
			continue
		}
		seen[day] = true
		out = append(out, day)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].After(out[j]) })
	return out
}

// Streaks computes the current and longest consecutive-day runs over the
// given entry dates. The current streak is live only when the most recent
// entry is today or yesterday; a day of grace keeps a "yesterday but not yet
// today" streak alive, two or more missed days reset it to zero.
func Streaks(dates []time.Time, today time.Time) (current, longest int) {
	uniq := DistinctDatesDesc(dates)
	if len(uniq) == 0 {
		return 0, 0
	}

	run := 1
	longest = 1
	for i := 1; i < len(uniq); i++ {
		if daysBetween(uniq[i], uniq[i-1]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	if daysBetween(uniq[0], today) > 1 {
		return 0, longest
	}
	current = 1
	for i := 1; i < len(uniq); i++ {
		if daysBetween(uniq[i], uniq[i-1]) != 1 {
			break
		}
		current++
	}
	return current, longest
}

// AverageIntensity formats the arithmetic mean of the intensities to one
// decimal place, "0.0" when there are no entries. The API has always
// returned this as a string.
func AverageIntensity(intensities []int) string {
	if len(intensities) == 0 {
		return "0.0"
	}
	sum := 0
	for _, v := range intensities {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(intensities)))
}

// Distribution counts entries per mood category.
func Distribution(moods []string) map[string]int {
	out := make(map[string]int, 5)
	for _, m := range moods {
		out[m]++
	}
	return out
}
