package achievements

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStreaksConsecutiveRun(t *testing.T) {
	dates := []time.Time{
		day(2024, 1, 1),
		day(2024, 1, 2),
		day(2024, 1, 3),
		day(2024, 1, 4),
		day(2024, 1, 5),
	}
	current, longest := Streaks(dates, day(2024, 1, 5))
	if current != 5 {
		t.Fatalf("current: want=5 got=%d", current)
	}
	if longest != 5 {
		t.Fatalf("longest: want=5 got=%d", longest)
	}
}

func TestStreaksGapResetsRun(t *testing.T) {
	dates := []time.Time{
		day(2024, 1, 1),
		day(2024, 1, 2),
		day(2024, 1, 4),
		day(2024, 1, 5),
	}
	current, longest := Streaks(dates, day(2024, 1, 5))
	if current != 2 {
		t.Fatalf("current: want=2 got=%d", current)
	}
	if longest != 2 {
		t.Fatalf("longest: want=2 got=%d", longest)
	}
}

func TestStreaksYesterdayStillCounts(t *testing.T) {
	dates := []time.Time{
		day(2024, 3, 9),
		day(2024, 3, 10),
		day(2024, 3, 11),
	}
	current, longest := Streaks(dates, day(2024, 3, 12))
	if current != 3 {
		t.Fatalf("current: want=3 got=%d", current)
	}
	if longest != 3 {
		t.Fatalf("longest: want=3 got=%d", longest)
	}
}

func TestStreaksStaleEntriesZeroCurrent(t *testing.T) {
	dates := []time.Time{
		day(2024, 3, 8),
		day(2024, 3, 9),
		day(2024, 3, 10),
	}
	current, longest := Streaks(dates, day(2024, 3, 12))
	if current != 0 {
		t.Fatalf("current: want=0 got=%d", current)
	}
	if longest != 3 {
		t.Fatalf("longest: want=3 got=%d", longest)
	}
}

func TestStreaksEmpty(t *testing.T) {
	current, longest := Streaks(nil, day(2024, 1, 1))
	if current != 0 || longest != 0 {
		t.Fatalf("want=0/0 got=%d/%d", current, longest)
	}
}

func TestStreaksMultipleEntriesSameDay(t *testing.T) {
	dates := []time.Time{
		time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 1, 21, 30, 0, 0, time.UTC),
		time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC),
	}
	current, longest := Streaks(dates, day(2024, 5, 2))
	if current != 2 {
		t.Fatalf("current: want=2 got=%d", current)
	}
	if longest != 2 {
		t.Fatalf("longest: want=2 got=%d", longest)
	}
}

func TestDistinctDatesDesc(t *testing.T) {
	dates := []time.Time{
		time.Date(2024, 2, 1, 23, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 3, 1, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 1, 5, 0, 0, 0, time.UTC),
	}
	uniq := DistinctDatesDesc(dates)
	if len(uniq) != 2 {
		t.Fatalf("len: want=2 got=%d", len(uniq))
	}
	if !uniq[0].Equal(day(2024, 2, 3)) || !uniq[1].Equal(day(2024, 2, 1)) {
		t.Fatalf("unexpected order: %v", uniq)
	}
}

func TestAverageIntensity(t *testing.T) {
	cases := []struct {
		name        string
		intensities []int
		want        string
	}{
		{"empty", nil, "0.0"},
		{"whole", []int{4, 6, 8}, "6.0"},
		{"fraction", []int{3, 4}, "3.5"},
		{"single", []int{7}, "7.0"},
	}
	for _, tc := range cases {
		if got := AverageIntensity(tc.intensities); got != tc.want {
			t.Fatalf("%s: want=%q got=%q", tc.name, tc.want, got)
		}
	}
}

func TestDistribution(t *testing.T) {
	dist := Distribution([]string{"happy", "sad", "happy", "neutral"})
	if dist["happy"] != 2 || dist["sad"] != 1 || dist["neutral"] != 1 {
		t.Fatalf("unexpected distribution: %v", dist)
	}
}
