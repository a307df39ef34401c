package progress

import (
	"testing"
	"time"
)

// India Standard Time, the historical default day-boundary timezone.
var ist = time.FixedZone("IST", 5*3600+30*60)

func TestComputeActivity_CrossesUTCMidnight(t *testing.T) {
	// 20:00 UTC on June 1 is 01:30 on June 2 in IST.
	solutions := []Solution{
		{ID: "s1", ProblemID: "p1", CreatedAt: time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)},
	}
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	activity := ComputeActivity(solutions, now, ist)

	if len(activity) != 1 {
		t.Fatalf("expected 1 bucket, got %v", activity)
	}
	if activity["2024-06-02"] != 1 {
		t.Fatalf("expected 2024-06-02 -> 1, got %v", activity)
	}
}

func TestComputeActivity_DayBoundaryIsExact(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		createdAt time.Time
		want      string
	}{
		// 18:30 UTC is exactly midnight IST.
		{time.Date(2024, 6, 1, 18, 30, 0, 0, time.UTC), "2024-06-02"},
		{time.Date(2024, 6, 1, 18, 29, 59, 0, time.UTC), "2024-06-01"},
	}

	for _, tc := range cases {
		activity := ComputeActivity([]Solution{{ProblemID: "p1", CreatedAt: tc.createdAt}}, now, ist)
		if activity[tc.want] != 1 {
			t.Fatalf("createdAt %v: expected bucket %s, got %v", tc.createdAt, tc.want, activity)
		}
		if len(activity) != 1 {
			t.Fatalf("createdAt %v: timestamp fell into %d buckets", tc.createdAt, len(activity))
		}
	}
}

func TestComputeActivity_TrailingWindowInclusiveLowerBound(t *testing.T) {
	now := time.Date(2025, 1, 10, 15, 0, 0, 0, ist)
	// Day-truncated lower bound: 2024-01-11 00:00 IST.
	cutoff := time.Date(2024, 1, 11, 0, 0, 0, 0, ist)

	solutions := []Solution{
		{ID: "in", ProblemID: "p1", CreatedAt: cutoff},
		{ID: "out", ProblemID: "p2", CreatedAt: cutoff.Add(-time.Second)},
	}

	activity := ComputeActivity(solutions, now, ist)

	if activity["2024-01-11"] != 1 {
		t.Fatalf("solution at the cutoff instant should be counted, got %v", activity)
	}
	if _, ok := activity["2024-01-10"]; ok {
		t.Fatalf("solution before the cutoff should be excluded, got %v", activity)
	}
}

func TestComputeActivity_ZeroDaysAbsent(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	solutions := []Solution{
		{ProblemID: "p1", CreatedAt: time.Date(2024, 6, 10, 10, 0, 0, 0, ist)},
		{ProblemID: "p2", CreatedAt: time.Date(2024, 6, 10, 11, 0, 0, 0, ist)},
	}

	activity := ComputeActivity(solutions, now, ist)

	if activity["2024-06-10"] != 2 {
		t.Fatalf("expected count 2 on 2024-06-10, got %v", activity)
	}
	if len(activity) != 1 {
		t.Fatalf("days without activity must be absent, got %v", activity)
	}
}

func TestComputeYearGrid_PaddingAndWeekCount(t *testing.T) {
	// January 1, 2024 was a Monday: one nil pad cell before it.
	grid := ComputeYearGrid(2024, nil, ist)

	if len(grid.Weeks) != 53 {
		t.Fatalf("expected 53 week columns for 2024, got %d", len(grid.Weeks))
	}
	first := grid.Weeks[0]
	if first[0] != nil {
		t.Fatalf("expected Sunday pad cell before Monday January 1")
	}
	if first[1] == nil || first[1].Date != "2024-01-01" {
		t.Fatalf("expected 2024-01-01 in the Monday row, got %+v", first[1])
	}

	// Leap year: 366 days + 1 pad = 367 cells.
	cells := 0
	days := 0
	for _, week := range grid.Weeks {
		if len(week) > 7 {
			t.Fatalf("week column with %d cells", len(week))
		}
		cells += len(week)
		for _, day := range week {
			if day != nil {
				days++
			}
		}
	}
	if cells != 367 {
		t.Fatalf("expected 367 grid cells, got %d", cells)
	}
	if days != 366 {
		t.Fatalf("expected 366 days, got %d", days)
	}

	last := grid.Weeks[len(grid.Weeks)-1]
	if last[len(last)-1].Date != "2024-12-31" {
		t.Fatalf("expected final cell 2024-12-31, got %s", last[len(last)-1].Date)
	}
}

func TestComputeYearGrid_MonthLabels(t *testing.T) {
	grid := ComputeYearGrid(2024, nil, ist)

	if len(grid.Months) != 12 {
		t.Fatalf("expected 12 month labels, got %d", len(grid.Months))
	}
	if grid.Months[0].Name != "Jan" || grid.Months[0].Week != 0 {
		t.Fatalf("expected Jan at week 0, got %+v", grid.Months[0])
	}
	for i := 1; i < len(grid.Months); i++ {
		if grid.Months[i].Week <= grid.Months[i-1].Week {
			t.Fatalf("month label weeks must increase: %+v", grid.Months)
		}
	}
}

func TestComputeYearGrid_IntensityLevels(t *testing.T) {
	activity := map[string]int{
		"2024-03-01": 1,
		"2024-03-02": 4,
		"2024-03-03": 8,
	}
	grid := ComputeYearGrid(2024, activity, ist)

	if grid.Max != 8 {
		t.Fatalf("expected max 8, got %d", grid.Max)
	}

	levels := map[string]int{}
	for _, week := range grid.Weeks {
		for _, day := range week {
			if day != nil {
				levels[day.Date] = day.Level
			}
		}
	}

	if levels["2024-03-01"] != 1 { // ceil(1/8*4) = 1
		t.Fatalf("count 1 of max 8: expected level 1, got %d", levels["2024-03-01"])
	}
	if levels["2024-03-02"] != 2 { // ceil(4/8*4) = 2
		t.Fatalf("count 4 of max 8: expected level 2, got %d", levels["2024-03-02"])
	}
	if levels["2024-03-03"] != 4 {
		t.Fatalf("count equal to max: expected level 4, got %d", levels["2024-03-03"])
	}
	if levels["2024-03-04"] != 0 {
		t.Fatalf("no activity: expected level 0, got %d", levels["2024-03-04"])
	}
}

func TestComputeYearGrid_MaxFlooredAtOne(t *testing.T) {
	grid := ComputeYearGrid(2024, map[string]int{}, ist)
	if grid.Max != 1 {
		t.Fatalf("empty activity must floor max at 1, got %d", grid.Max)
	}
}
