package progress

import "time"

// DateFormat is the calendar-day bucket key layout.
const DateFormat = "2006-01-02"

// activityWindowDays is the trailing window the heatmap covers.
const activityWindowDays = 365

// ComputeActivity buckets solution-creation timestamps into calendar-day
// counts under the given location. Only solutions created within the
// trailing 365 days of now are counted; the lower bound is inclusive and
// truncated to the start of its local day. Days with no activity are
// absent from the map, never present with a zero value.
func ComputeActivity(solutions []Solution, now time.Time, loc *time.Location) map[string]int {
	local := now.In(loc)
	cutoff := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc).
		AddDate(0, 0, -activityWindowDays)

	activity := make(map[string]int)
	for _, s := range solutions {
		created := s.CreatedAt.In(loc)
		if created.Before(cutoff) {
			continue
		}
		activity[created.Format(DateFormat)]++
	}
	return activity
}

// Day is one cell of the heatmap grid.
type Day struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
	Level int    `json:"level"` // 0 = no activity, 1..4 = intensity
}

// MonthLabel anchors a month name to the week column where the month
// first appears.
type MonthLabel struct {
	Name string `json:"name"`
	Week int    `json:"week"`
}

// YearGrid lays out one calendar year as Sunday-first week columns, the
// shape a contribution-style heatmap renders directly.
type YearGrid struct {
	Year   int          `json:"year"`
	Weeks  [][]*Day     `json:"weeks"` // 7 cells per column; nil cells are padding
	Months []MonthLabel `json:"months"`
	Max    int          `json:"max"` // highest daily count, floored at 1
}

// ComputeYearGrid builds the heatmap grid for every day from January 1
// to December 31 of the given year. The sequence is left-padded with nil
// cells so the first date lands in its weekday row (weeks run Sunday to
// Saturday), then grouped into columns of seven.
func ComputeYearGrid(year int, activity map[string]int, loc *time.Location) YearGrid {
	max := 0
	for _, count := range activity {
		if count > max {
			max = count
		}
	}
	if max == 0 {
		max = 1 // avoid division by zero in level scaling
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)

	var padded []*Day
	for i := 0; i < int(start.Weekday()); i++ {
		padded = append(padded, nil)
	}
	for d := start; d.Year() == year; d = d.AddDate(0, 0, 1) {
		date := d.Format(DateFormat)
		count := activity[date]
		padded = append(padded, &Day{
			Date:  date,
			Count: count,
			Level: intensityLevel(count, max),
		})
	}

	var weeks [][]*Day
	for i := 0; i < len(padded); i += 7 {
		end := i + 7
		if end > len(padded) {
			end = len(padded)
		}
		weeks = append(weeks, padded[i:end])
	}

	return YearGrid{
		Year:   year,
		Weeks:  weeks,
		Months: monthLabels(weeks),
		Max:    max,
	}
}

// intensityLevel scales a daily count into one of five discrete buckets
// proportionally to the year's maximum.
func intensityLevel(count, max int) int {
	if count == 0 {
		return 0
	}
	level := (count*4 + max - 1) / max // ceil(count/max * 4)
	if level > 4 {
		level = 4
	}
	return level
}

// monthLabels walks the week columns and records one label per month at
// the column where that month first occurs.
func monthLabels(weeks [][]*Day) []MonthLabel {
	var labels []MonthLabel
	lastMonth := ""
	for weekIndex, week := range weeks {
		for _, day := range week {
			if day == nil {
				continue
			}
			// Month abbreviation straight from the bucket key.
			t, err := time.Parse(DateFormat, day.Date)
			if err != nil {
				break
			}
			month := t.Format("Jan")
			if month != lastMonth {
				labels = append(labels, MonthLabel{Name: month, Week: weekIndex})
				lastMonth = month
			}
			break
		}
	}
	return labels
}
