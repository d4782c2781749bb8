package domain

// HistoryStats summarizes a user's full record history.
// @Description Aggregate statistics over the record history.
type HistoryStats struct {
	// Mean of total_score over all records, 0 when there is no history
	AvgScore float64 `json:"avg_score" example:"4.2"`
	// Maximum total_score, 0 when there is no history
	MaxScore int `json:"max_score" example:"8"`
	// Newest minus oldest total_score within the most recent 7 records,
	// 0 when fewer than 2 records exist in that window
	RecentTrend int `json:"recent_trend" example:"3"`
	// Mean sleep_score over records that have one; null when none do,
	// so "no data" stays distinguishable from an average of zero
	AvgSleepScore *float64 `json:"avg_sleep_score" example:"74.5"`
	// Number of records considered
	RecordCount int `json:"record_count" example:"31"`
}

// ChartPoint is one day of derived metrics for charting.
// @Description Per-day derived metrics: normalized times, sleep duration, scores.
type ChartPoint struct {
	Date string `json:"date" example:"2024-06-01"`
	// Wake-up time as hours since midnight, null when not recorded
	WakeUpTime *float64 `json:"wake_up_time" example:"7.5"`
	// Bedtime on the overnight scale (may exceed 24), null when not recorded
	Bedtime *float64 `json:"bedtime" example:"26"`
	// Hours slept, one decimal, null when either time is missing
	SleepDuration *float64 `json:"sleep_duration" example:"8.2"`
	SleepScore    *int     `json:"sleep_score" example:"82"`
	TotalScore    int      `json:"total_score" example:"5"`
	// Raw HH:MM strings kept for labels and tooltips
	WakeUpTimeLabel *string `json:"wake_up_time_label,omitempty" example:"07:30"`
	BedtimeLabel    *string `json:"bedtime_label,omitempty" example:"02:00"`
}

const trendWindow = 7

// ComputeStats derives summary statistics from a record history. The input
// must be ordered newest first; the trend window is taken from its head.
func ComputeStats(records []DailyRecord) HistoryStats {
	stats := HistoryStats{RecordCount: len(records)}
	if len(records) == 0 {
		return stats
	}

	sum := 0
	for _, r := range records {
		sum += r.TotalScore
		if r.TotalScore > stats.MaxScore {
			stats.MaxScore = r.TotalScore
		}
	}
	stats.AvgScore = float64(sum) / float64(len(records))

	recent := records
	if len(recent) > trendWindow {
		recent = recent[:trendWindow]
	}
	if len(recent) > 1 {
		stats.RecentTrend = recent[0].TotalScore - recent[len(recent)-1].TotalScore
	}

	sleepSum := 0
	sleepCount := 0
	for _, r := range records {
		if r.SleepScore != nil {
			sleepSum += *r.SleepScore
			sleepCount++
		}
	}
	if sleepCount > 0 {
		avg := float64(sleepSum) / float64(sleepCount)
		stats.AvgSleepScore = &avg
	}

	return stats
}

// BuildChartSeries maps records to chart points in the order given. Callers
// pick the ordering (chronological for charts); nothing is reordered here.
func BuildChartSeries(records []DailyRecord) []ChartPoint {
	points := make([]ChartPoint, 0, len(records))
	for _, r := range records {
		p := ChartPoint{
			Date:            r.RecordDate.Format(RecordDateLayout),
			SleepScore:      r.SleepScore,
			TotalScore:      r.TotalScore,
			SleepDuration:   ComputeSleepDuration(r.Bedtime, r.WakeUpTime),
			WakeUpTimeLabel: r.WakeUpTime,
			BedtimeLabel:    r.Bedtime,
		}
		if r.WakeUpTime != nil {
			if n, err := TimeToNumber(*r.WakeUpTime); err == nil {
				p.WakeUpTime = &n
			}
		}
		if r.Bedtime != nil {
			if n, err := BedtimeToNumber(*r.Bedtime); err == nil {
				p.Bedtime = &n
			}
		}
		points = append(points, p)
	}
	return points
}
