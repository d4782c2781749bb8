package domain

import (
	"math"
	"testing"
	"time"
)

func dayRecord(daysAgo, totalScore int) DailyRecord {
	return DailyRecord{
		RecordDate: time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -daysAgo),
		TotalScore: totalScore,
	}
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil)

	if stats.AvgScore != 0 {
		t.Errorf("AvgScore = %v, want 0", stats.AvgScore)
	}
	if stats.MaxScore != 0 {
		t.Errorf("MaxScore = %d, want 0", stats.MaxScore)
	}
	if stats.RecentTrend != 0 {
		t.Errorf("RecentTrend = %d, want 0", stats.RecentTrend)
	}
	if stats.AvgSleepScore != nil {
		t.Errorf("AvgSleepScore = %v, want nil", *stats.AvgSleepScore)
	}
}

func TestComputeStats_TrendUsesSevenNewest(t *testing.T) {
	// Newest first: [5 3 4 2 1 3 2] plus an older 0 that must not count.
	scores := []int{5, 3, 4, 2, 1, 3, 2, 0}
	records := make([]DailyRecord, len(scores))
	for i, s := range scores {
		records[i] = dayRecord(i, s)
	}

	stats := ComputeStats(records)

	if stats.RecentTrend != 3 {
		t.Errorf("RecentTrend = %d, want 3", stats.RecentTrend)
	}
	if stats.MaxScore != 5 {
		t.Errorf("MaxScore = %d, want 5", stats.MaxScore)
	}
	wantAvg := 20.0 / 8.0
	if math.Abs(stats.AvgScore-wantAvg) > 1e-9 {
		t.Errorf("AvgScore = %v, want %v", stats.AvgScore, wantAvg)
	}
}

func TestComputeStats_SingleRecordHasNoTrend(t *testing.T) {
	stats := ComputeStats([]DailyRecord{dayRecord(0, 4)})
	if stats.RecentTrend != 0 {
		t.Errorf("RecentTrend = %d, want 0 for a single record", stats.RecentTrend)
	}
	if stats.AvgScore != 4 {
		t.Errorf("AvgScore = %v, want 4", stats.AvgScore)
	}
}

func TestComputeStats_AvgSleepScoreSkipsMissing(t *testing.T) {
	records := []DailyRecord{
		{RecordDate: time.Now(), TotalScore: 3, SleepScore: intPtr(80)},
		{RecordDate: time.Now(), TotalScore: 2},
		{RecordDate: time.Now(), TotalScore: 4, SleepScore: intPtr(60)},
	}

	stats := ComputeStats(records)
	if stats.AvgSleepScore == nil {
		t.Fatal("AvgSleepScore = nil, want 70")
	}
	if math.Abs(*stats.AvgSleepScore-70) > 1e-9 {
		t.Errorf("AvgSleepScore = %v, want 70", *stats.AvgSleepScore)
	}

	// Zero is data, not absence.
	stats = ComputeStats([]DailyRecord{{RecordDate: time.Now(), SleepScore: intPtr(0)}})
	if stats.AvgSleepScore == nil || *stats.AvgSleepScore != 0 {
		t.Errorf("AvgSleepScore = %v, want explicit 0", stats.AvgSleepScore)
	}
}

func TestBuildChartSeries_PreservesOrderAndDerives(t *testing.T) {
	records := []DailyRecord{
		{
			RecordDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			WakeUpTime: strPtr("07:00"),
			Bedtime:    strPtr("23:00"),
			SleepScore: intPtr(75),
			TotalScore: 5,
		},
		{
			RecordDate: time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
			WakeUpTime: strPtr("08:30"),
			Bedtime:    strPtr("02:00"),
			TotalScore: 3,
		},
		{
			RecordDate: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
			TotalScore: 1,
		},
	}

	points := BuildChartSeries(records)
	if len(points) != 3 {
		t.Fatalf("len = %d, want 3", len(points))
	}

	if points[0].Date != "2024-06-01" || points[1].Date != "2024-06-02" || points[2].Date != "2024-06-03" {
		t.Errorf("input order not preserved: %s, %s, %s", points[0].Date, points[1].Date, points[2].Date)
	}

	if points[0].WakeUpTime == nil || *points[0].WakeUpTime != 7.0 {
		t.Errorf("points[0].WakeUpTime = %v, want 7.0", points[0].WakeUpTime)
	}
	if points[0].Bedtime == nil || *points[0].Bedtime != 23.0 {
		t.Errorf("points[0].Bedtime = %v, want 23.0", points[0].Bedtime)
	}
	if points[0].SleepDuration == nil || *points[0].SleepDuration != 8.0 {
		t.Errorf("points[0].SleepDuration = %v, want 8.0", points[0].SleepDuration)
	}

	// Past-midnight bedtime lands on the overnight scale.
	if points[1].Bedtime == nil || *points[1].Bedtime != 26.0 {
		t.Errorf("points[1].Bedtime = %v, want 26.0", points[1].Bedtime)
	}
	if points[1].SleepDuration == nil || *points[1].SleepDuration != 6.5 {
		t.Errorf("points[1].SleepDuration = %v, want 6.5", points[1].SleepDuration)
	}
	if points[1].SleepScore != nil {
		t.Errorf("points[1].SleepScore = %v, want nil", *points[1].SleepScore)
	}

	// Missing times mean null derived metrics, never zeros.
	if points[2].WakeUpTime != nil || points[2].Bedtime != nil || points[2].SleepDuration != nil {
		t.Error("points[2] derived fields should all be nil")
	}
}
