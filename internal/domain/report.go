package domain

// Report aggregation DTOs. Rows come out of grouped SQL over validated,
// persisted records; sanity filters re-apply the stored bounds so legacy
// rows cannot skew the averages.

// GenderAggregate is one by-gender row of the aggregates report.
type GenderAggregate struct {
	Gender        string  `json:"gender" example:"F"`
	Count         int     `json:"count" example:"37"`
	AvgDuration   float64 `json:"avg_duration" example:"7.42"`
	AvgEfficiency float64 `json:"avg_efficiency" example:"88.1"`
}

// AgeBucketAggregate is one by-age-bucket row of the aggregates report.
type AgeBucketAggregate struct {
	AgeBucket     string  `json:"age_bucket" example:"31-45"`
	Count         int     `json:"count" example:"24"`
	AvgDuration   float64 `json:"avg_duration" example:"6.95"`
	AvgEfficiency float64 `json:"avg_efficiency" example:"85.6"`
}

// AggregatesResponse is the response body for the aggregates report.
// @Description Grouped averages by gender and age bucket.
type AggregatesResponse struct {
	ByGender    []GenderAggregate    `json:"by_gender"`
	ByAgeBucket []AgeBucketAggregate `json:"by_age_bucket"`
}

// DailyPoint is one day of the duration time series.
type DailyPoint struct {
	Date        string  `json:"date" example:"2024-03-01"`
	AvgDuration float64 `json:"avg_duration" example:"7.1"`
	Count       int     `json:"count" example:"12"`
}

// TimeseriesResponse is the response body for the time-series report.
type TimeseriesResponse struct {
	Daily []DailyPoint `json:"daily"`
}

// StageDistribution holds average stage percentages.
type StageDistribution struct {
	REM   float64 `json:"rem" example:"21.3"`
	Deep  float64 `json:"deep" example:"17.8"`
	Light float64 `json:"light" example:"60.9"`
}

// DistributionResponse is the response body for the stage-distribution
// report.
type DistributionResponse struct {
	Source string            `json:"source" example:"sleep_stages"`
	Count  int               `json:"count" example:"48"`
	Data   StageDistribution `json:"data"`
}

// TagHabitAggregate is one per-tag row of the habits-quality report.
type TagHabitAggregate struct {
	Tag           string  `json:"tag" example:"Cafe tarde"`
	AvgEfficiency float64 `json:"avg_efficiency" example:"81.4"`
	AvgDuration   float64 `json:"avg_duration" example:"6.7"`
	N             int     `json:"n" example:"19"`
}

// HabitsQualityResponse is the response body for the habits-quality
// report.
type HabitsQualityResponse struct {
	ByTag []TagHabitAggregate `json:"by_tag"`
}

// ReportFilter bounds the reporting window.
type ReportFilter struct {
	Days int
	MinN int
}

// ReportInsightsContext is the aggregate payload handed to the LLM.
type ReportInsightsContext struct {
	WindowDays   int                  `json:"window_days"`
	Aggregates   AggregatesResponse   `json:"aggregates"`
	Timeseries   TimeseriesResponse   `json:"timeseries"`
	Distribution DistributionResponse `json:"distribution"`
}

// LLMInsightsOutput is the structured response expected from the LLM.
type LLMInsightsOutput struct {
	Summary      string   `json:"summary"`
	Observations []string `json:"observations"`
	Guidance     []string `json:"guidance"`
}

// InsightsResponse is the response body for the report-insights
// endpoint.
type InsightsResponse struct {
	WindowDays int               `json:"window_days"`
	Insights   LLMInsightsOutput `json:"insights"`
}

// UploadResponse is the response body for file uploads.
type UploadResponse struct {
	PublicURL string `json:"public_url" example:"https://project.supabase.co/storage/v1/object/public/sleep-uploads/sleep-records/abc_report.pdf"`
}
