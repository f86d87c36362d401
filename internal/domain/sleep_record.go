package domain

import (
	"fmt"
	"time"
)

const (
	// MinAwakenings and MaxAwakenings bound the awakenings count.
	MinAwakenings = 0
	MaxAwakenings = 20

	// MinDurationHours and MaxDurationHours bound plausible sleep
	// durations. Records outside this range are rejected, never clamped.
	MinDurationHours = 2.0
	MaxDurationHours = 14.0
)

type SleepRecord struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	SubjectID       uint       `gorm:"not null;index:idx_sleep_records_subject_date" json:"subject_id"`
	RecordDate      time.Time  `gorm:"type:date;not null;index:idx_sleep_records_subject_date" json:"record_date"`
	Bedtime         time.Time  `gorm:"not null" json:"bedtime"`
	WakeupTime      time.Time  `gorm:"not null" json:"wakeup_time"`
	SleepDuration   float64    `gorm:"not null" json:"sleep_duration"`
	SleepEfficiency float64    `gorm:"not null" json:"sleep_efficiency"`
	Awakenings      int        `gorm:"not null;default:0" json:"awakenings"`
	AttachmentURL   *string    `json:"attachment_url,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
	IsDeleted       bool       `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt       time.Time  `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	Subject   *Subject          `gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE" json:"subject,omitempty"`
	Stage     *SleepStage       `gorm:"foreignKey:SleepRecordID" json:"-"`
	Lifestyle *LifestyleFactors `gorm:"foreignKey:SleepRecordID" json:"-"`
}

func (SleepRecord) TableName() string {
	return "sleep_records"
}

// CreateSleepRecordRequest is the request body for creating or fully
// replacing a sleep record.
// @Description Sleep record payload. Duration and efficiency are derived
// @Description from the bedtime/wake-up window and the awakenings count.
type CreateSleepRecordRequest struct {
	// Subject the record belongs to
	SubjectID uint `json:"subject_id" validate:"required" example:"1"`
	// Calendar date of the night (YYYY-MM-DD)
	RecordDate Date `json:"record_date" swaggertype:"string" example:"2024-03-01"`
	// Bedtime as wall-clock time (HH:MM or HH:MM:SS)
	Bedtime TimeOfDay `json:"bedtime" swaggertype:"string" example:"23:00"`
	// Wake-up as wall-clock time; rolls to the next day when not after bedtime
	WakeupTime TimeOfDay `json:"wakeup_time" swaggertype:"string" example:"07:00"`
	// Optional client-supplied duration, bounds-checked but never stored
	SleepDuration *float64 `json:"sleep_duration,omitempty" example:"8"`
	// Optional client-supplied efficiency, bounds-checked but never stored
	SleepEfficiency *float64 `json:"sleep_efficiency,omitempty" example:"97.92"`
	// Number of awakenings during the night
	Awakenings int `json:"awakenings" validate:"min=0,max=20" example:"2"`
	// Optional attachment URL from the uploads endpoint
	AttachmentURL *string `json:"attachment_url,omitempty"`
	// Optional free-text note
	Notes *string `json:"notes,omitempty"`
}

// Validate applies the record invariants in order and returns the
// computed metrics on success. The first violated rule aborts with a
// wrapped sentinel error; today is injected so callers control the
// future-date reference.
func (r *CreateSleepRecordRequest) Validate(today Date) (durationHours, efficiencyPercent float64, err error) {
	if r.RecordDate.IsZero() {
		return 0, 0, fmt.Errorf("%w: record_date is required", ErrInvalidInput)
	}
	if r.RecordDate.After(today) {
		return 0, 0, fmt.Errorf("%w: record_date %s is after today", ErrFutureDate, r.RecordDate.Format(dateLayout))
	}
	if r.Awakenings < MinAwakenings || r.Awakenings > MaxAwakenings {
		return 0, 0, fmt.Errorf("%w: awakenings must be between %d and %d", ErrOutOfRange, MinAwakenings, MaxAwakenings)
	}

	durationHours, efficiencyPercent = ComputeSleepMetrics(r.RecordDate, r.Bedtime, r.WakeupTime, r.Awakenings)

	if r.SleepDuration != nil {
		if *r.SleepDuration < MinDurationHours || *r.SleepDuration > MaxDurationHours {
			return 0, 0, fmt.Errorf("%w: sleep_duration must be between %.1f and %.1f hours", ErrOutOfRange, MinDurationHours, MaxDurationHours)
		}
	}
	if durationHours < MinDurationHours || durationHours > MaxDurationHours {
		return 0, 0, fmt.Errorf("%w: computed sleep duration %.2f h must be between %.1f and %.1f hours", ErrOutOfRange, durationHours, MinDurationHours, MaxDurationHours)
	}

	if r.SleepEfficiency != nil {
		if *r.SleepEfficiency < 0 || *r.SleepEfficiency > 100 {
			return 0, 0, fmt.Errorf("%w: sleep_efficiency must be between 0 and 100", ErrOutOfRange)
		}
	}
	if efficiencyPercent < 0 || efficiencyPercent > 100 {
		return 0, 0, fmt.Errorf("%w: computed sleep efficiency %.2f must be between 0 and 100", ErrOutOfRange, efficiencyPercent)
	}

	return durationHours, efficiencyPercent, nil
}

// UpdateSleepRecordRequest is the request body for partially updating a
// sleep record. When any window or awakenings field changes, metrics are
// recomputed from the merged values.
type UpdateSleepRecordRequest struct {
	SubjectID       *uint      `json:"subject_id,omitempty"`
	RecordDate      *Date      `json:"record_date,omitempty" swaggertype:"string"`
	Bedtime         *TimeOfDay `json:"bedtime,omitempty" swaggertype:"string"`
	WakeupTime      *TimeOfDay `json:"wakeup_time,omitempty" swaggertype:"string"`
	SleepDuration   *float64   `json:"sleep_duration,omitempty"`
	SleepEfficiency *float64   `json:"sleep_efficiency,omitempty"`
	Awakenings      *int       `json:"awakenings,omitempty" validate:"omitempty,min=0,max=20"`
	AttachmentURL   *string    `json:"attachment_url,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
	IsDeleted       *bool      `json:"is_deleted,omitempty"`
}

// TouchesWindow reports whether the patch changes any field the metrics
// derivation depends on.
func (r *UpdateSleepRecordRequest) TouchesWindow() bool {
	return r.RecordDate != nil || r.Bedtime != nil || r.WakeupTime != nil ||
		r.Awakenings != nil || r.SleepDuration != nil || r.SleepEfficiency != nil
}

// SleepRecordResponse is the response body for sleep record endpoints.
// @Description Sleep record with resolved timestamps and derived metrics.
type SleepRecordResponse struct {
	ID              uint            `json:"id" example:"42"`
	SubjectID       uint            `json:"subject_id" example:"1"`
	RecordDate      string          `json:"record_date" example:"2024-03-01"`
	Bedtime         time.Time       `json:"bedtime" example:"2024-03-01T23:00:00Z"`
	WakeupTime      time.Time       `json:"wakeup_time" example:"2024-03-02T07:00:00Z"`
	SleepDuration   float64         `json:"sleep_duration" example:"8"`
	SleepEfficiency float64         `json:"sleep_efficiency" example:"97.92"`
	Awakenings      int             `json:"awakenings" example:"2"`
	AttachmentURL   *string         `json:"attachment_url,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
	IsDeleted       bool            `json:"is_deleted" example:"false"`
	CreatedAt       time.Time       `json:"created_at"`
	Subject         *SubjectSummary `json:"subject,omitempty"`
}

func (r *SleepRecord) ToResponse() SleepRecordResponse {
	resp := SleepRecordResponse{
		ID:              r.ID,
		SubjectID:       r.SubjectID,
		RecordDate:      r.RecordDate.Format(dateLayout),
		Bedtime:         r.Bedtime,
		WakeupTime:      r.WakeupTime,
		SleepDuration:   r.SleepDuration,
		SleepEfficiency: r.SleepEfficiency,
		Awakenings:      r.Awakenings,
		AttachmentURL:   r.AttachmentURL,
		Notes:           r.Notes,
		IsDeleted:       r.IsDeleted,
		CreatedAt:       r.CreatedAt,
	}
	if r.Subject != nil {
		summary := r.Subject.ToSummary()
		resp.Subject = &summary
	}
	return resp
}

// SleepRecordListResponse is the response body for listing records.
// @Description Paginated list of sleep records.
type SleepRecordListResponse struct {
	Data       []SleepRecordResponse `json:"data"`
	Pagination PaginationResponse    `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	NextCursor string `json:"next_cursor,omitempty"`
	HasMore    bool   `json:"has_more" example:"false"`
}

// SleepRecordFilter contains filter parameters for listing records.
type SleepRecordFilter struct {
	DateFrom       *Date
	DateTo         *Date
	Gender         string
	SubjectID      uint
	IncludeDeleted bool
	Limit          int
	Cursor         string
}
