package domain

// SleepStage is the per-record breakdown of sleep phases. At most one
// row exists per sleep record.
type SleepStage struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	SleepRecordID   uint    `gorm:"not null;uniqueIndex:uq_stage_record" json:"sleep_record_id"`
	REMPercentage   float64 `gorm:"not null" json:"rem_percentage"`
	DeepPercentage  float64 `gorm:"not null" json:"deep_percentage"`
	LightPercentage float64 `gorm:"not null" json:"light_percentage"`
}

func (SleepStage) TableName() string {
	return "sleep_stages"
}

// CreateSleepStageRequest is the request body for creating or replacing
// a stage breakdown.
type CreateSleepStageRequest struct {
	SleepRecordID   uint    `json:"sleep_record_id" validate:"required" example:"42"`
	REMPercentage   float64 `json:"rem_percentage" validate:"min=0,max=100" example:"22.5"`
	DeepPercentage  float64 `json:"deep_percentage" validate:"min=0,max=100" example:"18"`
	LightPercentage float64 `json:"light_percentage" validate:"min=0,max=100" example:"59.5"`
}

// UpdateSleepStageRequest is the request body for partially updating a
// stage breakdown.
type UpdateSleepStageRequest struct {
	SleepRecordID   *uint    `json:"sleep_record_id,omitempty"`
	REMPercentage   *float64 `json:"rem_percentage,omitempty" validate:"omitempty,min=0,max=100"`
	DeepPercentage  *float64 `json:"deep_percentage,omitempty" validate:"omitempty,min=0,max=100"`
	LightPercentage *float64 `json:"light_percentage,omitempty" validate:"omitempty,min=0,max=100"`
}
