package domain

// LifestyleFactors holds per-record habit descriptors. At most one row
// exists per sleep record.
type LifestyleFactors struct {
	ID                  uint   `gorm:"primaryKey" json:"id"`
	SleepRecordID       uint   `gorm:"not null;uniqueIndex:uq_lifestyle_record" json:"sleep_record_id"`
	CaffeineConsumption string `gorm:"not null" json:"caffeine_consumption"`
	AlcoholConsumption  string `gorm:"not null" json:"alcohol_consumption"`
	SmokingStatus       string `gorm:"not null" json:"smoking_status"`
	ExerciseFrequency   string `gorm:"not null" json:"exercise_frequency"`
}

func (LifestyleFactors) TableName() string {
	return "lifestyle_factors"
}

// CreateLifestyleRequest is the request body for creating or replacing
// a lifestyle row.
type CreateLifestyleRequest struct {
	SleepRecordID       uint   `json:"sleep_record_id" validate:"required" example:"42"`
	CaffeineConsumption string `json:"caffeine_consumption" validate:"required" example:"2 cups"`
	AlcoholConsumption  string `json:"alcohol_consumption" validate:"required" example:"none"`
	SmokingStatus       string `json:"smoking_status" validate:"required" example:"non-smoker"`
	ExerciseFrequency   string `json:"exercise_frequency" validate:"required" example:"3x week"`
}

// UpdateLifestyleRequest is the request body for partially updating a
// lifestyle row.
type UpdateLifestyleRequest struct {
	SleepRecordID       *uint   `json:"sleep_record_id,omitempty"`
	CaffeineConsumption *string `json:"caffeine_consumption,omitempty"`
	AlcoholConsumption  *string `json:"alcohol_consumption,omitempty"`
	SmokingStatus       *string `json:"smoking_status,omitempty"`
	ExerciseFrequency   *string `json:"exercise_frequency,omitempty"`
}
