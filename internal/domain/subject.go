package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MinSubjectAge = 0
	MaxSubjectAge = 120

	MinNameLength = 2
	MaxNameLength = 50
)

// Gender is the closed set of recorded genders.
type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

// Letters (including accented), spaces, apostrophes, hyphens and periods.
var nameRE = regexp.MustCompile(`^[\p{L}]+(?:[ '.-][\p{L}]+)*\.?$`)

type Subject struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      *string   `gorm:"type:varchar(100)" json:"name,omitempty"`
	Age       int       `gorm:"not null;check:age >= 0" json:"age"`
	Gender    string    `gorm:"type:varchar(20);not null;index" json:"gender"`
	IsDeleted bool      `gorm:"not null;default:false" json:"is_deleted"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	Records []SleepRecord `gorm:"foreignKey:SubjectID" json:"-"`
	Tags    []Tag         `gorm:"many2many:subject_tags" json:"tags"`
}

func (Subject) TableName() string {
	return "subjects"
}

// NormalizeName collapses internal whitespace runs to single spaces and
// trims the ends.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// ValidateName normalizes a subject name and checks the character
// pattern and length bounds.
func ValidateName(name string) (string, error) {
	normalized := NormalizeName(name)
	length := utf8.RuneCountInString(normalized)
	if length < MinNameLength || length > MaxNameLength {
		return "", fmt.Errorf("%w: name must be %d-%d characters", ErrFormat, MinNameLength, MaxNameLength)
	}
	if !nameRE.MatchString(normalized) {
		return "", fmt.Errorf("%w: name may only contain letters, spaces, apostrophes, hyphens and periods", ErrFormat)
	}
	return normalized, nil
}

// ValidateAge checks the age bounds.
func ValidateAge(age int) error {
	if age < MinSubjectAge || age > MaxSubjectAge {
		return fmt.Errorf("%w: age must be between %d and %d", ErrOutOfRange, MinSubjectAge, MaxSubjectAge)
	}
	return nil
}

// ValidateGender trims and upper-cases the gender and rejects anything
// outside the closed M/F/O set.
func ValidateGender(gender string) (Gender, error) {
	switch g := Gender(strings.ToUpper(strings.TrimSpace(gender))); g {
	case GenderMale, GenderFemale, GenderOther:
		return g, nil
	default:
		return "", fmt.Errorf("%w: gender must be one of M, F, O", ErrFormat)
	}
}

// CanonicalGender maps arbitrary stored gender strings onto the closed
// set, falling back to O. Used only for best-effort aggregation of rows
// that predate strict validation; new input goes through ValidateGender.
func CanonicalGender(gender string) Gender {
	g, err := ValidateGender(gender)
	if err != nil {
		return GenderOther
	}
	return g
}

// CreateSubjectRequest is the request body for creating a subject.
// @Description Subject payload. Name is normalized and pattern-checked,
// @Description gender must be one of M, F, O.
type CreateSubjectRequest struct {
	// Display name; whitespace runs are collapsed
	Name *string `json:"name,omitempty" example:"Ana María"`
	// Age in years
	Age int `json:"age" validate:"min=0,max=120" example:"34"`
	// Gender code: M, F or O
	Gender string `json:"gender" validate:"required" example:"F"`
	// Tags to associate; every id must exist
	TagIDs []uint `json:"tag_ids"`
}

// Validate normalizes the payload in place, returning the first violated
// rule.
func (r *CreateSubjectRequest) Validate() error {
	if r.Name != nil {
		normalized, err := ValidateName(*r.Name)
		if err != nil {
			return err
		}
		r.Name = &normalized
	}
	if err := ValidateAge(r.Age); err != nil {
		return err
	}
	gender, err := ValidateGender(r.Gender)
	if err != nil {
		return err
	}
	r.Gender = string(gender)
	return nil
}

// UpdateSubjectRequest is the request body for partially updating a
// subject.
type UpdateSubjectRequest struct {
	Name      *string `json:"name,omitempty"`
	Age       *int    `json:"age,omitempty"`
	Gender    *string `json:"gender,omitempty"`
	IsDeleted *bool   `json:"is_deleted,omitempty"`
	TagIDs    []uint  `json:"tag_ids,omitempty"`
}

// Validate normalizes the supplied fields in place.
func (r *UpdateSubjectRequest) Validate() error {
	if r.Name != nil {
		normalized, err := ValidateName(*r.Name)
		if err != nil {
			return err
		}
		r.Name = &normalized
	}
	if r.Age != nil {
		if err := ValidateAge(*r.Age); err != nil {
			return err
		}
	}
	if r.Gender != nil {
		gender, err := ValidateGender(*r.Gender)
		if err != nil {
			return err
		}
		g := string(gender)
		r.Gender = &g
	}
	return nil
}

// SubjectSummary is the compact subject representation embedded in
// record responses.
type SubjectSummary struct {
	ID     uint    `json:"id" example:"1"`
	Name   *string `json:"name,omitempty" example:"Ana María"`
	Age    int     `json:"age" example:"34"`
	Gender string  `json:"gender" example:"F"`
}

// SubjectResponse is the response body for subject endpoints.
type SubjectResponse struct {
	ID        uint      `json:"id"`
	Name      *string   `json:"name,omitempty"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	IsDeleted bool      `json:"is_deleted"`
	CreatedAt time.Time `json:"created_at"`
	Tags      []Tag     `json:"tags"`
}

func (s *Subject) ToSummary() SubjectSummary {
	return SubjectSummary{ID: s.ID, Name: s.Name, Age: s.Age, Gender: s.Gender}
}

func (s *Subject) ToResponse() SubjectResponse {
	tags := s.Tags
	if tags == nil {
		tags = []Tag{}
	}
	return SubjectResponse{
		ID:        s.ID,
		Name:      s.Name,
		Age:       s.Age,
		Gender:    s.Gender,
		IsDeleted: s.IsDeleted,
		CreatedAt: s.CreatedAt,
		Tags:      tags,
	}
}

// SubjectFilter contains filter parameters for listing subjects.
type SubjectFilter struct {
	Gender         string
	AgeMin         *int
	AgeMax         *int
	Query          string
	IncludeDeleted bool
}
