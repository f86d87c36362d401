package domain

// Tag is a descriptive label attached to subjects (many-to-many).
type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`

	Subjects []Subject `gorm:"many2many:subject_tags" json:"-"`
}

func (Tag) TableName() string {
	return "tags"
}

// CreateTagRequest is the request body for creating or renaming a tag.
type CreateTagRequest struct {
	Name string `json:"name" validate:"required,max=100" example:"Cafe tarde"`
}
