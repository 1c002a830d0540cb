package model

import "encoding/json"

// QuestionGroup is a stored block of same-type questions inside a listening
// or reading component. Questions holds the authoring payload as JSON; it is
// validated through the grading parser before every write.
// swagger:model QuestionGroup
type QuestionGroup struct {
	UUIDBase
	ExamID       string          `gorm:"index;type:varchar(36)" json:"examId"`
	Component    string          `gorm:"size:20;not null" json:"component"` // listening, reading
	SectionID    string          `gorm:"index;type:varchar(36)" json:"sectionId,omitempty"`
	QuestionType string          `gorm:"size:50;not null" json:"questionType"`
	Instruction  string          `gorm:"type:text" json:"instruction"`
	WordLimit    int             `gorm:"default:0" json:"wordLimit"`
	Questions    json.RawMessage `gorm:"type:json" json:"questions"`
	Order        int             `gorm:"default:0" json:"order"`
}

func (QuestionGroup) TableName() string {
	return "question_groups"
}
