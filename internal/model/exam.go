package model

import "time"

// Exam component skills. Listening and reading carry question groups,
// writing carries prompts, speaking carries scheduled sessions.
const (
	ComponentListening = "listening"
	ComponentReading   = "reading"
	ComponentWriting   = "writing"
	ComponentSpeaking  = "speaking"
)

// swagger:model Exam
type Exam struct {
	UUIDBase
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	TimeLimit   int        `gorm:"default:0" json:"timeLimit"` // Minutes
	IsPublished bool       `gorm:"default:false" json:"isPublished"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

func (Exam) TableName() string {
	return "exams"
}

// ListeningSection is one audio part of an exam's listening component.
// Sections play in Order; AudioObject points at the stored upload.
type ListeningSection struct {
	UUIDBase
	ExamID          string  `gorm:"index;type:varchar(36)" json:"examId"`
	Order           int     `gorm:"default:0" json:"order"`
	Title           string  `gorm:"size:255" json:"title"`
	AudioObject     string  `gorm:"size:512" json:"audioObject"`
	AudioURL        string  `gorm:"size:512" json:"audioUrl"`
	DurationSeconds float64 `gorm:"default:0" json:"durationSeconds"`
}

func (ListeningSection) TableName() string {
	return "listening_sections"
}

// WritingTask is a writing-component prompt (task 1 or task 2). Responses
// are graded entirely by hand, so only the prompt is modeled.
type WritingTask struct {
	UUIDBase
	ExamID       string `gorm:"index;type:varchar(36)" json:"examId"`
	TaskNumber   int    `gorm:"default:1" json:"taskNumber"`
	Prompt       string `gorm:"type:text;not null" json:"prompt"`
	MinWordCount int    `gorm:"default:0" json:"minWordCount"`
}

func (WritingTask) TableName() string {
	return "writing_tasks"
}
