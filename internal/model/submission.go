package model

import "time"

const (
	SubmissionInProgress = "in_progress"
	SubmissionCompleted  = "completed"
)

// ExamSubmission is one student's attempt at the listening/reading parts of
// an exam.
// swagger:model ExamSubmission
type ExamSubmission struct {
	UUIDBase
	ExamID      string     `gorm:"index;type:varchar(36)" json:"examId"`
	StudentName string     `gorm:"size:255" json:"studentName"`
	Status      string     `gorm:"size:20;default:'in_progress'" json:"status"`
	Correct     int        `gorm:"default:0" json:"correct"`
	Incorrect   int        `gorm:"default:0" json:"incorrect"`
	Unanswered  int        `gorm:"default:0" json:"unanswered"`
	StartedAt   time.Time  `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func (ExamSubmission) TableName() string {
	return "exam_submissions"
}

// SubmissionAnswer stores one graded question. AutoStatus is the engine's
// verdict; FinalStatus reflects any manual override and is what scores are
// computed from.
type SubmissionAnswer struct {
	UUIDBase
	SubmissionID   string `gorm:"index:idx_submission_question,unique;type:varchar(36)" json:"submissionId"`
	QuestionNumber int    `gorm:"index:idx_submission_question,unique" json:"questionNumber"`
	Answer         string `gorm:"type:text" json:"answer"`
	AutoStatus     string `gorm:"size:20" json:"autoStatus"`
	FinalStatus    string `gorm:"size:20" json:"finalStatus"`
	OverWordLimit  bool   `gorm:"default:false" json:"overWordLimit"`
}

func (SubmissionAnswer) TableName() string {
	return "submission_answers"
}

// ManualGrade is an instructor's override for one question of one
// submission. Status is correct, incorrect, or auto.
type ManualGrade struct {
	UUIDBase
	SubmissionID   string `gorm:"index:idx_manual_question,unique;type:varchar(36)" json:"submissionId"`
	QuestionNumber int    `gorm:"index:idx_manual_question,unique" json:"questionNumber"`
	Status         string `gorm:"size:20;default:'auto'" json:"status"`
}

func (ManualGrade) TableName() string {
	return "manual_grades"
}
