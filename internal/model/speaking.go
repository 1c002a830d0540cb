package model

// SpeakingGroup holds the exam-level speaking settings: how long one
// one-on-one session runs and how many instructors are assigned. Both apply
// to every time window of the group.
// swagger:model SpeakingGroup
type SpeakingGroup struct {
	UUIDBase
	ExamID          string `gorm:"uniqueIndex;type:varchar(36)" json:"examId"`
	SessionMinutes  int    `gorm:"default:0" json:"sessionMinutes"`
	InstructorCount int    `gorm:"default:0" json:"instructorCount"`
}

func (SpeakingGroup) TableName() string {
	return "speaking_groups"
}

// SpeakingTimeWindow is one bookable range on one date. Times are stored as
// the strings staff entered, 24-hour or 12-hour; the scheduling package
// parses them on demand.
type SpeakingTimeWindow struct {
	UUIDBase
	SpeakingGroupID string `gorm:"index;type:varchar(36)" json:"speakingGroupId"`
	Date            string `gorm:"size:10;not null" json:"date"` // ISO date
	StartTime       string `gorm:"size:10" json:"startTime"`
	EndTime         string `gorm:"size:10" json:"endTime"`
}

func (SpeakingTimeWindow) TableName() string {
	return "speaking_time_windows"
}
