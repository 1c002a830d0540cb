package repository

import (
	"ielts_prep_backend/internal/model"

	"gorm.io/gorm"
)

type SpeakingRepository struct {
	DB *gorm.DB
}

func NewSpeakingRepository(db *gorm.DB) *SpeakingRepository {
	return &SpeakingRepository{DB: db}
}

func (r *SpeakingRepository) CreateGroup(group *model.SpeakingGroup) error {
	return r.DB.Create(group).Error
}

func (r *SpeakingRepository) FindGroupByExam(examID string) (*model.SpeakingGroup, error) {
	var group model.SpeakingGroup
	err := r.DB.First(&group, "exam_id = ?", examID).Error
	return &group, err
}

func (r *SpeakingRepository) UpdateGroup(group *model.SpeakingGroup) error {
	return r.DB.Save(group).Error
}

func (r *SpeakingRepository) CreateWindow(window *model.SpeakingTimeWindow) error {
	return r.DB.Create(window).Error
}

func (r *SpeakingRepository) FindWindow(id string) (*model.SpeakingTimeWindow, error) {
	var window model.SpeakingTimeWindow
	err := r.DB.First(&window, "id = ?", id).Error
	return &window, err
}

func (r *SpeakingRepository) UpdateWindow(window *model.SpeakingTimeWindow) error {
	return r.DB.Save(window).Error
}

func (r *SpeakingRepository) DeleteWindow(id string) error {
	return r.DB.Delete(&model.SpeakingTimeWindow{}, "id = ?", id).Error
}

func (r *SpeakingRepository) ListWindows(groupID string) ([]model.SpeakingTimeWindow, error) {
	var windows []model.SpeakingTimeWindow
	err := r.DB.Where("speaking_group_id = ?", groupID).
		Order("date asc, start_time asc").Find(&windows).Error
	return windows, err
}
