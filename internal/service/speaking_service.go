package service

import (
	"errors"
	"ielts_prep_backend/internal/config"
	"ielts_prep_backend/internal/model"
	"ielts_prep_backend/internal/repository"
	"ielts_prep_backend/internal/scheduling"
	"ielts_prep_backend/internal/util"
	"sync"

	"gorm.io/gorm"
)

type SpeakingService struct {
	Repo  *repository.SpeakingRepository
	Exams *repository.ExamRepository

	mu       sync.RWMutex
	defaults config.SpeakingConfig
}

func NewSpeakingService(repo *repository.SpeakingRepository, exams *repository.ExamRepository, cfg *config.Config) *SpeakingService {
	return &SpeakingService{Repo: repo, Exams: exams, defaults: cfg.Speaking}
}

// ApplyConfig swaps in fresh defaults after a config reload.
func (s *SpeakingService) ApplyConfig(cfg *config.Config) {
	s.mu.Lock()
	s.defaults = cfg.Speaking
	s.mu.Unlock()
}

type SpeakingGroupReq struct {
	SessionMinutes  *int `json:"sessionMinutes"`
	InstructorCount *int `json:"instructorCount"`
}

// UpsertGroup creates or updates the exam's speaking settings. Absent fields
// fall back to the configured defaults on create and are left untouched on
// update.
func (s *SpeakingService) UpsertGroup(examID string, req SpeakingGroupReq) (*model.SpeakingGroup, error) {
	if _, err := s.Exams.FindByID(examID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrExamNotFound
		}
		return nil, err
	}

	group, err := s.Repo.FindGroupByExam(examID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.mu.RLock()
		group = &model.SpeakingGroup{
			ExamID:          examID,
			SessionMinutes:  s.defaults.DefaultSessionMinutes,
			InstructorCount: s.defaults.DefaultInstructors,
		}
		s.mu.RUnlock()
		if req.SessionMinutes != nil {
			group.SessionMinutes = *req.SessionMinutes
		}
		if req.InstructorCount != nil {
			group.InstructorCount = *req.InstructorCount
		}
		if err := s.Repo.CreateGroup(group); err != nil {
			return nil, err
		}
		return group, nil
	}
	if err != nil {
		return nil, err
	}

	if req.SessionMinutes != nil {
		group.SessionMinutes = *req.SessionMinutes
	}
	if req.InstructorCount != nil {
		group.InstructorCount = *req.InstructorCount
	}
	if err := s.Repo.UpdateGroup(group); err != nil {
		return nil, err
	}
	return group, nil
}

type TimeWindowReq struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func (s *SpeakingService) AddWindow(examID string, req TimeWindowReq) (*model.SpeakingTimeWindow, error) {
	group, err := s.Repo.FindGroupByExam(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSpeakingGroupMissing
		}
		return nil, err
	}

	window := &model.SpeakingTimeWindow{
		SpeakingGroupID: group.ID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
	}
	if err := s.Repo.CreateWindow(window); err != nil {
		return nil, err
	}
	return window, nil
}

func (s *SpeakingService) UpdateWindow(windowID string, req TimeWindowReq) (*model.SpeakingTimeWindow, error) {
	window, err := s.Repo.FindWindow(windowID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrWindowNotFound
		}
		return nil, err
	}

	window.Date = req.Date
	window.StartTime = req.StartTime
	window.EndTime = req.EndTime
	if err := s.Repo.UpdateWindow(window); err != nil {
		return nil, err
	}
	return window, nil
}

func (s *SpeakingService) RemoveWindow(windowID string) error {
	if _, err := s.Repo.FindWindow(windowID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrWindowNotFound
		}
		return err
	}
	return s.Repo.DeleteWindow(windowID)
}

type WindowCapacity struct {
	Window   model.SpeakingTimeWindow `json:"window"`
	Capacity scheduling.Capacity      `json:"capacity"`
}

type CapacityReport struct {
	SessionMinutes  int                          `json:"sessionMinutes"`
	InstructorCount int                          `json:"instructorCount"`
	Windows         []WindowCapacity             `json:"windows"`
	TotalCapacity   int                          `json:"totalCapacity"`
	Warnings        []scheduling.OverlapWarning `json:"warnings,omitempty"`
}

// CapacityForExam computes per-window and aggregate speaking capacity for an
// exam. Capacity is derived on every call, never stored; overlapping windows
// are reported as warnings without changing the totals.
func (s *SpeakingService) CapacityForExam(examID string) (*CapacityReport, error) {
	group, err := s.Repo.FindGroupByExam(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSpeakingGroupMissing
		}
		return nil, err
	}

	rows, err := s.Repo.ListWindows(group.ID)
	if err != nil {
		return nil, err
	}

	windows := make([]scheduling.TimeWindow, 0, len(rows))
	for _, row := range rows {
		windows = append(windows, scheduling.TimeWindow{
			ID:        row.ID,
			Date:      row.Date,
			StartTime: row.StartTime,
			EndTime:   row.EndTime,
		})
	}

	report := &CapacityReport{
		SessionMinutes:  group.SessionMinutes,
		InstructorCount: group.InstructorCount,
		Windows:         make([]WindowCapacity, 0, len(rows)),
		Warnings:        scheduling.OverlapWarnings(windows),
	}

	for i, w := range windows {
		capacity := scheduling.SessionsInWindow(w, group.SessionMinutes, group.InstructorCount)
		report.Windows = append(report.Windows, WindowCapacity{Window: rows[i], Capacity: capacity})
		report.TotalCapacity += capacity.TotalCapacity
	}

	return report, nil
}
