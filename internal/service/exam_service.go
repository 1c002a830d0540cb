package service

import (
	"context"
	"encoding/json"
	"errors"
	"ielts_prep_backend/internal/grading"
	"ielts_prep_backend/internal/model"
	"ielts_prep_backend/internal/repository"
	"ielts_prep_backend/internal/util"
	"ielts_prep_backend/pkg/logger"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const publishedExamCacheTTL = 10 * time.Minute

type ExamService struct {
	Repo    *repository.ExamRepository
	Storage *StorageService
	Redis   *redis.Client
}

func NewExamService(repo *repository.ExamRepository, storage *StorageService, rdb *redis.Client) *ExamService {
	return &ExamService{Repo: repo, Storage: storage, Redis: rdb}
}

type ExamReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	TimeLimit   *int    `json:"timeLimit"`
	IsPublished *bool   `json:"isPublished"`
}

func (s *ExamService) CreateExam(req ExamReq) (*model.Exam, error) {
	if req.Title == nil || *req.Title == "" {
		return nil, errors.New("title is required")
	}

	exam := &model.Exam{Title: *req.Title}
	if req.Description != nil {
		exam.Description = *req.Description
	}
	if req.TimeLimit != nil {
		exam.TimeLimit = *req.TimeLimit
	}
	if req.IsPublished != nil && *req.IsPublished {
		now := time.Now()
		exam.IsPublished = true
		exam.PublishedAt = &now
	}

	if err := s.Repo.Create(exam); err != nil {
		return nil, err
	}
	return exam, nil
}

func (s *ExamService) UpdateExam(examID string, req ExamReq) (*model.Exam, error) {
	exam, err := s.Repo.FindByID(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrExamNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		exam.Title = *req.Title
	}
	if req.Description != nil {
		exam.Description = *req.Description
	}
	if req.TimeLimit != nil {
		exam.TimeLimit = *req.TimeLimit
	}
	if req.IsPublished != nil && *req.IsPublished != exam.IsPublished {
		exam.IsPublished = *req.IsPublished
		if exam.IsPublished {
			now := time.Now()
			exam.PublishedAt = &now
		} else {
			exam.PublishedAt = nil
		}
	}

	if err := s.Repo.Update(exam); err != nil {
		return nil, err
	}
	s.invalidateCache(examID)
	return exam, nil
}

func (s *ExamService) DeleteExam(examID string) error {
	s.invalidateCache(examID)
	return s.Repo.Delete(examID)
}

func (s *ExamService) GetExam(examID string) (*model.Exam, error) {
	exam, err := s.Repo.FindByID(examID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrExamNotFound
	}
	return exam, err
}

func (s *ExamService) ListExams(page, limit int) ([]repository.ExamListRow, int64, error) {
	return s.Repo.List(page, limit)
}

type QuestionGroupReq struct {
	Component    string          `json:"component" binding:"required,oneof=listening reading"`
	SectionID    string          `json:"sectionId"`
	QuestionType string          `json:"questionType" binding:"required"`
	Instruction  string          `json:"instruction"`
	WordLimit    int             `json:"wordLimit"`
	Questions    json.RawMessage `json:"questions" binding:"required"`
	Order        int             `json:"order"`
}

// CreateQuestionGroup validates the authoring payload through the grading
// parser before storing it, so malformed groups are rejected at write time
// instead of surfacing during grading.
func (s *ExamService) CreateQuestionGroup(examID string, req QuestionGroupReq) (*model.QuestionGroup, error) {
	if _, err := s.Repo.FindByID(examID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrExamNotFound
		}
		return nil, err
	}
	if _, err := grading.ParseGroup(req.QuestionType, req.Instruction, req.WordLimit, req.Questions); err != nil {
		return nil, err
	}

	group := &model.QuestionGroup{
		ExamID:       examID,
		Component:    req.Component,
		SectionID:    req.SectionID,
		QuestionType: req.QuestionType,
		Instruction:  req.Instruction,
		WordLimit:    req.WordLimit,
		Questions:    req.Questions,
		Order:        req.Order,
	}
	if err := s.Repo.CreateQuestionGroup(group); err != nil {
		return nil, err
	}
	s.invalidateCache(examID)
	return group, nil
}

func (s *ExamService) UpdateQuestionGroup(groupID string, req QuestionGroupReq) (*model.QuestionGroup, error) {
	group, err := s.Repo.FindQuestionGroup(groupID)
	if err != nil {
		return nil, err
	}
	if _, err := grading.ParseGroup(req.QuestionType, req.Instruction, req.WordLimit, req.Questions); err != nil {
		return nil, err
	}

	group.Component = req.Component
	group.SectionID = req.SectionID
	group.QuestionType = req.QuestionType
	group.Instruction = req.Instruction
	group.WordLimit = req.WordLimit
	group.Questions = req.Questions
	group.Order = req.Order

	if err := s.Repo.UpdateQuestionGroup(group); err != nil {
		return nil, err
	}
	s.invalidateCache(group.ExamID)
	return group, nil
}

func (s *ExamService) DeleteQuestionGroup(groupID string) error {
	group, err := s.Repo.FindQuestionGroup(groupID)
	if err != nil {
		return err
	}
	s.invalidateCache(group.ExamID)
	return s.Repo.DeleteQuestionGroup(groupID)
}

type ExamDetail struct {
	Exam         model.Exam               `json:"exam"`
	Sections     []model.ListeningSection `json:"sections"`
	Groups       []model.QuestionGroup    `json:"groups"`
	WritingTasks []model.WritingTask      `json:"writingTasks"`
}

func (s *ExamService) GetExamDetail(examID string) (*ExamDetail, error) {
	exam, err := s.GetExam(examID)
	if err != nil {
		return nil, err
	}
	sections, err := s.Repo.ListListeningSections(examID)
	if err != nil {
		return nil, err
	}
	groups, err := s.Repo.ListQuestionGroups(examID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.Repo.ListWritingTasks(examID)
	if err != nil {
		return nil, err
	}
	return &ExamDetail{Exam: *exam, Sections: sections, Groups: groups, WritingTasks: tasks}, nil
}

// StudentQuestion is a question as shown to a test taker: number and text
// only, never the expected answers.
type StudentQuestion struct {
	Number int    `json:"number"`
	Label  string `json:"label,omitempty"`
	Text   string `json:"text,omitempty"`
}

type StudentQuestionGroup struct {
	ID          string            `json:"id"`
	Component   string            `json:"component"`
	SectionID   string            `json:"sectionId,omitempty"`
	Type        string            `json:"type"`
	Instruction string            `json:"instruction"`
	WordLimit   int               `json:"wordLimit,omitempty"`
	Questions   []StudentQuestion `json:"questions"`
}

type StudentExamDetail struct {
	ID          string                   `json:"id"`
	Title       string                   `json:"title"`
	Description string                   `json:"description"`
	TimeLimit   int                      `json:"timeLimit"`
	Sections    []model.ListeningSection `json:"sections"`
	Groups      []StudentQuestionGroup   `json:"groups"`
}

// GetPublishedExamForStudent returns the answer-stripped exam payload served
// to the test runner. The payload is cached in Redis; writes to the exam
// invalidate it.
func (s *ExamService) GetPublishedExamForStudent(ctx context.Context, examID string) (*StudentExamDetail, error) {
	cacheKey := "exam:published:" + examID
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var detail StudentExamDetail
			if json.Unmarshal([]byte(cached), &detail) == nil {
				return &detail, nil
			}
		}
	}

	exam, err := s.GetExam(examID)
	if err != nil {
		return nil, err
	}
	if !exam.IsPublished {
		return nil, util.ErrExamNotPublished
	}

	sections, err := s.Repo.ListListeningSections(examID)
	if err != nil {
		return nil, err
	}
	rows, err := s.Repo.ListQuestionGroups(examID)
	if err != nil {
		return nil, err
	}

	detail := &StudentExamDetail{
		ID:          exam.ID,
		Title:       exam.Title,
		Description: exam.Description,
		TimeLimit:   exam.TimeLimit,
		Sections:    sections,
		Groups:      make([]StudentQuestionGroup, 0, len(rows)),
	}

	for _, row := range rows {
		parsed, err := grading.ParseGroup(row.QuestionType, row.Instruction, row.WordLimit, row.Questions)
		if err != nil {
			// A stored group that no longer parses is skipped, not fatal.
			logger.Log.Warn("skipping malformed question group",
				zap.String("group", row.ID), zap.Error(err))
			continue
		}
		sg := StudentQuestionGroup{
			ID:          row.ID,
			Component:   row.Component,
			SectionID:   row.SectionID,
			Type:        string(parsed.Type),
			Instruction: parsed.Instruction,
			WordLimit:   parsed.WordLimit,
			Questions:   make([]StudentQuestion, 0, len(parsed.Questions)),
		}
		for _, q := range parsed.Questions {
			sg.Questions = append(sg.Questions, StudentQuestion{Number: q.Number, Label: q.Label, Text: q.Text})
		}
		detail.Groups = append(detail.Groups, sg)
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(detail); err == nil {
			s.Redis.Set(ctx, cacheKey, payload, publishedExamCacheTTL)
		}
	}

	return detail, nil
}

type ListeningSectionReq struct {
	Title string `json:"title"`
	Order int    `json:"order"`
}

func (s *ExamService) CreateListeningSection(examID string, req ListeningSectionReq) (*model.ListeningSection, error) {
	if _, err := s.GetExam(examID); err != nil {
		return nil, err
	}
	section := &model.ListeningSection{
		ExamID: examID,
		Title:  req.Title,
		Order:  req.Order,
	}
	if err := s.Repo.CreateListeningSection(section); err != nil {
		return nil, err
	}
	s.invalidateCache(examID)
	return section, nil
}

func (s *ExamService) DeleteListeningSection(sectionID string) error {
	section, err := s.Repo.FindListeningSection(sectionID)
	if err != nil {
		return err
	}
	if section.AudioObject != "" {
		if err := s.Storage.Delete(context.Background(), section.AudioObject); err != nil {
			logger.Log.Warn("failed to delete section audio",
				zap.String("object", section.AudioObject), zap.Error(err))
		}
	}
	s.invalidateCache(section.ExamID)
	return s.Repo.DeleteListeningSection(sectionID)
}

// AttachSectionAudio probes an uploaded audio file for its duration, pushes
// it to storage, and records both on the section.
func (s *ExamService) AttachSectionAudio(ctx context.Context, sectionID, tempPath, objectName, contentType string) (*model.ListeningSection, error) {
	section, err := s.Repo.FindListeningSection(sectionID)
	if err != nil {
		return nil, err
	}

	info, err := util.GetAudioInfo(tempPath)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(tempPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	url, err := s.Storage.Upload(ctx, objectName, f, info.Size, contentType)
	if err != nil {
		return nil, err
	}

	section.AudioObject = objectName
	section.AudioURL = url
	section.DurationSeconds = info.Duration
	if err := s.Repo.UpdateListeningSection(section); err != nil {
		return nil, err
	}
	s.invalidateCache(section.ExamID)
	return section, nil
}

type WritingTaskReq struct {
	TaskNumber   int    `json:"taskNumber" binding:"required,min=1,max=2"`
	Prompt       string `json:"prompt" binding:"required"`
	MinWordCount int    `json:"minWordCount"`
}

func (s *ExamService) CreateWritingTask(examID string, req WritingTaskReq) (*model.WritingTask, error) {
	if _, err := s.GetExam(examID); err != nil {
		return nil, err
	}
	task := &model.WritingTask{
		ExamID:       examID,
		TaskNumber:   req.TaskNumber,
		Prompt:       req.Prompt,
		MinWordCount: req.MinWordCount,
	}
	if err := s.Repo.CreateWritingTask(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *ExamService) DeleteWritingTask(taskID string) error {
	return s.Repo.DeleteWritingTask(taskID)
}

func (s *ExamService) invalidateCache(examID string) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(context.Background(), "exam:published:"+examID).Err(); err != nil {
		logger.Log.Warn("failed to invalidate exam cache", zap.String("exam", examID), zap.Error(err))
	}
}
