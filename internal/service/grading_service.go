package service

import (
	"errors"
	"ielts_prep_backend/internal/grading"
	"ielts_prep_backend/internal/model"
	"ielts_prep_backend/internal/repository"
	"ielts_prep_backend/internal/util"
	"ielts_prep_backend/pkg/logger"
	"ielts_prep_backend/pkg/monitoring"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type GradingService struct {
	Exams       *repository.ExamRepository
	Submissions *repository.SubmissionRepository
}

func NewGradingService(exams *repository.ExamRepository, submissions *repository.SubmissionRepository) *GradingService {
	return &GradingService{Exams: exams, Submissions: submissions}
}

type StartSubmissionReq struct {
	StudentName string `json:"studentName" binding:"required"`
}

func (s *GradingService) StartSubmission(examID string, req StartSubmissionReq) (*model.ExamSubmission, error) {
	exam, err := s.Exams.FindByID(examID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrExamNotFound
		}
		return nil, err
	}
	if !exam.IsPublished {
		return nil, util.ErrExamNotPublished
	}

	submission := &model.ExamSubmission{
		ExamID:      examID,
		StudentName: req.StudentName,
		Status:      model.SubmissionInProgress,
		StartedAt:   time.Now(),
	}
	if err := s.Submissions.Create(submission); err != nil {
		return nil, err
	}
	return submission, nil
}

type SubmitAnswersReq struct {
	Answers map[int]string `json:"answers" binding:"required"`
}

// SubmitAnswers grades the whole submission against the exam's question
// groups and stores the per-question results. A malformed stored group is
// skipped with a warning; it never blocks grading of the rest.
func (s *GradingService) SubmitAnswers(submissionID string, req SubmitAnswersReq) (*model.ExamSubmission, error) {
	submission, err := s.Submissions.FindByID(submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSubmissionNotFound
		}
		return nil, err
	}
	if submission.Status == model.SubmissionCompleted {
		return nil, util.ErrSubmissionCompleted
	}

	rows, err := s.Exams.ListQuestionGroups(submission.ExamID)
	if err != nil {
		return nil, err
	}

	var answers []model.SubmissionAnswer
	correct, incorrect, unanswered := 0, 0, 0

	for _, row := range rows {
		group, err := grading.ParseGroup(row.QuestionType, row.Instruction, row.WordLimit, row.Questions)
		if err != nil {
			logger.Log.Warn("skipping malformed question group during grading",
				zap.String("group", row.ID), zap.Error(err))
			continue
		}

		for _, result := range grading.GradeGroup(group, req.Answers, nil) {
			switch result.Final {
			case grading.GradeCorrect:
				correct++
			case grading.GradeIncorrect:
				incorrect++
			default:
				unanswered++
			}
			monitoring.GradedQuestions.WithLabelValues(string(result.Final)).Inc()

			answers = append(answers, model.SubmissionAnswer{
				QuestionNumber: result.Number,
				Answer:         result.StudentAnswer,
				AutoStatus:     string(result.Auto),
				FinalStatus:    string(result.Final),
				OverWordLimit:  result.OverWordLimit,
			})
		}
	}

	now := time.Now()
	submission.Status = model.SubmissionCompleted
	submission.Correct = correct
	submission.Incorrect = incorrect
	submission.Unanswered = unanswered
	submission.CompletedAt = &now

	if err := s.Submissions.SaveGraded(submission, answers); err != nil {
		return nil, err
	}
	return submission, nil
}

// ReviewRow is one line of the instructor's grading sheet. Auto and Final
// are shown side by side so disagreement with the override is visible.
type ReviewRow struct {
	QuestionNumber int    `json:"questionNumber"`
	Answer         string `json:"answer"`
	AutoStatus     string `json:"autoStatus"`
	FinalStatus    string `json:"finalStatus"`
	ManualStatus   string `json:"manualStatus"`
	OverWordLimit  bool   `json:"overWordLimit"`
}

type ReviewSheet struct {
	Submission model.ExamSubmission `json:"submission"`
	Rows       []ReviewRow          `json:"rows"`
}

func (s *GradingService) GetReviewSheet(submissionID string) (*ReviewSheet, error) {
	submission, err := s.Submissions.FindByID(submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSubmissionNotFound
		}
		return nil, err
	}

	answers, err := s.Submissions.ListAnswers(submissionID)
	if err != nil {
		return nil, err
	}
	grades, err := s.Submissions.ListManualGrades(submissionID)
	if err != nil {
		return nil, err
	}

	overrides := make(map[int]string, len(grades))
	for _, g := range grades {
		overrides[g.QuestionNumber] = g.Status
	}

	sheet := &ReviewSheet{Submission: *submission, Rows: make([]ReviewRow, 0, len(answers))}
	for _, a := range answers {
		manual := overrides[a.QuestionNumber]
		if manual == "" {
			manual = string(grading.ManualAuto)
		}
		sheet.Rows = append(sheet.Rows, ReviewRow{
			QuestionNumber: a.QuestionNumber,
			Answer:         a.Answer,
			AutoStatus:     a.AutoStatus,
			FinalStatus:    a.FinalStatus,
			ManualStatus:   manual,
			OverWordLimit:  a.OverWordLimit,
		})
	}
	return sheet, nil
}

type ManualGradeReq struct {
	Status string `json:"status" binding:"required,oneof=correct incorrect auto"`
}

// SetManualGrade stores an instructor override and re-derives the final
// status for that question: an explicit correct/incorrect wins, auto
// restores the engine's verdict. Submission tallies are recounted from the
// updated answers.
func (s *GradingService) SetManualGrade(submissionID string, questionNumber int, req ManualGradeReq) (*ReviewSheet, error) {
	submission, err := s.Submissions.FindByID(submissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSubmissionNotFound
		}
		return nil, err
	}

	answer, err := s.Submissions.FindAnswer(submissionID, questionNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSubmissionNotFound
		}
		return nil, err
	}

	if err := s.Submissions.UpsertManualGrade(&model.ManualGrade{
		SubmissionID:   submissionID,
		QuestionNumber: questionNumber,
		Status:         req.Status,
	}); err != nil {
		return nil, err
	}

	final := grading.FinalStatus(grading.GradeStatus(answer.AutoStatus), grading.ManualStatus(req.Status))
	answer.FinalStatus = string(final)
	if err := s.Submissions.UpdateAnswer(answer); err != nil {
		return nil, err
	}

	if err := s.recountSubmission(submission); err != nil {
		return nil, err
	}
	return s.GetReviewSheet(submissionID)
}

func (s *GradingService) ListSubmissions(examID string, page, limit int) ([]model.ExamSubmission, int64, error) {
	return s.Submissions.ListByExam(examID, page, limit)
}

func (s *GradingService) recountSubmission(submission *model.ExamSubmission) error {
	answers, err := s.Submissions.ListAnswers(submission.ID)
	if err != nil {
		return err
	}

	correct, incorrect, unanswered := 0, 0, 0
	for _, a := range answers {
		switch grading.GradeStatus(a.FinalStatus) {
		case grading.GradeCorrect:
			correct++
		case grading.GradeIncorrect:
			incorrect++
		default:
			unanswered++
		}
	}

	submission.Correct = correct
	submission.Incorrect = incorrect
	submission.Unanswered = unanswered
	return s.Submissions.UpdateSubmission(submission)
}
