package repository

import (
	"ielts_prep_backend/internal/model"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) Create(submission *model.ExamSubmission) error {
	return r.DB.Create(submission).Error
}

func (r *SubmissionRepository) FindByID(id string) (*model.ExamSubmission, error) {
	var submission model.ExamSubmission
	err := r.DB.First(&submission, "id = ?", id).Error
	return &submission, err
}

func (r *SubmissionRepository) ListByExam(examID string, page, limit int) ([]model.ExamSubmission, int64, error) {
	var total int64
	query := r.DB.Model(&model.ExamSubmission{}).Where("exam_id = ?", examID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var submissions []model.ExamSubmission
	if limit > 0 {
		query = query.Offset((page - 1) * limit).Limit(limit)
	}
	err := query.Order("started_at desc").Find(&submissions).Error
	return submissions, total, err
}

// SaveGraded stores a completed submission together with its graded answers
// atomically. Earlier answers for the submission are replaced.
func (r *SubmissionRepository) SaveGraded(submission *model.ExamSubmission, answers []model.SubmissionAnswer) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("submission_id = ?", submission.ID).Delete(&model.SubmissionAnswer{}).Error; err != nil {
			return err
		}
		for i := range answers {
			answers[i].SubmissionID = submission.ID
			if err := tx.Create(&answers[i]).Error; err != nil {
				return err
			}
		}
		return tx.Save(submission).Error
	})
}

func (r *SubmissionRepository) ListAnswers(submissionID string) ([]model.SubmissionAnswer, error) {
	var answers []model.SubmissionAnswer
	err := r.DB.Where("submission_id = ?", submissionID).
		Order("question_number asc").Find(&answers).Error
	return answers, err
}

func (r *SubmissionRepository) FindAnswer(submissionID string, questionNumber int) (*model.SubmissionAnswer, error) {
	var answer model.SubmissionAnswer
	err := r.DB.First(&answer, "submission_id = ? AND question_number = ?", submissionID, questionNumber).Error
	return &answer, err
}

func (r *SubmissionRepository) UpdateAnswer(answer *model.SubmissionAnswer) error {
	return r.DB.Save(answer).Error
}

func (r *SubmissionRepository) UpdateSubmission(submission *model.ExamSubmission) error {
	return r.DB.Save(submission).Error
}

// UpsertManualGrade replaces the stored override for one question. Last
// write wins.
func (r *SubmissionRepository) UpsertManualGrade(grade *model.ManualGrade) error {
	var existing model.ManualGrade
	err := r.DB.First(&existing, "submission_id = ? AND question_number = ?",
		grade.SubmissionID, grade.QuestionNumber).Error
	if err == gorm.ErrRecordNotFound {
		return r.DB.Create(grade).Error
	}
	if err != nil {
		return err
	}
	existing.Status = grade.Status
	return r.DB.Save(&existing).Error
}

func (r *SubmissionRepository) ListManualGrades(submissionID string) ([]model.ManualGrade, error) {
	var grades []model.ManualGrade
	err := r.DB.Where("submission_id = ?", submissionID).Find(&grades).Error
	return grades, err
}
