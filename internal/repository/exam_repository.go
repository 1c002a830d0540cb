package repository

import (
	"ielts_prep_backend/internal/model"

	"gorm.io/gorm"
)

type ExamRepository struct {
	DB *gorm.DB
}

func NewExamRepository(db *gorm.DB) *ExamRepository {
	return &ExamRepository{DB: db}
}

func (r *ExamRepository) Create(exam *model.Exam) error {
	return r.DB.Create(exam).Error
}

func (r *ExamRepository) FindByID(id string) (*model.Exam, error) {
	var exam model.Exam
	err := r.DB.First(&exam, "id = ?", id).Error
	return &exam, err
}

func (r *ExamRepository) Update(exam *model.Exam) error {
	return r.DB.Save(exam).Error
}

// Delete removes an exam and everything hanging off it in one transaction.
func (r *ExamRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("exam_id = ?", id).Delete(&model.QuestionGroup{}).Error; err != nil {
			return err
		}
		if err := tx.Where("exam_id = ?", id).Delete(&model.ListeningSection{}).Error; err != nil {
			return err
		}
		if err := tx.Where("exam_id = ?", id).Delete(&model.WritingTask{}).Error; err != nil {
			return err
		}
		var groupIDs []string
		if err := tx.Model(&model.SpeakingGroup{}).Where("exam_id = ?", id).Pluck("id", &groupIDs).Error; err == nil && len(groupIDs) > 0 {
			if err := tx.Where("speaking_group_id IN ?", groupIDs).Delete(&model.SpeakingTimeWindow{}).Error; err != nil {
				return err
			}
			if err := tx.Where("exam_id = ?", id).Delete(&model.SpeakingGroup{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&model.Exam{}, "id = ?", id).Error
	})
}

type ExamListRow struct {
	model.Exam
	QuestionGroupCount int `json:"questionGroupCount"`
	SubmissionCount    int `json:"submissionCount"`
}

func (r *ExamRepository) List(page, limit int) ([]ExamListRow, int64, error) {
	var total int64
	query := r.DB.Model(&model.Exam{}).Where("deleted_at IS NULL")
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var exams []ExamListRow
	dbQuery := r.DB.Table("exams e").
		Select("e.*, " +
			"(SELECT COUNT(*) FROM question_groups g WHERE g.exam_id = e.id AND g.deleted_at IS NULL) as question_group_count, " +
			"(SELECT COUNT(*) FROM exam_submissions s WHERE s.exam_id = e.id AND s.deleted_at IS NULL AND s.status = 'completed') as submission_count").
		Where("e.deleted_at IS NULL")

	if limit > 0 {
		offset := (page - 1) * limit
		dbQuery = dbQuery.Offset(offset).Limit(limit)
	}

	err := dbQuery.Order("e.created_at desc").Scan(&exams).Error
	return exams, total, err
}

func (r *ExamRepository) CreateQuestionGroup(group *model.QuestionGroup) error {
	return r.DB.Create(group).Error
}

func (r *ExamRepository) FindQuestionGroup(id string) (*model.QuestionGroup, error) {
	var group model.QuestionGroup
	err := r.DB.First(&group, "id = ?", id).Error
	return &group, err
}

func (r *ExamRepository) UpdateQuestionGroup(group *model.QuestionGroup) error {
	return r.DB.Save(group).Error
}

func (r *ExamRepository) DeleteQuestionGroup(id string) error {
	return r.DB.Delete(&model.QuestionGroup{}, "id = ?", id).Error
}

func (r *ExamRepository) ListQuestionGroups(examID string) ([]model.QuestionGroup, error) {
	var groups []model.QuestionGroup
	err := r.DB.Where("exam_id = ?", examID).Order("`order` asc, created_at asc").Find(&groups).Error
	return groups, err
}

func (r *ExamRepository) ListQuestionGroupsByComponent(examID, component string) ([]model.QuestionGroup, error) {
	var groups []model.QuestionGroup
	err := r.DB.Where("exam_id = ? AND component = ?", examID, component).
		Order("`order` asc, created_at asc").Find(&groups).Error
	return groups, err
}

func (r *ExamRepository) CreateListeningSection(section *model.ListeningSection) error {
	return r.DB.Create(section).Error
}

func (r *ExamRepository) FindListeningSection(id string) (*model.ListeningSection, error) {
	var section model.ListeningSection
	err := r.DB.First(&section, "id = ?", id).Error
	return &section, err
}

func (r *ExamRepository) UpdateListeningSection(section *model.ListeningSection) error {
	return r.DB.Save(section).Error
}

func (r *ExamRepository) DeleteListeningSection(id string) error {
	return r.DB.Delete(&model.ListeningSection{}, "id = ?", id).Error
}

func (r *ExamRepository) ListListeningSections(examID string) ([]model.ListeningSection, error) {
	var sections []model.ListeningSection
	err := r.DB.Where("exam_id = ?", examID).Order("`order` asc").Find(&sections).Error
	return sections, err
}

func (r *ExamRepository) CreateWritingTask(task *model.WritingTask) error {
	return r.DB.Create(task).Error
}

func (r *ExamRepository) ListWritingTasks(examID string) ([]model.WritingTask, error) {
	var tasks []model.WritingTask
	err := r.DB.Where("exam_id = ?", examID).Order("task_number asc").Find(&tasks).Error
	return tasks, err
}

func (r *ExamRepository) DeleteWritingTask(id string) error {
	return r.DB.Delete(&model.WritingTask{}, "id = ?", id).Error
}
