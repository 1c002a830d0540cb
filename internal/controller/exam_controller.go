package controller

import (
	"errors"
	"ielts_prep_backend/internal/service"
	"ielts_prep_backend/internal/util"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ExamController struct {
	Service *service.ExamService
}

func NewExamController(svc *service.ExamService) *ExamController {
	return &ExamController{Service: svc}
}

// @Summary Create an exam
// @Tags exams
// @Accept json
// @Produce json
// @Param body body service.ExamReq true "exam fields"
// @Success 201 {object} util.Response
// @Router /api/staff/exams [post]
func (c *ExamController) CreateExam(ctx *gin.Context) {
	var req service.ExamReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	exam, err := c.Service.CreateExam(req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, exam)
}

// @Summary List exams with counts
// @Tags exams
// @Produce json
// @Param page query int false "page"
// @Param limit query int false "page size"
// @Success 200 {object} util.Response
// @Router /api/staff/exams [get]
func (c *ExamController) ListExams(ctx *gin.Context) {
	page, limit := pagination(ctx)

	exams, total, err := c.Service.ListExams(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: exams, Total: total, Page: page, Limit: limit})
}

// @Summary Get full exam detail (staff view, answers included)
// @Tags exams
// @Produce json
// @Param id path string true "exam id"
// @Success 200 {object} util.Response
// @Router /api/staff/exams/{id} [get]
func (c *ExamController) GetExam(ctx *gin.Context) {
	detail, err := c.Service.GetExamDetail(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrExamNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, detail)
}

// @Summary Update an exam
// @Tags exams
// @Accept json
// @Produce json
// @Param id path string true "exam id"
// @Param body body service.ExamReq true "fields to change"
// @Success 200 {object} util.Response
// @Router /api/staff/exams/{id} [put]
func (c *ExamController) UpdateExam(ctx *gin.Context) {
	var req service.ExamReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	exam, err := c.Service.UpdateExam(ctx.Param("id"), req)
	if err != nil {
		if errors.Is(err, util.ErrExamNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, exam)
}

// @Summary Delete an exam and its content
// @Tags exams
// @Produce json
// @Param id path string true "exam id"
// @Success 200 {object} util.Response
// @Router /api/staff/exams/{id} [delete]
func (c *ExamController) DeleteExam(ctx *gin.Context) {
	if err := c.Service.DeleteExam(ctx.Param("id")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Add a question group to an exam
// @Tags question-groups
// @Accept json
// @Produce json
// @Param id path string true "exam id"
// @Param body body service.QuestionGroupReq true "group payload"
// @Success 201 {object} util.Response
// @Router /api/staff/exams/{id}/groups [post]
func (c *ExamController) CreateQuestionGroup(ctx *gin.Context) {
	var req service.QuestionGroupReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	group, err := c.Service.CreateQuestionGroup(ctx.Param("id"), req)
	if err != nil {
		if errors.Is(err, util.ErrExamNotFound) {
			util.NotFound(ctx)
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, group)
}

// @Summary Update a question group
// @Tags question-groups
// @Accept json
// @Produce json
// @Param groupId path string true "group id"
// @Param body body service.QuestionGroupReq true "group payload"
// @Success 200 {object} util.Response
// @Router /api/staff/groups/{groupId} [put]
func (c *ExamController) UpdateQuestionGroup(ctx *gin.Context) {
	var req service.QuestionGroupReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	group, err := c.Service.UpdateQuestionGroup(ctx.Param("groupId"), req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, group)
}

// @Summary Delete a question group
// @Tags question-groups
// @Produce json
// @Param groupId path string true "group id"
// @Success 200 {object} util.Response
// @Router /api/staff/groups/{groupId} [delete]
func (c *ExamController) DeleteQuestionGroup(ctx *gin.Context) {
	if err := c.Service.DeleteQuestionGroup(ctx.Param("groupId")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Add a listening section
// @Tags listening
// @Accept json
// @Produce json
// @Param id path string true "exam id"
// @Param body body service.ListeningSectionReq true "section fields"
// @Success 201 {object} util.Response
// @Router /api/staff/exams/{id}/sections [post]
func (c *ExamController) CreateListeningSection(ctx *gin.Context) {
	var req service.ListeningSectionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	section, err := c.Service.CreateListeningSection(ctx.Param("id"), req)
	if err != nil {
		if errors.Is(err, util.ErrExamNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, section)
}

// @Summary Delete a listening section
// @Tags listening
// @Produce json
// @Param sectionId path string true "section id"
// @Success 200 {object} util.Response
// @Router /api/staff/sections/{sectionId} [delete]
func (c *ExamController) DeleteListeningSection(ctx *gin.Context) {
	if err := c.Service.DeleteListeningSection(ctx.Param("sectionId")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Upload section audio
// @Tags listening
// @Accept multipart/form-data
// @Produce json
// @Param sectionId path string true "section id"
// @Param file formData file true "audio file"
// @Success 200 {object} util.Response
// @Router /api/staff/sections/{sectionId}/audio [post]
func (c *ExamController) UploadSectionAudio(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowed := false
	for _, a := range util.AllowedAudioExtensions {
		if ext == a {
			allowed = true
			break
		}
	}
	if !allowed {
		util.BadRequest(ctx, util.ErrUnsupportedAudioType.Error())
		return
	}

	tempPath := filepath.Join(os.TempDir(), uuid.New().String()+ext)
	if err := ctx.SaveUploadedFile(file, tempPath); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer os.Remove(tempPath)

	contentType := file.Header.Get("Content-Type")
	if contentType == "" || !strings.HasPrefix(contentType, util.MimeAudio) {
		contentType = util.MimeOctetStream
	}

	objectName := "audio/" + uuid.New().String() + ext
	section, err := c.Service.AttachSectionAudio(ctx.Request.Context(), ctx.Param("sectionId"), tempPath, objectName, contentType)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, section)
}

// @Summary Add a writing task
// @Tags writing
// @Accept json
// @Produce json
// @Param id path string true "exam id"
// @Param body body service.WritingTaskReq true "task fields"
// @Success 201 {object} util.Response
// @Router /api/staff/exams/{id}/writing-tasks [post]
func (c *ExamController) CreateWritingTask(ctx *gin.Context) {
	var req service.WritingTaskReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	task, err := c.Service.CreateWritingTask(ctx.Param("id"), req)
	if err != nil {
		if errors.Is(err, util.ErrExamNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, task)
}

// @Summary Delete a writing task
// @Tags writing
// @Produce json
// @Param taskId path string true "task id"
// @Success 200 {object} util.Response
// @Router /api/staff/writing-tasks/{taskId} [delete]
func (c *ExamController) DeleteWritingTask(ctx *gin.Context) {
	if err := c.Service.DeleteWritingTask(ctx.Param("taskId")); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Student view of a published exam (answers stripped)
// @Tags student
// @Produce json
// @Param id path string true "exam id"
// @Success 200 {object} util.Response
// @Router /api/exams/{id} [get]
func (c *ExamController) GetPublishedExam(ctx *gin.Context) {
	detail, err := c.Service.GetPublishedExamForStudent(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrExamNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrExamNotPublished):
			util.Error(ctx, 403, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, detail)
}

func pagination(ctx *gin.Context) (int, int) {
	page := 1
	limit := 20
	if p, err := strconv.Atoi(ctx.DefaultQuery("page", "1")); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(ctx.DefaultQuery("limit", "20")); err == nil && l > 0 {
		limit = l
	}
	return page, limit
}
