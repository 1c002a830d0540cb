package controller

import (
	"errors"
	"ielts_prep_backend/internal/service"
	"ielts_prep_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type GradingController struct {
	Service *service.GradingService
}

func NewGradingController(svc *service.GradingService) *GradingController {
	return &GradingController{Service: svc}
}

// @Summary Start a submission for a published exam
// @Tags grading
// @Accept json
// @Produce json
// @Param id path string true "exam id"
// @Param body body service.StartSubmissionReq true "student info"
// @Success 201 {object} util.Response
// @Router /api/exams/{id}/submissions [post]
func (c *GradingController) StartSubmission(ctx *gin.Context) {
	var req service.StartSubmissionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	submission, err := c.Service.StartSubmission(ctx.Param("id"), req)
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
	util.Created(ctx, submission)
}

// @Summary Submit answers and auto-grade them
// @Tags grading
// @Accept json
// @Produce json
// @Param submissionId path string true "submission id"
// @Param body body service.SubmitAnswersReq true "answer map keyed by question number"
// @Success 200 {object} util.Response
// @Router /api/submissions/{submissionId}/answers [post]
func (c *GradingController) SubmitAnswers(ctx *gin.Context) {
	var req service.SubmitAnswersReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	submission, err := c.Service.SubmitAnswers(ctx.Param("submissionId"), req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSubmissionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrSubmissionCompleted):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, submission)
}

// @Summary List submissions for an exam
// @Tags grading
// @Produce json
// @Param id path string true "exam id"
// @Param page query int false "page"
// @Param limit query int false "page size"
// @Success 200 {object} util.Response
// @Router /api/staff/exams/{id}/submissions [get]
func (c *GradingController) ListSubmissions(ctx *gin.Context) {
	page, limit := pagination(ctx)

	submissions, total, err := c.Service.ListSubmissions(ctx.Param("id"), page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: submissions, Total: total, Page: page, Limit: limit})
}

// @Summary Instructor review sheet for a submission
// @Tags grading
// @Produce json
// @Param submissionId path string true "submission id"
// @Success 200 {object} util.Response
// @Router /api/staff/submissions/{submissionId}/review [get]
func (c *GradingController) GetReviewSheet(ctx *gin.Context) {
	sheet, err := c.Service.GetReviewSheet(ctx.Param("submissionId"))
	if err != nil {
		if errors.Is(err, util.ErrSubmissionNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, sheet)
}

// @Summary Override the grade for one question
// @Tags grading
// @Accept json
// @Produce json
// @Param submissionId path string true "submission id"
// @Param number path int true "question number"
// @Param body body service.ManualGradeReq true "correct, incorrect or auto"
// @Success 200 {object} util.Response
// @Router /api/staff/submissions/{submissionId}/grades/{number} [put]
func (c *GradingController) SetManualGrade(ctx *gin.Context) {
	number, err := strconv.Atoi(ctx.Param("number"))
	if err != nil {
		util.BadRequest(ctx, "invalid question number")
		return
	}

	var req service.ManualGradeReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sheet, err := c.Service.SetManualGrade(ctx.Param("submissionId"), number, req)
	if err != nil {
		if errors.Is(err, util.ErrSubmissionNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, sheet)
}
