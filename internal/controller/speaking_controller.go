package controller

import (
	"errors"
	"ielts_prep_backend/internal/service"
	"ielts_prep_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SpeakingController struct {
	Service *service.SpeakingService
}

func NewSpeakingController(svc *service.SpeakingService) *SpeakingController {
	return &SpeakingController{Service: svc}
}

// @Summary Create or update an exam's speaking settings
// @Tags speaking
// @Accept json
// @Produce json
// @Param id path string true "exam id"
// @Param body body service.SpeakingGroupReq true "session duration and instructor count"
// @Success 200 {object} util.Response
// @Router /api/staff/exams/{id}/speaking [put]
func (c *SpeakingController) UpsertGroup(ctx *gin.Context) {
	var req service.SpeakingGroupReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	group, err := c.Service.UpsertGroup(ctx.Param("id"), req)
	if err != nil {
		if errors.Is(err, util.ErrExamNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, group)
}

// @Summary Add a speaking time window
// @Tags speaking
// @Accept json
// @Produce json
// @Param id path string true "exam id"
// @Param body body service.TimeWindowReq true "date and time range"
// @Success 201 {object} util.Response
// @Router /api/staff/exams/{id}/speaking/windows [post]
func (c *SpeakingController) AddWindow(ctx *gin.Context) {
	var req service.TimeWindowReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	window, err := c.Service.AddWindow(ctx.Param("id"), req)
	if err != nil {
		if errors.Is(err, util.ErrSpeakingGroupMissing) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, window)
}

// @Summary Update a speaking time window
// @Tags speaking
// @Accept json
// @Produce json
// @Param windowId path string true "window id"
// @Param body body service.TimeWindowReq true "date and time range"
// @Success 200 {object} util.Response
// @Router /api/staff/speaking/windows/{windowId} [put]
func (c *SpeakingController) UpdateWindow(ctx *gin.Context) {
	var req service.TimeWindowReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	window, err := c.Service.UpdateWindow(ctx.Param("windowId"), req)
	if err != nil {
		if errors.Is(err, util.ErrWindowNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, window)
}

// @Summary Remove a speaking time window
// @Tags speaking
// @Produce json
// @Param windowId path string true "window id"
// @Success 200 {object} util.Response
// @Router /api/staff/speaking/windows/{windowId} [delete]
func (c *SpeakingController) RemoveWindow(ctx *gin.Context) {
	if err := c.Service.RemoveWindow(ctx.Param("windowId")); err != nil {
		if errors.Is(err, util.ErrWindowNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Session capacity per window plus aggregate for an exam
// @Tags speaking
// @Produce json
// @Param id path string true "exam id"
// @Success 200 {object} util.Response
// @Router /api/staff/exams/{id}/speaking/capacity [get]
func (c *SpeakingController) GetCapacity(ctx *gin.Context) {
	report, err := c.Service.CapacityForExam(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrSpeakingGroupMissing) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, report)
}
