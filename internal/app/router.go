package app

import (
	"ielts_prep_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// Student-facing: published exam payload and answer submission.
		api.GET("/exams/:id", c.exam.GetPublishedExam)
		api.POST("/exams/:id/submissions", c.grading.StartSubmission)
		api.POST("/submissions/:submissionId/answers", c.grading.SubmitAnswers)
	}

	staff := router.Group("/api/staff")
	{
		staff.POST("/exams", c.exam.CreateExam)
		staff.GET("/exams", c.exam.ListExams)
		staff.GET("/exams/:id", c.exam.GetExam)
		staff.PUT("/exams/:id", c.exam.UpdateExam)
		staff.DELETE("/exams/:id", c.exam.DeleteExam)

		staff.POST("/exams/:id/groups", c.exam.CreateQuestionGroup)
		staff.PUT("/groups/:groupId", c.exam.UpdateQuestionGroup)
		staff.DELETE("/groups/:groupId", c.exam.DeleteQuestionGroup)

		staff.POST("/exams/:id/sections", c.exam.CreateListeningSection)
		staff.DELETE("/sections/:sectionId", c.exam.DeleteListeningSection)
		staff.POST("/sections/:sectionId/audio", c.exam.UploadSectionAudio)

		staff.POST("/exams/:id/writing-tasks", c.exam.CreateWritingTask)
		staff.DELETE("/writing-tasks/:taskId", c.exam.DeleteWritingTask)

		staff.PUT("/exams/:id/speaking", c.speaking.UpsertGroup)
		staff.POST("/exams/:id/speaking/windows", c.speaking.AddWindow)
		staff.PUT("/speaking/windows/:windowId", c.speaking.UpdateWindow)
		staff.DELETE("/speaking/windows/:windowId", c.speaking.RemoveWindow)
		staff.GET("/exams/:id/speaking/capacity", c.speaking.GetCapacity)

		staff.GET("/exams/:id/submissions", c.grading.ListSubmissions)
		staff.GET("/submissions/:submissionId/review", c.grading.GetReviewSheet)
		staff.PUT("/submissions/:submissionId/grades/:number", c.grading.SetManualGrade)
	}
}
