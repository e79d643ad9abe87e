package routes

import (
	"member_registry/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSubmit = "/submit"
)

func addSubmissionRoutes(rg *gin.RouterGroup, submissionHandler *handlers.SubmissionHandler) {
	// Both operations share the path: POST registers, GET lists recent.
	rg.POST(PathSubmit, submissionHandler.CreateSubmission)
	rg.GET(PathSubmit, submissionHandler.ListSubmissions)
}
