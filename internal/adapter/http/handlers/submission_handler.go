package handlers

import (
	"errors"
	"net/http"

	request "member_registry/internal/adapter/http/dto/request"
	response "member_registry/internal/adapter/http/dto/response"
	"member_registry/internal/usecase"
	"member_registry/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSubmissionPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
)

// SubmissionHandler handles the membership registration endpoints.
//
// The POST response completes as soon as the record is stored; the SMS
// notification runs detached and its outcome is patched onto the record later.
type SubmissionHandler struct {
	usecase usecase.ISubmissionUseCase
}

func NewSubmissionHandler(uc usecase.ISubmissionUseCase) *SubmissionHandler {
	return &SubmissionHandler{usecase: uc}
}

// CreateSubmission godoc
//
//	@Summary  Register a member
//	@Accept   json
//	@Produce  json
//	@Param    submission  body  request.SubmissionRequest  true  "Submission payload"
//	@Success  200  {object}  response.SubmissionCreatedResponse
//	@Failure  400  {object}  pkg.HTTPError
//	@Failure  500  {object}  pkg.HTTPError
//	@Router   /submit [post]
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	var payload request.SubmissionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSubmissionPayload.HTTPStatus, errInvalidSubmissionPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateSubmission(c.Request.Context(), payload.ToDraft())
	if err != nil {
		appErr := mapSubmissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SubmissionCreatedResponse{OK: true, ID: created.ID})
}

// ListSubmissions godoc
//
//	@Summary  List recent submissions
//	@Produce  json
//	@Success  200  {object}  response.SubmissionListResponse
//	@Failure  500  {object}  pkg.HTTPError
//	@Router   /submit [get]
func (h *SubmissionHandler) ListSubmissions(c *gin.Context) {
	rows, err := h.usecase.ListRecent(c.Request.Context())
	if err != nil {
		appErr := mapSubmissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSubmissions(rows))
}

func mapSubmissionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingRequiredFields):
		return pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELDS", "Missing required fields", http.StatusBadRequest)
	default:
		// Store failures surface the underlying message, matching the
		// "expose the message on 500" contract of the listing clients.
		return pkg.NewDomainError("INTERNAL_ERROR", err.Error(), err, http.StatusInternalServerError)
	}
}
