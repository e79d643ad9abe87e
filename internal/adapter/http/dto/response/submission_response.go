package response

import (
	"time"

	"member_registry/internal/domain/entities"
)

type AddressResponse struct {
	Area string `json:"area"`
	Town string `json:"town"`
}

type SMSStatusResponse struct {
	OK       bool      `json:"ok"`
	Response string    `json:"response"`
	SentAt   time.Time `json:"sentAt"`
}

// SubmissionRow is one entry of the listing response. Rating stays nullable:
// an unrated submission serializes as null, not 0, and the presentation layer
// decides how to render it.
type SubmissionRow struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Phone         string             `json:"phone"`
	BusinessTitle string             `json:"businessTitle"`
	Address       AddressResponse    `json:"address"`
	Rating        *float64           `json:"rating"`
	CreatedAt     time.Time          `json:"createdAt"`
	SMSStatus     *SMSStatusResponse `json:"smsStatus,omitempty"`
}

// SubmissionCreatedResponse is the POST /api/submit success body.
type SubmissionCreatedResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

// SubmissionListResponse is the GET /api/submit success body.
type SubmissionListResponse struct {
	OK   bool            `json:"ok"`
	Rows []SubmissionRow `json:"rows"`
}

func FromSubmission(s entities.Submission) SubmissionRow {
	row := SubmissionRow{
		ID:            s.ID,
		Name:          s.Name,
		Phone:         s.Phone,
		BusinessTitle: s.BusinessTitle,
		Address:       AddressResponse{Area: s.Address.Area, Town: s.Address.Town},
		Rating:        s.Rating,
		CreatedAt:     s.CreatedAt,
	}
	if s.SMSStatus != nil {
		row.SMSStatus = &SMSStatusResponse{
			OK:       s.SMSStatus.OK,
			Response: s.SMSStatus.Response,
			SentAt:   s.SMSStatus.SentAt,
		}
	}
	return row
}

func FromSubmissions(list []entities.Submission) SubmissionListResponse {
	rows := make([]SubmissionRow, 0, len(list))
	for _, s := range list {
		rows = append(rows, FromSubmission(s))
	}
	return SubmissionListResponse{OK: true, Rows: rows}
}
