package entities

import "time"

// AddressSchemaVersion is the canonical address shape version persisted with
// every submission.
//
// Earlier data captured addresses as {district, mandal, area}; v1 settles on
// {area, town}. The version attribute lets a future migration tell the two
// apart instead of silently overwriting.
const AddressSchemaVersion = 1

// Address is the canonical (v1) address shape.
type Address struct {
	Area string `json:"area"`
	Town string `json:"town"`
}

// SMSStatus records the outcome of the post-insert notification.
//
// It is attached to a submission at most once, asynchronously, and its absence
// never invalidates the submission (a crash between insert and patch leaves it
// absent forever, which is accepted).
type SMSStatus struct {
	OK       bool      `json:"ok"`
	Response string    `json:"response"`
	SentAt   time.Time `json:"sentAt"`
}

// Submission is the membership registration record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (created_at-index): record_type + created_at, for the newest-first listing
//
// Rating notes:
//   - Rating is a pointer so "never rated" (nil) and "rated zero" (0) stay
//     distinguishable all the way through storage and the listing response.
type Submission struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Phone         string     `json:"phone"`
	BusinessTitle string     `json:"businessTitle"`
	Address       Address    `json:"address"`
	Rating        *float64   `json:"rating"`
	CreatedAt     time.Time  `json:"createdAt"`
	SMSStatus     *SMSStatus `json:"smsStatus,omitempty"`
}
