package request

import (
	"fmt"
	"strconv"
	"strings"

	"member_registry/internal/domain/entities"
	"member_registry/internal/usecase"
)

// AddressRequest accepts both the canonical {area, town} shape and the legacy
// {district, mandal, area} shape still sent by older clients. Resolution folds
// legacy fields into the canonical one; the canonical keys win when both are
// present.
type AddressRequest struct {
	Area any `json:"area"`
	Town any `json:"town"`

	District any `json:"district"`
	Mandal   any `json:"mandal"`
}

// SubmissionRequest is the POST /api/submit payload.
//
// Fields are untyped on purpose: clients have been observed sending numbers
// where text is expected and text where the rating number is expected. Text
// fields are coerced convert-to-text-then-trim; a non-numeric rating resolves
// to nil rather than failing the request.
type SubmissionRequest struct {
	Name          any             `json:"name"`
	Phone         any             `json:"phone"`
	BusinessTitle any             `json:"businessTitle"`
	Address       *AddressRequest `json:"address"`
	Rating        any             `json:"rating"`
}

// ToDraft resolves the raw payload into the shape the use case validates.
func (r SubmissionRequest) ToDraft() usecase.SubmissionDraft {
	return usecase.SubmissionDraft{
		Name:          coerceText(r.Name),
		Phone:         coerceText(r.Phone),
		BusinessTitle: coerceText(r.BusinessTitle),
		Address:       r.resolveAddress(),
		Rating:        r.resolveRating(),
	}
}

func (r SubmissionRequest) resolveAddress() entities.Address {
	if r.Address == nil {
		return entities.Address{}
	}
	town := coerceText(r.Address.Town)
	if town == "" {
		town = coerceText(r.Address.Mandal)
	}
	if town == "" {
		town = coerceText(r.Address.District)
	}
	return entities.Address{
		Area: coerceText(r.Address.Area),
		Town: town,
	}
}

// resolveRating returns a value only when the JSON payload carried a number.
// Strings, booleans, objects and absence all resolve to nil (unrated), which
// stays distinct from an explicit 0 downstream.
func (r SubmissionRequest) resolveRating() *float64 {
	v, ok := r.Rating.(float64)
	if !ok {
		return nil
	}
	return &v
}

func coerceText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		// JSON numbers decode as float64; render them the way clients wrote
		// them (no exponent), so numeric phone values survive coercion.
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}
