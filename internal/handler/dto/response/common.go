package response

import (
	"time"

	"github.com/google/uuid"
)

type CreatedResponse struct {
	ID string `json:"id"`
}

func FromID(id uuid.UUID) *CreatedResponse {
	return &CreatedResponse{ID: id.String()}
}

func optionalID(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func optionalUnix(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	v := t.Unix()
	return &v
}
