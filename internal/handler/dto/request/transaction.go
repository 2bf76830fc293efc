package request

import (
	"time"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/usecase/commands"

	"github.com/google/uuid"
)

type BookServiceRequest struct {
	ServiceID     uuid.UUID  `json:"service_id" binding:"required"`
	PromoCode     string     `json:"promo_code" binding:"max=50"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	Notes         string     `json:"notes" binding:"max=2000"`
}

func (r *BookServiceRequest) ToCommand() commands.BookServiceRequest {
	return commands.BookServiceRequest{
		ServiceID:     r.ServiceID,
		PromoCode:     r.PromoCode,
		ScheduledDate: r.ScheduledDate,
		Notes:         r.Notes,
	}
}

type ScheduleRequest struct {
	ScheduledDate time.Time `json:"scheduled_date" binding:"required"`
}

type CancelRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}
