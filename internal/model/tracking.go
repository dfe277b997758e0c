package model

import "time"

// TrackingEvent - неизменяемая запись истории заказа.
type TrackingEvent struct {
	ID        string    `json:"id" db:"id"`
	OrderID   string    `json:"orderId" db:"order_id"`
	Status    string    `json:"status" db:"status"`
	Location  *string   `json:"location" db:"location"`
	Notes     *string   `json:"notes" db:"notes"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
	UpdatedBy string    `json:"updatedBy" db:"updated_by"`
}

type TrackingInput struct {
	Status   string  `json:"status" validate:"required,max=64"`
	Location *string `json:"location" validate:"omitnil,max=255"`
	Notes    *string `json:"notes"`
}
