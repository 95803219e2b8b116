package models

import "time"

type Booking struct {
	ID         string    `json:"id"`
	TurfID     string    `json:"turf_id"`
	BookerName string    `json:"booker_name"`
	SlotDate   Date      `json:"slot_date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	SlotTime   int       `json:"slot_time"`
	Amount     float64   `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}
