package domain

import "time"

type Panchayath struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Ward belongs to exactly one Panchayath. Wards are created in one batch
// at panchayath creation, numbered 1..N.
type Ward struct {
	ID           uint      `json:"id"`
	PanchayathID uint      `json:"panchayath_id"`
	WardNumber   int       `json:"ward_number"`
	WardName     string    `json:"ward_name"`
	CreatedAt    time.Time `json:"created_at"`
}
