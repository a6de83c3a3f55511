package domain

import "time"

type MemberType string

const (
	MemberOfficial  MemberType = "official"
	MemberVolunteer MemberType = "volunteer"
)

type TeamMember struct {
	ID        uint       `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Role      string     `json:"role"`
	Type      MemberType `json:"type"`
	Shift     string     `json:"shift"`  // volunteers only
	Duties    string     `json:"duties"` // volunteers only
	CreatedAt time.Time  `json:"created_at"`
}

type Program struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Time        string    `json:"time"` // HH:MM
	Venue       string    `json:"venue"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Photo is a gallery object stored in the bucket; rows are derived from
// the bucket listing, not persisted.
type Photo struct {
	Key        string    `json:"key"`
	URL        string    `json:"url"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
}
