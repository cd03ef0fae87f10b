package model

import "time"

// NameRecord is a single immutable corpus entry. FullName is the primary
// match target; FirstName and LastName are matched independently by the
// strategies that support per-field matching.
type NameRecord struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
