package entity

import "time"

type Member struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"not null" json:"first_name"`
	LastName  *string   `json:"last_name"`
	Email     *string   `gorm:"uniqueIndex" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// FullName joins first and last name, skipping an empty last name.
func (m *Member) FullName() string {
	if m.LastName == nil || *m.LastName == "" {
		return m.FirstName
	}
	return m.FirstName + " " + *m.LastName
}
