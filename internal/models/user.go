package models

import "time"

// Identidad base heredada del esquema anterior; solo la consulta /user.
type User struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Email string `gorm:"size:100" json:"email"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
