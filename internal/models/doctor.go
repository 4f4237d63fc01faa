package models

import "time"

type Doctor struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`
	Specialty string `gorm:"size:100" json:"specialty"`

	CenterID *uint   `json:"center_id"`
	Center   *Center `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// Días de consulta tal y como los manda el cliente, p. ej. "L,M,X".
	WorkDays string `gorm:"size:100" json:"work_days"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
