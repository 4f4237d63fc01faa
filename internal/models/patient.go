package models

import "time"

type Patient struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`
	BirthDate string `gorm:"size:20" json:"birth_date"`

	AssignDoctorID *uint   `json:"assign_doctor"`
	AssignDoctor   *Doctor `gorm:"foreignKey:AssignDoctorID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// Soft delete: la baja solo apaga este flag, nunca borra la fila.
	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
