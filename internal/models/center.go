package models

import "time"

type Center struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name       string `gorm:"size:150;not null" json:"name"`
	Address    string `gorm:"size:255" json:"address"`
	ZipCode    string `gorm:"size:10" json:"zip_code"`
	Phone      string `gorm:"size:20" json:"phone"`
	TypeCenter string `gorm:"size:100" json:"type_center"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
