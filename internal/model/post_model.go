package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostModel struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	Status       string    `gorm:"type:varchar(10);not null;index" json:"status"`
	ItemName     string    `gorm:"type:varchar(255);not null" json:"itemName"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	Location     string    `gorm:"type:varchar(255);not null" json:"location"`
	ContactInfo  string    `gorm:"type:varchar(255);not null" json:"contactInfo"`
	ContactPhone string    `gorm:"type:varchar(50)" json:"contactPhone,omitempty"`
	Image        string    `gorm:"type:text" json:"image,omitempty"`
	IsActive     bool      `gorm:"not null;default:true;index" json:"isActive"`
	CreatedAt    time.Time `gorm:"not null;index" json:"createdAt"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
