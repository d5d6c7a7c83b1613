package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

type Member struct {
	gorm.Model
	RegistrationID uint   `json:"-" gorm:"index"`
	Position       int    `json:"position"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
}

type Registration struct {
	gorm.Model
	EventID         string    `json:"event_id" gorm:"index"`
	EventName       string    `json:"event_name"`
	Category        string    `json:"category"`
	TeamNumber      int       `json:"team_number"`
	CollegeName     string    `json:"college_name"`
	Email           string    `json:"email"`
	UserID          uint      `json:"user_id"`
	Members         []Member  `json:"members" gorm:"foreignKey:RegistrationID"`
	RegistrationFee string    `json:"registration_fee"`
	TransactionID   string    `json:"transaction_id"`
	PaymentStatus   string    `json:"payment_status"`
	RegisteredAt    time.Time `json:"registered_at"`
}
