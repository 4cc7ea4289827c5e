package models

import (
	"time"

	"gorm.io/gorm"
)

// User mirrors the identity provider's account record. ID is the provider's
// subject string, not a local sequence.
type User struct {
	ID       string `json:"id" gorm:"primaryKey;size:255"`
	Username string `json:"username" gorm:"uniqueIndex;not null;size:100"`
	Email    string `json:"email" gorm:"uniqueIndex;not null;size:255"`

	Language string `json:"language" gorm:"default:en;size:10"`

	IsActive    bool       `json:"is_active" gorm:"default:true"`
	LastLoginAt *time.Time `json:"last_login_at"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (User) TableName() string {
	return "users"
}

// ImportSummary reports the outcome of a spreadsheet word import.
type ImportSummary struct {
	TotalRows      int           `json:"total_rows"`
	SuccessCount   int           `json:"success_count"`
	DuplicateCount int           `json:"duplicate_count"`
	ErrorCount     int           `json:"error_count"`
	CreatedWords   []uint        `json:"created_words"`
	Errors         []ImportError `json:"errors"`
	ProcessingTime time.Duration `json:"processing_time"`
}

type ImportError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}
