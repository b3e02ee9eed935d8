package repository

import "time"

// Priority round-trips by symbolic name, in the database column and in JSON.
type Priority string

const (
	PriorityUrgent    Priority = "URGENT"
	PriorityImportant Priority = "IMPORTANT"
	PriorityNormal    Priority = "NORMAL"
	PriorityOptional  Priority = "OPTIONAL"
)

func PriorityNames() []any {
	return []any{
		string(PriorityUrgent),
		string(PriorityImportant),
		string(PriorityNormal),
		string(PriorityOptional),
	}
}

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
}

type Todo struct {
	ID          uint       `gorm:"primaryKey"`
	UserID      uint       `gorm:"not null;index"`
	Owner       *User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Description string     `gorm:"type:text;not null"`
	DateCreated time.Time  `gorm:"not null"`
	DateDue     *time.Time
	Priority    Priority   `gorm:"type:varchar(16);not null"`
	Completed   bool       `gorm:"not null;default:false"`
}
