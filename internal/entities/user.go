package entities

import "time"

type User struct {
	ID           uint64
	FullName     string
	Email        string
	Phone        *string
	PasswordHash string
	IsActive     bool
	IsDeleted    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role struct {
	ID          uint64
	Name        string
	Description *string
	CreatedAt   time.Time
}

type Permission struct {
	ID          uint64
	Name        string
	Description *string
	CreatedAt   time.Time
}
