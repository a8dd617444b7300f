package entity

import "time"

// Roles de la aplicación.
const (
	RoleAdmin         = "Admin"
	RoleLabTechnician = "Lab Technician"
	RoleEngineer      = "Engineer"
	RoleResearcher    = "Researcher"
)

// User usuario de la aplicación.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string
	Status       string // active, disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
