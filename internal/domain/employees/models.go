package employees

import (
	"strings"
	"time"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusVacation = "vacation"
	StatusLeave    = "leave"
)

var StatusLabels = map[string]string{
	StatusActive:   "Active",
	StatusInactive: "Inactive",
	StatusVacation: "Vacation",
	StatusLeave:    "Leave",
}

type Employee struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Lastname   string    `json:"lastname"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	Company    string    `json:"company"`
	PositionID string    `json:"positionId,omitempty"`
	Position   string    `json:"position"`
	Department string    `json:"department"`
	Status     string    `json:"status"`
	UserID     string    `json:"userId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (e Employee) Key() string         { return e.ID }
func (e *Employee) WithKey(id string) { e.ID = id }

func (e Employee) FullName() string {
	return strings.TrimSpace(e.Name + " " + e.Lastname)
}

// Input is the create/update payload of the employee form. Password is only
// read on create, where it provisions the employee's login.
type Input struct {
	Name       string `json:"name" validate:"required,min=2"`
	Lastname   string `json:"lastname" validate:"required,min=2"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required,min=8"`
	Address    string `json:"address" validate:"required,min=5"`
	Company    string `json:"company" validate:"required,min=2"`
	PositionID string `json:"positionId" validate:"required"`
	Status     string `json:"status" validate:"omitempty,oneof=active inactive vacation leave"`
	Password   string `json:"password,omitempty" validate:"omitempty,min=6"`
}

func (in Input) Employee() Employee {
	return Employee{
		Name:       in.Name,
		Lastname:   in.Lastname,
		Email:      in.Email,
		Phone:      in.Phone,
		Address:    in.Address,
		Company:    in.Company,
		PositionID: in.PositionID,
		Status:     in.Status,
	}
}
