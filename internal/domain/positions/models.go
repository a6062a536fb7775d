package positions

import "time"

// Position is a job role an employee can hold. The API exposes it as /roles.
type Position struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Department    string    `json:"department"`
	BaseSalary    float64   `json:"baseSalary"`
	EmployeeCount int       `json:"employeeCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (p Position) Key() string         { return p.ID }
func (p *Position) WithKey(id string) { p.ID = id }

type Input struct {
	Name        string  `json:"name" validate:"required,min=2,max=120"`
	Description string  `json:"description" validate:"required,min=5"`
	Department  string  `json:"department" validate:"max=120"`
	BaseSalary  float64 `json:"baseSalary" validate:"gt=0"`
}

func (in Input) Position() Position {
	return Position{
		Name:        in.Name,
		Description: in.Description,
		Department:  in.Department,
		BaseSalary:  in.BaseSalary,
	}
}
