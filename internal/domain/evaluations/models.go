package evaluations

import "time"

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

type Evaluation struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	Position     string    `json:"position"`
	Evaluator    string    `json:"evaluator"`
	Date         string    `json:"date"`
	Score        float64   `json:"score"`
	Status       string    `json:"status"`
	Comments     string    `json:"comments"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (e Evaluation) Key() string         { return e.ID }
func (e *Evaluation) WithKey(id string) { e.ID = id }

type Input struct {
	EmployeeID string  `json:"employeeId" validate:"required"`
	Evaluator  string  `json:"evaluator" validate:"max=120"`
	Date       string  `json:"date" validate:"required,isodate"`
	Score      float64 `json:"score" validate:"gte=0,lte=5"`
	Status     string  `json:"status" validate:"omitempty,oneof=pending completed"`
	Comments   string  `json:"comments" validate:"max=4000"`
}
