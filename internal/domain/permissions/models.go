package permissions

import "time"

const (
	TypeVacation   = "vacation"
	TypePermission = "permission"
	TypeLeave      = "leave"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

var TypeLabels = map[string]string{
	TypeVacation:   "Vacation",
	TypePermission: "Permission",
	TypeLeave:      "Leave",
}

var StatusLabels = map[string]string{
	StatusPending:  "Pending",
	StatusApproved: "Approved",
	StatusRejected: "Rejected",
}

type Request struct {
	ID            string     `json:"id"`
	EmployeeID    string     `json:"employeeId"`
	EmployeeName  string     `json:"employeeName"`
	Type          string     `json:"type"`
	StartDate     string     `json:"startDate"`
	EndDate       string     `json:"endDate"`
	Days          float64    `json:"days"`
	Reason        string     `json:"reason"`
	Status        string     `json:"status"`
	Comments      string     `json:"comments"`
	SubmittedDate string     `json:"submittedDate"`
	DecidedAt     *time.Time `json:"decidedAt,omitempty"`
	DecidedBy     string     `json:"decidedBy,omitempty"`
}

func (r Request) Key() string         { return r.ID }
func (r *Request) WithKey(id string) { r.ID = id }

// Input is the request form. EmployeeID is overwritten with the caller's own
// employee when an employee files the request.
type Input struct {
	EmployeeID string  `json:"employeeId" validate:"required"`
	Type       string  `json:"type" validate:"required,oneof=vacation permission leave"`
	StartDate  string  `json:"startDate" validate:"required,isodate"`
	EndDate    string  `json:"endDate" validate:"required,isodate"`
	Days       float64 `json:"days" validate:"gt=0,lte=365"`
	Reason     string  `json:"reason" validate:"required,min=3,max=500"`
}

type Decision struct {
	Comments string `json:"comments" validate:"max=1000"`
}
