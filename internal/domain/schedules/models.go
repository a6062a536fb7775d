package schedules

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	ShiftRegular = "regular"
	ShiftHalfDay = "half-day"

	AssignmentScheduled = "scheduled"
)

type Schedule struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	StartTime   string       `json:"startTime"`
	EndTime     string       `json:"endTime"`
	TotalHours  float64      `json:"totalHours"`
	DeductHours float64      `json:"deductHours"`
	Days        string       `json:"days"`
	Assignments []Assignment `json:"assignments"`
	CreatedAt   time.Time    `json:"createdAt"`
}

func (s Schedule) Key() string         { return s.ID }
func (s *Schedule) WithKey(id string) { s.ID = id }

// Assignment places one employee on a schedule, optionally for a single day.
type Assignment struct {
	ID         string `json:"id"`
	ScheduleID string `json:"scheduleId"`
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date,omitempty"`
	Location   string `json:"location"`
	ShiftType  string `json:"shiftType"`
	Status     string `json:"status"`
}

// Shift is an assignment as seen by the assigned employee.
type Shift struct {
	Assignment
	ScheduleName string `json:"scheduleName"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

type Input struct {
	Name        string  `json:"name" validate:"required,min=2"`
	StartTime   string  `json:"startTime" validate:"required,clock"`
	TotalHours  float64 `json:"totalHours" validate:"gt=0,lte=24"`
	DeductHours float64 `json:"deductHours" validate:"gte=0"`
	Days        string  `json:"days"`
}

type AssignInput struct {
	EmployeeID string `json:"employeeId" validate:"required"`
	Date       string `json:"date" validate:"omitempty,isodate"`
	Location   string `json:"location"`
	ShiftType  string `json:"shiftType" validate:"omitempty,oneof=regular half-day"`
}

// EndTime is start plus total hours on a 24 hour clock. It is a display
// helper; breaks (deductHours) do not move the end of the shift.
func EndTime(start string, totalHours float64) string {
	h, m, ok := parseClock(start)
	if !ok || totalHours <= 0 || math.IsNaN(totalHours) {
		return ""
	}
	minutes := h*60 + m + int(math.Round(totalHours*60))
	minutes %= 24 * 60
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func parseClock(raw string) (int, int, bool) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

// WorkedHours is the paid length of the shift.
func (s Schedule) WorkedHours() float64 {
	return math.Max(s.TotalHours-s.DeductHours, 0)
}
