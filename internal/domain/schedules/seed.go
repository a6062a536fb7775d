package schedules

var Samples = []Schedule{
	{Name: "Morning shift", StartTime: "08:00", TotalHours: 8, DeductHours: 1, Days: "Monday-Friday"},
	{Name: "Evening shift", StartTime: "14:00", TotalHours: 8, DeductHours: 1, Days: "Monday-Friday"},
	{Name: "Weekend shift", StartTime: "09:00", TotalHours: 9, DeductHours: 1, Days: "Saturday-Sunday"},
	{Name: "Half day morning", StartTime: "08:00", TotalHours: 4, Days: "Monday-Friday"},
	{Name: "Night shift", StartTime: "22:00", TotalHours: 8, DeductHours: 0.5, Days: "Monday-Sunday"},
}
