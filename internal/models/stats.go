package models

// DailyStats backs the dashboard's today view. Date is pre-formatted for
// display ("Monday, January 2").
type DailyStats struct {
	Date           string `json:"date"`
	TotalTasks     int    `json:"totalTasks"`
	CompletedTasks int    `json:"completedTasks"`
	Progress       int    `json:"progress"`
	Streak         int    `json:"streak"`
}
