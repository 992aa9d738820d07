package models

import "time"

// DayGroup holds the transactions that happened on one calendar day.
// Day is midnight of that day in the grouping location.
type DayGroup struct {
	Day          time.Time     `json:"day"`
	Transactions []Transaction `json:"transactions"`
}
