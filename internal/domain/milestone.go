package domain

import "time"

type Milestone struct {
	ID         string
	GoalID     string
	Title      string
	OrderIndex int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
