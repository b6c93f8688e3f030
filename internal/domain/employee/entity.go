package employee

import "time"

type Employee struct {
	ID        int64
	Name      string
	Email     string
	Position  string
	CompanyID int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
