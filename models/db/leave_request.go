package dbmodels

import (
	"staff-hub-backend/models"
	"time"
)

type LeaveRequest struct {
	BaseCompanyModel
	EmployeeID string `gorm:"type:varchar(36);index"`
	Employee   *Employee
	DateFrom   time.Time          `gorm:"type:date"`
	DateTo     time.Time          `gorm:"type:date"`
	Status     models.LeaveStatus `gorm:"type:varchar(20)"`
	Reason     string
}

// Covers - входит ли дата в период отпуска
func (r LeaveRequest) Covers(date time.Time) bool {
	d := date.Truncate(24 * time.Hour)
	return !d.Before(r.DateFrom) && !d.After(r.DateTo)
}
