package dbmodels

import (
	"staff-hub-backend/models"
	"time"
)

// AttendancePunch - событие отметки. Журнал только дополняется,
// запись не изменяется, допускается лишь аннулирование (status=99)
type AttendancePunch struct {
	BaseCompanyModel
	EmployeeID string           `gorm:"type:varchar(36);index"`
	PunchType  models.PunchType `gorm:"type:varchar(5)"`
	PunchTime  time.Time        `gorm:"index"`
	DeviceID   string           `gorm:"type:varchar(100)"`
	SessionID  string           `gorm:"type:varchar(36)"` // связывает IN и закрывающий его OUT
	IsManual   bool
	Status     int `gorm:"default:0"`
}

// AttendanceDay - производная запись дня, пишется только движком пересборки
type AttendanceDay struct {
	BaseCompanyModel
	EmployeeID      string    `gorm:"type:varchar(36);index"`
	AttendanceDate  time.Time `gorm:"type:date;index"`
	FirstIn         *time.Time
	LastOut         *time.Time
	WorkedMinutes   int
	BreakMinutes    int
	LateMinutes     int
	EarlyOutMinutes int
	OvertimeMinutes int
	FineAmount      float64
	FineCount       int // нарушений в месяце на момент пересборки, включая текущий день
	DayStatus       models.AttendanceDayStatus
	IsLocked        bool
	Status          int `gorm:"default:0"`
}
