package dbmodels

import "time"

// Shift - рабочая смена. Время в формате "15:04" локальной даты,
// у ночной смены окончание приходится на следующий календарный день
type Shift struct {
	BaseCompanyModel
	Name                  string `gorm:"type:varchar(150)"`
	StartTime             string `gorm:"type:varchar(5)"`
	EndTime               string `gorm:"type:varchar(5)"`
	GraceMinutes          int    // допуск опоздания
	EarlyExitGraceMinutes int    // допуск раннего ухода
	MinFullDayMinutes     int
	MinHalfDayMinutes     int
	IsNightShift          bool
	RestrictPunchWindow   bool
	PunchWindowMinutes    int // допуск вокруг начала/окончания смены
	IsActive              bool
}

// EmployeeShift - переопределение смены сотрудника на период
type EmployeeShift struct {
	BaseCompanyModel
	EmployeeID string `gorm:"type:varchar(36);index"`
	ShiftID    string `gorm:"type:varchar(36)"`
	Shift      *Shift
	DateFrom   time.Time `gorm:"type:date"`
	DateTo     time.Time `gorm:"type:date"`
}
