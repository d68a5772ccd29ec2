package dbmodels

import "time"

type EmployeeStatus int

// Статусы сотрудника, выставляются синхронизатором по итогам согласования
const (
	EmployeeStatusActive          EmployeeStatus = 1
	EmployeeStatusPendingApproval EmployeeStatus = 2
	EmployeeStatusRejected        EmployeeStatus = 3
	EmployeeStatusDismissed       EmployeeStatus = 9
)

type Employee struct {
	BaseCompanyModel
	FirstName            string `gorm:"type:varchar(150)"`
	LastName             string `gorm:"type:varchar(150)"`
	EmployeeCode         string `gorm:"type:varchar(50)"`
	Email                string `gorm:"type:varchar(255)"`
	PhoneNumber          string `gorm:"type:varchar(15)"`
	Status               EmployeeStatus
	JoinDate             *time.Time
	ShiftID              *string `gorm:"type:varchar(36)"`
	Shift                *Shift
	AttendanceTemplateID *string `gorm:"type:varchar(36)"`
	AttendanceTemplate   *AttendanceTemplate
	HolidayTemplateID    *string `gorm:"type:varchar(36)"`
	HolidayTemplate      *HolidayTemplate
	WeeklyOffTemplateID  *string `gorm:"type:varchar(36)"`
	WeeklyOffTemplate    *WeeklyOffTemplate
}
