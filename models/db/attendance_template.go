package dbmodels

import "staff-hub-backend/models"

type AttendanceTemplate struct {
	BaseCompanyModel
	Name                   string `gorm:"type:varchar(150)"`
	DeductBreaksFromTotal  bool
	PaidBreakDurationMins  int // столько минут перерыва оплачивается
	IncludeOvertimeInTotal bool
	OvertimeAllowed        bool
	MinOvertimeMins        int
	MaxOvertimeMins        int // 0 - без ограничения
	FineType               models.FineType `gorm:"type:varchar(20)"`
	FineAmount             float64
	FineFreePerMonth       int                  // столько нарушений в месяц без штрафа
	HolidayPolicy          models.HolidayPolicy `gorm:"type:varchar(20)"`
	IsActive               bool
}

func (t *AttendanceTemplate) GetHolidayPolicy() models.HolidayPolicy {
	if t == nil || t.HolidayPolicy == "" {
		return models.HolidayPolicyAllow
	}
	return t.HolidayPolicy
}
