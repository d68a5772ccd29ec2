package dbmodels

import "time"

type HolidayTemplate struct {
	BaseCompanyModel
	Name     string `gorm:"type:varchar(150)"`
	IsActive bool
	Holidays []HolidayTransaction `gorm:"foreignKey:TemplateID"`
}

type HolidayTransaction struct {
	BaseCompanyModel
	TemplateID  string    `gorm:"type:varchar(36);index"`
	HolidayDate time.Time `gorm:"type:date"`
	Name        string    `gorm:"type:varchar(150)"`
}
