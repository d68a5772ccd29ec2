package dbmodels

import "time"

type Company struct {
	BaseModel
	Name             string `gorm:"type:varchar(255)"`
	OrganizationName string `gorm:"type:varchar(255)"` // Юридическое название компании
	Inn              string `gorm:"type:varchar(12)"`  // ИНН
	Kpp              string `gorm:"type:varchar(9)"`   // КПП
	IsActive         bool
	Timezone         string `gorm:"type:varchar(64)"` // IANA, например Europe/Moscow
	StartPay         time.Time
	StopPay          time.Time
}
