package dbmodels

type WeeklyOffTemplate struct {
	BaseCompanyModel
	Name     string `gorm:"type:varchar(150)"`
	IsActive bool
	Days     []WeeklyOffTemplateDay `gorm:"foreignKey:TemplateID"`
}

// WeeklyOffTemplateDay - выходной день шаблона.
// WeekNo 0 - каждую неделю, 1..5 - конкретная неделя месяца
type WeeklyOffTemplateDay struct {
	BaseCompanyModel
	TemplateID string `gorm:"type:varchar(36);index"`
	DayOfWeek  int    // 0 - воскресенье .. 6 - суббота
	WeekNo     int
}
