package dbmodels

// ModuleEntity - справочник типов сущностей, по которым настраиваются
// цепочки согласования (сотрудник, заказ, отпуск и тд)
type ModuleEntity struct {
	BaseModel
	Code     string `gorm:"type:varchar(50);uniqueIndex"`
	Name     string `gorm:"type:varchar(150)"`
	IsActive bool
}

const (
	ModuleEntityEmployee   = "EMPLOYEE"
	ModuleEntitySalesOrder = "SALES_ORDER"
	ModuleEntityLeave      = "LEAVE_REQUEST"
)
