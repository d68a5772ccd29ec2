package dbmodels

import "staff-hub-backend/models"

type ApprovalRequest struct {
	BaseCompanyModel
	EntityID             string `gorm:"type:varchar(36);index"`
	ModuleEntityID       string `gorm:"type:varchar(36);index"`
	ModuleEntity         *ModuleEntity
	WorkflowID           string `gorm:"type:varchar(36)"`
	Workflow             *ApprovalWorkflow
	CurrentLevelSequence int
	Status               models.ApprovalStatus `gorm:"type:varchar(20);index"`
	Logs                 []ApprovalLog         `gorm:"foreignKey:RequestID"`
}

// ApprovalLog - журнал решений, записи не изменяются после создания
type ApprovalLog struct {
	BaseCompanyModel
	RequestID     string                `gorm:"type:varchar(36);index"`
	UserID        string                `gorm:"type:varchar(36)"`
	User          *CompanyUser          `gorm:"foreignKey:UserID"`
	Action        models.ApprovalAction `gorm:"type:varchar(10)"`
	Comment       string
	LevelSequence int // уровень на момент решения
}
