package dbmodels

import "staff-hub-backend/models"

type ApprovalWorkflow struct {
	BaseCompanyModel
	ModuleEntityID string `gorm:"type:varchar(36);index"`
	ModuleEntity   *ModuleEntity
	WorkflowName   string                `gorm:"type:varchar(255)"`
	Priority       int                   // меньше - раньше проверяется
	Status         models.WorkflowStatus `gorm:"type:varchar(20)"`
	Rules          []ApprovalRule        `gorm:"foreignKey:WorkflowID"`
	Levels         []ApprovalLevel       `gorm:"foreignKey:WorkflowID"`
}

// IsCatchAll - цепочка без правил подходит любой записи
func (w ApprovalWorkflow) IsCatchAll() bool {
	return len(w.Rules) == 0
}

type ApprovalRule struct {
	BaseCompanyModel
	WorkflowID      string                 `gorm:"type:varchar(36);index"`
	FieldName       string                 `gorm:"type:varchar(150)"`
	Operator        models.RuleOperator    `gorm:"type:varchar(10)"`
	Value           string                 `gorm:"type:varchar(255)"`
	LogicalOperator models.LogicalOperator `gorm:"type:varchar(5)"` // связка результата пары с результатом следующего правила
	Sequence        int
}

type ApprovalLevel struct {
	BaseCompanyModel
	WorkflowID    string              `gorm:"type:varchar(36);index"`
	LevelSequence int                 // 1..N, без пропусков
	ApproverType  models.ApproverType `gorm:"type:varchar(10)"`
	ApproverID    string              `gorm:"type:varchar(36)"`
}
