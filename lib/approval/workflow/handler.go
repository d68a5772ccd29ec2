package approvalworkflowhandler

import (
	"staff-hub-backend/db"
	approvalrule "staff-hub-backend/lib/approval/rule"
	approvalworkflowstore "staff-hub-backend/lib/approval/workflow/store"
	"staff-hub-backend/models"
	approvalapimodels "staff-hub-backend/models/api/approval"
	dbmodels "staff-hub-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Create(companyID string, data approvalapimodels.WorkflowData) (id string, err error)
	Update(companyID, id string, data approvalapimodels.WorkflowData) error
	GetByID(companyID, id string) (item approvalapimodels.WorkflowView, err error)
	List(companyID string, filter approvalapimodels.WorkflowFilter) (list []approvalapimodels.WorkflowView, rowCount int64, err error)
	SetStatus(companyID, id string, status models.WorkflowStatus) error
	CheckApprovalRequired(companyID, moduleEntityID string, snapshot map[string]interface{}) (workflow *dbmodels.ApprovalWorkflow, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: approvalworkflowstore.NewInstance(db.DB),
	}
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store: approvalworkflowstore.NewInstance(tx),
	}
}

type impl struct {
	store approvalworkflowstore.Provider
}

func (i impl) Create(companyID string, data approvalapimodels.WorkflowData) (id string, err error) {
	logger := log.WithField("company_id", companyID)
	rec := dbmodels.ApprovalWorkflow{
		BaseCompanyModel: dbmodels.BaseCompanyModel{
			CompanyID: companyID,
		},
		ModuleEntityID: data.ModuleEntityID,
		WorkflowName:   data.WorkflowName,
		Priority:       data.Priority,
		Status:         models.WorkflowStatusActive,
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := approvalworkflowstore.NewInstance(tx)
		id, err = store.Create(rec)
		if err != nil {
			return err
		}
		if err = store.ReplaceRules(companyID, id, convertRules(companyID, id, data.Rules)); err != nil {
			return err
		}
		return store.ReplaceLevels(companyID, id, convertLevels(companyID, id, data.Levels))
	})
	if err != nil {
		logger.
			WithError(err).
			Error("Ошибка создания цепочки согласования")
		return "", err
	}
	logger.
		WithField("rec_id", id).
		Info("Создана цепочка согласования")
	return id, nil
}

func (i impl) Update(companyID, id string, data approvalapimodels.WorkflowData) error {
	logger := log.WithField("company_id", companyID).
		WithField("rec_id", id)
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		store := approvalworkflowstore.NewInstance(tx)
		updMap := map[string]interface{}{
			"ModuleEntityID": data.ModuleEntityID,
			"WorkflowName":   data.WorkflowName,
			"Priority":       data.Priority,
		}
		if err := store.Update(companyID, id, updMap); err != nil {
			return err
		}
		if err := store.ReplaceRules(companyID, id, convertRules(companyID, id, data.Rules)); err != nil {
			return err
		}
		return store.ReplaceLevels(companyID, id, convertLevels(companyID, id, data.Levels))
	})
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка обновления цепочки согласования")
		return err
	}
	logger.Info("обновлена цепочка согласования")
	return nil
}

func (i impl) GetByID(companyID, id string) (item approvalapimodels.WorkflowView, err error) {
	rec, err := i.store.GetByID(companyID, id)
	if err != nil {
		return approvalapimodels.WorkflowView{}, err
	}
	if rec == nil {
		return approvalapimodels.WorkflowView{}, models.NewCodedError(models.ErrCodeNotFound, "цепочка согласования не найдена")
	}
	return approvalapimodels.WorkflowConvert(*rec), nil
}

func (i impl) List(companyID string, filter approvalapimodels.WorkflowFilter) (list []approvalapimodels.WorkflowView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount(companyID, filter)
	if err != nil {
		return nil, 0, err
	}
	recList, err := i.store.List(companyID, filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]approvalapimodels.WorkflowView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, approvalapimodels.WorkflowConvert(rec))
	}
	return result, rowCount, nil
}

// SetStatus деактивирует/активирует цепочку. Запись не удаляется,
// на неё могут ссылаться существующие заявки
func (i impl) SetStatus(companyID, id string, status models.WorkflowStatus) error {
	if status != models.WorkflowStatusActive && status != models.WorkflowStatusInactive {
		return errors.Errorf("недопустимый статус: %v", status)
	}
	updMap := map[string]interface{}{
		"Status": status,
	}
	return i.store.Update(companyID, id, updMap)
}

// CheckApprovalRequired подбирает цепочку согласования для снимка записи.
// Цепочки проверяются в порядке приоритета, первая подошедшая выигрывает,
// цепочка без правил подходит всегда. nil - согласование не требуется
func (i impl) CheckApprovalRequired(companyID, moduleEntityID string, snapshot map[string]interface{}) (*dbmodels.ApprovalWorkflow, error) {
	list, err := i.store.ListActive(companyID, moduleEntityID)
	if err != nil {
		return nil, err
	}
	for idx, workflow := range list {
		if workflow.IsCatchAll() || approvalrule.FoldRules(workflow.Rules, snapshot) {
			return &list[idx], nil
		}
	}
	return nil, nil
}

func convertRules(companyID, workflowID string, rules []approvalapimodels.ApprovalRuleData) []dbmodels.ApprovalRule {
	result := make([]dbmodels.ApprovalRule, 0, len(rules))
	for _, rule := range rules {
		result = append(result, dbmodels.ApprovalRule{
			BaseCompanyModel: dbmodels.BaseCompanyModel{
				CompanyID: companyID,
			},
			WorkflowID:      workflowID,
			FieldName:       rule.FieldName,
			Operator:        rule.Operator,
			Value:           rule.Value,
			LogicalOperator: rule.LogicalOperator,
			Sequence:        rule.Sequence,
		})
	}
	return result
}

func convertLevels(companyID, workflowID string, levels []approvalapimodels.ApprovalLevelData) []dbmodels.ApprovalLevel {
	result := make([]dbmodels.ApprovalLevel, 0, len(levels))
	for _, level := range levels {
		result = append(result, dbmodels.ApprovalLevel{
			BaseCompanyModel: dbmodels.BaseCompanyModel{
				CompanyID: companyID,
			},
			WorkflowID:    workflowID,
			LevelSequence: level.LevelSequence,
			ApproverType:  level.ApproverType,
			ApproverID:    level.ApproverID,
		})
	}
	return result
}
