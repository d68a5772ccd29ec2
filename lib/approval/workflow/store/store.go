package approvalworkflowstore

import (
	"staff-hub-backend/models"
	approvalapimodels "staff-hub-backend/models/api/approval"
	dbmodels "staff-hub-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.ApprovalWorkflow) (id string, err error)
	Update(companyID, id string, updMap map[string]interface{}) error
	GetByID(companyID, id string) (rec *dbmodels.ApprovalWorkflow, err error)
	List(companyID string, filter approvalapimodels.WorkflowFilter) (list []dbmodels.ApprovalWorkflow, err error)
	ListCount(companyID string, filter approvalapimodels.WorkflowFilter) (rowCount int64, err error)
	ListActive(companyID, moduleEntityID string) (list []dbmodels.ApprovalWorkflow, err error)
	ReplaceRules(companyID, workflowID string, rules []dbmodels.ApprovalRule) error
	ReplaceLevels(companyID, workflowID string, levels []dbmodels.ApprovalLevel) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func orderedRules(db *gorm.DB) *gorm.DB {
	return db.Order("sequence asc, id asc")
}

func orderedLevels(db *gorm.DB) *gorm.DB {
	return db.Order("level_sequence asc")
}

func (i impl) Create(rec dbmodels.ApprovalWorkflow) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(companyID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.ApprovalWorkflow{}).
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

func (i impl) GetByID(companyID, id string) (*dbmodels.ApprovalWorkflow, error) {
	rec := dbmodels.ApprovalWorkflow{}
	err := i.db.
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Preload("ModuleEntity").
		Preload("Rules", orderedRules).
		Preload("Levels", orderedLevels).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) listQuery(companyID string, filter approvalapimodels.WorkflowFilter) *gorm.DB {
	tx := i.db.
		Model(&dbmodels.ApprovalWorkflow{}).
		Where("company_id = ?", companyID)
	if filter.ModuleEntityID != "" {
		tx = tx.Where("module_entity_id = ?", filter.ModuleEntityID)
	}
	return tx
}

func (i impl) List(companyID string, filter approvalapimodels.WorkflowFilter) (list []dbmodels.ApprovalWorkflow, err error) {
	list = []dbmodels.ApprovalWorkflow{}
	page, limit := filter.GetPage()
	err = i.listQuery(companyID, filter).
		Preload("ModuleEntity").
		Preload("Rules", orderedRules).
		Preload("Levels", orderedLevels).
		Order("priority asc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(companyID string, filter approvalapimodels.WorkflowFilter) (rowCount int64, err error) {
	err = i.listQuery(companyID, filter).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}

// ListActive - активные цепочки типа сущности в порядке приоритета,
// с правилами в порядке вычисления
func (i impl) ListActive(companyID, moduleEntityID string) (list []dbmodels.ApprovalWorkflow, err error) {
	list = []dbmodels.ApprovalWorkflow{}
	err = i.db.
		Where("company_id = ?", companyID).
		Where("module_entity_id = ?", moduleEntityID).
		Where("status = ?", models.WorkflowStatusActive).
		Preload("Rules", orderedRules).
		Preload("Levels", orderedLevels).
		Order("priority asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ReplaceRules(companyID, workflowID string, rules []dbmodels.ApprovalRule) error {
	err := i.db.
		Where("company_id = ?", companyID).
		Where("workflow_id = ?", workflowID).
		Delete(&dbmodels.ApprovalRule{}).
		Error
	if err != nil {
		return err
	}
	for idx := range rules {
		err = i.db.Omit(clause.Associations).
			Create(&rules[idx]).
			Error
		if err != nil {
			return err
		}
	}
	return nil
}

func (i impl) ReplaceLevels(companyID, workflowID string, levels []dbmodels.ApprovalLevel) error {
	err := i.db.
		Where("company_id = ?", companyID).
		Where("workflow_id = ?", workflowID).
		Delete(&dbmodels.ApprovalLevel{}).
		Error
	if err != nil {
		return err
	}
	for idx := range levels {
		err = i.db.Omit(clause.Associations).
			Create(&levels[idx]).
			Error
		if err != nil {
			return err
		}
	}
	return nil
}
