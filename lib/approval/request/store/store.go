package approvalrequeststore

import (
	"staff-hub-backend/models"
	approvalapimodels "staff-hub-backend/models/api/approval"
	dbmodels "staff-hub-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	Create(rec dbmodels.ApprovalRequest) (id string, err error)
	GetByID(companyID, id string) (rec *dbmodels.ApprovalRequest, err error)
	GetPendingByEntity(companyID, entityID, moduleEntityID string) (rec *dbmodels.ApprovalRequest, err error)
	GetPendingForUpdate(companyID, id, entityID, moduleEntityID string) (rec *dbmodels.ApprovalRequest, err error)
	Update(companyID, id string, updMap map[string]interface{}) error
	List(companyID string, filter approvalapimodels.RequestFilter) (list []dbmodels.ApprovalRequest, err error)
	ListCount(companyID string, filter approvalapimodels.RequestFilter) (rowCount int64, err error)
	CreateLog(rec dbmodels.ApprovalLog) (id string, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ApprovalRequest) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(companyID, id string) (*dbmodels.ApprovalRequest, error) {
	rec := dbmodels.ApprovalRequest{}
	err := i.db.
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Preload("ModuleEntity").
		Preload("Workflow").
		Preload("Logs", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc")
		}).
		Preload("Logs.User").
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

func (i impl) GetPendingByEntity(companyID, entityID, moduleEntityID string) (*dbmodels.ApprovalRequest, error) {
	rec := dbmodels.ApprovalRequest{}
	err := i.db.
		Where("company_id = ?", companyID).
		Where("entity_id = ?", entityID).
		Where("module_entity_id = ?", moduleEntityID).
		Where("status = ?", models.ApprovalStatusPending).
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

// GetPendingForUpdate находит PENDING заявку с блокировкой строки.
// Поиск по id, либо по паре entity_id + module_entity_id.
// Конкурентные решения по одной заявке сериализуются этой блокировкой
func (i impl) GetPendingForUpdate(companyID, id, entityID, moduleEntityID string) (*dbmodels.ApprovalRequest, error) {
	rec := dbmodels.ApprovalRequest{}
	tx := i.db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("company_id = ?", companyID).
		Where("status = ?", models.ApprovalStatusPending)
	if id != "" {
		tx = tx.Where("id = ?", id)
	} else {
		tx = tx.
			Where("entity_id = ?", entityID).
			Where("module_entity_id = ?", moduleEntityID)
	}
	err := tx.First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(companyID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.ApprovalRequest{}).
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

func (i impl) listQuery(companyID string, filter approvalapimodels.RequestFilter) *gorm.DB {
	tx := i.db.
		Model(&dbmodels.ApprovalRequest{}).
		Where("company_id = ?", companyID)
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.ModuleEntityID != "" {
		tx = tx.Where("module_entity_id = ?", filter.ModuleEntityID)
	}
	return tx
}

func (i impl) List(companyID string, filter approvalapimodels.RequestFilter) (list []dbmodels.ApprovalRequest, err error) {
	list = []dbmodels.ApprovalRequest{}
	page, limit := filter.GetPage()
	err = i.listQuery(companyID, filter).
		Preload("ModuleEntity").
		Preload("Workflow").
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(companyID string, filter approvalapimodels.RequestFilter) (rowCount int64, err error) {
	err = i.listQuery(companyID, filter).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}

func (i impl) CreateLog(rec dbmodels.ApprovalLog) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}
