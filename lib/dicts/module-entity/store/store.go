package moduleentitystore

import (
	dbmodels "staff-hub-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	GetByID(id string) (rec *dbmodels.ModuleEntity, err error)
	GetByCode(code string) (rec *dbmodels.ModuleEntity, err error)
	List() (list []dbmodels.ModuleEntity, err error)
	Create(rec dbmodels.ModuleEntity) (id string, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByID(id string) (*dbmodels.ModuleEntity, error) {
	rec := dbmodels.ModuleEntity{}
	err := i.db.
		Where("id = ?", id).
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

func (i impl) GetByCode(code string) (*dbmodels.ModuleEntity, error) {
	rec := dbmodels.ModuleEntity{}
	err := i.db.
		Where("code = ?", code).
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

func (i impl) List() (list []dbmodels.ModuleEntity, err error) {
	list = []dbmodels.ModuleEntity{}
	err = i.db.
		Where("is_active = true").
		Order("code asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Create(rec dbmodels.ModuleEntity) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}
