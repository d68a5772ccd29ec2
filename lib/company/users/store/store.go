package companyusersstore

import (
	dbmodels "staff-hub-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	GetByID(id string) (rec *dbmodels.CompanyUser, err error)
	FindByEmail(email string) (rec *dbmodels.CompanyUser, err error)
	ListByRole(companyID, roleID string) (list []dbmodels.CompanyUser, err error)
	Update(id string, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByID(id string) (*dbmodels.CompanyUser, error) {
	rec := dbmodels.CompanyUser{}
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

func (i impl) FindByEmail(email string) (*dbmodels.CompanyUser, error) {
	rec := dbmodels.CompanyUser{}
	err := i.db.
		Where("email = ?", email).
		Where("is_active = true").
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

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	return i.db.
		Model(&dbmodels.CompanyUser{}).
		Where("id = ?", id).
		Updates(updMap).
		Error
}

func (i impl) ListByRole(companyID, roleID string) (list []dbmodels.CompanyUser, err error) {
	list = []dbmodels.CompanyUser{}
	err = i.db.
		Where("company_id = ?", companyID).
		Where("role_id = ?", roleID).
		Where("is_active = true").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
