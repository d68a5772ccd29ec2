package moduleentityprovider

import (
	"staff-hub-backend/db"
	moduleentitystore "staff-hub-backend/lib/dicts/module-entity/store"
	dbmodels "staff-hub-backend/models/db"

	log "github.com/sirupsen/logrus"
)

var defaultEntities = map[string]string{
	dbmodels.ModuleEntityEmployee:   "Сотрудник",
	dbmodels.ModuleEntitySalesOrder: "Заказ",
	dbmodels.ModuleEntityLeave:      "Заявка на отпуск",
}

type Provider interface {
	GetByID(id string) (rec *dbmodels.ModuleEntity, err error)
	GetByCode(code string) (rec *dbmodels.ModuleEntity, err error)
	List() (list []dbmodels.ModuleEntity, err error)
	SeedDefaults() error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: moduleentitystore.NewInstance(db.DB),
	}
}

type impl struct {
	store moduleentitystore.Provider
}

func (i impl) GetByID(id string) (*dbmodels.ModuleEntity, error) {
	return i.store.GetByID(id)
}

func (i impl) GetByCode(code string) (*dbmodels.ModuleEntity, error) {
	return i.store.GetByCode(code)
}

func (i impl) List() ([]dbmodels.ModuleEntity, error) {
	return i.store.List()
}

// SeedDefaults дозаполняет справочник типовыми сущностями
func (i impl) SeedDefaults() error {
	for code, name := range defaultEntities {
		rec, err := i.store.GetByCode(code)
		if err != nil {
			return err
		}
		if rec != nil {
			continue
		}
		_, err = i.store.Create(dbmodels.ModuleEntity{
			Code:     code,
			Name:     name,
			IsActive: true,
		})
		if err != nil {
			return err
		}
		log.
			WithField("code", code).
			Info("создан тип сущности")
	}
	return nil
}
