package employeestore

import (
	"staff-hub-backend/models"
	dbmodels "staff-hub-backend/models/db"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	GetByID(companyID, id string) (rec *dbmodels.Employee, err error)
	ListActive(companyID string) (list []dbmodels.Employee, err error)
	Update(companyID, id string, updMap map[string]interface{}) error
	GetShiftOverride(companyID, employeeID string, date time.Time) (rec *dbmodels.EmployeeShift, err error)
	GetApprovedLeave(companyID, employeeID string, date time.Time) (rec *dbmodels.LeaveRequest, err error)
	IsHoliday(companyID, templateID string, date time.Time) (holiday *dbmodels.HolidayTransaction, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByID(companyID, id string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := i.db.
		Where("id = ?", id).
		Where("company_id = ?", companyID).
		Preload("Shift").
		Preload("AttendanceTemplate").
		Preload("WeeklyOffTemplate.Days").
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

func (i impl) ListActive(companyID string) (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	err = i.db.
		Where("company_id = ?", companyID).
		Where("status = ?", dbmodels.EmployeeStatusActive).
		Order("employee_code asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) Update(companyID, id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Employee{}).
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

// GetShiftOverride возвращает действующее на дату переопределение смены
func (i impl) GetShiftOverride(companyID, employeeID string, date time.Time) (*dbmodels.EmployeeShift, error) {
	rec := dbmodels.EmployeeShift{}
	err := i.db.
		Where("company_id = ?", companyID).
		Where("employee_id = ?", employeeID).
		Where("date_from <= ?", date).
		Where("date_to >= ?", date).
		Preload("Shift").
		Order("date_from desc").
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

func (i impl) GetApprovedLeave(companyID, employeeID string, date time.Time) (*dbmodels.LeaveRequest, error) {
	rec := dbmodels.LeaveRequest{}
	err := i.db.
		Where("company_id = ?", companyID).
		Where("employee_id = ?", employeeID).
		Where("status = ?", models.LeaveStatusApproved).
		Where("date_from <= ?", date).
		Where("date_to >= ?", date).
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

func (i impl) IsHoliday(companyID, templateID string, date time.Time) (*dbmodels.HolidayTransaction, error) {
	rec := dbmodels.HolidayTransaction{}
	err := i.db.
		Where("company_id = ?", companyID).
		Where("template_id = ?", templateID).
		Where("holiday_date = ?", date).
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
