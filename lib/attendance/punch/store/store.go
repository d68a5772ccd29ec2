package attendancepunchstore

import (
	"staff-hub-backend/models"
	dbmodels "staff-hub-backend/models/db"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.AttendancePunch) (id string, err error)
	GetLastActive(companyID, employeeID string) (rec *dbmodels.AttendancePunch, err error)
	ListSessionsForDate(companyID, employeeID string, date time.Time) (list []dbmodels.AttendancePunch, err error)
	VoidForDate(companyID, employeeID string, date time.Time) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AttendancePunch) (id string, err error) {
	err = i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

// GetLastActive - последняя неаннулированная отметка сотрудника
func (i impl) GetLastActive(companyID, employeeID string) (*dbmodels.AttendancePunch, error) {
	rec := dbmodels.AttendancePunch{}
	err := i.db.
		Where("company_id = ?", companyID).
		Where("employee_id = ?", employeeID).
		Where("status = ?", models.RecStatusActive).
		Order("punch_time desc").
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

// ListSessionsForDate - отметки сессий, открытых в указанную дату.
// День владеет сессией по времени её IN, закрывающий OUT может
// приходиться на следующий календарный день
func (i impl) ListSessionsForDate(companyID, employeeID string, date time.Time) (list []dbmodels.AttendancePunch, err error) {
	dayStart := date
	dayEnd := date.Add(24 * time.Hour)
	list = []dbmodels.AttendancePunch{}
	err = i.db.
		Where("company_id = ?", companyID).
		Where("employee_id = ?", employeeID).
		Where("status = ?", models.RecStatusActive).
		Where(`session_id IN (?)`, i.db.
			Model(&dbmodels.AttendancePunch{}).
			Select("session_id").
			Where("company_id = ?", companyID).
			Where("employee_id = ?", employeeID).
			Where("status = ?", models.RecStatusActive).
			Where("punch_type = ?", models.PunchTypeIn).
			Where("punch_time >= ?", dayStart).
			Where("punch_time < ?", dayEnd)).
		Order("punch_time asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// VoidForDate аннулирует отметки сессий даты. Используется при ручной
// корректировке, журнал при этом не удаляется
func (i impl) VoidForDate(companyID, employeeID string, date time.Time) error {
	dayStart := date
	dayEnd := date.Add(24 * time.Hour)
	return i.db.
		Model(&dbmodels.AttendancePunch{}).
		Where("company_id = ?", companyID).
		Where("employee_id = ?", employeeID).
		Where("status = ?", models.RecStatusActive).
		Where(`session_id IN (?)`, i.db.
			Model(&dbmodels.AttendancePunch{}).
			Select("session_id").
			Where("company_id = ?", companyID).
			Where("employee_id = ?", employeeID).
			Where("status = ?", models.RecStatusActive).
			Where("punch_type = ?", models.PunchTypeIn).
			Where("punch_time >= ?", dayStart).
			Where("punch_time < ?", dayEnd)).
		Update("status", models.RecStatusVoided).
		Error
}
