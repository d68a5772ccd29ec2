package attendancedaystore

import (
	"staff-hub-backend/models"
	attendanceapimodels "staff-hub-backend/models/api/attendance"
	dbmodels "staff-hub-backend/models/db"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Provider interface {
	GetByEmployeeDate(companyID, employeeID string, date time.Time) (rec *dbmodels.AttendanceDay, err error)
	Save(rec dbmodels.AttendanceDay) (id string, err error)
	SetLocked(companyID, employeeID string, date time.Time, locked bool) error
	CountViolationsInMonth(companyID, employeeID string, monthStart, before time.Time) (rowCount int64, err error)
	List(companyID string, filter attendanceapimodels.DayFilter) (list []dbmodels.AttendanceDay, err error)
	ListCount(companyID string, filter attendanceapimodels.DayFilter) (rowCount int64, err error)
	ListForPeriod(companyID string, dateFrom, dateTo time.Time) (list []dbmodels.AttendanceDay, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByEmployeeDate(companyID, employeeID string, date time.Time) (*dbmodels.AttendanceDay, error) {
	rec := dbmodels.AttendanceDay{}
	err := i.db.
		Where("company_id = ?", companyID).
		Where("employee_id = ?", employeeID).
		Where("attendance_date = ?", date).
		Where("status = ?", models.RecStatusActive).
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

func (i impl) Save(rec dbmodels.AttendanceDay) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) SetLocked(companyID, employeeID string, date time.Time, locked bool) error {
	tx := i.db.
		Model(&dbmodels.AttendanceDay{}).
		Where("company_id = ?", companyID).
		Where("employee_id = ?", employeeID).
		Where("attendance_date = ?", date).
		Where("status = ?", models.RecStatusActive).
		Update("is_locked", locked)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись дня не найдена")
	}
	return nil
}

// CountViolationsInMonth - дни месяца с опозданием или ранним уходом
// до указанной даты, текущий день не учитывается
func (i impl) CountViolationsInMonth(companyID, employeeID string, monthStart, before time.Time) (rowCount int64, err error) {
	err = i.db.
		Model(&dbmodels.AttendanceDay{}).
		Where("company_id = ?", companyID).
		Where("employee_id = ?", employeeID).
		Where("status = ?", models.RecStatusActive).
		Where("attendance_date >= ?", monthStart).
		Where("attendance_date < ?", before).
		Where("late_minutes > 0 OR early_out_minutes > 0").
		Count(&rowCount).
		Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}

func (i impl) listQuery(companyID string, filter attendanceapimodels.DayFilter) *gorm.DB {
	tx := i.db.
		Model(&dbmodels.AttendanceDay{}).
		Where("company_id = ?", companyID).
		Where("status = ?", models.RecStatusActive)
	if filter.EmployeeID != "" {
		tx = tx.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.DateFrom != "" {
		tx = tx.Where("attendance_date >= ?", filter.DateFrom)
	}
	if filter.DateTo != "" {
		tx = tx.Where("attendance_date <= ?", filter.DateTo)
	}
	return tx
}

func (i impl) List(companyID string, filter attendanceapimodels.DayFilter) (list []dbmodels.AttendanceDay, err error) {
	list = []dbmodels.AttendanceDay{}
	page, limit := filter.GetPage()
	err = i.listQuery(companyID, filter).
		Order("attendance_date desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(companyID string, filter attendanceapimodels.DayFilter) (rowCount int64, err error) {
	err = i.listQuery(companyID, filter).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}

// ListForPeriod - все дни периода по всем сотрудникам, для табеля
func (i impl) ListForPeriod(companyID string, dateFrom, dateTo time.Time) (list []dbmodels.AttendanceDay, err error) {
	list = []dbmodels.AttendanceDay{}
	err = i.db.
		Where("company_id = ?", companyID).
		Where("status = ?", models.RecStatusActive).
		Where("attendance_date >= ?", dateFrom).
		Where("attendance_date <= ?", dateTo).
		Order("employee_id asc, attendance_date asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
