package attendancerebuildhandler

import (
	"staff-hub-backend/db"
	attendancepunchstore "staff-hub-backend/lib/attendance/punch/store"
	attendancedaystore "staff-hub-backend/lib/attendance/rebuild/day-store"
	employeestore "staff-hub-backend/lib/employee/store"
	"staff-hub-backend/lib/utils/helpers"
	"staff-hub-backend/models"
	attendanceapimodels "staff-hub-backend/models/api/attendance"
	dbmodels "staff-hub-backend/models/db"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	// RebuildDay пересобирает производную запись дня по журналу отметок.
	// Повторный вызов по тем же отметкам даёт тот же результат,
	// заблокированный день не изменяется
	RebuildDay(companyID, employeeID string, date time.Time) error
	RebuildRange(companyID, employeeID string, dateFrom, dateTo time.Time) error
	LockDay(companyID, employeeID string, date time.Time) error
	UnlockDay(companyID, employeeID string, date time.Time) error
	GetDay(companyID, employeeID string, date time.Time) (item *attendanceapimodels.DayView, err error)
	ListDays(companyID string, filter attendanceapimodels.DayFilter) (list []attendanceapimodels.DayView, rowCount int64, err error)
	// MonthlyRegister - строки табеля за месяц по активным сотрудникам
	MonthlyRegister(companyID string, year int, month time.Month) (rows []attendanceapimodels.RegisterRow, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		dayStore:      attendancedaystore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	dayStore      attendancedaystore.Provider
	employeeStore employeestore.Provider
}

func (i impl) RebuildDay(companyID, employeeID string, date time.Time) error {
	date = helpers.TruncateToDay(date)
	logger := log.
		WithField("company_id", companyID).
		WithField("employee_id", employeeID).
		WithField("date", date.Format(attendanceapimodels.DateFormat))
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		return i.rebuildDayTx(tx, companyID, employeeID, date)
	})
	if err != nil {
		logger.WithError(err).Error("ошибка пересборки дня посещаемости")
		return err
	}
	logger.Debug("день посещаемости пересобран")
	return nil
}

func (i impl) rebuildDayTx(tx *gorm.DB, companyID, employeeID string, date time.Time) error {
	dayStore := attendancedaystore.NewInstance(tx)
	empStore := employeestore.NewInstance(tx)
	punchStore := attendancepunchstore.NewInstance(tx)

	existing, err := dayStore.GetByEmployeeDate(companyID, employeeID, date)
	if err != nil {
		return err
	}
	if existing != nil && existing.IsLocked {
		return nil
	}
	employee, err := empStore.GetByID(companyID, employeeID)
	if err != nil {
		return err
	}
	if employee == nil {
		return models.NewCodedError(models.ErrCodeNotFound, "сотрудник не найден")
	}

	rec := dbmodels.AttendanceDay{
		BaseCompanyModel: dbmodels.BaseCompanyModel{
			CompanyID: companyID,
		},
		EmployeeID:     employeeID,
		AttendanceDate: date,
	}
	if existing != nil {
		rec.BaseModel = existing.BaseModel
	}

	leave, err := empStore.GetApprovedLeave(companyID, employeeID, date)
	if err != nil {
		return err
	}
	if leave != nil {
		rec.DayStatus = models.DayStatusLeave
		_, err = dayStore.Save(rec)
		return err
	}

	punches, err := punchStore.ListSessionsForDate(companyID, employeeID, date)
	if err != nil {
		return err
	}
	if len(punches) == 0 {
		rec.DayStatus, err = i.classifyEmptyDay(empStore, companyID, *employee, date)
		if err != nil {
			return err
		}
		_, err = dayStore.Save(rec)
		return err
	}

	shift, err := i.resolveShift(empStore, companyID, *employee, date)
	if err != nil {
		return err
	}
	facts := calcDayFacts(date, punches, shift, employee.AttendanceTemplate)
	monthStart := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	priorViolations, err := dayStore.CountViolationsInMonth(companyID, employeeID, monthStart, date)
	if err != nil {
		return err
	}
	fineAmount, fineCount := calcFine(employee.AttendanceTemplate, int(priorViolations), facts.Violated)

	rec.FirstIn = facts.FirstIn
	rec.LastOut = facts.LastOut
	rec.WorkedMinutes = facts.WorkedMinutes
	rec.BreakMinutes = facts.BreakMinutes
	rec.LateMinutes = facts.LateMinutes
	rec.EarlyOutMinutes = facts.EarlyOutMinutes
	rec.OvertimeMinutes = facts.OvertimeMinutes
	rec.FineAmount = fineAmount
	rec.FineCount = fineCount
	rec.DayStatus = facts.DayStatus
	_, err = dayStore.Save(rec)
	return err
}

// classifyEmptyDay - статус дня без отметок: выходной по шаблону,
// праздник, иначе отсутствие
func (i impl) classifyEmptyDay(empStore employeestore.Provider, companyID string, employee dbmodels.Employee, date time.Time) (models.AttendanceDayStatus, error) {
	if employee.WeeklyOffTemplate != nil && matchWeeklyOff(employee.WeeklyOffTemplate.Days, date) {
		return models.DayStatusWeeklyOff, nil
	}
	if employee.HolidayTemplateID != nil {
		holiday, err := empStore.IsHoliday(companyID, *employee.HolidayTemplateID, date)
		if err != nil {
			return models.DayStatusAbsent, err
		}
		if holiday != nil {
			return models.DayStatusHoliday, nil
		}
	}
	return models.DayStatusAbsent, nil
}

func (i impl) resolveShift(empStore employeestore.Provider, companyID string, employee dbmodels.Employee, date time.Time) (*dbmodels.Shift, error) {
	override, err := empStore.GetShiftOverride(companyID, employee.ID, date)
	if err != nil {
		return nil, err
	}
	if override != nil && override.Shift != nil {
		return override.Shift, nil
	}
	return employee.Shift, nil
}

func (i impl) RebuildRange(companyID, employeeID string, dateFrom, dateTo time.Time) error {
	dateFrom = helpers.TruncateToDay(dateFrom)
	dateTo = helpers.TruncateToDay(dateTo)
	for date := dateFrom; !date.After(dateTo); date = date.AddDate(0, 0, 1) {
		if err := i.RebuildDay(companyID, employeeID, date); err != nil {
			return err
		}
	}
	return nil
}

func (i impl) LockDay(companyID, employeeID string, date time.Time) error {
	return i.setLocked(companyID, employeeID, date, true)
}

func (i impl) UnlockDay(companyID, employeeID string, date time.Time) error {
	return i.setLocked(companyID, employeeID, date, false)
}

func (i impl) setLocked(companyID, employeeID string, date time.Time, locked bool) error {
	date = helpers.TruncateToDay(date)
	err := i.dayStore.SetLocked(companyID, employeeID, date, locked)
	if err != nil {
		log.
			WithField("company_id", companyID).
			WithField("employee_id", employeeID).
			WithError(err).
			Error("ошибка изменения блокировки дня")
		return err
	}
	return nil
}

func (i impl) GetDay(companyID, employeeID string, date time.Time) (*attendanceapimodels.DayView, error) {
	rec, err := i.dayStore.GetByEmployeeDate(companyID, employeeID, helpers.TruncateToDay(date))
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, models.NewCodedError(models.ErrCodeNotFound, "запись дня не найдена")
	}
	view := attendanceapimodels.DayConvert(*rec)
	return &view, nil
}

func (i impl) ListDays(companyID string, filter attendanceapimodels.DayFilter) (list []attendanceapimodels.DayView, rowCount int64, err error) {
	rowCount, err = i.dayStore.ListCount(companyID, filter)
	if err != nil {
		return nil, 0, err
	}
	recList, err := i.dayStore.List(companyID, filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]attendanceapimodels.DayView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, attendanceapimodels.DayConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) MonthlyRegister(companyID string, year int, month time.Month) ([]attendanceapimodels.RegisterRow, error) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	monthEnd := monthStart.AddDate(0, 1, -1)
	employees, err := i.employeeStore.ListActive(companyID)
	if err != nil {
		return nil, err
	}
	days, err := i.dayStore.ListForPeriod(companyID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	byEmployee := map[string][]dbmodels.AttendanceDay{}
	for _, day := range days {
		byEmployee[day.EmployeeID] = append(byEmployee[day.EmployeeID], day)
	}
	rows := make([]attendanceapimodels.RegisterRow, 0, len(employees))
	for _, employee := range employees {
		row := attendanceapimodels.RegisterRow{
			EmployeeCode: employee.EmployeeCode,
			EmployeeName: employee.LastName + " " + employee.FirstName,
			DayStatuses:  map[int]models.AttendanceDayStatus{},
		}
		for _, day := range byEmployee[employee.ID] {
			row.DayStatuses[day.AttendanceDate.Day()] = day.DayStatus
			row.WorkedMinutes += day.WorkedMinutes
			row.FineAmount += day.FineAmount
		}
		rows = append(rows, row)
	}
	return rows, nil
}
