package attendancepunchhandler

import (
	"fmt"
	"staff-hub-backend/db"
	attendancepunchstore "staff-hub-backend/lib/attendance/punch/store"
	attendancerebuildhandler "staff-hub-backend/lib/attendance/rebuild"
	employeestore "staff-hub-backend/lib/employee/store"
	"staff-hub-backend/lib/utils/helpers"
	"staff-hub-backend/models"
	attendanceapimodels "staff-hub-backend/models/api/attendance"
	dbmodels "staff-hub-backend/models/db"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	Punch(companyID string, data attendanceapimodels.PunchData) (result attendanceapimodels.PunchResult, err error)
	ManualPunch(companyID string, data attendanceapimodels.ManualPunchData) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         attendancepunchstore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store         attendancepunchstore.Provider
	employeeStore employeestore.Provider
}

// Punch регистрирует отметку прихода/ухода. Тип отметки при отсутствии
// в запросе выводится по последней активной отметке сотрудника
func (i impl) Punch(companyID string, data attendanceapimodels.PunchData) (attendanceapimodels.PunchResult, error) {
	logger := log.
		WithField("company_id", companyID).
		WithField("employee_id", data.EmployeeID)
	punchTime := time.Now()
	if data.PunchTime != nil {
		punchTime = *data.PunchTime
	}
	employee, err := i.employeeStore.GetByID(companyID, data.EmployeeID)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска сотрудника")
		return attendanceapimodels.PunchResult{}, err
	}
	if employee == nil {
		return attendanceapimodels.PunchResult{}, models.NewCodedError(models.ErrCodeNotFound, "сотрудник не найден")
	}
	if employee.Status != dbmodels.EmployeeStatusActive {
		return attendanceapimodels.PunchResult{}, errors.New("сотрудник не активен")
	}
	punchDate := helpers.TruncateToDay(punchTime)
	if err = i.checkHoliday(companyID, *employee, punchDate); err != nil {
		return attendanceapimodels.PunchResult{}, err
	}
	shift, err := i.resolveShift(companyID, *employee, punchDate)
	if err != nil {
		logger.WithError(err).Error("ошибка определения смены")
		return attendanceapimodels.PunchResult{}, err
	}
	last, err := i.store.GetLastActive(companyID, data.EmployeeID)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска последней отметки")
		return attendanceapimodels.PunchResult{}, err
	}
	punchType := data.PunchType
	if punchType == "" {
		punchType = inferPunchType(last, punchTime)
	}
	if err = validateSequence(last, punchType, punchTime); err != nil {
		return attendanceapimodels.PunchResult{}, err
	}
	if err = checkPunchWindow(shift, last, punchType, punchTime); err != nil {
		return attendanceapimodels.PunchResult{}, err
	}

	rec := dbmodels.AttendancePunch{
		BaseCompanyModel: dbmodels.BaseCompanyModel{
			CompanyID: companyID,
		},
		EmployeeID: data.EmployeeID,
		PunchType:  punchType,
		PunchTime:  punchTime,
		DeviceID:   data.DeviceID,
	}
	// день владеет сессией по времени её IN, закрывающий OUT
	// пересобирает день открытия сессии
	rebuildDate := punchDate
	if punchType == models.PunchTypeOut {
		rec.SessionID = last.SessionID
		rebuildDate = helpers.TruncateToDay(last.PunchTime)
	} else {
		rec.SessionID = uuid.NewString()
	}
	rec.ID, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения отметки")
		return attendanceapimodels.PunchResult{}, err
	}
	logger.
		WithField("punch_id", rec.ID).
		WithField("punch_type", punchType).
		Info("зарегистрирована отметка")
	if err = attendancerebuildhandler.Instance.RebuildDay(companyID, data.EmployeeID, rebuildDate); err != nil {
		logger.WithError(err).Error("ошибка пересборки дня после отметки")
		return attendanceapimodels.PunchResult{}, err
	}
	return attendanceapimodels.PunchResult{
		PunchID:   rec.ID,
		PunchType: punchType,
		PunchTime: punchTime,
	}, nil
}

// ManualPunch заменяет отметки даты вручную указанной парой.
// Прежние отметки аннулируются, а не удаляются
func (i impl) ManualPunch(companyID string, data attendanceapimodels.ManualPunchData) error {
	logger := log.
		WithField("company_id", companyID).
		WithField("employee_id", data.EmployeeID).
		WithField("date", data.Date)
	date, err := time.ParseInLocation(attendanceapimodels.DateFormat, data.Date, time.Local)
	if err != nil {
		return errors.New("дата указана в неверном формате, ожидается ГГГГ-ММ-ДД")
	}
	employee, err := i.employeeStore.GetByID(companyID, data.EmployeeID)
	if err != nil {
		return err
	}
	if employee == nil {
		return models.NewCodedError(models.ErrCodeNotFound, "сотрудник не найден")
	}
	if data.InTime != nil && data.OutTime != nil &&
		data.OutTime.Sub(*data.InTime) < models.MinPunchGapMinutes*time.Minute {
		return models.NewCodedError(models.ErrCodePunchTooSoon,
			fmt.Sprintf("между отметками должно пройти не менее %v минут", models.MinPunchGapMinutes))
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := attendancepunchstore.NewInstance(tx)
		if err := store.VoidForDate(companyID, data.EmployeeID, date); err != nil {
			return err
		}
		sessionID := uuid.NewString()
		if data.InTime != nil {
			_, err := store.Create(dbmodels.AttendancePunch{
				BaseCompanyModel: dbmodels.BaseCompanyModel{
					CompanyID: companyID,
				},
				EmployeeID: data.EmployeeID,
				PunchType:  models.PunchTypeIn,
				PunchTime:  *data.InTime,
				SessionID:  sessionID,
				IsManual:   true,
			})
			if err != nil {
				return err
			}
		}
		if data.OutTime != nil {
			_, err := store.Create(dbmodels.AttendancePunch{
				BaseCompanyModel: dbmodels.BaseCompanyModel{
					CompanyID: companyID,
				},
				EmployeeID: data.EmployeeID,
				PunchType:  models.PunchTypeOut,
				PunchTime:  *data.OutTime,
				SessionID:  sessionID,
				IsManual:   true,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("ошибка ручной корректировки отметок")
		return err
	}
	logger.Info("отметки скорректированы вручную")
	if err = attendancerebuildhandler.Instance.RebuildDay(companyID, data.EmployeeID, date); err != nil {
		logger.WithError(err).Error("ошибка пересборки дня после корректировки")
		return err
	}
	return nil
}

func (i impl) checkHoliday(companyID string, employee dbmodels.Employee, date time.Time) error {
	if employee.AttendanceTemplate == nil ||
		employee.AttendanceTemplate.GetHolidayPolicy() != models.HolidayPolicyBlockAttendance ||
		employee.HolidayTemplateID == nil {
		return nil
	}
	holiday, err := i.employeeStore.IsHoliday(companyID, *employee.HolidayTemplateID, date)
	if err != nil {
		return err
	}
	if holiday != nil {
		return models.NewCodedError(models.ErrCodeHolidayBlocked,
			fmt.Sprintf("отметки в праздничный день запрещены: %v", holiday.Name))
	}
	return nil
}

// resolveShift - действующая смена: переопределение на дату, иначе основная
func (i impl) resolveShift(companyID string, employee dbmodels.Employee, date time.Time) (*dbmodels.Shift, error) {
	override, err := i.employeeStore.GetShiftOverride(companyID, employee.ID, date)
	if err != nil {
		return nil, err
	}
	if override != nil && override.Shift != nil {
		return override.Shift, nil
	}
	return employee.Shift, nil
}

// inferPunchType выводит тип отметки: незакрытый IN в пределах окна
// сессии означает уход, иначе приход
func inferPunchType(last *dbmodels.AttendancePunch, punchTime time.Time) models.PunchType {
	if last != nil &&
		last.PunchType == models.PunchTypeIn &&
		punchTime.Sub(last.PunchTime) <= models.PunchPairWindowHours*time.Hour {
		return models.PunchTypeOut
	}
	return models.PunchTypeIn
}

// validateSequence проверяет отметку против последней активной
func validateSequence(last *dbmodels.AttendancePunch, punchType models.PunchType, punchTime time.Time) error {
	if last != nil {
		if !punchTime.After(last.PunchTime) {
			return models.NewCodedError(models.ErrCodeBadSequence, "время отметки раньше предыдущей")
		}
		if punchTime.Sub(last.PunchTime) < models.MinPunchGapMinutes*time.Minute {
			return models.NewCodedError(models.ErrCodePunchTooSoon,
				fmt.Sprintf("между отметками должно пройти не менее %v минут", models.MinPunchGapMinutes))
		}
	}
	switch punchType {
	case models.PunchTypeOut:
		if last == nil || last.PunchType != models.PunchTypeIn {
			return models.NewCodedError(models.ErrCodeMissingPunchIn, "нет открытой отметки прихода")
		}
		if punchTime.Sub(last.PunchTime) > models.PunchPairWindowHours*time.Hour {
			return models.NewCodedError(models.ErrCodeStalePunchIn, "отметка прихода устарела, сессия не может быть закрыта")
		}
	case models.PunchTypeIn:
		if last != nil &&
			last.PunchType == models.PunchTypeIn &&
			punchTime.Sub(last.PunchTime) <= models.PunchPairWindowHours*time.Hour {
			return models.NewCodedError(models.ErrCodeAlreadyPunched, "отметка прихода уже зарегистрирована")
		}
	}
	return nil
}

// checkPunchWindow проверяет попадание отметки в окно вокруг границ смены.
// Для ухода окно считается от окончания смены на дату открытия сессии,
// у ночной смены оно приходится на следующий день
func checkPunchWindow(shift *dbmodels.Shift, last *dbmodels.AttendancePunch, punchType models.PunchType, punchTime time.Time) error {
	if shift == nil || !shift.RestrictPunchWindow {
		return nil
	}
	window := time.Duration(shift.PunchWindowMinutes) * time.Minute
	var anchor time.Time
	if punchType == models.PunchTypeIn {
		anchor, _ = attendancerebuildhandler.ShiftBoundsOn(helpers.TruncateToDay(punchTime), *shift)
	} else {
		sessionDate := helpers.TruncateToDay(punchTime)
		if last != nil && last.PunchType == models.PunchTypeIn {
			sessionDate = helpers.TruncateToDay(last.PunchTime)
		}
		_, anchor = attendancerebuildhandler.ShiftBoundsOn(sessionDate, *shift)
	}
	diff := punchTime.Sub(anchor)
	if diff < 0 {
		diff = -diff
	}
	if diff > window {
		return models.NewCodedError(models.ErrCodePunchWindow,
			fmt.Sprintf("отметка вне допустимого окна смены (%v минут)", shift.PunchWindowMinutes))
	}
	return nil
}
