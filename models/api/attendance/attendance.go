package attendanceapimodels

import (
	"staff-hub-backend/models"
	apimodels "staff-hub-backend/models/api"
	dbmodels "staff-hub-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

const DateFormat = "2006-01-02"

type PunchData struct {
	EmployeeID string           `json:"employee_id"`
	PunchType  models.PunchType `json:"punch_type"` // пусто - тип будет определён по последней отметке
	PunchTime  *time.Time       `json:"punch_time"` // пусто - текущее время
	DeviceID   string           `json:"device_id"`
}

func (d PunchData) Validate() error {
	if d.EmployeeID == "" {
		return errors.New("не указан сотрудник")
	}
	if d.PunchType != "" && d.PunchType != models.PunchTypeIn && d.PunchType != models.PunchTypeOut {
		return errors.Errorf("недопустимый тип отметки: %v", d.PunchType)
	}
	return nil
}

type PunchResult struct {
	PunchID   string           `json:"punch_id"`
	PunchType models.PunchType `json:"punch_type"`
	PunchTime time.Time        `json:"punch_time"`
}

// ManualPunchData - ручная корректировка отметок за дату
type ManualPunchData struct {
	EmployeeID string     `json:"employee_id"`
	Date       string     `json:"date"` // 2006-01-02
	InTime     *time.Time `json:"in_time"`
	OutTime    *time.Time `json:"out_time"`
}

func (d ManualPunchData) Validate() error {
	if d.EmployeeID == "" {
		return errors.New("не указан сотрудник")
	}
	if _, err := time.Parse(DateFormat, d.Date); err != nil {
		return errors.New("дата указана в неверном формате, ожидается ГГГГ-ММ-ДД")
	}
	if d.InTime == nil && d.OutTime == nil {
		return errors.New("не указано время отметки")
	}
	if d.InTime != nil && d.OutTime != nil && !d.OutTime.After(*d.InTime) {
		return errors.New("время ухода должно быть позже времени прихода")
	}
	return nil
}

type DayView struct {
	ID              string                     `json:"id"`
	EmployeeID      string                     `json:"employee_id"`
	AttendanceDate  string                     `json:"attendance_date"`
	FirstIn         *time.Time                 `json:"first_in,omitempty"`
	LastOut         *time.Time                 `json:"last_out,omitempty"`
	WorkedMinutes   int                        `json:"worked_minutes"`
	BreakMinutes    int                        `json:"break_minutes"`
	LateMinutes     int                        `json:"late_minutes"`
	EarlyOutMinutes int                        `json:"early_out_minutes"`
	OvertimeMinutes int                        `json:"overtime_minutes"`
	FineAmount      float64                    `json:"fine_amount"`
	DayStatus       models.AttendanceDayStatus `json:"day_status"`
	DayStatusName   string                     `json:"day_status_name"`
	IsLocked        bool                       `json:"is_locked"`
}

func DayConvert(rec dbmodels.AttendanceDay) DayView {
	return DayView{
		ID:              rec.ID,
		EmployeeID:      rec.EmployeeID,
		AttendanceDate:  rec.AttendanceDate.Format(DateFormat),
		FirstIn:         rec.FirstIn,
		LastOut:         rec.LastOut,
		WorkedMinutes:   rec.WorkedMinutes,
		BreakMinutes:    rec.BreakMinutes,
		LateMinutes:     rec.LateMinutes,
		EarlyOutMinutes: rec.EarlyOutMinutes,
		OvertimeMinutes: rec.OvertimeMinutes,
		FineAmount:      rec.FineAmount,
		DayStatus:       rec.DayStatus,
		DayStatusName:   rec.DayStatus.ToHuman(),
		IsLocked:        rec.IsLocked,
	}
}

// DayActionData - пересборка или блокировка дня сотрудника
type DayActionData struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"` // 2006-01-02
}

func (d DayActionData) Validate() error {
	if d.EmployeeID == "" {
		return errors.New("не указан сотрудник")
	}
	if _, err := time.Parse(DateFormat, d.Date); err != nil {
		return errors.New("дата указана в неверном формате, ожидается ГГГГ-ММ-ДД")
	}
	return nil
}

// RegisterRow - строка табеля за месяц по одному сотруднику
type RegisterRow struct {
	EmployeeCode  string
	EmployeeName  string
	DayStatuses   map[int]models.AttendanceDayStatus // ключ - день месяца
	WorkedMinutes int
	FineAmount    float64
}

type DayFilter struct {
	apimodels.Pagination
	EmployeeID string `json:"employee_id"`
	DateFrom   string `json:"date_from"`
	DateTo     string `json:"date_to"`
}

func (f DayFilter) Validate() error {
	if f.DateFrom != "" {
		if _, err := time.Parse(DateFormat, f.DateFrom); err != nil {
			return errors.New("дата начала указана в неверном формате")
		}
	}
	if f.DateTo != "" {
		if _, err := time.Parse(DateFormat, f.DateTo); err != nil {
			return errors.New("дата окончания указана в неверном формате")
		}
	}
	return nil
}
