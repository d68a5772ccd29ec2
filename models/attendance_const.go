package models

type AttendanceDayStatus int

const (
	DayStatusPresent   AttendanceDayStatus = 0
	DayStatusHalfDay   AttendanceDayStatus = 1
	DayStatusWeeklyOff AttendanceDayStatus = 3
	DayStatusHoliday   AttendanceDayStatus = 4
	DayStatusAbsent    AttendanceDayStatus = 5
	DayStatusLeave     AttendanceDayStatus = 6
)

var dayStatusHumanName = map[AttendanceDayStatus]string{
	DayStatusPresent:   "Присутствие",
	DayStatusHalfDay:   "Полдня",
	DayStatusWeeklyOff: "Выходной",
	DayStatusHoliday:   "Праздник",
	DayStatusAbsent:    "Отсутствие",
	DayStatusLeave:     "Отпуск",
}

func (s AttendanceDayStatus) ToHuman() string {
	if human, exist := dayStatusHumanName[s]; exist {
		return human
	}
	return "Неизвестно"
}

// Буква статуса для табеля
func (s AttendanceDayStatus) RegisterMark() string {
	switch s {
	case DayStatusPresent:
		return "Я"
	case DayStatusHalfDay:
		return "Я/2"
	case DayStatusWeeklyOff:
		return "В"
	case DayStatusHoliday:
		return "П"
	case DayStatusLeave:
		return "О"
	default:
		return "Н"
	}
}

type PunchType string

const (
	PunchTypeIn  PunchType = "IN"
	PunchTypeOut PunchType = "OUT"
)

// Статус записи: 0 - активна, 99 - аннулирована
const (
	RecStatusActive = 0
	RecStatusVoided = 99
)

type FineType string

const (
	FineTypeNone      FineType = "NONE"
	FineTypeFixed     FineType = "FIXED"
	FineTypePercent   FineType = "PERCENT"
	FineTypeDeduction FineType = "DEDUCTION"
)

type HolidayPolicy string

const (
	HolidayPolicyAllow           HolidayPolicy = "ALLOW"
	HolidayPolicyBlockAttendance HolidayPolicy = "BLOCK_ATTENDANCE"
)

type LeaveStatus string

const (
	LeaveStatusRequested LeaveStatus = "REQUESTED"
	LeaveStatusApproved  LeaveStatus = "APPROVED"
	LeaveStatusRejected  LeaveStatus = "REJECTED"
	LeaveStatusCancelled LeaveStatus = "CANCELLED"
)

// Дефолтные пороги при отсутствии смены у сотрудника
const (
	DefaultMinFullDayMinutes = 480
	DefaultMinHalfDayMinutes = 240
)

// Минимальный интервал между двумя отметками одного сотрудника
const MinPunchGapMinutes = 2

// Окно сопоставления IN/OUT одной рабочей сессии
const PunchPairWindowHours = 24
