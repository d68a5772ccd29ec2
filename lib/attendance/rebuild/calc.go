package attendancerebuildhandler

import (
	"staff-hub-backend/lib/utils/helpers"
	"staff-hub-backend/models"
	dbmodels "staff-hub-backend/models/db"
	"time"
)

// DayFacts - расчётные показатели дня по отметкам
type DayFacts struct {
	FirstIn         *time.Time
	LastOut         *time.Time
	WorkedMinutes   int
	BreakMinutes    int
	LateMinutes     int
	EarlyOutMinutes int
	OvertimeMinutes int
	DayStatus       models.AttendanceDayStatus
	Violated        bool // опоздание или ранний уход
}

// ShiftBoundsOn - границы смены на календарную дату.
// Окончание ночной смены приходится на следующий день
func ShiftBoundsOn(date time.Time, shift dbmodels.Shift) (start, end time.Time) {
	start = atClock(date, shift.StartTime)
	end = atClock(date, shift.EndTime)
	if shift.IsNightShift || !end.After(start) {
		end = end.Add(24 * time.Hour)
	}
	return start, end
}

func atClock(date time.Time, clock string) time.Time {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return date
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, date.Location())
}

// calcDayFacts считает показатели дня по отметкам сессий даты.
// Отметки отсортированы по времени, расчёт детерминирован:
// повторная пересборка по тем же отметкам даёт тот же результат
func calcDayFacts(date time.Time, punches []dbmodels.AttendancePunch, shift *dbmodels.Shift, tmpl *dbmodels.AttendanceTemplate) DayFacts {
	facts := DayFacts{
		DayStatus: models.DayStatusAbsent,
	}
	segmentMins := 0
	breakMins := 0
	var openIn *time.Time
	var prevOut *time.Time
	for idx := range punches {
		punch := punches[idx]
		switch punch.PunchType {
		case models.PunchTypeIn:
			if facts.FirstIn == nil {
				t := punch.PunchTime
				facts.FirstIn = &t
			}
			if openIn == nil {
				t := punch.PunchTime
				openIn = &t
				if prevOut != nil {
					breakMins += minutesBetween(*prevOut, punch.PunchTime)
				}
			}
		case models.PunchTypeOut:
			if openIn != nil {
				segmentMins += minutesBetween(*openIn, punch.PunchTime)
				openIn = nil
			}
			t := punch.PunchTime
			facts.LastOut = &t
			prevOut = &t
		}
	}
	if facts.FirstIn == nil {
		return facts
	}
	facts.BreakMinutes = breakMins

	// без закрывающей отметки день не засчитывается
	worked := 0
	if facts.LastOut != nil {
		if tmpl != nil && tmpl.DeductBreaksFromTotal {
			worked = segmentMins
			paidBack := breakMins
			if paidBack > tmpl.PaidBreakDurationMins {
				paidBack = tmpl.PaidBreakDurationMins
			}
			worked += paidBack
		} else {
			worked = minutesBetween(*facts.FirstIn, *facts.LastOut)
		}
	}

	minFullDay := models.DefaultMinFullDayMinutes
	minHalfDay := models.DefaultMinHalfDayMinutes
	if shift != nil {
		if shift.MinFullDayMinutes > 0 {
			minFullDay = shift.MinFullDayMinutes
		}
		if shift.MinHalfDayMinutes > 0 {
			minHalfDay = shift.MinHalfDayMinutes
		}
		start, end := ShiftBoundsOn(date, *shift)
		shiftMins := minutesBetween(start, end)

		if late := minutesBetween(start, *facts.FirstIn); late > shift.GraceMinutes {
			facts.LateMinutes = late
		}
		if facts.LastOut != nil {
			if early := minutesBetween(*facts.LastOut, end); early > shift.EarlyExitGraceMinutes {
				facts.EarlyOutMinutes = early
			}
		}

		uncapped := worked
		if tmpl != nil {
			if !tmpl.IncludeOvertimeInTotal && worked > shiftMins {
				worked = shiftMins
			}
			if tmpl.OvertimeAllowed {
				overtime := uncapped - shiftMins
				if overtime >= tmpl.MinOvertimeMins && overtime > 0 {
					if tmpl.MaxOvertimeMins > 0 && overtime > tmpl.MaxOvertimeMins {
						overtime = tmpl.MaxOvertimeMins
					}
					facts.OvertimeMinutes = overtime
				}
			}
		}
	}

	facts.WorkedMinutes = worked
	facts.Violated = facts.LateMinutes > 0 || facts.EarlyOutMinutes > 0
	switch {
	case worked >= minFullDay:
		facts.DayStatus = models.DayStatusPresent
	case worked >= minHalfDay:
		facts.DayStatus = models.DayStatusHalfDay
	default:
		facts.DayStatus = models.DayStatusAbsent
	}
	return facts
}

// minutesBetween - целые минуты между моментами, не меньше нуля
func minutesBetween(from, to time.Time) int {
	mins := int(to.Sub(from) / time.Minute)
	if mins < 0 {
		return 0
	}
	return mins
}

// matchWeeklyOff - выпадает ли дата на выходной день шаблона.
// WeekNo 0 означает каждую неделю месяца
func matchWeeklyOff(days []dbmodels.WeeklyOffTemplateDay, date time.Time) bool {
	for _, day := range days {
		if day.DayOfWeek != int(date.Weekday()) {
			continue
		}
		if day.WeekNo == 0 || day.WeekNo == helpers.WeekOfMonth(date) {
			return true
		}
	}
	return false
}

// calcFine считает штраф за нарушение дня. Первые FineFreePerMonth
// нарушений месяца не штрафуются, считается только фиксированный штраф,
// для процентных схем сохраняется лишь счётчик нарушений
func calcFine(tmpl *dbmodels.AttendanceTemplate, priorViolations int, violatedToday bool) (amount float64, count int) {
	count = priorViolations
	if !violatedToday {
		return 0, count
	}
	count++
	if tmpl == nil || tmpl.FineType != models.FineTypeFixed {
		return 0, count
	}
	if count <= tmpl.FineFreePerMonth {
		return 0, count
	}
	return tmpl.FineAmount, count
}
