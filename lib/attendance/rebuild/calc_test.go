package attendancerebuildhandler

import (
	"testing"
	"time"

	"staff-hub-backend/models"
	dbmodels "staff-hub-backend/models/db"

	"github.com/stretchr/testify/require"
)

var testDay = time.Date(2026, 8, 28, 0, 0, 0, 0, time.Local) // пятница

func punch(punchType models.PunchType, hour, minute int) dbmodels.AttendancePunch {
	return dbmodels.AttendancePunch{
		PunchType: punchType,
		PunchTime: testDay.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute),
	}
}

func dayShift() *dbmodels.Shift {
	return &dbmodels.Shift{
		StartTime:             "09:00",
		EndTime:               "18:00",
		GraceMinutes:          15,
		EarlyExitGraceMinutes: 15,
		MinFullDayMinutes:     480,
		MinHalfDayMinutes:     240,
	}
}

func TestShiftBoundsOn(t *testing.T) {
	t.Run(`дневная смена`, func(t *testing.T) {
		start, end := ShiftBoundsOn(testDay, *dayShift())
		require.Equal(t, testDay.Add(9*time.Hour), start)
		require.Equal(t, testDay.Add(18*time.Hour), end)
	})

	t.Run(`ночная смена заканчивается на следующий день`, func(t *testing.T) {
		night := dbmodels.Shift{StartTime: "22:00", EndTime: "06:00", IsNightShift: true}
		start, end := ShiftBoundsOn(testDay, night)
		require.Equal(t, testDay.Add(22*time.Hour), start)
		require.Equal(t, testDay.Add(30*time.Hour), end)
		require.True(t, end.After(start))
	})

	t.Run(`окончание не позже начала трактуется как ночная`, func(t *testing.T) {
		night := dbmodels.Shift{StartTime: "20:00", EndTime: "04:00"}
		start, end := ShiftBoundsOn(testDay, night)
		require.Equal(t, 8*time.Hour, end.Sub(start))
	})
}

func TestCalcDayFacts(t *testing.T) {
	t.Run(`обычный день без опозданий`, func(t *testing.T) {
		punches := []dbmodels.AttendancePunch{
			punch(models.PunchTypeIn, 9, 0),
			punch(models.PunchTypeOut, 18, 0),
		}
		facts := calcDayFacts(testDay, punches, dayShift(), nil)
		require.Equal(t, 540, facts.WorkedMinutes)
		require.Equal(t, 0, facts.LateMinutes)
		require.Equal(t, 0, facts.EarlyOutMinutes)
		require.Equal(t, models.DayStatusPresent, facts.DayStatus)
		require.False(t, facts.Violated)
	})

	t.Run(`опоздание сверх допуска`, func(t *testing.T) {
		punches := []dbmodels.AttendancePunch{
			punch(models.PunchTypeIn, 9, 40),
			punch(models.PunchTypeOut, 18, 0),
		}
		facts := calcDayFacts(testDay, punches, dayShift(), nil)
		require.Equal(t, 40, facts.LateMinutes)
		require.True(t, facts.Violated)
	})

	t.Run(`опоздание в пределах допуска не считается`, func(t *testing.T) {
		punches := []dbmodels.AttendancePunch{
			punch(models.PunchTypeIn, 9, 10),
			punch(models.PunchTypeOut, 18, 0),
		}
		facts := calcDayFacts(testDay, punches, dayShift(), nil)
		require.Equal(t, 0, facts.LateMinutes)
		require.False(t, facts.Violated)
	})

	t.Run(`ранний уход сверх допуска`, func(t *testing.T) {
		punches := []dbmodels.AttendancePunch{
			punch(models.PunchTypeIn, 9, 0),
			punch(models.PunchTypeOut, 17, 0),
		}
		facts := calcDayFacts(testDay, punches, dayShift(), nil)
		require.Equal(t, 60, facts.EarlyOutMinutes)
		require.True(t, facts.Violated)
	})

	t.Run(`перерывы вычитаются с оплатой лимита`, func(t *testing.T) {
		punches := []dbmodels.AttendancePunch{
			punch(models.PunchTypeIn, 9, 0),
			punch(models.PunchTypeOut, 13, 0),
			punch(models.PunchTypeIn, 14, 30),
			punch(models.PunchTypeOut, 18, 0),
		}
		tmpl := &dbmodels.AttendanceTemplate{
			DeductBreaksFromTotal: true,
			PaidBreakDurationMins: 60,
		}
		facts := calcDayFacts(testDay, punches, dayShift(), tmpl)
		// 240 + 210 отработано, перерыв 90, оплачен час
		require.Equal(t, 90, facts.BreakMinutes)
		require.Equal(t, 510, facts.WorkedMinutes)
	})

	t.Run(`без вычета перерывов считается от первого прихода до последнего ухода`, func(t *testing.T) {
		punches := []dbmodels.AttendancePunch{
			punch(models.PunchTypeIn, 9, 0),
			punch(models.PunchTypeOut, 13, 0),
			punch(models.PunchTypeIn, 14, 0),
			punch(models.PunchTypeOut, 18, 0),
		}
		facts := calcDayFacts(testDay, punches, dayShift(), nil)
		require.Equal(t, 540, facts.WorkedMinutes)
		require.Equal(t, 60, facts.BreakMinutes)
	})

	t.Run(`переработка не входит в итог без разрешения`, func(t *testing.T) {
		punches := []dbmodels.AttendancePunch{
			punch(models.PunchTypeIn, 9, 0),
			punch(models.PunchTypeOut, 20, 0),
		}
		tmpl := &dbmodels.AttendanceTemplate{}
		facts := calcDayFacts(testDay, punches, dayShift(), tmpl)
		require.Equal(t, 540, facts.WorkedMinutes)
		require.Equal(t, 0, facts.OvertimeMinutes)
	})

	t.Run(`переработка с порогом и потолком`, func(t *testing.T) {
		punches := []dbmodels.AttendancePunch{
			punch(models.PunchTypeIn, 9, 0),
			punch(models.PunchTypeOut, 20, 0),
		}
		tmpl := &dbmodels.AttendanceTemplate{
			OvertimeAllowed: true,
			MinOvertimeMins: 30,
			MaxOvertimeMins: 90,
		}
		facts := calcDayFacts(testDay, punches, dayShift(), tmpl)
		// сверх смены 120 минут, потолок 90
		require.Equal(t, 90, facts.OvertimeMinutes)

		shortOT := []dbmodels.AttendancePunch{
			punch(models.PunchTypeIn, 9, 0),
			punch(models.PunchTypeOut, 18, 20),
		}
		facts = calcDayFacts(testDay, shortOT, dayShift(), tmpl)
		require.Equal(t, 0, facts.OvertimeMinutes)
	})

	t.Run(`ночная смена через полночь`, func(t *testing.T) {
		night := &dbmodels.Shift{
			StartTime:             "22:00",
			EndTime:               "06:00",
			IsNightShift:          true,
			GraceMinutes:          15,
			EarlyExitGraceMinutes: 15,
			MinFullDayMinutes:     420,
			MinHalfDayMinutes:     210,
		}
		punches := []dbmodels.AttendancePunch{
			punch(models.PunchTypeIn, 22, 0),
			punch(models.PunchTypeOut, 29, 30), // 05:30 следующего дня
		}
		facts := calcDayFacts(testDay, punches, night, nil)
		require.Equal(t, 450, facts.WorkedMinutes)
		require.Equal(t, 30, facts.EarlyOutMinutes)
		require.Equal(t, models.DayStatusPresent, facts.DayStatus)
	})

	t.Run(`пороги полного дня и полдня`, func(t *testing.T) {
		halfDay := []dbmodels.AttendancePunch{
			punch(models.PunchTypeIn, 9, 0),
			punch(models.PunchTypeOut, 14, 0),
		}
		facts := calcDayFacts(testDay, halfDay, dayShift(), nil)
		require.Equal(t, models.DayStatusHalfDay, facts.DayStatus)

		tooShort := []dbmodels.AttendancePunch{
			punch(models.PunchTypeIn, 9, 0),
			punch(models.PunchTypeOut, 11, 0),
		}
		facts = calcDayFacts(testDay, tooShort, dayShift(), nil)
		require.Equal(t, models.DayStatusAbsent, facts.DayStatus)
	})

	t.Run(`без смены действуют дефолтные пороги`, func(t *testing.T) {
		punches := []dbmodels.AttendancePunch{
			punch(models.PunchTypeIn, 9, 0),
			punch(models.PunchTypeOut, 17, 0),
		}
		facts := calcDayFacts(testDay, punches, nil, nil)
		require.Equal(t, 480, facts.WorkedMinutes)
		require.Equal(t, models.DayStatusPresent, facts.DayStatus)
		require.Equal(t, 0, facts.LateMinutes)

		half := []dbmodels.AttendancePunch{
			punch(models.PunchTypeIn, 9, 0),
			punch(models.PunchTypeOut, 13, 30),
		}
		facts = calcDayFacts(testDay, half, nil, nil)
		require.Equal(t, models.DayStatusHalfDay, facts.DayStatus)
	})

	t.Run(`открытая сессия без ухода не засчитывается`, func(t *testing.T) {
		punches := []dbmodels.AttendancePunch{
			punch(models.PunchTypeIn, 9, 0),
		}
		facts := calcDayFacts(testDay, punches, dayShift(), nil)
		require.Equal(t, 0, facts.WorkedMinutes)
		require.NotNil(t, facts.FirstIn)
		require.Nil(t, facts.LastOut)
		require.Equal(t, models.DayStatusAbsent, facts.DayStatus)
	})

	t.Run(`расчёт детерминирован`, func(t *testing.T) {
		punches := []dbmodels.AttendancePunch{
			punch(models.PunchTypeIn, 9, 40),
			punch(models.PunchTypeOut, 13, 0),
			punch(models.PunchTypeIn, 14, 0),
			punch(models.PunchTypeOut, 18, 0),
		}
		first := calcDayFacts(testDay, punches, dayShift(), nil)
		second := calcDayFacts(testDay, punches, dayShift(), nil)
		require.Equal(t, first, second)
	})
}

func TestMatchWeeklyOff(t *testing.T) {
	sunday := time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local)
	require.Equal(t, time.Sunday, sunday.Weekday())

	t.Run(`каждую неделю`, func(t *testing.T) {
		days := []dbmodels.WeeklyOffTemplateDay{{DayOfWeek: 0, WeekNo: 0}}
		require.True(t, matchWeeklyOff(days, sunday))
		require.False(t, matchWeeklyOff(days, sunday.AddDate(0, 0, 1)))
	})

	t.Run(`конкретная неделя месяца`, func(t *testing.T) {
		// 30 августа 2026 - пятое воскресенье месяца
		days := []dbmodels.WeeklyOffTemplateDay{{DayOfWeek: 0, WeekNo: 5}}
		require.True(t, matchWeeklyOff(days, sunday))

		days = []dbmodels.WeeklyOffTemplateDay{{DayOfWeek: 0, WeekNo: 2}}
		require.False(t, matchWeeklyOff(days, sunday))
		secondSunday := time.Date(2026, 8, 9, 0, 0, 0, 0, time.Local)
		require.True(t, matchWeeklyOff(days, secondSunday))
	})

	t.Run(`пустой шаблон`, func(t *testing.T) {
		require.False(t, matchWeeklyOff(nil, sunday))
	})
}

func TestCalcFine(t *testing.T) {
	tmpl := &dbmodels.AttendanceTemplate{
		FineType:         models.FineTypeFixed,
		FineAmount:       500,
		FineFreePerMonth: 2,
	}

	t.Run(`без нарушения штрафа нет`, func(t *testing.T) {
		amount, count := calcFine(tmpl, 5, false)
		require.Equal(t, float64(0), amount)
		require.Equal(t, 5, count)
	})

	t.Run(`бесплатный лимит нарушений`, func(t *testing.T) {
		amount, count := calcFine(tmpl, 0, true)
		require.Equal(t, float64(0), amount)
		require.Equal(t, 1, count)

		amount, count = calcFine(tmpl, 1, true)
		require.Equal(t, float64(0), amount)
		require.Equal(t, 2, count)

		amount, count = calcFine(tmpl, 2, true)
		require.Equal(t, float64(500), amount)
		require.Equal(t, 3, count)
	})

	t.Run(`нефиксированные схемы не начисляют сумму`, func(t *testing.T) {
		percent := &dbmodels.AttendanceTemplate{
			FineType:         models.FineTypePercent,
			FineAmount:       10,
			FineFreePerMonth: 0,
		}
		amount, count := calcFine(percent, 3, true)
		require.Equal(t, float64(0), amount)
		require.Equal(t, 4, count)
	})

	t.Run(`без шаблона только счётчик`, func(t *testing.T) {
		amount, count := calcFine(nil, 0, true)
		require.Equal(t, float64(0), amount)
		require.Equal(t, 1, count)
	})
}
