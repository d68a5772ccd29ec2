package attendancepunchhandler

import (
	"testing"
	"time"

	"staff-hub-backend/models"
	dbmodels "staff-hub-backend/models/db"

	"github.com/stretchr/testify/require"
)

func punchAt(punchType models.PunchType, at time.Time) *dbmodels.AttendancePunch {
	return &dbmodels.AttendancePunch{
		PunchType: punchType,
		PunchTime: at,
		SessionID: "session-1",
	}
}

func TestInferPunchType(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)

	t.Run(`без отметок - приход`, func(t *testing.T) {
		require.Equal(t, models.PunchTypeIn, inferPunchType(nil, now))
	})

	t.Run(`открытый IN в пределах суток - уход`, func(t *testing.T) {
		last := punchAt(models.PunchTypeIn, now.Add(-8*time.Hour))
		require.Equal(t, models.PunchTypeOut, inferPunchType(last, now))
	})

	t.Run(`IN старше суток не закрывается - снова приход`, func(t *testing.T) {
		last := punchAt(models.PunchTypeIn, now.Add(-25*time.Hour))
		require.Equal(t, models.PunchTypeIn, inferPunchType(last, now))
	})

	t.Run(`после OUT - приход`, func(t *testing.T) {
		last := punchAt(models.PunchTypeOut, now.Add(-time.Hour))
		require.Equal(t, models.PunchTypeIn, inferPunchType(last, now))
	})
}

func TestValidateSequence(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.Local)

	t.Run(`первая отметка прихода`, func(t *testing.T) {
		require.Nil(t, validateSequence(nil, models.PunchTypeIn, now))
	})

	t.Run(`минимальный интервал между отметками`, func(t *testing.T) {
		last := punchAt(models.PunchTypeIn, now.Add(-90*time.Second))
		err := validateSequence(last, models.PunchTypeOut, now)
		require.NotNil(t, err)
		require.Equal(t, models.ErrCodePunchTooSoon, models.GetErrorCode(err))

		last = punchAt(models.PunchTypeIn, now.Add(-130*time.Second))
		require.Nil(t, validateSequence(last, models.PunchTypeOut, now))
	})

	t.Run(`отметка раньше предыдущей`, func(t *testing.T) {
		last := punchAt(models.PunchTypeIn, now.Add(time.Hour))
		err := validateSequence(last, models.PunchTypeOut, now)
		require.Equal(t, models.ErrCodeBadSequence, models.GetErrorCode(err))
	})

	t.Run(`уход без прихода`, func(t *testing.T) {
		err := validateSequence(nil, models.PunchTypeOut, now)
		require.Equal(t, models.ErrCodeMissingPunchIn, models.GetErrorCode(err))

		last := punchAt(models.PunchTypeOut, now.Add(-time.Hour))
		err = validateSequence(last, models.PunchTypeOut, now)
		require.Equal(t, models.ErrCodeMissingPunchIn, models.GetErrorCode(err))
	})

	t.Run(`уход по устаревшему приходу`, func(t *testing.T) {
		last := punchAt(models.PunchTypeIn, now.Add(-25*time.Hour))
		err := validateSequence(last, models.PunchTypeOut, now)
		require.Equal(t, models.ErrCodeStalePunchIn, models.GetErrorCode(err))
	})

	t.Run(`повторный приход при открытой сессии`, func(t *testing.T) {
		last := punchAt(models.PunchTypeIn, now.Add(-time.Hour))
		err := validateSequence(last, models.PunchTypeIn, now)
		require.Equal(t, models.ErrCodeAlreadyPunched, models.GetErrorCode(err))
	})

	t.Run(`приход после устаревшего IN допустим`, func(t *testing.T) {
		last := punchAt(models.PunchTypeIn, now.Add(-25*time.Hour))
		require.Nil(t, validateSequence(last, models.PunchTypeIn, now))
	})

	t.Run(`уход закрывает сессию в пределах суток`, func(t *testing.T) {
		last := punchAt(models.PunchTypeIn, now.Add(-23*time.Hour))
		require.Nil(t, validateSequence(last, models.PunchTypeOut, now))
	})
}

func TestCheckPunchWindow(t *testing.T) {
	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.Local)
	shift := &dbmodels.Shift{
		StartTime:           "09:00",
		EndTime:             "18:00",
		RestrictPunchWindow: true,
		PunchWindowMinutes:  60,
	}

	t.Run(`окно не ограничено`, func(t *testing.T) {
		free := &dbmodels.Shift{StartTime: "09:00", EndTime: "18:00"}
		require.Nil(t, checkPunchWindow(free, nil, models.PunchTypeIn, day.Add(3*time.Hour)))
		require.Nil(t, checkPunchWindow(nil, nil, models.PunchTypeIn, day.Add(3*time.Hour)))
	})

	t.Run(`приход в окне и вне окна`, func(t *testing.T) {
		require.Nil(t, checkPunchWindow(shift, nil, models.PunchTypeIn, day.Add(8*time.Hour+30*time.Minute)))
		err := checkPunchWindow(shift, nil, models.PunchTypeIn, day.Add(7*time.Hour))
		require.Equal(t, models.ErrCodePunchWindow, models.GetErrorCode(err))
	})

	t.Run(`уход в окне вокруг окончания смены`, func(t *testing.T) {
		last := punchAt(models.PunchTypeIn, day.Add(9*time.Hour))
		require.Nil(t, checkPunchWindow(shift, last, models.PunchTypeOut, day.Add(18*time.Hour+45*time.Minute)))
		err := checkPunchWindow(shift, last, models.PunchTypeOut, day.Add(21*time.Hour))
		require.Equal(t, models.ErrCodePunchWindow, models.GetErrorCode(err))
	})

	t.Run(`уход ночной смены на следующий день`, func(t *testing.T) {
		night := &dbmodels.Shift{
			StartTime:           "22:00",
			EndTime:             "06:00",
			IsNightShift:        true,
			RestrictPunchWindow: true,
			PunchWindowMinutes:  60,
		}
		// сессия открыта 28-го вечером, уход 29-го утром
		last := punchAt(models.PunchTypeIn, day.Add(22*time.Hour))
		out := day.AddDate(0, 0, 1).Add(5 * time.Hour) // 29-е 05:00
		require.Nil(t, checkPunchWindow(night, last, models.PunchTypeOut, out))

		lateOut := day.AddDate(0, 0, 1).Add(9 * time.Hour)
		err := checkPunchWindow(night, last, models.PunchTypeOut, lateOut)
		require.Equal(t, models.ErrCodePunchWindow, models.GetErrorCode(err))
	})
}
