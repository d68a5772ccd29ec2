package daycloseworker

import (
	"context"
	"staff-hub-backend/config"
	"staff-hub-backend/db"
	attendancerebuildhandler "staff-hub-backend/lib/attendance/rebuild"
	companystore "staff-hub-backend/lib/company/store"
	employeestore "staff-hub-backend/lib/employee/store"
	baseworker "staff-hub-backend/lib/utils/base-worker"
	"staff-hub-backend/lib/utils/helpers"
	"time"
)

// Worker закрывает прошедшие сутки: пересобирает вчерашний день всем
// активным сотрудникам, чтобы дни без отметок получили статус
type Worker struct {
	base          *baseworker.BaseImpl
	companyStore  companystore.Provider
	employeeStore employeestore.Provider
}

func NewWorker() *Worker {
	conf := config.Conf.Attendance
	return &Worker{
		base: baseworker.NewInstance(
			"attendance-day-close",
			time.Duration(conf.DayCloseFirstDelayInSec)*time.Second,
			time.Duration(conf.DayCloseIntervalInSec)*time.Second,
		),
		companyStore:  companystore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
	}
}

func (w *Worker) Run(ctx context.Context) {
	w.base.Run(ctx, w.closeDay)
}

func (w *Worker) closeDay(ctx context.Context) {
	logger := w.base.GetLogger()
	yesterday := helpers.TruncateToDay(time.Now()).AddDate(0, 0, -1)
	companies, err := w.companyStore.ListActive()
	if err != nil {
		logger.WithError(err).Error("ошибка получения списка компаний")
		return
	}
	for _, company := range companies {
		if helpers.IsContextDone(ctx) {
			return
		}
		employees, err := w.employeeStore.ListActive(company.ID)
		if err != nil {
			logger.
				WithField("company_id", company.ID).
				WithError(err).
				Error("ошибка получения списка сотрудников")
			continue
		}
		for _, employee := range employees {
			if helpers.IsContextDone(ctx) {
				return
			}
			err = attendancerebuildhandler.Instance.RebuildDay(company.ID, employee.ID, yesterday)
			if err != nil {
				logger.
					WithField("company_id", company.ID).
					WithField("employee_id", employee.ID).
					WithError(err).
					Error("ошибка закрытия дня сотрудника")
			}
		}
	}
}
