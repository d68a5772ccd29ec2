package initializers

import (
	"context"
	"staff-hub-backend/config"
	"staff-hub-backend/fiberlog"
	approvalrequesthandler "staff-hub-backend/lib/approval/request"
	approvalworkflowhandler "staff-hub-backend/lib/approval/workflow"
	daycloseworker "staff-hub-backend/lib/attendance/day-close-worker"
	attendancepunchhandler "staff-hub-backend/lib/attendance/punch"
	attendancerebuildhandler "staff-hub-backend/lib/attendance/rebuild"
	authhandler "staff-hub-backend/lib/auth"
	moduleentityprovider "staff-hub-backend/lib/dicts/module-entity"
	employeehandler "staff-hub-backend/lib/employee"
	xlsexport "staff-hub-backend/lib/export/xls"
	notificationhandler "staff-hub-backend/lib/notification"

	log "github.com/sirupsen/logrus"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitSmtp()
	authhandler.NewHandler()
	moduleentityprovider.NewHandler()
	notificationhandler.NewHandler()
	approvalworkflowhandler.NewHandler()
	approvalrequesthandler.NewHandler()
	attendancerebuildhandler.NewHandler()
	attendancepunchhandler.NewHandler()
	xlsexport.NewHandler()
	employeehandler.RegisterApprovalSync()
	if err := moduleentityprovider.Instance.SeedDefaults(); err != nil {
		log.WithError(err).Error("ошибка наполнения справочника типов сущностей")
	}
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Задача закрытия прошедших суток посещаемости
	daycloseworker.NewWorker().Run(ctx)
}
