package db

import (
	dbmodels "staff-hub-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	migrations := []struct {
		name  string
		model interface{}
	}{
		{"Company", &dbmodels.Company{}},
		{"Role", &dbmodels.Role{}},
		{"CompanyUser", &dbmodels.CompanyUser{}},
		{"ModuleEntity", &dbmodels.ModuleEntity{}},
		{"ApprovalWorkflow", &dbmodels.ApprovalWorkflow{}},
		{"ApprovalRule", &dbmodels.ApprovalRule{}},
		{"ApprovalLevel", &dbmodels.ApprovalLevel{}},
		{"ApprovalRequest", &dbmodels.ApprovalRequest{}},
		{"ApprovalLog", &dbmodels.ApprovalLog{}},
		{"Shift", &dbmodels.Shift{}},
		{"EmployeeShift", &dbmodels.EmployeeShift{}},
		{"AttendanceTemplate", &dbmodels.AttendanceTemplate{}},
		{"HolidayTemplate", &dbmodels.HolidayTemplate{}},
		{"HolidayTransaction", &dbmodels.HolidayTransaction{}},
		{"WeeklyOffTemplate", &dbmodels.WeeklyOffTemplate{}},
		{"WeeklyOffTemplateDay", &dbmodels.WeeklyOffTemplateDay{}},
		{"Employee", &dbmodels.Employee{}},
		{"LeaveRequest", &dbmodels.LeaveRequest{}},
		{"AttendancePunch", &dbmodels.AttendancePunch{}},
		{"AttendanceDay", &dbmodels.AttendanceDay{}},
	}
	for _, m := range migrations {
		if err := DB.AutoMigrate(m.model); err != nil {
			return errors.Wrapf(err, "ошибка создания структуры %s", m.name)
		}
	}
	log.Info("Миграция прошла успешно")
	return nil
}
