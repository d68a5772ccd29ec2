package employeehandler

import (
	approvalsync "staff-hub-backend/lib/approval/sync"
	employeestore "staff-hub-backend/lib/employee/store"
	dbmodels "staff-hub-backend/models/db"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var outcomeStatuses = map[approvalsync.Outcome]dbmodels.EmployeeStatus{
	approvalsync.OutcomePendingApproval: dbmodels.EmployeeStatusPendingApproval,
	approvalsync.OutcomeApproved:        dbmodels.EmployeeStatusActive,
	approvalsync.OutcomeRejected:        dbmodels.EmployeeStatusRejected,
}

// RegisterApprovalSync привязывает статусы сотрудника к итогам согласования.
// Вызывается на старте сервиса
func RegisterApprovalSync() {
	approvalsync.Register(dbmodels.ModuleEntityEmployee, syncStatus)
}

func syncStatus(tx *gorm.DB, companyID, entityID string, outcome approvalsync.Outcome) error {
	status, exist := outcomeStatuses[outcome]
	if !exist {
		log.
			WithField("outcome", outcome).
			Warn("неизвестный итог согласования сотрудника")
		return nil
	}
	updMap := map[string]interface{}{
		"Status": status,
	}
	return employeestore.NewInstance(tx).Update(companyID, entityID, updMap)
}
