package approvalsync

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Outcome - итог согласования в терминах владеющей сущности
type Outcome string

const (
	OutcomePendingApproval Outcome = "PENDING_APPROVAL"
	OutcomeApproved        Outcome = "APPROVED"
	OutcomeRejected        Outcome = "REJECTED"
)

// SyncFunc переводит итог согласования в статусы конкретной сущности.
// Вызывается в той же транзакции, что и смена статуса заявки
type SyncFunc func(tx *gorm.DB, companyID, entityID string, outcome Outcome) error

var registry = map[string]SyncFunc{}

// Register регистрирует стратегию синхронизации для кода типа сущности.
// Вызывается на старте сервиса, до обработки запросов
func Register(moduleEntityCode string, fn SyncFunc) {
	registry[moduleEntityCode] = fn
}

// Apply применяет стратегию, если она зарегистрирована.
// Отсутствие стратегии не ошибка: статус сущности обслуживает вызывающая сторона
func Apply(tx *gorm.DB, moduleEntityCode, companyID, entityID string, outcome Outcome) error {
	fn, exist := registry[moduleEntityCode]
	if !exist {
		log.
			WithField("module_entity", moduleEntityCode).
			Debug("стратегия синхронизации статуса не зарегистрирована")
		return nil
	}
	return fn(tx, companyID, entityID, outcome)
}
