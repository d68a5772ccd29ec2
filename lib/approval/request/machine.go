package approvalrequesthandler

import (
	"staff-hub-backend/models"
	dbmodels "staff-hub-backend/models/db"
)

// findLevel ищет уровень по порядковому номеру.
// Список уровней отсортирован по level_sequence
func findLevel(levels []dbmodels.ApprovalLevel, sequence int) *dbmodels.ApprovalLevel {
	for idx := range levels {
		if levels[idx].LevelSequence == sequence {
			return &levels[idx]
		}
	}
	return nil
}

// authorizeLevel проверяет право пользователя решать текущий уровень
func authorizeLevel(level dbmodels.ApprovalLevel, actor models.Actor) bool {
	switch level.ApproverType {
	case models.ApproverTypeUser:
		return actor.UserID != "" && level.ApproverID == actor.UserID
	case models.ApproverTypeRole:
		return actor.RoleID != "" && level.ApproverID == actor.RoleID
	default:
		return false
	}
}

type decision struct {
	Status    models.ApprovalStatus
	NextLevel *dbmodels.ApprovalLevel
}

// decide вычисляет переход заявки по решению текущего уровня.
// REJECT терминален, APPROVE двигает на следующий уровень,
// с последнего уровня заявка переходит в APPROVED
func decide(levels []dbmodels.ApprovalLevel, currentSequence int, action models.ApprovalAction) decision {
	if action == models.ApprovalActionReject {
		return decision{Status: models.ApprovalStatusRejected}
	}
	next := findLevel(levels, currentSequence+1)
	if next != nil {
		return decision{
			Status:    models.ApprovalStatusPending,
			NextLevel: next,
		}
	}
	return decision{Status: models.ApprovalStatusApproved}
}
