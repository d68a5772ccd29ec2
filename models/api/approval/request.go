package approvalapimodels

import (
	"staff-hub-backend/models"
	apimodels "staff-hub-backend/models/api"
	dbmodels "staff-hub-backend/models/db"
	"time"

	"github.com/pkg/errors"
)

// CheckData - снимок записи для подбора цепочки согласования
type CheckData struct {
	ModuleEntityCode string                 `json:"module_entity_code"`
	EntityID         string                 `json:"entity_id"`
	Snapshot         map[string]interface{} `json:"snapshot"`
}

func (d CheckData) Validate() error {
	if d.ModuleEntityCode == "" {
		return errors.New("не указан тип сущности")
	}
	if d.EntityID == "" {
		return errors.New("не указана запись")
	}
	return nil
}

type ProcessActionData struct {
	RequestID      string                `json:"request_id"` // либо request_id, либо пара entity_id + module_entity_id
	EntityID       string                `json:"entity_id"`
	ModuleEntityID string                `json:"module_entity_id"`
	Action         models.ApprovalAction `json:"action"`
	Comment        string                `json:"comment"`
}

func (d ProcessActionData) Validate() error {
	if !d.Action.IsValid() {
		return errors.Errorf("недопустимое действие: %v", d.Action)
	}
	if d.RequestID == "" && (d.EntityID == "" || d.ModuleEntityID == "") {
		return errors.New("не указана заявка на согласование")
	}
	return nil
}

type ProcessActionResult struct {
	Status    models.ApprovalStatus `json:"status"`
	NextLevel *ApprovalLevelData    `json:"next_level,omitempty"`
}

type RequestView struct {
	ID                   string                `json:"id"`
	EntityID             string                `json:"entity_id"`
	ModuleEntityID       string                `json:"module_entity_id"`
	ModuleEntity         string                `json:"module_entity,omitempty"`
	WorkflowID           string                `json:"workflow_id"`
	WorkflowName         string                `json:"workflow_name,omitempty"`
	CurrentLevelSequence int                   `json:"current_level_sequence"`
	Status               models.ApprovalStatus `json:"status"`
	StatusName           string                `json:"status_name"`
	CreatedAt            time.Time             `json:"created_at"`
	Logs                 []LogView             `json:"logs,omitempty"`
}

type LogView struct {
	UserID        string                `json:"user_id"`
	UserName      string                `json:"user_name,omitempty"`
	Action        models.ApprovalAction `json:"action"`
	Comment       string                `json:"comment,omitempty"`
	LevelSequence int                   `json:"level_sequence"`
	CreatedAt     time.Time             `json:"created_at"`
}

func RequestConvert(rec dbmodels.ApprovalRequest) RequestView {
	view := RequestView{
		ID:                   rec.ID,
		EntityID:             rec.EntityID,
		ModuleEntityID:       rec.ModuleEntityID,
		WorkflowID:           rec.WorkflowID,
		CurrentLevelSequence: rec.CurrentLevelSequence,
		Status:               rec.Status,
		StatusName:           rec.Status.ToHuman(),
		CreatedAt:            rec.CreatedAt,
	}
	if rec.ModuleEntity != nil {
		view.ModuleEntity = rec.ModuleEntity.Name
	}
	if rec.Workflow != nil {
		view.WorkflowName = rec.Workflow.WorkflowName
	}
	for _, logRec := range rec.Logs {
		logView := LogView{
			UserID:        logRec.UserID,
			Action:        logRec.Action,
			Comment:       logRec.Comment,
			LevelSequence: logRec.LevelSequence,
			CreatedAt:     logRec.CreatedAt,
		}
		if logRec.User != nil {
			logView.UserName = logRec.User.GetFullName()
		}
		view.Logs = append(view.Logs, logView)
	}
	return view
}

type RequestFilter struct {
	apimodels.Pagination
	Status         models.ApprovalStatus `json:"status"`
	ModuleEntityID string                `json:"module_entity_id"`
}
