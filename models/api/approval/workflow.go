package approvalapimodels

import (
	"staff-hub-backend/models"
	apimodels "staff-hub-backend/models/api"
	dbmodels "staff-hub-backend/models/db"

	"github.com/pkg/errors"
)

type ApprovalRuleData struct {
	FieldName       string                 `json:"field_name"`
	Operator        models.RuleOperator    `json:"operator"`
	Value           string                 `json:"value"`
	LogicalOperator models.LogicalOperator `json:"logical_operator"` // связка со следующим правилом, по умолчанию AND
	Sequence        int                    `json:"sequence"`
}

func (r ApprovalRuleData) Validate() error {
	if r.FieldName == "" {
		return errors.New("не указано поле правила")
	}
	if r.Operator == "" {
		return errors.New("не указан оператор правила")
	}
	return nil
}

type ApprovalLevelData struct {
	LevelSequence int                 `json:"level_sequence"`
	ApproverType  models.ApproverType `json:"approver_type"`
	ApproverID    string              `json:"approver_id"`
}

func (l ApprovalLevelData) Validate() error {
	if l.ApproverType != models.ApproverTypeUser && l.ApproverType != models.ApproverTypeRole {
		return errors.Errorf("недопустимый тип согласующего: %v", l.ApproverType)
	}
	if l.ApproverID == "" {
		return errors.New("не указан согласующий")
	}
	return nil
}

type WorkflowData struct {
	ModuleEntityID string              `json:"module_entity_id"`
	WorkflowName   string              `json:"workflow_name"`
	Priority       int                 `json:"priority"`
	Rules          []ApprovalRuleData  `json:"rules"`
	Levels         []ApprovalLevelData `json:"levels"`
}

func (d WorkflowData) Validate() error {
	if d.ModuleEntityID == "" {
		return errors.New("не указан тип сущности")
	}
	if d.WorkflowName == "" {
		return errors.New("не указано название цепочки")
	}
	if len(d.Levels) == 0 {
		return errors.New("требуется хотя бы один уровень согласования")
	}
	for _, rule := range d.Rules {
		if err := rule.Validate(); err != nil {
			return err
		}
	}
	// уровни обязаны идти подряд начиная с 1
	seen := map[int]bool{}
	for _, level := range d.Levels {
		if err := level.Validate(); err != nil {
			return err
		}
		if seen[level.LevelSequence] {
			return errors.Errorf("уровень %v указан дважды", level.LevelSequence)
		}
		seen[level.LevelSequence] = true
	}
	for i := 1; i <= len(d.Levels); i++ {
		if !seen[i] {
			return errors.Errorf("пропущен уровень %v", i)
		}
	}
	return nil
}

type WorkflowView struct {
	ID             string                `json:"id"`
	ModuleEntityID string                `json:"module_entity_id"`
	ModuleEntity   string                `json:"module_entity,omitempty"`
	WorkflowName   string                `json:"workflow_name"`
	Priority       int                   `json:"priority"`
	Status         models.WorkflowStatus `json:"status"`
	Rules          []ApprovalRuleData    `json:"rules"`
	Levels         []ApprovalLevelData   `json:"levels"`
}

func WorkflowConvert(rec dbmodels.ApprovalWorkflow) WorkflowView {
	view := WorkflowView{
		ID:             rec.ID,
		ModuleEntityID: rec.ModuleEntityID,
		WorkflowName:   rec.WorkflowName,
		Priority:       rec.Priority,
		Status:         rec.Status,
		Rules:          make([]ApprovalRuleData, 0, len(rec.Rules)),
		Levels:         make([]ApprovalLevelData, 0, len(rec.Levels)),
	}
	if rec.ModuleEntity != nil {
		view.ModuleEntity = rec.ModuleEntity.Name
	}
	for _, rule := range rec.Rules {
		view.Rules = append(view.Rules, ApprovalRuleData{
			FieldName:       rule.FieldName,
			Operator:        rule.Operator,
			Value:           rule.Value,
			LogicalOperator: rule.LogicalOperator,
			Sequence:        rule.Sequence,
		})
	}
	for _, level := range rec.Levels {
		view.Levels = append(view.Levels, ApprovalLevelData{
			LevelSequence: level.LevelSequence,
			ApproverType:  level.ApproverType,
			ApproverID:    level.ApproverID,
		})
	}
	return view
}

type WorkflowFilter struct {
	apimodels.Pagination
	ModuleEntityID string `json:"module_entity_id"`
}
