package approvalworkflowhandler

import (
	"testing"

	approvalworkflowstore "staff-hub-backend/lib/approval/workflow/store"
	"staff-hub-backend/models"
	approvalapimodels "staff-hub-backend/models/api/approval"
	dbmodels "staff-hub-backend/models/db"

	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	approvalworkflowstore.Provider
	active []dbmodels.ApprovalWorkflow
}

func (s fakeStore) ListActive(companyID, moduleEntityID string) ([]dbmodels.ApprovalWorkflow, error) {
	return s.active, nil
}

func salaryRule(op models.RuleOperator, value string) dbmodels.ApprovalRule {
	return dbmodels.ApprovalRule{
		FieldName: "salary",
		Operator:  op,
		Value:     value,
	}
}

func TestCheckApprovalRequired(t *testing.T) {
	newHandler := func(active ...dbmodels.ApprovalWorkflow) Provider {
		return impl{store: fakeStore{active: active}}
	}
	snapshot := map[string]interface{}{
		"salary": 50000,
	}

	t.Run(`нет активных цепочек - согласование не требуется`, func(t *testing.T) {
		workflow, err := newHandler().CheckApprovalRequired("c1", "m1", snapshot)
		require.Nil(t, err)
		require.Nil(t, workflow)
	})

	t.Run(`ни одна цепочка не подошла`, func(t *testing.T) {
		workflow, err := newHandler(
			dbmodels.ApprovalWorkflow{
				WorkflowName: "крупные суммы",
				Rules:        []dbmodels.ApprovalRule{salaryRule(models.RuleOpGt, "100000")},
			},
		).CheckApprovalRequired("c1", "m1", snapshot)
		require.Nil(t, err)
		require.Nil(t, workflow)
	})

	t.Run(`первая подошедшая по приоритету выигрывает`, func(t *testing.T) {
		workflow, err := newHandler(
			dbmodels.ApprovalWorkflow{
				WorkflowName: "крупные суммы",
				Priority:     1,
				Rules:        []dbmodels.ApprovalRule{salaryRule(models.RuleOpGt, "100000")},
			},
			dbmodels.ApprovalWorkflow{
				WorkflowName: "средние суммы",
				Priority:     2,
				Rules:        []dbmodels.ApprovalRule{salaryRule(models.RuleOpGt, "40000")},
			},
			dbmodels.ApprovalWorkflow{
				WorkflowName: "любые суммы",
				Priority:     3,
				Rules:        []dbmodels.ApprovalRule{salaryRule(models.RuleOpGte, "0")},
			},
		).CheckApprovalRequired("c1", "m1", snapshot)
		require.Nil(t, err)
		require.NotNil(t, workflow)
		require.Equal(t, "средние суммы", workflow.WorkflowName)
	})

	t.Run(`цепочка без правил подходит всегда`, func(t *testing.T) {
		workflow, err := newHandler(
			dbmodels.ApprovalWorkflow{
				WorkflowName: "не подходит",
				Priority:     1,
				Rules:        []dbmodels.ApprovalRule{salaryRule(models.RuleOpGt, "100000")},
			},
			dbmodels.ApprovalWorkflow{
				WorkflowName: "по умолчанию",
				Priority:     2,
			},
		).CheckApprovalRequired("c1", "m1", snapshot)
		require.Nil(t, err)
		require.NotNil(t, workflow)
		require.Equal(t, "по умолчанию", workflow.WorkflowName)
	})
}

func TestWorkflowDataValidate(t *testing.T) {
	level := func(seq int) approvalapimodels.ApprovalLevelData {
		return approvalapimodels.ApprovalLevelData{
			LevelSequence: seq,
			ApproverType:  models.ApproverTypeUser,
			ApproverID:    "user-1",
		}
	}
	base := approvalapimodels.WorkflowData{
		ModuleEntityID: "m1",
		WorkflowName:   "цепочка",
	}

	t.Run(`уровни нумеруются подряд с единицы`, func(t *testing.T) {
		data := base
		data.Levels = []approvalapimodels.ApprovalLevelData{level(1), level(2), level(3)}
		require.Nil(t, data.Validate())

		data.Levels = []approvalapimodels.ApprovalLevelData{level(2), level(3)}
		require.NotNil(t, data.Validate())

		data.Levels = []approvalapimodels.ApprovalLevelData{level(1), level(3)}
		require.NotNil(t, data.Validate())

		data.Levels = []approvalapimodels.ApprovalLevelData{level(1), level(1)}
		require.NotNil(t, data.Validate())
	})
}
