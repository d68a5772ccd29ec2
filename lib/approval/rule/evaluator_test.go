package approvalrule

import (
	"testing"

	"staff-hub-backend/models"
	dbmodels "staff-hub-backend/models/db"

	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Run(`числовые операторы`, func(t *testing.T) {
		require.True(t, Evaluate(50000, models.RuleOpGt, "40000"))
		require.False(t, Evaluate(50000, models.RuleOpLt, "40000"))
		require.True(t, Evaluate("50000", models.RuleOpGte, "50000"))
		require.True(t, Evaluate(float64(49999.5), models.RuleOpLte, "50000"))
		require.False(t, Evaluate(40000, models.RuleOpGt, "40000"))
	})

	t.Run(`числовой оператор с нечисловым значением даёт false`, func(t *testing.T) {
		require.False(t, Evaluate("менеджер", models.RuleOpGt, "40000"))
		require.False(t, Evaluate(50000, models.RuleOpGt, "много"))
		require.False(t, Evaluate(nil, models.RuleOpGt, "40000"))
	})

	t.Run(`нестрогое равенство`, func(t *testing.T) {
		require.True(t, Evaluate(100, models.RuleOpEq, "100"))
		require.True(t, Evaluate("100.0", models.RuleOpEq, "100"))
		require.True(t, Evaluate("отдел продаж", models.RuleOpEq, "отдел продаж"))
		require.False(t, Evaluate("отдел продаж", models.RuleOpEq, "склад"))
		require.True(t, Evaluate("склад", models.RuleOpNeq, "отдел продаж"))
		require.False(t, Evaluate(100, models.RuleOpNeq, "100.0"))
	})

	t.Run(`CONTAINS без учёта регистра`, func(t *testing.T) {
		require.True(t, Evaluate("Senior Manager", models.RuleOpContains, "manager"))
		require.True(t, Evaluate("ОТДЕЛ ПРОДАЖ", models.RuleOpContains, "продаж"))
		require.False(t, Evaluate("склад", models.RuleOpContains, "продаж"))
	})

	t.Run(`отсутствующее поле и неизвестный оператор`, func(t *testing.T) {
		require.False(t, Evaluate(nil, models.RuleOpContains, "x"))
		require.False(t, Evaluate(nil, models.RuleOpEq, "x"))
		require.False(t, Evaluate("x", models.RuleOperator("LIKE"), "x"))
	})
}

func TestFoldRules(t *testing.T) {
	rule := func(field string, op models.RuleOperator, value string, logical models.LogicalOperator) dbmodels.ApprovalRule {
		return dbmodels.ApprovalRule{
			FieldName:       field,
			Operator:        op,
			Value:           value,
			LogicalOperator: logical,
		}
	}
	snapshot := map[string]interface{}{
		"salary":     50000,
		"department": "склад",
		"grade":      3,
	}

	t.Run(`пустой список правил всегда истинен`, func(t *testing.T) {
		require.True(t, FoldRules(nil, snapshot))
		require.True(t, FoldRules([]dbmodels.ApprovalRule{}, snapshot))
	})

	t.Run(`одно правило`, func(t *testing.T) {
		require.True(t, FoldRules([]dbmodels.ApprovalRule{
			rule("salary", models.RuleOpGt, "40000", ""),
		}, snapshot))
		require.False(t, FoldRules([]dbmodels.ApprovalRule{
			rule("salary", models.RuleOpLt, "40000", ""),
		}, snapshot))
	})

	t.Run(`свёртка слева направо без приоритета операторов`, func(t *testing.T) {
		// (false OR true) AND true = true
		rules := []dbmodels.ApprovalRule{
			rule("salary", models.RuleOpLt, "40000", models.LogicalOr),
			rule("department", models.RuleOpEq, "склад", models.LogicalAnd),
			rule("grade", models.RuleOpGte, "3", ""),
		}
		require.True(t, FoldRules(rules, snapshot))

		// false OR (true AND false): при приоритете AND было бы false,
		// свёртка слева направо даёт (false OR true) AND false = false
		rules = []dbmodels.ApprovalRule{
			rule("salary", models.RuleOpLt, "40000", models.LogicalOr),
			rule("department", models.RuleOpEq, "склад", models.LogicalAnd),
			rule("grade", models.RuleOpGt, "5", ""),
		}
		require.False(t, FoldRules(rules, snapshot))
	})

	t.Run(`не заданный связывающий оператор трактуется как AND`, func(t *testing.T) {
		rules := []dbmodels.ApprovalRule{
			rule("salary", models.RuleOpGt, "40000", ""),
			rule("department", models.RuleOpEq, "офис", ""),
		}
		require.False(t, FoldRules(rules, snapshot))
	})

	t.Run(`правило по отсутствующему полю деградирует в false`, func(t *testing.T) {
		rules := []dbmodels.ApprovalRule{
			rule("missing_field", models.RuleOpGt, "1", models.LogicalOr),
			rule("salary", models.RuleOpGt, "40000", ""),
		}
		require.True(t, FoldRules(rules, snapshot))
	})
}
