package approvalrule

import (
	"fmt"
	"strconv"
	"strings"

	"staff-hub-backend/models"
	dbmodels "staff-hub-backend/models/db"
)

// Evaluate проверяет одно правило против значения поля записи.
// Функция тотальная: некорректный оператор или неразбираемое число
// дают false, ошибка конфигурации правила не должна ронять маршрутизацию
func Evaluate(recordValue interface{}, operator models.RuleOperator, ruleValue string) bool {
	switch operator {
	case models.RuleOpGt, models.RuleOpLt, models.RuleOpGte, models.RuleOpLte:
		left, okLeft := toFloat(recordValue)
		right, okRight := toFloat(ruleValue)
		if !okLeft || !okRight {
			return false
		}
		switch operator {
		case models.RuleOpGt:
			return left > right
		case models.RuleOpLt:
			return left < right
		case models.RuleOpGte:
			return left >= right
		default:
			return left <= right
		}
	case models.RuleOpEq:
		return looseEqual(recordValue, ruleValue)
	case models.RuleOpNeq:
		return !looseEqual(recordValue, ruleValue)
	case models.RuleOpContains:
		return strings.Contains(strings.ToLower(toString(recordValue)), strings.ToLower(ruleValue))
	default:
		return false
	}
}

// FoldRules сворачивает цепочку правил слева направо.
// Результат пары i связывается с результатом правила i+1 оператором,
// хранящимся у правила i; скобок и приоритета операторов нет намеренно.
// Список должен быть отсортирован по sequence
func FoldRules(rules []dbmodels.ApprovalRule, snapshot map[string]interface{}) bool {
	if len(rules) == 0 {
		return true
	}
	acc := evalRule(rules[0], snapshot)
	for i := 1; i < len(rules); i++ {
		current := evalRule(rules[i], snapshot)
		switch rules[i-1].LogicalOperator {
		case models.LogicalOr:
			acc = acc || current
		default: // AND, в тч не заданный или неизвестный оператор
			acc = acc && current
		}
	}
	return acc
}

func evalRule(rule dbmodels.ApprovalRule, snapshot map[string]interface{}) bool {
	return Evaluate(snapshot[rule.FieldName], rule.Operator, rule.Value)
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		parsed, err := strconv.ParseFloat(toString(value), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
}

func toString(value interface{}) string {
	if value == nil {
		return ""
	}
	return fmt.Sprintf("%v", value)
}

// looseEqual - нестрогое сравнение: числа сравниваются как числа,
// всё остальное как строки
func looseEqual(recordValue interface{}, ruleValue string) bool {
	left, okLeft := toFloat(recordValue)
	right, okRight := toFloat(ruleValue)
	if okLeft && okRight {
		return left == right
	}
	return toString(recordValue) == ruleValue
}
