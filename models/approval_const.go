package models

type RuleOperator string

const (
	RuleOpGt       RuleOperator = ">"
	RuleOpLt       RuleOperator = "<"
	RuleOpGte      RuleOperator = ">="
	RuleOpLte      RuleOperator = "<="
	RuleOpEq       RuleOperator = "="
	RuleOpNeq      RuleOperator = "!="
	RuleOpContains RuleOperator = "CONTAINS"
)

type LogicalOperator string

const (
	LogicalAnd LogicalOperator = "AND"
	LogicalOr  LogicalOperator = "OR"
)

type ApproverType string

const (
	ApproverTypeUser ApproverType = "USER"
	ApproverTypeRole ApproverType = "ROLE"
)

type ApprovalStatus string

const (
	ApprovalStatusPending   ApprovalStatus = "PENDING"
	ApprovalStatusApproved  ApprovalStatus = "APPROVED"
	ApprovalStatusRejected  ApprovalStatus = "REJECTED"
	ApprovalStatusCancelled ApprovalStatus = "CANCELLED"
)

var approvalStatusHumanName = map[ApprovalStatus]string{
	ApprovalStatusPending:   "На согласовании",
	ApprovalStatusApproved:  "Согласовано",
	ApprovalStatusRejected:  "Отклонено",
	ApprovalStatusCancelled: "Отменено",
}

func (s ApprovalStatus) ToHuman() string {
	if human, exist := approvalStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s ApprovalStatus) IsTerminal() bool {
	return s == ApprovalStatusApproved || s == ApprovalStatusRejected || s == ApprovalStatusCancelled
}

type ApprovalAction string

const (
	ApprovalActionApprove ApprovalAction = "APPROVE"
	ApprovalActionReject  ApprovalAction = "REJECT"
)

func (a ApprovalAction) IsValid() bool {
	return a == ApprovalActionApprove || a == ApprovalActionReject
}

type WorkflowStatus string

const (
	WorkflowStatusActive   WorkflowStatus = "ACTIVE"
	WorkflowStatusInactive WorkflowStatus = "INACTIVE"
)
