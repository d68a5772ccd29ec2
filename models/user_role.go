package models

type UserRole string

const (
	CompanyAdminRole   UserRole = "COMPANY_ADMIN_ROLE"
	CompanyUserRole    UserRole = "COMPANY_USER_ROLE"
	UserRoleSuperAdmin UserRole = "SUPER_ADMIN"
)

var roleHumanName = map[UserRole]string{
	CompanyAdminRole:   "Администратор",
	CompanyUserRole:    "Пользователь",
	UserRoleSuperAdmin: "Суперадмин системы",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsCompanyAdmin() bool {
	return r == CompanyAdminRole
}

const SystemUser = "Система"

// Actor - идентичность пользователя, выполняющего действие.
// RoleID считается уже проверенным на периметре (jwt)
type Actor struct {
	UserID string
	RoleID string
}
