package dbmodels

import (
	"fmt"
	"staff-hub-backend/models"
	"time"
)

type Role struct {
	BaseCompanyModel
	Name     string `gorm:"type:varchar(150)"`
	Code     string `gorm:"type:varchar(50)"`
	IsActive bool
}

type CompanyUser struct {
	BaseCompanyModel
	Password    string `gorm:"type:varchar(128)"`
	FirstName   string `gorm:"type:varchar(150)"`
	LastName    string `gorm:"type:varchar(150)"`
	Email       string `gorm:"type:varchar(255)"`
	PhoneNumber string `gorm:"type:varchar(15)"`
	IsActive    bool
	RoleID      *string `gorm:"type:varchar(36)"`
	Role        *Role
	SystemRole  models.UserRole `gorm:"type:varchar(50)"`
	LastLogin   time.Time
}

func (r CompanyUser) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}

func (r CompanyUser) GetRoleID() string {
	if r.RoleID == nil {
		return ""
	}
	return *r.RoleID
}
