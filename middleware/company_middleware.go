package middleware

import (
	authutils "staff-hub-backend/lib/utils/auth-utils"
	"staff-hub-backend/models"
	apimodels "staff-hub-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

func GetUserCompany(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if company, exist := claims["company"]; exist {
		return company.(string)
	}
	return ""
}

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		return sub.(string)
	}
	return ""
}

func GetRoleID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if roleID, exist := claims["role_id"]; exist {
		if stringRoleID, ok := roleID.(string); ok {
			return stringRoleID
		}
	}
	return ""
}

func GetSystemRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}

// GetActor собирает идентичность пользователя из клеймов токена
func GetActor(ctx *fiber.Ctx) models.Actor {
	return models.Actor{
		UserID: GetUserID(ctx),
		RoleID: GetRoleID(ctx),
	}
}

func CompanyAdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if GetSystemRole(ctx) != models.CompanyAdminRole {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
		}
		return ctx.Next()
	}
}
