package dict

import (
	"staff-hub-backend/controllers"
	moduleentityprovider "staff-hub-backend/lib/dicts/module-entity"
	apimodels "staff-hub-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type moduleEntityApiController struct {
	controllers.BaseAPIController
}

func InitModuleEntityDictApiRouters(app *fiber.App) {
	controller := moduleEntityApiController{}
	app.Route("module_entities", func(router fiber.Router) {
		router.Get("", controller.list)
	})
}

// @Summary Справочник типов сущностей
// @Tags Справочники
// @Description Типы сущностей, доступные для согласования
// @Param   Authorization		header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/module_entities [get]
func (c *moduleEntityApiController) list(ctx *fiber.Ctx) error {
	list, err := moduleentityprovider.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения справочника типов сущностей")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
