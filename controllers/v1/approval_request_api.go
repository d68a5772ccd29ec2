package apiv1

import (
	"staff-hub-backend/controllers"
	approvalrequesthandler "staff-hub-backend/lib/approval/request"
	"staff-hub-backend/middleware"
	apimodels "staff-hub-backend/models/api"
	approvalapimodels "staff-hub-backend/models/api/approval"

	"github.com/gofiber/fiber/v2"
)

type approvalRequestApiController struct {
	controllers.BaseAPIController
}

func InitApprovalRequestApiRouters(app *fiber.App) {
	controller := approvalRequestApiController{}
	app.Route("approval_requests", func(router fiber.Router) {
		router.Post("check", controller.check)
		router.Post("action", controller.processAction)
		router.Post("cancel", controller.cancel)
		router.Post("list", controller.list)
		router.Get(":id", controller.get)
	})
}

// @Summary Проверка необходимости согласования
// @Tags Заявки на согласование
// @Description Подбор цепочки по снимку записи и открытие заявки
// @Param   Authorization		header	string						true	"Authorization token"
// @Param	body 				body	approvalapimodels.CheckData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/approval_requests/check [post]
func (c *approvalRequestApiController) check(ctx *fiber.Ctx) error {
	var payload approvalapimodels.CheckData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	view, err := approvalrequesthandler.Instance.CheckAndInitiate(companyID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка открытия заявки на согласование")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Решение по заявке
// @Tags Заявки на согласование
// @Description Согласование или отклонение текущего уровня заявки
// @Param   Authorization		header	string								true	"Authorization token"
// @Param	body 				body	approvalapimodels.ProcessActionData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/approval_requests/action [post]
func (c *approvalRequestApiController) processAction(ctx *fiber.Ctx) error {
	var payload approvalapimodels.ProcessActionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	actor := middleware.GetActor(ctx)
	result, err := approvalrequesthandler.Instance.ProcessAction(companyID, actor, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обработки решения по заявке")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Отмена заявки
// @Tags Заявки на согласование
// @Description Снятие заявки с согласования владеющим модулем
// @Param   Authorization		header	string								true	"Authorization token"
// @Param	body 				body	approvalapimodels.ProcessActionData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/approval_requests/cancel [post]
func (c *approvalRequestApiController) cancel(ctx *fiber.Ctx) error {
	var payload approvalapimodels.ProcessActionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if payload.EntityID == "" || payload.ModuleEntityID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("не указана запись"))
	}
	companyID := middleware.GetUserCompany(ctx)
	if err := approvalrequesthandler.Instance.Cancel(companyID, payload.EntityID, payload.ModuleEntityID); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка отмены заявки на согласование")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Список заявок на согласование
// @Tags Заявки на согласование
// @Description Список заявок на согласование
// @Param   Authorization		header	string								true	"Authorization token"
// @Param	body 				body	approvalapimodels.RequestFilter		true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/approval_requests/list [post]
func (c *approvalRequestApiController) list(ctx *fiber.Ctx) error {
	var payload approvalapimodels.RequestFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	list, rowCount, err := approvalrequesthandler.Instance.List(companyID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка заявок")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Заявка на согласование
// @Tags Заявки на согласование
// @Description Заявка с историей решений
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/approval_requests/{id} [get]
func (c *approvalRequestApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	item, err := approvalrequesthandler.Instance.GetByID(companyID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения заявки на согласование")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}
