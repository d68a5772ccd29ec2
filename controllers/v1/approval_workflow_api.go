package apiv1

import (
	"staff-hub-backend/controllers"
	approvalworkflowhandler "staff-hub-backend/lib/approval/workflow"
	"staff-hub-backend/middleware"
	"staff-hub-backend/models"
	apimodels "staff-hub-backend/models/api"
	approvalapimodels "staff-hub-backend/models/api/approval"

	"github.com/gofiber/fiber/v2"
)

type approvalWorkflowApiController struct {
	controllers.BaseAPIController
}

func InitApprovalWorkflowApiRouters(app *fiber.App) {
	controller := approvalWorkflowApiController{}
	app.Route("approval_workflows", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Post("list", controller.list)
		router.Get(":id", controller.get)
		router.Put(":id", controller.update)
		router.Post(":id/activate", controller.activate)
		router.Post(":id/deactivate", controller.deactivate)
	})
}

// @Summary Создание цепочки согласования
// @Tags Цепочки согласования
// @Description Создание цепочки согласования
// @Param   Authorization		header	string								true	"Authorization token"
// @Param	body 				body	approvalapimodels.WorkflowData		true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/approval_workflows [post]
func (c *approvalWorkflowApiController) create(ctx *fiber.Ctx) error {
	var payload approvalapimodels.WorkflowData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	id, err := approvalworkflowhandler.Instance.Create(companyID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания цепочки согласования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Список цепочек согласования
// @Tags Цепочки согласования
// @Description Список цепочек согласования
// @Param   Authorization		header	string								true	"Authorization token"
// @Param	body 				body	approvalapimodels.WorkflowFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/approval_workflows/list [post]
func (c *approvalWorkflowApiController) list(ctx *fiber.Ctx) error {
	var payload approvalapimodels.WorkflowFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	list, rowCount, err := approvalworkflowhandler.Instance.List(companyID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка цепочек согласования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Цепочка согласования
// @Tags Цепочки согласования
// @Description Цепочка согласования
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/approval_workflows/{id} [get]
func (c *approvalWorkflowApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	item, err := approvalworkflowhandler.Instance.GetByID(companyID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения цепочки согласования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Обновление цепочки согласования
// @Tags Цепочки согласования
// @Description Обновление цепочки согласования
// @Param   Authorization		header	string							true	"Authorization token"
// @Param	body 				body	approvalapimodels.WorkflowData	true	"request body"
// @Param   id          		path    string	    					true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/approval_workflows/{id} [put]
func (c *approvalWorkflowApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload approvalapimodels.WorkflowData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	if err = approvalworkflowhandler.Instance.Update(companyID, id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления цепочки согласования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Активация цепочки согласования
// @Tags Цепочки согласования
// @Description Активация цепочки согласования
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/approval_workflows/{id}/activate [post]
func (c *approvalWorkflowApiController) activate(ctx *fiber.Ctx) error {
	return c.setStatus(ctx, models.WorkflowStatusActive)
}

// @Summary Деактивация цепочки согласования
// @Tags Цепочки согласования
// @Description Деактивация цепочки согласования
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   id          		path    string	true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/approval_workflows/{id}/deactivate [post]
func (c *approvalWorkflowApiController) deactivate(ctx *fiber.Ctx) error {
	return c.setStatus(ctx, models.WorkflowStatusInactive)
}

func (c *approvalWorkflowApiController) setStatus(ctx *fiber.Ctx, status models.WorkflowStatus) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	if err = approvalworkflowhandler.Instance.SetStatus(companyID, id, status); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения статуса цепочки согласования")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
