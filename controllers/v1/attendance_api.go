package apiv1

import (
	"fmt"
	"staff-hub-backend/controllers"
	attendancepunchhandler "staff-hub-backend/lib/attendance/punch"
	attendancerebuildhandler "staff-hub-backend/lib/attendance/rebuild"
	xlsexport "staff-hub-backend/lib/export/xls"
	"staff-hub-backend/middleware"
	apimodels "staff-hub-backend/models/api"
	attendanceapimodels "staff-hub-backend/models/api/attendance"
	"time"

	"github.com/gofiber/fiber/v2"
)

type attendanceApiController struct {
	controllers.BaseAPIController
}

func InitAttendanceApiRouters(app *fiber.App) {
	controller := attendanceApiController{}
	app.Route("attendance", func(router fiber.Router) {
		router.Post("punch", controller.punch)
		router.Post("manual_punch", controller.manualPunch)
		router.Post("days/list", controller.listDays)
		router.Post("days/rebuild", controller.rebuildDay)
		router.Post("days/lock", controller.lockDay)
		router.Post("days/unlock", controller.unlockDay)
		router.Get("register/:year/:month", controller.exportRegister)
	})
}

// @Summary Отметка прихода/ухода
// @Tags Посещаемость
// @Description Регистрация отметки, тип выводится по последней отметке
// @Param   Authorization		header	string							true	"Authorization token"
// @Param	body 				body	attendanceapimodels.PunchData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/attendance/punch [post]
func (c *attendanceApiController) punch(ctx *fiber.Ctx) error {
	var payload attendanceapimodels.PunchData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	result, err := attendancepunchhandler.Instance.Punch(companyID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка регистрации отметки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Ручная корректировка отметок
// @Tags Посещаемость
// @Description Замена отметок даты вручную указанной парой
// @Param   Authorization		header	string								true	"Authorization token"
// @Param	body 				body	attendanceapimodels.ManualPunchData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/attendance/manual_punch [post]
func (c *attendanceApiController) manualPunch(ctx *fiber.Ctx) error {
	var payload attendanceapimodels.ManualPunchData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	if err := attendancepunchhandler.Instance.ManualPunch(companyID, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка корректировки отметок")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Список дней посещаемости
// @Tags Посещаемость
// @Description Производные записи дней по фильтру
// @Param   Authorization		header	string							true	"Authorization token"
// @Param	body 				body	attendanceapimodels.DayFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/attendance/days/list [post]
func (c *attendanceApiController) listDays(ctx *fiber.Ctx) error {
	var payload attendanceapimodels.DayFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	companyID := middleware.GetUserCompany(ctx)
	list, rowCount, err := attendancerebuildhandler.Instance.ListDays(companyID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка дней")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Пересборка дня
// @Tags Посещаемость
// @Description Пересборка производной записи дня по журналу отметок
// @Param   Authorization		header	string								true	"Authorization token"
// @Param	body 				body	attendanceapimodels.DayActionData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/attendance/days/rebuild [post]
func (c *attendanceApiController) rebuildDay(ctx *fiber.Ctx) error {
	return c.dayAction(ctx, attendancerebuildhandler.Instance.RebuildDay, "Ошибка пересборки дня")
}

// @Summary Блокировка дня
// @Tags Посещаемость
// @Description Заблокированный день не изменяется пересборкой
// @Param   Authorization		header	string								true	"Authorization token"
// @Param	body 				body	attendanceapimodels.DayActionData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/attendance/days/lock [post]
func (c *attendanceApiController) lockDay(ctx *fiber.Ctx) error {
	return c.dayAction(ctx, attendancerebuildhandler.Instance.LockDay, "Ошибка блокировки дня")
}

// @Summary Разблокировка дня
// @Tags Посещаемость
// @Description Снятие блокировки с записи дня
// @Param   Authorization		header	string								true	"Authorization token"
// @Param	body 				body	attendanceapimodels.DayActionData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/attendance/days/unlock [post]
func (c *attendanceApiController) unlockDay(ctx *fiber.Ctx) error {
	return c.dayAction(ctx, attendancerebuildhandler.Instance.UnlockDay, "Ошибка разблокировки дня")
}

func (c *attendanceApiController) dayAction(ctx *fiber.Ctx, action func(companyID, employeeID string, date time.Time) error, hMsg string) error {
	var payload attendanceapimodels.DayActionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	date, _ := time.ParseInLocation(attendanceapimodels.DateFormat, payload.Date, time.Local)
	companyID := middleware.GetUserCompany(ctx)
	if err := action(companyID, payload.EmployeeID, date); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, hMsg)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Табель за месяц
// @Tags Посещаемость
// @Description Выгрузка табеля учёта рабочего времени в xlsx
// @Param   Authorization		header	string	true	"Authorization token"
// @Param   year          		path    int		true    "год"
// @Param   month          		path    int		true    "месяц 1-12"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/company/attendance/register/{year}/{month} [get]
func (c *attendanceApiController) exportRegister(ctx *fiber.Ctx) error {
	year, err := ctx.ParamsInt("year")
	if err != nil || year < 2000 || year > 2100 {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("год указан неверно"))
	}
	month, err := ctx.ParamsInt("month")
	if err != nil || month < 1 || month > 12 {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("месяц указан неверно"))
	}
	companyID := middleware.GetUserCompany(ctx)
	rows, err := attendancerebuildhandler.Instance.MonthlyRegister(companyID, year, time.Month(month))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования табеля")
	}
	buf, err := xlsexport.Instance.ExportAttendanceRegister(year, time.Month(month), rows)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки табеля")
	}
	fileName := fmt.Sprintf("attendance_register_%v_%02d.xlsx", year, month)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%v"`, fileName))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.SendStream(buf)
}
