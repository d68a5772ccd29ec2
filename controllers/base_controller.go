package controllers

import (
	"staff-hub-backend/models"
	apimodels "staff-hub-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	return c.GetIDByKey(ctx, "id")
}

func (c *BaseAPIController) GetIDByKey(ctx *fiber.Ctx, key string) (string, error) {
	id := ctx.Params(key)
	if id == "" {
		return "", errors.New("не указан идентификатор записи")
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path())
}

// SendError возвращает ответ по ошибке обработчика. Ошибки движка с кодом
// отдаются с пользовательским текстом, остальные скрываются за hMsg
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, hMsg string) error {
	code := models.GetErrorCode(err)
	if code == "" {
		logger.WithError(err).Error(hMsg)
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(hMsg))
	}
	status := fiber.StatusBadRequest
	switch code {
	case models.ErrCodeNotFound:
		status = fiber.StatusNotFound
	case models.ErrCodeNotAuthorized:
		status = fiber.StatusForbidden
	}
	return ctx.Status(status).JSON(apimodels.NewCodedErrorResponse(string(code), err.Error()))
}
