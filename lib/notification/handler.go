package notificationhandler

import (
	"fmt"
	"staff-hub-backend/config"
	"staff-hub-backend/db"
	companyusersstore "staff-hub-backend/lib/company/users/store"
	"staff-hub-backend/lib/smtp"
	"staff-hub-backend/models"
	dbmodels "staff-hub-backend/models/db"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	NotifyLevelAssigned(request dbmodels.ApprovalRequest, level dbmodels.ApprovalLevel)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		usersStore: companyusersstore.NewInstance(db.DB),
	}
}

type impl struct {
	usersStore companyusersstore.Provider
}

// NotifyLevelAssigned уведомляет согласующих уровня о назначенной заявке.
// Ошибки доставки только логируются, согласование они не блокируют
func (i impl) NotifyLevelAssigned(request dbmodels.ApprovalRequest, level dbmodels.ApprovalLevel) {
	logger := log.
		WithField("company_id", request.CompanyID).
		WithField("request_id", request.ID).
		WithField("level", level.LevelSequence)
	recipients, err := i.resolveRecipients(request.CompanyID, level)
	if err != nil {
		logger.WithError(err).Error("ошибка получения согласующих уровня")
		return
	}
	subject := "Требуется согласование"
	message := fmt.Sprintf("Вам назначена заявка на согласование (уровень %v)", level.LevelSequence)
	i.send(logger, recipients, subject, message)
}

func (i impl) resolveRecipients(companyID string, level dbmodels.ApprovalLevel) ([]dbmodels.CompanyUser, error) {
	if level.ApproverType == models.ApproverTypeUser {
		user, err := i.usersStore.GetByID(level.ApproverID)
		if err != nil {
			return nil, err
		}
		if user == nil || user.CompanyID != companyID {
			return nil, nil
		}
		return []dbmodels.CompanyUser{*user}, nil
	}
	return i.usersStore.ListByRole(companyID, level.ApproverID)
}

func (i impl) send(logger *log.Entry, recipients []dbmodels.CompanyUser, subject, message string) {
	for _, user := range recipients {
		if user.Email == "" {
			continue
		}
		err := smtp.Instance.SendEMail(config.Conf.Smtp.From, user.Email, message, subject)
		if err != nil {
			logger.
				WithField("user_id", user.ID).
				WithError(err).
				Error("ошибка отправки уведомления о согласовании")
		}
	}
}
