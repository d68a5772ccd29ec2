package approvalrequesthandler

import (
	"staff-hub-backend/db"
	approvalrequeststore "staff-hub-backend/lib/approval/request/store"
	approvalsync "staff-hub-backend/lib/approval/sync"
	approvalworkflowhandler "staff-hub-backend/lib/approval/workflow"
	approvalworkflowstore "staff-hub-backend/lib/approval/workflow/store"
	moduleentityprovider "staff-hub-backend/lib/dicts/module-entity"
	moduleentitystore "staff-hub-backend/lib/dicts/module-entity/store"
	notificationhandler "staff-hub-backend/lib/notification"
	"staff-hub-backend/models"
	approvalapimodels "staff-hub-backend/models/api/approval"
	dbmodels "staff-hub-backend/models/db"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Provider interface {
	// CheckAndInitiate подбирает цепочку для снимка записи и при совпадении
	// открывает заявку. nil без ошибки - согласование не требуется
	CheckAndInitiate(companyID string, data approvalapimodels.CheckData) (view *approvalapimodels.RequestView, err error)
	ProcessAction(companyID string, actor models.Actor, data approvalapimodels.ProcessActionData) (result approvalapimodels.ProcessActionResult, err error)
	Cancel(companyID, entityID, moduleEntityID string) error
	GetByID(companyID, id string) (item approvalapimodels.RequestView, err error)
	List(companyID string, filter approvalapimodels.RequestFilter) (list []approvalapimodels.RequestView, rowCount int64, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: approvalrequeststore.NewInstance(db.DB),
	}
}

type impl struct {
	store approvalrequeststore.Provider
}

func (i impl) CheckAndInitiate(companyID string, data approvalapimodels.CheckData) (*approvalapimodels.RequestView, error) {
	logger := log.
		WithField("company_id", companyID).
		WithField("module_entity", data.ModuleEntityCode).
		WithField("entity_id", data.EntityID)
	module, err := moduleentityprovider.Instance.GetByCode(data.ModuleEntityCode)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска типа сущности")
		return nil, err
	}
	if module == nil {
		return nil, models.NewCodedError(models.ErrCodeNotFound, "тип сущности не найден")
	}

	var requestRec *dbmodels.ApprovalRequest
	var firstLevel *dbmodels.ApprovalLevel
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := approvalrequeststore.NewInstance(tx)
		existing, err := store.GetPendingByEntity(companyID, data.EntityID, module.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return models.NewCodedError(models.ErrCodeAlreadyPending, "по записи уже открыта заявка на согласование")
		}
		workflow, err := approvalworkflowhandler.NewHandlerWithTx(tx).CheckApprovalRequired(companyID, module.ID, data.Snapshot)
		if err != nil {
			return err
		}
		if workflow == nil {
			return nil
		}
		rec := dbmodels.ApprovalRequest{
			BaseCompanyModel: dbmodels.BaseCompanyModel{
				CompanyID: companyID,
			},
			EntityID:             data.EntityID,
			ModuleEntityID:       module.ID,
			WorkflowID:           workflow.ID,
			CurrentLevelSequence: 1,
			Status:               models.ApprovalStatusPending,
		}
		rec.ID, err = store.Create(rec)
		if err != nil {
			return err
		}
		if err = approvalsync.Apply(tx, module.Code, companyID, data.EntityID, approvalsync.OutcomePendingApproval); err != nil {
			return err
		}
		requestRec = &rec
		firstLevel = findLevel(workflow.Levels, 1)
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("ошибка открытия заявки на согласование")
		return nil, err
	}
	if requestRec == nil {
		return nil, nil
	}
	logger.
		WithField("request_id", requestRec.ID).
		Info("открыта заявка на согласование")
	if firstLevel != nil {
		notificationhandler.Instance.NotifyLevelAssigned(*requestRec, *firstLevel)
	}
	view := approvalapimodels.RequestConvert(*requestRec)
	return &view, nil
}

// ProcessAction применяет решение согласующего к текущему уровню заявки.
// Заявка блокируется на время транзакции, запись в журнал делается
// до смены статуса
func (i impl) ProcessAction(companyID string, actor models.Actor, data approvalapimodels.ProcessActionData) (result approvalapimodels.ProcessActionResult, err error) {
	logger := log.
		WithField("company_id", companyID).
		WithField("user_id", actor.UserID).
		WithField("action", data.Action)
	var requestRec dbmodels.ApprovalRequest
	var nextLevel *dbmodels.ApprovalLevel
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := approvalrequeststore.NewInstance(tx)
		req, err := store.GetPendingForUpdate(companyID, data.RequestID, data.EntityID, data.ModuleEntityID)
		if err != nil {
			return err
		}
		if req == nil {
			return models.NewCodedError(models.ErrCodeNotFound, "заявка на согласование не найдена")
		}
		workflow, err := approvalworkflowstore.NewInstance(tx).GetByID(companyID, req.WorkflowID)
		if err != nil {
			return err
		}
		if workflow == nil {
			return models.NewCodedError(models.ErrCodeNotFound, "цепочка согласования не найдена")
		}
		level := findLevel(workflow.Levels, req.CurrentLevelSequence)
		if level == nil {
			return models.NewCodedError(models.ErrCodeNotFound, "уровень согласования не найден")
		}
		if !authorizeLevel(*level, actor) {
			return models.NewCodedError(models.ErrCodeNotAuthorized, "нет прав на согласование текущего уровня")
		}
		_, err = store.CreateLog(dbmodels.ApprovalLog{
			BaseCompanyModel: dbmodels.BaseCompanyModel{
				CompanyID: companyID,
			},
			RequestID:     req.ID,
			UserID:        actor.UserID,
			Action:        data.Action,
			Comment:       data.Comment,
			LevelSequence: req.CurrentLevelSequence,
		})
		if err != nil {
			return err
		}
		d := decide(workflow.Levels, req.CurrentLevelSequence, data.Action)
		updMap := map[string]interface{}{}
		switch {
		case d.NextLevel != nil:
			updMap["CurrentLevelSequence"] = d.NextLevel.LevelSequence
			req.CurrentLevelSequence = d.NextLevel.LevelSequence
		default:
			updMap["Status"] = d.Status
		}
		if err = store.Update(companyID, req.ID, updMap); err != nil {
			return err
		}
		req.Status = d.Status
		if d.Status.IsTerminal() {
			outcome := approvalsync.OutcomeApproved
			if d.Status == models.ApprovalStatusRejected {
				outcome = approvalsync.OutcomeRejected
			}
			module, err := moduleentitystore.NewInstance(tx).GetByID(req.ModuleEntityID)
			if err != nil {
				return err
			}
			if module != nil {
				if err = approvalsync.Apply(tx, module.Code, companyID, req.EntityID, outcome); err != nil {
					return err
				}
			}
		}
		requestRec = *req
		nextLevel = d.NextLevel
		result = approvalapimodels.ProcessActionResult{
			Status: d.Status,
		}
		if d.NextLevel != nil {
			result.NextLevel = &approvalapimodels.ApprovalLevelData{
				LevelSequence: d.NextLevel.LevelSequence,
				ApproverType:  d.NextLevel.ApproverType,
				ApproverID:    d.NextLevel.ApproverID,
			}
		}
		return nil
	})
	if err != nil {
		logger.WithError(err).Error("ошибка обработки решения по заявке")
		return approvalapimodels.ProcessActionResult{}, err
	}
	logger.
		WithField("request_id", requestRec.ID).
		WithField("status", result.Status).
		Info("решение по заявке применено")
	if nextLevel != nil {
		notificationhandler.Instance.NotifyLevelAssigned(requestRec, *nextLevel)
	}
	return result, nil
}

// Cancel снимает заявку с согласования без решения по уровню.
// Вызывается владеющим модулем при отзыве или удалении записи
func (i impl) Cancel(companyID, entityID, moduleEntityID string) error {
	logger := log.
		WithField("company_id", companyID).
		WithField("entity_id", entityID)
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		store := approvalrequeststore.NewInstance(tx)
		req, err := store.GetPendingForUpdate(companyID, "", entityID, moduleEntityID)
		if err != nil {
			return err
		}
		if req == nil {
			return models.NewCodedError(models.ErrCodeNotFound, "заявка на согласование не найдена")
		}
		updMap := map[string]interface{}{
			"Status": models.ApprovalStatusCancelled,
		}
		return store.Update(companyID, req.ID, updMap)
	})
	if err != nil {
		logger.WithError(err).Error("ошибка отмены заявки на согласование")
		return err
	}
	logger.Info("заявка на согласование отменена")
	return nil
}

func (i impl) GetByID(companyID, id string) (approvalapimodels.RequestView, error) {
	rec, err := i.store.GetByID(companyID, id)
	if err != nil {
		return approvalapimodels.RequestView{}, err
	}
	if rec == nil {
		return approvalapimodels.RequestView{}, models.NewCodedError(models.ErrCodeNotFound, "заявка на согласование не найдена")
	}
	return approvalapimodels.RequestConvert(*rec), nil
}

func (i impl) List(companyID string, filter approvalapimodels.RequestFilter) (list []approvalapimodels.RequestView, rowCount int64, err error) {
	rowCount, err = i.store.ListCount(companyID, filter)
	if err != nil {
		return nil, 0, err
	}
	recList, err := i.store.List(companyID, filter)
	if err != nil {
		return nil, 0, err
	}
	result := make([]approvalapimodels.RequestView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, approvalapimodels.RequestConvert(rec))
	}
	return result, rowCount, nil
}
