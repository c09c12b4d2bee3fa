package budgeting

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/ads-manager-api/pkg/utils"
)

// Service implementa Budgeter. Toda tentativa de mutação gera um registro de
// auditoria antes da chamada ao Meta: pending vira applied ou failed. Uma
// mutação bem-sucedida cujo registro não pôde ser atualizado permanece
// pending e é resolvida pela varredura de reconciliação, nunca reenviada.
type Service struct {
	cfg       *config.Config
	client    meta.BudgetClient
	logRepo   repository.BudgetLogRepository
	adSetRepo repository.AdSetRepository

	// Injetável nos testes.
	now func() time.Time
}

func NewService(
	cfg *config.Config,
	client meta.BudgetClient,
	logRepo repository.BudgetLogRepository,
	adSetRepo repository.AdSetRepository,
) *Service {
	return &Service{
		cfg:       cfg,
		client:    client,
		logRepo:   logRepo,
		adSetRepo: adSetRepo,
		now:       time.Now,
	}
}

// Adjust valida e aplica um ajuste de orçamento em um conjunto de anúncios.
// Rejeições de negócio voltam como resultado estruturado com Success=false;
// o erro de retorno é reservado para falhas de infraestrutura.
func (s *Service) Adjust(ctx context.Context, adsetID string, req *domain.AdjustBudgetRequest) (*domain.AdjustBudgetResult, error) {
	if adjErr := validateRequest(adsetID, req); adjErr != nil {
		return &domain.AdjustBudgetResult{Success: false, Error: adjErr}, nil
	}

	budgetType, newValue := requestedBudget(req)
	newCents := utils.ToCents(newValue)

	// O estado corrente vem sempre do Meta, nunca do espelho local.
	adset, err := s.client.GetAdSet(ctx, adsetID)
	if err != nil {
		if metadomain.IsNotFound(err) {
			return &domain.AdjustBudgetResult{
				Success: false,
				Error: &domain.AdjustmentError{
					Code:    apiErrors.ErrNotFound,
					Type:    "not_found",
					Message: fmt.Sprintf("conjunto %s não encontrado no Meta", adsetID),
				},
			}, nil
		}
		return nil, errors.Wrap(err, "erro ao buscar conjunto no Meta")
	}

	if adjErr := s.checkEligibility(adset, budgetType); adjErr != nil {
		return s.reject(adset, budgetType, newCents, req, adjErr)
	}

	oldCents := s.currentBudget(adset, budgetType)

	if adjErr := s.checkBounds(oldCents, newCents); adjErr != nil {
		return s.reject(adset, budgetType, newCents, req, adjErr)
	}

	adjErr, err := s.checkFrequency(adsetID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar histórico de ajustes")
	}
	if adjErr != nil {
		return s.reject(adset, budgetType, newCents, req, adjErr)
	}

	warnings := s.collectWarnings(adset)

	log, err := s.createLog(adset, budgetType, oldCents, newCents, req, domain.AdjustmentPending, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar registro de auditoria")
	}

	response, err := s.client.UpdateAdSetBudget(ctx, adsetID, s.buildForm(budgetType, newCents, req.Status))
	if err != nil {
		message := err.Error()
		if updErr := s.logRepo.SetStatus(log.ID, domain.AdjustmentFailed, nil, &message); updErr != nil {
			logrus.WithError(updErr).Errorf("Falha ao marcar registro %s como failed", log.ID)
		}
		log.Status = domain.AdjustmentFailed
		log.ErrorMessage = &message

		return &domain.AdjustBudgetResult{
			Success:  false,
			Warnings: warnings,
			Log:      log,
			Error: &domain.AdjustmentError{
				Code:    apiErrors.ErrExternalService,
				Type:    "upstream_error",
				Message: fmt.Sprintf("Meta rejeitou o ajuste: %s", message),
			},
		}, nil
	}

	// A mutação foi aplicada. Se a atualização do registro falhar aqui, o
	// registro fica pending para a varredura de reconciliação resolver; o
	// ajuste jamais é reenviado.
	if err := s.logRepo.SetStatus(log.ID, domain.AdjustmentApplied, response, nil); err != nil {
		logrus.WithError(err).Errorf("Ajuste aplicado no Meta mas registro %s permanece pendente", log.ID)
		warnings = append(warnings, "ajuste aplicado, mas o registro de auditoria permanece pendente de confirmação")
	} else {
		log.Status = domain.AdjustmentApplied
		appliedAt := s.now()
		log.AppliedAt = &appliedAt
	}
	log.UpstreamResponse = response

	s.refreshMirror(adset, budgetType, newCents, req.Status)

	return &domain.AdjustBudgetResult{
		Success:  true,
		Warnings: warnings,
		Log:      log,
	}, nil
}

// Rollback emite um ajuste compensatório restaurando o orçamento anterior de
// um registro aplicado. O ajuste compensatório segue o mesmo caminho de
// validação e auditoria de qualquer outro.
func (s *Service) Rollback(ctx context.Context, logID string, reason string) (*domain.AdjustBudgetResult, error) {
	log, err := s.logRepo.GetByID(logID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar registro de auditoria")
	}
	if log == nil {
		return &domain.AdjustBudgetResult{
			Success: false,
			Error: &domain.AdjustmentError{
				Code:    apiErrors.ErrNotFound,
				Type:    "not_found",
				Message: fmt.Sprintf("registro de ajuste %s não encontrado", logID),
			},
		}, nil
	}
	if log.Status != domain.AdjustmentApplied {
		return &domain.AdjustBudgetResult{
			Success: false,
			Error: &domain.AdjustmentError{
				Code:    apiErrors.ErrInvalidRequest,
				Type:    "validation",
				Message: fmt.Sprintf("apenas registros aplicados podem ser revertidos (status atual: %s)", log.Status),
			},
		}, nil
	}

	if reason == "" {
		reason = fmt.Sprintf("rollback do ajuste %s", log.ID)
	}

	oldValue := utils.FromCents(log.OldBudget)
	req := &domain.AdjustBudgetRequest{
		TriggerType: domain.TriggerAPI,
		Reason:      reason,
	}
	if log.BudgetType == domain.BudgetTypeLifetime {
		req.LifetimeBudget = &oldValue
	} else {
		req.DailyBudget = &oldValue
	}

	return s.Adjust(ctx, log.AdSetID, req)
}

// Reconcile varre registros presos em pending e os resolve comparando o
// orçamento corrente no Meta com o valor que o ajuste tentou aplicar.
func (s *Service) Reconcile(ctx context.Context) (*domain.BudgetReconcileSummary, error) {
	grace := time.Duration(s.cfg.BudgetRules.PendingGraceAge) * time.Minute

	pending, err := s.logRepo.ListPendingOlderThan(grace)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar registros pendentes")
	}

	summary := &domain.BudgetReconcileSummary{Checked: len(pending)}

	for _, log := range pending {
		adset, err := s.client.GetAdSet(ctx, log.AdSetID)
		if err != nil {
			logrus.WithError(err).Errorf("Falha ao verificar conjunto %s do registro pendente %s", log.AdSetID, log.ID)
			summary.Errors++
			continue
		}

		if s.currentBudget(adset, log.BudgetType) == log.NewBudget {
			if err := s.logRepo.SetStatus(log.ID, domain.AdjustmentApplied, nil, nil); err != nil {
				logrus.WithError(err).Errorf("Falha ao confirmar registro pendente %s", log.ID)
				summary.Errors++
				continue
			}
			summary.Confirmed++
			continue
		}

		message := "orçamento corrente no Meta não reflete o ajuste pendente"
		if err := s.logRepo.SetStatus(log.ID, domain.AdjustmentFailed, nil, &message); err != nil {
			logrus.WithError(err).Errorf("Falha ao encerrar registro pendente %s", log.ID)
			summary.Errors++
			continue
		}
		summary.Failed++
	}

	return summary, nil
}

func (s *Service) ListLogs(adsetID string, limit uint64) ([]*domain.BudgetAdjustmentLog, error) {
	return s.logRepo.ListByAdSet(adsetID, limit)
}

// reject registra a rejeição como cancelled para fins de auditoria. Nada é
// enviado ao Meta.
func (s *Service) reject(
	adset *domain.AdSet,
	budgetType domain.BudgetType,
	newCents int64,
	req *domain.AdjustBudgetRequest,
	adjErr *domain.AdjustmentError,
) (*domain.AdjustBudgetResult, error) {
	log, err := s.createLog(adset, budgetType, s.currentBudget(adset, budgetType), newCents, req, domain.AdjustmentCancelled, &adjErr.Message)
	if err != nil {
		logrus.WithError(err).Errorf("Falha ao registrar rejeição de ajuste do conjunto %s", adset.ExternalID)
	}

	return &domain.AdjustBudgetResult{
		Success: false,
		Log:     log,
		Error:   adjErr,
	}, nil
}

func (s *Service) createLog(
	adset *domain.AdSet,
	budgetType domain.BudgetType,
	oldCents, newCents int64,
	req *domain.AdjustBudgetRequest,
	status domain.AdjustmentStatus,
	errorMessage *string,
) (*domain.BudgetAdjustmentLog, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador do registro: %w", err)
	}

	triggerType := req.TriggerType
	if triggerType == "" {
		triggerType = domain.TriggerAPI
	}

	log := &domain.BudgetAdjustmentLog{
		ID:                id,
		AdSetID:           adset.ExternalID,
		BudgetType:        budgetType,
		OldBudget:         oldCents,
		NewBudget:         newCents,
		AdjustmentAmount:  newCents - oldCents,
		AdjustmentPercent: utils.PercentChange(oldCents, newCents),
		TriggerType:       triggerType,
		Reason:            req.Reason,
		Status:            status,
		ErrorMessage:      errorMessage,
		CreatedAt:         s.now(),
	}

	if err := s.logRepo.Create(log); err != nil {
		return nil, err
	}

	return log, nil
}

func (s *Service) collectWarnings(adset *domain.AdSet) []string {
	var warnings []string

	if adset.EffectiveStatus == domain.StatusPaused || adset.Status == domain.StatusPaused {
		warnings = append(warnings, fmt.Sprintf("conjunto %s está pausado; o ajuste só terá efeito ao reativá-lo", adset.ExternalID))
	}

	if adset.BudgetRemaining > 0 {
		remaining := utils.FromCents(adset.BudgetRemaining)
		if remaining < s.cfg.BudgetRules.LowBudgetWarning {
			warnings = append(warnings, fmt.Sprintf("orçamento restante baixo (%.2f)", remaining))
		}
	}

	return warnings
}

// buildForm monta o corpo da mutação no formato da Graph API: orçamentos em
// centavos, como inteiros.
func (s *Service) buildForm(budgetType domain.BudgetType, newCents int64, status *string) url.Values {
	form := url.Values{}

	if budgetType == domain.BudgetTypeLifetime {
		form.Set("lifetime_budget", strconv.FormatInt(newCents, 10))
	} else {
		form.Set("daily_budget", strconv.FormatInt(newCents, 10))
	}

	if status != nil {
		form.Set("status", *status)
	}

	return form
}

// refreshMirror atualiza o espelho local com o resultado do ajuste. Melhor
// esforço: a sincronização periódica corrige qualquer divergência.
func (s *Service) refreshMirror(adset *domain.AdSet, budgetType domain.BudgetType, newCents int64, status *string) {
	updated := *adset
	if budgetType == domain.BudgetTypeLifetime {
		updated.LifetimeBudget = newCents
	} else {
		updated.DailyBudget = newCents
	}
	if status != nil {
		updated.Status = domain.EntityStatus(*status)
	}

	if err := s.adSetRepo.SaveOrUpdate(&updated); err != nil {
		logrus.WithError(err).Errorf("Falha ao atualizar espelho local do conjunto %s", adset.ExternalID)
	}
}

func validateRequest(adsetID string, req *domain.AdjustBudgetRequest) *domain.AdjustmentError {
	if adsetID == "" {
		return &domain.AdjustmentError{
			Code:    apiErrors.ErrMissingRequiredData,
			Type:    "validation",
			Message: "identificador do conjunto é obrigatório",
		}
	}
	if req == nil || (req.DailyBudget == nil && req.LifetimeBudget == nil) {
		return &domain.AdjustmentError{
			Code:    apiErrors.ErrMissingRequiredData,
			Type:    "validation",
			Message: "informe daily_budget ou lifetime_budget",
		}
	}
	if req.DailyBudget != nil && req.LifetimeBudget != nil {
		return &domain.AdjustmentError{
			Code:    apiErrors.ErrInvalidRequest,
			Type:    "validation",
			Message: "informe apenas um tipo de orçamento por solicitação",
		}
	}

	_, value := requestedBudget(req)
	if value <= 0 {
		return &domain.AdjustmentError{
			Code:    apiErrors.ErrInvalidFormat,
			Type:    "validation",
			Message: "o novo orçamento deve ser um valor positivo",
		}
	}

	if req.Status != nil {
		status := domain.EntityStatus(*req.Status)
		if status != domain.StatusActive && status != domain.StatusPaused {
			return &domain.AdjustmentError{
				Code:    apiErrors.ErrInvalidFormat,
				Type:    "validation",
				Message: fmt.Sprintf("status %s não é permitido em ajustes (use ACTIVE ou PAUSED)", *req.Status),
			}
		}
	}

	return nil
}

func requestedBudget(req *domain.AdjustBudgetRequest) (domain.BudgetType, float64) {
	if req.LifetimeBudget != nil {
		return domain.BudgetTypeLifetime, *req.LifetimeBudget
	}
	if req.DailyBudget != nil {
		return domain.BudgetTypeDaily, *req.DailyBudget
	}
	return domain.BudgetTypeDaily, 0
}
