package budgeting

import (
	"fmt"
	"time"

	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/ads-manager-api/pkg/utils"
)

// checkEligibility verifica se o conjunto pode receber ajuste do tipo
// solicitado. Conjuntos em estado final no Meta ou sem o orçamento
// correspondente configurado são inelegíveis.
func (s *Service) checkEligibility(adset *domain.AdSet, budgetType domain.BudgetType) *domain.AdjustmentError {
	if adset.Status.IsTerminal() || adset.EffectiveStatus.IsTerminal() {
		return &domain.AdjustmentError{
			Code:    apiErrors.ErrBudgetIneligible,
			Type:    "ineligible",
			Message: fmt.Sprintf("conjunto %s está em estado final (%s) e não pode ser alterado", adset.ExternalID, adset.EffectiveStatus),
		}
	}

	if !adset.HasBudget() {
		return &domain.AdjustmentError{
			Code:    apiErrors.ErrBudgetIneligible,
			Type:    "ineligible",
			Message: fmt.Sprintf("conjunto %s não possui orçamento próprio configurado", adset.ExternalID),
		}
	}

	if s.currentBudget(adset, budgetType) <= 0 {
		return &domain.AdjustmentError{
			Code:    apiErrors.ErrBudgetIneligible,
			Type:    "ineligible",
			Message: fmt.Sprintf("conjunto %s não possui orçamento do tipo %s", adset.ExternalID, budgetType),
		}
	}

	return nil
}

// checkBounds valida o novo valor contra os limites percentuais e absolutos
// configurados. Valores em centavos.
func (s *Service) checkBounds(oldCents, newCents int64) *domain.AdjustmentError {
	rules := s.cfg.BudgetRules

	change := utils.PercentChange(oldCents, newCents)
	if change > rules.MaxIncreasePercent {
		return &domain.AdjustmentError{
			Code:    apiErrors.ErrBudgetRuleViolation,
			Type:    "rule_violation",
			Message: fmt.Sprintf("aumento de %.1f%% excede o máximo permitido de %.1f%%", change, rules.MaxIncreasePercent),
		}
	}
	if change < -rules.MaxDecreasePercent {
		return &domain.AdjustmentError{
			Code:    apiErrors.ErrBudgetRuleViolation,
			Type:    "rule_violation",
			Message: fmt.Sprintf("redução de %.1f%% excede o máximo permitido de %.1f%%", -change, rules.MaxDecreasePercent),
		}
	}

	newValue := utils.FromCents(newCents)
	if newValue < rules.MinBudget {
		return &domain.AdjustmentError{
			Code:    apiErrors.ErrBudgetRuleViolation,
			Type:    "rule_violation",
			Message: fmt.Sprintf("orçamento de %.2f abaixo do mínimo permitido de %.2f", newValue, rules.MinBudget),
		}
	}
	if rules.MaxBudget > 0 && newValue > rules.MaxBudget {
		return &domain.AdjustmentError{
			Code:    apiErrors.ErrBudgetRuleViolation,
			Type:    "rule_violation",
			Message: fmt.Sprintf("orçamento de %.2f acima do máximo permitido de %.2f", newValue, rules.MaxBudget),
		}
	}

	return nil
}

// checkFrequency reavalia a janela móvel de ajustes aplicados e o intervalo
// mínimo entre ajustes. Consultado no momento da solicitação, nunca cacheado.
func (s *Service) checkFrequency(adsetID string) (*domain.AdjustmentError, error) {
	rules := s.cfg.BudgetRules

	count, err := s.logRepo.CountAppliedSince(adsetID, s.now().Add(-time.Hour))
	if err != nil {
		return nil, err
	}
	if count >= rules.MaxPerHour {
		return &domain.AdjustmentError{
			Code:    apiErrors.ErrBudgetRateLimited,
			Type:    "rate_limited",
			Message: fmt.Sprintf("limite de %d ajustes por hora atingido para o conjunto %s", rules.MaxPerHour, adsetID),
		}, nil
	}

	last, err := s.logRepo.LastAppliedAt(adsetID)
	if err != nil {
		return nil, err
	}
	if last != nil {
		cooldown := time.Duration(rules.CooldownMinutes) * time.Minute
		if s.now().Sub(*last) < cooldown {
			return &domain.AdjustmentError{
				Code:    apiErrors.ErrBudgetRateLimited,
				Type:    "rate_limited",
				Message: fmt.Sprintf("aguarde %d minutos entre ajustes do conjunto %s", rules.CooldownMinutes, adsetID),
			}, nil
		}
	}

	return nil, nil
}

func (s *Service) currentBudget(adset *domain.AdSet, budgetType domain.BudgetType) int64 {
	if budgetType == domain.BudgetTypeLifetime {
		return adset.LifetimeBudget
	}
	return adset.DailyBudget
}
