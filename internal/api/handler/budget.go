package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/internal/usecases/budgeting"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
)

type RollbackRequest struct {
	Reason string `json:"reason,omitempty"`
}

// AdjustBudget aplica um ajuste de orçamento em um conjunto de anúncios.
// Rejeições de negócio voltam com o resultado estruturado da engine e o
// status HTTP mapeado do código do erro.
func AdjustBudget(service budgeting.Budgeter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adsetID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if adsetID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do conjunto não informado", nil)
			return
		}

		var req domain.AdjustBudgetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := service.Adjust(r.Context(), adsetID, &req)
		if err != nil {
			logrus.WithError(err).Errorf("Erro ao ajustar orçamento do conjunto %s", adsetID)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar ajuste de orçamento", nil)
			return
		}

		writeAdjustResult(w, result)
	}
}

// RollbackBudgetLog emite o ajuste compensatório de um registro aplicado
func RollbackBudgetLog(service budgeting.Budgeter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if logID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do registro não informado", nil)
			return
		}

		var req RollbackRequest
		if r.Body != nil && r.ContentLength > 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
				return
			}
		}

		result, err := service.Rollback(r.Context(), logID, req.Reason)
		if err != nil {
			logrus.WithError(err).Errorf("Erro ao reverter registro de ajuste %s", logID)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao processar rollback", nil)
			return
		}

		writeAdjustResult(w, result)
	}
}

// ListBudgetLogs retorna o histórico de ajustes de um conjunto
func ListBudgetLogs(service budgeting.Budgeter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adsetID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if adsetID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do conjunto não informado", nil)
			return
		}

		logs, err := service.ListLogs(adsetID, parseLimit(r))
		if err != nil {
			logrus.WithError(err).Errorf("Erro ao listar registros de ajuste do conjunto %s", adsetID)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar registros de ajuste", nil)
			return
		}

		writeJSON(w, logs)
	}
}

// ReconcileBudgets dispara a varredura de registros de ajuste pendentes
func ReconcileBudgets(service budgeting.Budgeter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.Reconcile(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro na varredura de registros pendentes")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao executar reconciliação", nil)
			return
		}

		writeJSON(w, summary)
	}
}

// GetRateLimit retorna a leitura corrente de uso de limite de chamadas do Meta
func GetRateLimit(client meta.BudgetClient) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, client.RateLimit())
	}
}

func writeAdjustResult(w http.ResponseWriter, result *domain.AdjustBudgetResult) {
	w.Header().Set("Content-Type", "application/json")

	if !result.Success && result.Error != nil {
		w.WriteHeader(apiErrors.HTTPStatus(result.Error.Code))
	}

	if err := json.NewEncoder(w).Encode(result); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta de ajuste")
	}
}
