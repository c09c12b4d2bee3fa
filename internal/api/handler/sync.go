package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/internal/scheduler"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
)

const syncFamilyAll = "all"

// SyncServices agrupa os agendadores expostos pelos endpoints de sincronização
type SyncServices struct {
	EntitySync  *scheduler.EntitySyncService
	InsightSync *scheduler.InsightSyncService
}

// RunSync dispara manualmente a sincronização de uma família de entidades ou
// o ciclo completo (families: campaigns, adsets, ads, all).
func RunSync(services SyncServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		family := httprouter.ParamsFromContext(r.Context()).ByName("family")
		if family == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Família de entidades não especificada", nil)
			return
		}

		if services.EntitySync == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
			return
		}

		if family == syncFamilyAll {
			if err := services.EntitySync.RunNow(r.Context()); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}

			writeJSON(w, map[string]any{
				"message": "Sincronização completa executada",
				"family":  family,
			})
			return
		}

		switch domain.EntityFamily(family) {
		case domain.FamilyCampaigns, domain.FamilyAdSets, domain.FamilyAds:
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Família inválida. Valores aceitos: campaigns, adsets, ads, all", nil)
			return
		}

		summary, err := services.EntitySync.RunFamily(r.Context(), domain.EntityFamily(family))
		if err != nil {
			logrus.WithError(err).Errorf("Erro na sincronização manual da família %s", family)
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao sincronizar com o Meta", nil)
			return
		}

		writeJSON(w, summary)
	}
}

// GetSyncStatus retorna o estado dos agendadores de sincronização
func GetSyncStatus(services SyncServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.EntitySync != nil {
			status["entities"] = services.EntitySync.Status()
		}
		if services.InsightSync != nil {
			status["insights"] = services.InsightSync.Status()
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logrus.WithError(err).Error("Erro ao enviar status de sincronização")
		}
	}
}
