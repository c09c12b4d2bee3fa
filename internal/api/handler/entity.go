package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-manager-api/infrastructure/repository"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
	"github.com/vfg2006/ads-manager-api/pkg/log"
	"github.com/vfg2006/ads-manager-api/pkg/utils"
)

const defaultListLimit = 100

// ListCampaigns retorna as campanhas do espelho local
func ListCampaigns(repo repository.CampaignRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaigns, err := repo.List()
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar campanhas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar campanhas", nil)
			return
		}

		writeJSON(w, campaigns)
	}
}

// ListAdSets retorna os conjuntos do espelho local, com filtro opcional por
// campanha via query string (?campaign_id=).
func ListAdSets(repo repository.AdSetRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignID := r.URL.Query().Get("campaign_id")

		var err error
		var adsets interface{}
		if campaignID != "" {
			adsets, err = repo.ListByCampaignID(campaignID)
		} else {
			adsets, err = repo.List()
		}
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar conjuntos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar conjuntos", nil)
			return
		}

		writeJSON(w, adsets)
	}
}

// GetAdSet retorna um conjunto do espelho local
func GetAdSet(repo repository.AdSetRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adsetID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if adsetID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do conjunto não informado", nil)
			return
		}

		adset, err := repo.GetByExternalID(adsetID)
		if err != nil {
			logrus.WithError(err).Errorf("Erro ao buscar conjunto %s", adsetID)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar conjunto", nil)
			return
		}
		if adset == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Conjunto não encontrado", nil)
			return
		}

		writeJSON(w, adset)
	}
}

// ListAds retorna os anúncios do espelho local
func ListAds(repo repository.AdRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ads, err := repo.List()
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar anúncios")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar anúncios", nil)
			return
		}

		writeJSON(w, ads)
	}
}

// ListLeads retorna os leads capturados, com filtro opcional por anúncio
// (?ad_id=) e limite (?limit=).
func ListLeads(repo repository.LeadRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adID := r.URL.Query().Get("ad_id")
		if adID != "" {
			leads, err := repo.ListByAdID(adID)
			if err != nil {
				logrus.WithError(err).Errorf("Erro ao listar leads do anúncio %s", adID)
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar leads", nil)
				return
			}
			writeJSON(w, leads)
			return
		}

		leads, err := repo.ListRecent(parseLimit(r))
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar leads")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar leads", nil)
			return
		}

		writeJSON(w, leads)
	}
}

// ListActivities retorna as últimas atividades da conta de anúncios
func ListActivities(repo repository.AccountActivityRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activities, err := repo.ListRecent(parseLimit(r))
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar atividades da conta")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar atividades", nil)
			return
		}

		writeJSON(w, activities)
	}
}

// GetAdSetInsights retorna as métricas diárias de um conjunto no período
// informado (?start_date=&end_date=, formato YYYY-MM-DD).
func GetAdSetInsights(repo repository.AdSetInsightRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adsetID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if adsetID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador do conjunto não informado", nil)
			return
		}

		startDate, endDate, ok := parseDateRange(w, r)
		if !ok {
			return
		}

		entries, err := repo.GetByAdSetAndRange(adsetID, *startDate, *endDate)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Errorf("Erro ao buscar métricas do conjunto %s", adsetID)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar métricas", nil)
			return
		}

		writeJSON(w, entries)
	}
}

// GetCampaignInsights busca as métricas diárias dos conjuntos de uma campanha
// direto no Meta, sem passar pelo espelho local (?start_date=&end_date=).
func GetCampaignInsights(reader meta.AdsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if campaignID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador da campanha não informado", nil)
			return
		}

		startDate, endDate, ok := parseDateRange(w, r)
		if !ok {
			return
		}

		entries, err := reader.FetchCampaignInsights(r.Context(), campaignID, *startDate, *endDate)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Errorf("Erro ao buscar métricas da campanha %s no Meta", campaignID)
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao buscar métricas no Meta", nil)
			return
		}

		writeJSON(w, entries)
	}
}

// parseDateRange lê e valida os parâmetros obrigatórios start_date e
// end_date. Já escreve a resposta de erro quando algo está ausente ou mal
// formatado; nesse caso ok é falso.
func parseDateRange(w http.ResponseWriter, r *http.Request) (*time.Time, *time.Time, bool) {
	startRaw := r.URL.Query().Get("start_date")
	endRaw := r.URL.Query().Get("end_date")
	if startRaw == "" || endRaw == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe start_date e end_date (YYYY-MM-DD)", nil)
		return nil, nil, false
	}

	startDate, err := utils.ParseDate(startRaw)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date inválida (use YYYY-MM-DD)", nil)
		return nil, nil, false
	}
	endDate, err := utils.ParseDate(endRaw)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date inválida (use YYYY-MM-DD)", nil)
		return nil, nil, false
	}

	return startDate, endDate, true
}

func parseLimit(r *http.Request) uint64 {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultListLimit
	}

	limit, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || limit == 0 {
		return defaultListLimit
	}

	return limit
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}
