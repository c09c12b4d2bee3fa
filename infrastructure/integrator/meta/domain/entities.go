package metadomain

import (
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/pkg/utils"
)

// Tipos de transporte da Graph API. Valores numéricos chegam como strings;
// a conversão para o domínio acontece aqui, nunca nos consumidores.

type Campaign struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	EffectiveStatus string `json:"effective_status"`
	Objective       string `json:"objective"`
	CreatedTime     string `json:"created_time"`
	UpdatedTime     string `json:"updated_time"`
}

func (c *Campaign) ToDomain() *domain.Campaign {
	return &domain.Campaign{
		ExternalID:      c.ID,
		Name:            c.Name,
		Status:          domain.EntityStatus(c.Status),
		EffectiveStatus: domain.EntityStatus(c.EffectiveStatus),
		Objective:       c.Objective,
		CreatedTime:     parseTime(c.ID, c.CreatedTime),
		UpdatedTime:     parseTime(c.ID, c.UpdatedTime),
	}
}

type AdSet struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	EffectiveStatus string `json:"effective_status"`
	CampaignID      string `json:"campaign_id"`
	DailyBudget     string `json:"daily_budget"`
	LifetimeBudget  string `json:"lifetime_budget"`
	BudgetRemaining string `json:"budget_remaining"`
	CreatedTime     string `json:"created_time"`
	UpdatedTime     string `json:"updated_time"`
}

func (a *AdSet) ToDomain() *domain.AdSet {
	return &domain.AdSet{
		ExternalID:      a.ID,
		CampaignID:      a.CampaignID,
		Name:            a.Name,
		Status:          domain.EntityStatus(a.Status),
		EffectiveStatus: domain.EntityStatus(a.EffectiveStatus),
		DailyBudget:     parseCents(a.ID, a.DailyBudget),
		LifetimeBudget:  parseCents(a.ID, a.LifetimeBudget),
		BudgetRemaining: parseCents(a.ID, a.BudgetRemaining),
		CreatedTime:     parseTime(a.ID, a.CreatedTime),
		UpdatedTime:     parseTime(a.ID, a.UpdatedTime),
	}
}

type Ad struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	EffectiveStatus string `json:"effective_status"`
	AdSetID         string `json:"adset_id"`
	CampaignID      string `json:"campaign_id"`
	CreatedTime     string `json:"created_time"`
	UpdatedTime     string `json:"updated_time"`
}

func (a *Ad) ToDomain() *domain.Ad {
	return &domain.Ad{
		ExternalID:      a.ID,
		AdSetID:         a.AdSetID,
		CampaignID:      a.CampaignID,
		Name:            a.Name,
		Status:          domain.EntityStatus(a.Status),
		EffectiveStatus: domain.EntityStatus(a.EffectiveStatus),
		CreatedTime:     parseTime(a.ID, a.CreatedTime),
		UpdatedTime:     parseTime(a.ID, a.UpdatedTime),
	}
}

type LeadField struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

type Lead struct {
	ID          string      `json:"id"`
	AdID        string      `json:"ad_id"`
	FormID      string      `json:"form_id"`
	CreatedTime string      `json:"created_time"`
	FieldData   []LeadField `json:"field_data"`
}

func (l *Lead) ToDomain() *domain.Lead {
	fields := make(map[string]string, len(l.FieldData))
	for _, f := range l.FieldData {
		if len(f.Values) > 0 {
			fields[f.Name] = f.Values[0]
		}
	}

	return &domain.Lead{
		ExternalID:  l.ID,
		AdID:        l.AdID,
		FormID:      l.FormID,
		FieldData:   fields,
		CreatedTime: parseTime(l.ID, l.CreatedTime),
	}
}

type Activity struct {
	EventType      string `json:"event_type"`
	TranslatedType string `json:"translated_event_type"`
	ObjectID       string `json:"object_id"`
	ObjectName     string `json:"object_name"`
	EventTime      string `json:"event_time"`
	ExtraData      string `json:"extra_data"`
}

func (a *Activity) ToDomain() *domain.AccountActivity {
	return &domain.AccountActivity{
		EventType:      a.EventType,
		TranslatedType: a.TranslatedType,
		ObjectID:       a.ObjectID,
		ObjectName:     a.ObjectName,
		EventTime:      parseTime(a.ObjectID, a.EventTime),
		ExtraData:      a.ExtraData,
	}
}

// AdSetInsight é uma linha de métricas diárias (time_increment=1): uma linha
// por conjunto por dia, nunca uma por conjunto.
type AdSetInsight struct {
	AdSetID     string `json:"adset_id"`
	CampaignID  string `json:"campaign_id"`
	DateStart   string `json:"date_start"`
	DateStop    string `json:"date_stop"`
	Impressions string `json:"impressions"`
	Clicks      string `json:"clicks"`
	Reach       string `json:"reach"`
	Spend       string `json:"spend"`
	CTR         string `json:"ctr"`
}

func (i *AdSetInsight) ToDomain() *domain.AdSetInsightEntry {
	date, err := utils.ParseDate(i.DateStart)
	if err != nil {
		logrus.WithError(err).WithField("adset_id", i.AdSetID).Warn("Data inválida em linha de insight")
		return nil
	}

	return &domain.AdSetInsightEntry{
		AdSetID:     i.AdSetID,
		CampaignID:  i.CampaignID,
		Date:        *date,
		Impressions: parseInt(i.AdSetID, i.Impressions),
		Clicks:      parseInt(i.AdSetID, i.Clicks),
		Reach:       parseInt(i.AdSetID, i.Reach),
		Spend:       parseFloat(i.AdSetID, i.Spend),
		CTR:         parseFloat(i.AdSetID, i.CTR),
	}
}

func parseCents(id, value string) int64 {
	if value == "" {
		return 0
	}

	cents, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		logrus.WithError(err).WithField("object_id", id).Warn("Valor de orçamento inválido na resposta do Meta")
		return 0
	}

	return cents
}

func parseInt(id, value string) int64 {
	if value == "" {
		return 0
	}

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		logrus.WithError(err).WithField("object_id", id).Warn("Valor numérico inválido na resposta do Meta")
		return 0
	}

	return n
}

func parseFloat(id, value string) float64 {
	if value == "" {
		return 0
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithError(err).WithField("object_id", id).Warn("Valor decimal inválido na resposta do Meta")
		return 0
	}

	return f
}

func parseTime(id, value string) time.Time {
	parsed, err := utils.ParseMetaTime(value)
	if err != nil {
		logrus.WithError(err).WithField("object_id", id).Warn("Timestamp inválido na resposta do Meta")
		return time.Time{}
	}
	return parsed
}
