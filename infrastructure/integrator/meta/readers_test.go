package meta

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-manager-api/internal/config"
)

func testIntegratorConfig(serverURL string) *config.Config {
	cfg := &config.Config{}
	cfg.Meta = config.Meta{
		URL:            serverURL,
		AccessToken:    "test-token",
		AccountID:      "123",
		RequestTimeout: 5 * time.Second,
		RetryAttempts:  3,
		RetryBaseDelay: time.Millisecond,
		PageSize:       2,
	}
	return cfg
}

// TestMetaIntegrator_FetchActiveCampaigns_Paginacao verifica o percurso
// completo da paginação por cursor: cada página re-emite o cursor "next"
// normalizado e os resultados chegam concatenados em ordem.
func TestMetaIntegrator_FetchActiveCampaigns_Paginacao(t *testing.T) {
	var requests int32
	var serverURL string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&requests, 1)

		assert.Equal(t, "/act_123/campaigns", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Empty(t, r.URL.Query().Get("access_token"))

		switch n {
		case 1:
			assert.Equal(t, `["ACTIVE"]`, r.URL.Query().Get("effective_status"))
			assert.Equal(t, "2", r.URL.Query().Get("limit"))
			fmt.Fprintf(w, `{
				"data": [
					{"id":"CMP001","name":"Campanha A","status":"ACTIVE","effective_status":"ACTIVE","objective":"LEAD_GENERATION"},
					{"id":"CMP002","name":"Campanha B","status":"ACTIVE","effective_status":"ACTIVE","objective":"CONVERSIONS"}
				],
				"paging": {"cursors":{"after":"PG1"},"next":"%s/v22.0/act_123/campaigns?after=PG1&limit=2&access_token=SECRET"}
			}`, serverURL)
		case 2:
			assert.Equal(t, "PG1", r.URL.Query().Get("after"))
			fmt.Fprintf(w, `{
				"data": [
					{"id":"CMP003","name":"Campanha C","status":"ACTIVE","effective_status":"ACTIVE","objective":"TRAFFIC"},
					{"id":"CMP004","name":"Campanha D","status":"ACTIVE","effective_status":"ACTIVE","objective":"TRAFFIC"}
				],
				"paging": {"cursors":{"after":"PG2"},"next":"%s/v22.0/act_123/campaigns?after=PG2&limit=2&access_token=SECRET"}
			}`, serverURL)
		default:
			assert.Equal(t, "PG2", r.URL.Query().Get("after"))
			fmt.Fprint(w, `{
				"data": [
					{"id":"CMP005","name":"Campanha E","status":"ACTIVE","effective_status":"ACTIVE","objective":"TRAFFIC"}
				],
				"paging": {"cursors":{"after":"PG3"}}
			}`)
		}
	}))
	defer server.Close()
	serverURL = server.URL

	cfg := testIntegratorConfig(server.URL)
	integrator := New(cfg, metaclient.NewClient(cfg))

	campaigns, err := integrator.FetchActiveCampaigns(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&requests))

	require.Len(t, campaigns, 5)
	assert.Equal(t, "CMP001", campaigns[0].ExternalID)
	assert.Equal(t, "CMP005", campaigns[4].ExternalID)
	assert.Equal(t, "LEAD_GENERATION", campaigns[0].Objective)
}

// TestMetaIntegrator_FetchActiveCampaigns_ErroNaPaginaAborta garante que erro
// em qualquer página descarta o resultado parcial.
func TestMetaIntegrator_FetchActiveCampaigns_ErroNaPaginaAborta(t *testing.T) {
	var requests int32
	var serverURL string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&requests, 1)
		if n == 1 {
			fmt.Fprintf(w, `{
				"data": [{"id":"CMP001","name":"Campanha A","status":"ACTIVE","effective_status":"ACTIVE"}],
				"paging": {"cursors":{"after":"PG1"},"next":"%s/act_123/campaigns?after=PG1"}
			}`, serverURL)
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Invalid cursor","type":"GraphMethodException","code":100}}`))
	}))
	defer server.Close()
	serverURL = server.URL

	cfg := testIntegratorConfig(server.URL)
	integrator := New(cfg, metaclient.NewClient(cfg))

	campaigns, err := integrator.FetchActiveCampaigns(context.Background())
	assert.Error(t, err)
	assert.Nil(t, campaigns)
}

func TestMetaIntegrator_FetchActiveAdSets_ConverteOrcamentosParaCentavos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/act_123/adsets", r.URL.Path)
		fmt.Fprint(w, `{
			"data": [
				{"id":"SET001","name":"Conjunto A","status":"ACTIVE","effective_status":"ACTIVE","campaign_id":"CMP001","daily_budget":"10000","budget_remaining":"8000"}
			],
			"paging": {"cursors":{"after":"PG1"}}
		}`)
	}))
	defer server.Close()

	cfg := testIntegratorConfig(server.URL)
	integrator := New(cfg, metaclient.NewClient(cfg))

	adsets, err := integrator.FetchActiveAdSets(context.Background())
	require.NoError(t, err)
	require.Len(t, adsets, 1)
	assert.Equal(t, int64(10000), adsets[0].DailyBudget)
	assert.Equal(t, int64(8000), adsets[0].BudgetRemaining)
	assert.Equal(t, int64(0), adsets[0].LifetimeBudget)
	assert.True(t, adsets[0].HasBudget())
}

func TestMetaIntegrator_FetchLeadsByAd_PreencheAdID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/AD001/leads", r.URL.Path)
		fmt.Fprint(w, `{
			"data": [
				{"id":"LEAD001","form_id":"FORM1","created_time":"2024-03-15T10:00:00+0000","field_data":[{"name":"email","values":["a@b.com"]}]}
			],
			"paging": {"cursors":{"after":"PG1"}}
		}`)
	}))
	defer server.Close()

	cfg := testIntegratorConfig(server.URL)
	integrator := New(cfg, metaclient.NewClient(cfg))

	leads, err := integrator.FetchLeadsByAd(context.Background(), "AD001")
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "LEAD001", leads[0].ExternalID)
	assert.Equal(t, "AD001", leads[0].AdID)
	assert.Equal(t, "a@b.com", leads[0].FieldData["email"])
}
