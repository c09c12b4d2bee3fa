package metaclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-manager-api/internal/config"
)

func testClientConfig(serverURL string) *config.Config {
	cfg := &config.Config{}
	cfg.Meta = config.Meta{
		URL:            serverURL,
		AccessToken:    "test-token",
		RequestTimeout: 5 * time.Second,
		RetryAttempts:  3,
		RetryBaseDelay: time.Millisecond,
		PageSize:       25,
	}
	return cfg
}

func TestClient_Get_RepeteFalhaTransiente(t *testing.T) {
	var requests int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":{"message":"Service temporarily unavailable","type":"FacebookApiException","code":2,"fbtrace_id":"AbCdEf"}}`))
	}))
	defer server.Close()

	client := NewClient(testClientConfig(server.URL))

	_, err := client.Get(context.Background(), "act_123/campaigns", nil)
	require.Error(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&requests))

	var apiErr *metadomain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, metadomain.CodeServiceUnavailable, apiErr.Code)
	assert.Equal(t, "AbCdEf", apiErr.TraceID)
}

func TestClient_Get_ErroPermanenteNaoRepete(t *testing.T) {
	var requests int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Invalid OAuth access token","type":"OAuthException","code":190,"fbtrace_id":"XyZ"}}`))
	}))
	defer server.Close()

	client := NewClient(testClientConfig(server.URL))

	_, err := client.Get(context.Background(), "act_123/campaigns", nil)
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&requests))

	var apiErr *metadomain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsAuthError())
}

func TestClient_Get_SucessoAposFalhaTransiente(t *testing.T) {
	var requests int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&requests, 1)
		if n < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"message":"An unknown error occurred","type":"FacebookApiException","code":1}}`))
			return
		}
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := NewClient(testClientConfig(server.URL))

	body, err := client.Get(context.Background(), "act_123/campaigns", nil)
	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&requests))
	assert.JSONEq(t, `{"data":[]}`, string(body))
}

// TestClient_Post_FormEAutenticacao garante que a mutação vai como formulário
// url-encoded e que a credencial viaja no cabeçalho, nunca na query string.
func TestClient_Post_FormEAutenticacao(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Empty(t, r.URL.Query().Get("access_token"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "11000", r.PostForm.Get("daily_budget"))

		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := NewClient(testClientConfig(server.URL))

	form := url.Values{}
	form.Set("daily_budget", "11000")

	body, err := client.Post(context.Background(), "123456", form)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true}`, string(body))
}

func TestClient_Post_RepeteComBackoffExponencial(t *testing.T) {
	var requests int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&requests, 1)
		if n < 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":{"message":"Service temporarily unavailable","type":"FacebookApiException","code":2}}`))
			return
		}
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := NewClient(testClientConfig(server.URL))

	_, err := client.Post(context.Background(), "123456", url.Values{"daily_budget": {"11000"}})
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&requests))
}

func TestClient_RastreiaCabecalhoDeUso(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-App-Usage", `{"call_count":28,"total_time":15,"total_cputime":5}`)
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := NewClient(testClientConfig(server.URL))

	_, err := client.Get(context.Background(), "act_123/campaigns", nil)
	require.NoError(t, err)

	snapshot := client.RateLimit()
	require.NotNil(t, snapshot)
	assert.Equal(t, 28.0, snapshot.UsagePercent)
}

func TestClient_CabecalhoDeUsoMalformadoNaoQuebraARequisicao(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-App-Usage", `não é json`)
		w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := NewClient(testClientConfig(server.URL))

	body, err := client.Get(context.Background(), "act_123/campaigns", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[]}`, string(body))
	assert.Nil(t, client.RateLimit())
}

func TestRateLimitTracker_BusinessUsage(t *testing.T) {
	tracker := NewRateLimitTracker()

	headers := http.Header{}
	headers.Set("X-Business-Use-Case-Usage", `{"123456":[{"type":"ads_management","call_count":87,"total_time":12,"total_cputime":4,"estimated_time_to_regain_access":60}]}`)

	tracker.Update(headers)

	snapshot := tracker.Current()
	require.NotNil(t, snapshot)
	assert.Equal(t, 87, snapshot.CallCount)
	assert.Equal(t, 60, snapshot.EstimatedRegainAfter)

	assert.True(t, tracker.OverHighWater(50, 0))
	assert.False(t, tracker.OverHighWater(100, 0))
}

func TestRetryPolicy_Delay(t *testing.T) {
	linear := RetryPolicy{Attempts: 3, BaseDelay: 100 * time.Millisecond}
	assert.Equal(t, 100*time.Millisecond, linear.delay(1))
	assert.Equal(t, 200*time.Millisecond, linear.delay(2))
	assert.Equal(t, 300*time.Millisecond, linear.delay(3))

	exponential := RetryPolicy{Attempts: 3, BaseDelay: 100 * time.Millisecond, Exponential: true}
	assert.Equal(t, 100*time.Millisecond, exponential.delay(1))
	assert.Equal(t, 200*time.Millisecond, exponential.delay(2))
	assert.Equal(t, 400*time.Millisecond, exponential.delay(3))
}
