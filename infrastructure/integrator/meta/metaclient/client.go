package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

// Client é o cliente resiliente da Graph API: monta requisições autenticadas,
// repete falhas transientes com backoff, classifica erros e se auto-limita
// com base nos cabeçalhos de uso. Não escreve no banco local.
type Client interface {
	Get(ctx context.Context, path string, params url.Values) ([]byte, error)
	Post(ctx context.Context, path string, form url.Values) ([]byte, error)
	GetAdSetByID(ctx context.Context, adsetID string) (*metadomain.AdSet, error)
	UpdateAdSet(ctx context.Context, adsetID string, form url.Values) (json.RawMessage, error)
	RateLimit() *domain.RateLimitSnapshot
}

type MetaClient struct {
	cfg        *config.Config
	httpClient *http.Client
	tracker    *RateLimitTracker
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Meta.RequestTimeout,
		},
		tracker: NewRateLimitTracker(),
	}
}

// Get executa uma leitura com retry linear (base_delay × tentativa).
func (c *MetaClient) Get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	policy := RetryPolicy{
		Attempts:  c.cfg.Meta.RetryAttempts,
		BaseDelay: c.cfg.Meta.RetryBaseDelay,
	}

	return withRetry(ctx, policy, func() ([]byte, error) {
		return c.do(ctx, http.MethodGet, path, params, nil)
	})
}

// Post executa uma mutação com backoff exponencial (base_delay × 2^(n-1)).
func (c *MetaClient) Post(ctx context.Context, path string, form url.Values) ([]byte, error) {
	policy := RetryPolicy{
		Attempts:    c.cfg.Meta.RetryAttempts,
		BaseDelay:   c.cfg.Meta.RetryBaseDelay,
		Exponential: true,
	}

	return withRetry(ctx, policy, func() ([]byte, error) {
		return c.do(ctx, http.MethodPost, path, nil, form)
	})
}

// RateLimit expõe o snapshot de uso mais recente para observabilidade.
func (c *MetaClient) RateLimit() *domain.RateLimitSnapshot {
	return c.tracker.Current()
}

// do é a única função que toca a rede. A credencial vai sempre no cabeçalho
// Authorization, nunca na query string.
func (c *MetaClient) do(ctx context.Context, method, path string, params url.Values, form url.Values) ([]byte, error) {
	c.throttleIfNeeded(ctx)

	endpoint := fmt.Sprintf("%s/%s", c.cfg.Meta.URL, strings.TrimPrefix(path, "/"))
	if len(params) > 0 {
		endpoint = endpoint + "?" + params.Encode()
	}

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.cfg.Meta.AccessToken)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao fazer a requisição: %w", err)
	}
	defer resp.Body.Close()

	c.tracker.Update(resp.Header)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o corpo da resposta: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, c.buildAPIError(resp.StatusCode, data)
	}

	return data, nil
}

// buildAPIError constrói o erro estruturado a partir do corpo de erro do
// Meta: código numérico, tipo, trace id e mensagem. Chamadores decidem pelo
// código/tipo, nunca pelo texto.
func (c *MetaClient) buildAPIError(statusCode int, body []byte) error {
	apiErr := &metadomain.APIError{StatusCode: statusCode}

	var errResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error.Code == 0 && errResp.Error.Message == "" {
		apiErr.Message = fmt.Sprintf("resposta de erro sem corpo estruturado (HTTP %d)", statusCode)
		return apiErr
	}

	apiErr.Code = errResp.Error.Code
	apiErr.Subcode = errResp.Error.ErrorSubcode
	apiErr.Type = errResp.Error.Type
	apiErr.Message = errResp.Error.Message
	apiErr.TraceID = errResp.Error.FBTraceID

	return apiErr
}

// throttleIfNeeded dorme antes da próxima chamada quando o uso rastreado
// ultrapassa a marca d'água, independentemente do contador de retries.
func (c *MetaClient) throttleIfNeeded(ctx context.Context) {
	if !c.tracker.OverHighWater(c.cfg.Meta.RateLimitCalls, c.cfg.Meta.RateLimitPercent) {
		return
	}

	pause := c.cfg.Meta.ThrottlePause
	if snapshot := c.tracker.Current(); snapshot != nil && snapshot.EstimatedRegainAfter > 0 {
		if estimated := time.Duration(snapshot.EstimatedRegainAfter) * time.Second; estimated > pause {
			pause = estimated
		}
	}

	logrus.WithField("pause", pause.String()).Warn("Uso da API próximo do limite, pausando antes da próxima chamada")

	select {
	case <-time.After(pause):
	case <-ctx.Done():
	}
}
