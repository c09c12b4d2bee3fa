package metaclient

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-manager-api/internal/domain"
)

const (
	appUsageHeader      = "X-App-Usage"
	businessUsageHeader = "X-Business-Use-Case-Usage"
)

type appUsage struct {
	CallCount    int `json:"call_count"`
	TotalTime    int `json:"total_time"`
	TotalCPUTime int `json:"total_cputime"`
}

type businessUsageEntry struct {
	Type                 string `json:"type"`
	CallCount            int    `json:"call_count"`
	TotalTime            int    `json:"total_time"`
	TotalCPUTime         int    `json:"total_cputime"`
	EstimatedRegainAfter int    `json:"estimated_time_to_regain_access"`
}

// RateLimitTracker mantém o snapshot mais recente de uso da cota, extraído
// dos cabeçalhos de cada resposta. Última resposta vence; o snapshot informa
// apenas a heurística de auto-throttle, nunca uma garantia de correção.
type RateLimitTracker struct {
	mu       sync.RWMutex
	snapshot *domain.RateLimitSnapshot
}

func NewRateLimitTracker() *RateLimitTracker {
	return &RateLimitTracker{}
}

// Update interpreta os cabeçalhos de uso da resposta. Cabeçalho malformado é
// registrado e ignorado: nunca pode quebrar a requisição que o carregou.
func (t *RateLimitTracker) Update(headers http.Header) {
	snapshot := &domain.RateLimitSnapshot{ObservedAt: time.Now()}
	found := false

	if raw := headers.Get(appUsageHeader); raw != "" {
		var usage appUsage
		if err := json.Unmarshal([]byte(raw), &usage); err != nil {
			logrus.WithError(err).WithField("header", appUsageHeader).
				Warn("Cabeçalho de uso da API malformado, ignorando")
		} else {
			// Os valores de X-App-Usage são percentuais da janela corrente.
			snapshot.UsagePercent = maxPercent(usage)
			found = true
		}
	}

	if raw := headers.Get(businessUsageHeader); raw != "" {
		var usage map[string][]businessUsageEntry
		if err := json.Unmarshal([]byte(raw), &usage); err != nil {
			logrus.WithError(err).WithField("header", businessUsageHeader).
				Warn("Cabeçalho de uso da API malformado, ignorando")
		} else {
			for _, entries := range usage {
				for _, entry := range entries {
					if entry.CallCount > snapshot.CallCount {
						snapshot.CallCount = entry.CallCount
						snapshot.TotalTime = entry.TotalTime
						snapshot.TotalCPUTime = entry.TotalCPUTime
						snapshot.EstimatedRegainAfter = entry.EstimatedRegainAfter
					}
				}
			}
			found = true
		}
	}

	if !found {
		return
	}

	t.mu.Lock()
	t.snapshot = snapshot
	t.mu.Unlock()
}

// Current retorna o snapshot mais recente, ou nil se nenhum cabeçalho de uso
// foi observado ainda.
func (t *RateLimitTracker) Current() *domain.RateLimitSnapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.snapshot
}

// OverHighWater indica se o uso rastreado ultrapassou a marca d'água
// configurada, seja pela contagem de chamadas na janela da plataforma, seja
// pelo percentual de uso reportado.
func (t *RateLimitTracker) OverHighWater(maxCalls int, maxUsagePercent float64) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.snapshot == nil {
		return false
	}

	if maxCalls > 0 && t.snapshot.CallCount > maxCalls {
		return true
	}

	return maxUsagePercent > 0 && t.snapshot.UsagePercent >= maxUsagePercent
}

func maxPercent(usage appUsage) float64 {
	max := usage.CallCount
	if usage.TotalTime > max {
		max = usage.TotalTime
	}
	if usage.TotalCPUTime > max {
		max = usage.TotalCPUTime
	}
	return float64(max)
}
