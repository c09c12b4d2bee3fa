package domain

import "time"

// RateLimitSnapshot é o estado mais recente de uso da cota da API do Meta,
// extraído dos cabeçalhos X-App-Usage / X-Business-Use-Case-Usage. Vive
// apenas em memória durante o processo; nunca é persistido.
type RateLimitSnapshot struct {
	CallCount            int       `json:"call_count"`
	TotalTime            int       `json:"total_time"`
	TotalCPUTime         int       `json:"total_cputime"`
	UsagePercent         float64   `json:"usage_percent"`
	EstimatedRegainAfter int       `json:"estimated_time_to_regain_access"`
	ObservedAt           time.Time `json:"observed_at"`
}
