package metaclient

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/ads-manager-api/infrastructure/integrator/meta/domain"
)

// RetryPolicy descreve o comportamento de retry de uma chamada: número máximo
// de tentativas e atraso entre elas. Leituras usam atraso linear
// (base × tentativa); a mutação de orçamento usa backoff exponencial
// (base × 2^(tentativa-1)).
type RetryPolicy struct {
	Attempts    int
	BaseDelay   time.Duration
	Exponential bool
}

func (p RetryPolicy) delay(attempt int) time.Duration {
	if p.Exponential {
		return p.BaseDelay * time.Duration(1<<(attempt-1))
	}
	return p.BaseDelay * time.Duration(attempt)
}

// withRetry executa fn até policy.Attempts vezes, repetindo apenas erros
// classificados como transientes ou de rate limit. Erros permanentes
// (autenticação, validação, 4xx) retornam imediatamente.
func withRetry[T any](ctx context.Context, policy RetryPolicy, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 1; attempt <= policy.Attempts; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}

		lastErr = err

		if !metadomain.IsRetryable(err) {
			return zero, err
		}

		if attempt == policy.Attempts {
			break
		}

		wait := policy.delay(attempt)
		logrus.WithFields(logrus.Fields{
			"attempt": attempt,
			"wait":    wait.String(),
			"error":   err.Error(),
		}).Warn("Chamada ao Meta falhou, tentando novamente")

		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}

	return zero, lastErr
}
