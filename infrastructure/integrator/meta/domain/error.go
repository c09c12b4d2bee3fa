package metadomain

import (
	"errors"
	"fmt"
	"net"
	"net/url"
)

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// APIError é o erro classificado devolvido pelo cliente. Chamadores decidem
// pelo Code/Type/status HTTP, nunca pelo texto da mensagem.
type APIError struct {
	StatusCode int
	Code       int
	Subcode    int
	Type       string
	Message    string
	TraceID    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("meta api error: code=%d subcode=%d type=%s trace=%s: %s",
		e.Code, e.Subcode, e.Type, e.TraceID, e.Message)
}

// Códigos da Graph API com significado conhecido.
const (
	// Código 2 é o clássico "Service temporarily unavailable"; o código 1
	// ("An unknown error occurred") também indica falha temporária do backend.
	CodeUnknownError       = 1
	CodeServiceUnavailable = 2
	CodeTooManyCalls       = 4
	CodeUserTooManyCalls   = 17
	CodePageRequestLimit   = 32
	CodeCustomRequestLimit = 613
	CodeSessionInvalid     = 102
	CodeAccessTokenExpired = 190
)

// IsTransient indica falha temporária do backend: HTTP 5xx ou as assinaturas
// de erro "temporariamente indisponível" da Graph API.
func (e *APIError) IsTransient() bool {
	if e.StatusCode >= 500 {
		return true
	}
	return e.Code == CodeUnknownError || e.Code == CodeServiceUnavailable
}

// IsThrottled indica que a plataforma aplicou rate limit à chamada.
func (e *APIError) IsThrottled() bool {
	switch e.Code {
	case CodeTooManyCalls, CodeUserTooManyCalls, CodePageRequestLimit, CodeCustomRequestLimit:
		return true
	}
	return e.StatusCode == 429
}

// IsAuthError indica falha de autenticação/credencial: nunca deve ser
// repetida automaticamente.
func (e *APIError) IsAuthError() bool {
	if e.Code == CodeSessionInvalid || e.Code == CodeAccessTokenExpired {
		return true
	}
	return e.Type == "OAuthException" && !e.IsThrottled() && !e.IsTransient()
}

// IsRetryable classifica qualquer erro do cliente: erros de rede e timeouts
// contam como transientes; erros 4xx (exceto throttling) são permanentes.
func IsRetryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.IsTransient() || apiErr.IsThrottled()
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

// IsThrottledError é a variante de IsThrottled para erros já embrulhados.
func IsThrottledError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.IsThrottled()
	}
	return false
}

// IsNotFound indica que o objeto não existe ou não é visível para a credencial.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404 || apiErr.Code == 100
	}
	return false
}
