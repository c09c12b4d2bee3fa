package domain

import "time"

// Lead representa um lead capturado por um formulário de leadgen do Meta.
// FieldData guarda as respostas do formulário como pares campo/valor.
type Lead struct {
	ExternalID  string            `json:"external_id"`
	AdID        string            `json:"ad_id"`
	FormID      string            `json:"form_id"`
	FieldData   map[string]string `json:"field_data"`
	CreatedTime time.Time         `json:"created_time"`
	CreatedAt   time.Time         `json:"created_at"`
}
