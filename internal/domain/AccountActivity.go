package domain

import "time"

// AccountActivity é uma entrada do log de atividades da conta de anúncios
// (endpoint /act_<id>/activities). Registro somente-inserção.
type AccountActivity struct {
	ID             int64     `json:"id"`
	EventType      string    `json:"event_type"`
	TranslatedType string    `json:"translated_event_type"`
	ObjectID       string    `json:"object_id"`
	ObjectName     string    `json:"object_name"`
	EventTime      time.Time `json:"event_time"`
	ExtraData      string    `json:"extra_data,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
