package domain

// EntityStatus representa o status de ciclo de vida de uma entidade do Meta.
// INACTIVE é um status exclusivamente local: é atribuído quando a entidade
// deixa de aparecer no conjunto ativo retornado pela API.
type EntityStatus string

const (
	StatusActive   EntityStatus = "ACTIVE"
	StatusPaused   EntityStatus = "PAUSED"
	StatusDeleted  EntityStatus = "DELETED"
	StatusArchived EntityStatus = "ARCHIVED"
	StatusInactive EntityStatus = "INACTIVE"
)

// IsTerminal indica se o status é um estado final no Meta (entidade não pode
// mais ser alterada via API).
func (s EntityStatus) IsTerminal() bool {
	return s == StatusDeleted || s == StatusArchived
}

// EntityFamily identifica uma família de entidades sincronizáveis.
type EntityFamily string

const (
	FamilyCampaigns EntityFamily = "campaigns"
	FamilyAdSets    EntityFamily = "adsets"
	FamilyAds       EntityFamily = "ads"
)

// SyncSummary resume o resultado de um ciclo de sincronização de uma família.
type SyncSummary struct {
	Family         EntityFamily `json:"family"`
	Synced         int          `json:"synced"`
	MarkedInactive int          `json:"marked_inactive"`
	RowErrors      int          `json:"row_errors"`
}
