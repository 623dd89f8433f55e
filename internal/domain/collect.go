package domain

import (
	"fmt"
	"time"
)

// MaxUserIDLength é o tamanho máximo aceito para o identificador do usuário.
const MaxUserIDLength = 32

// Collect representa um SKU favoritado por um usuário (a Entidade).
// Existe no máximo um Collect por par (UserID, SkuID).
type Collect struct {
	Stamp

	UserID       string         `json:"user_id"`
	SkuID        string         `json:"sku_id"` // Referência externa ao catálogo; imutável após a criação
	Status       CollectStatus  `json:"status"`
	CollectGroup *string        `json:"collect_group,omitempty"` // nil = sem grupo
	Note         *string        `json:"note,omitempty"`
	SortNumber   int            `json:"sort_number"`
	IsTop        bool           `json:"is_top"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// NewCollect cria um registro ativo ainda não persistido.
func NewCollect(userID, skuID string, group, note *string) *Collect {
	return &Collect{
		UserID:       userID,
		SkuID:        skuID,
		Status:       StatusActive,
		CollectGroup: group,
		Note:         note,
	}
}

func (c *Collect) IsActive() bool    { return c.Status.IsActive() }
func (c *Collect) IsCancelled() bool { return c.Status.IsCancelled() }
func (c *Collect) IsHidden() bool    { return c.Status.IsHidden() }

func (c *Collect) Activate() { c.Status = StatusActive }
func (c *Collect) Cancel()   { c.Status = StatusCancelled }
func (c *Collect) Hide()     { c.Status = StatusHidden }

// SetTop fixa (ou desafixa) o registro no topo das listagens.
func (c *Collect) SetTop(isTop bool) { c.IsTop = isTop }

func (c *Collect) String() string {
	return fmt.Sprintf("Collect[%s] User:%s SKU:%s", c.ID, c.UserID, c.SkuID)
}

// GroupCount é uma linha da agregação de grupos de um usuário.
type GroupCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// SkuCount é uma linha do ranking de SKUs mais favoritados.
type SkuCount struct {
	SkuID        string `json:"sku_id"`
	CollectCount int64  `json:"collect_count"`
}

// UserStatistics são as contagens por estado de um usuário.
type UserStatistics struct {
	Total     int64 `json:"total"`
	Active    int64 `json:"active"`
	Cancelled int64 `json:"cancelled"`
	Hidden    int64 `json:"hidden"`
}

// GlobalStatistics são as contagens agregadas de toda a base.
type GlobalStatistics struct {
	TotalCollections      int64   `json:"total_collections"`
	ActiveCollections     int64   `json:"active_collections"`
	CancelledCollections  int64   `json:"cancelled_collections"`
	UniqueUsers           int64   `json:"unique_users"`
	UniqueSkus            int64   `json:"unique_skus"`
	AvgCollectionsPerUser float64 `json:"avg_collections_per_user"`
}

// CollectFilter define os filtros e a paginação da listagem administrativa.
type CollectFilter struct {
	UserID        string
	SkuID         string
	Status        *CollectStatus
	CollectGroup  *string
	IsTop         *bool
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	UpdatedAfter  *time.Time
	UpdatedBefore *time.Time
	Page          int
	Limit         int
}
