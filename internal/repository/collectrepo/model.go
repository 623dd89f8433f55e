package collectrepo

import (
	"time"

	"gorm.io/datatypes"

	"gocollect/internal/domain"
)

// TableName é a tabela criada pela migração 00001.
const TableName = "product_collects"

// collectRow é o mapeamento GORM da tabela product_collects.
// Os índices espelham os da migração para que o AutoMigrate dos testes produza o mesmo esquema.
type collectRow struct {
	ID           string            `gorm:"primaryKey;size:36"`
	UserID       string            `gorm:"size:64;not null;uniqueIndex:uniq_user_sku,priority:1;index:product_collects_idx_user_status,priority:1"`
	SkuID        string            `gorm:"size:64;not null;uniqueIndex:uniq_user_sku,priority:2"`
	Status       string            `gorm:"size:20;not null;index:product_collects_idx_user_status,priority:2"`
	CollectGroup *string           `gorm:"size:50;index:product_collects_idx_collect_group"`
	Note         *string           `gorm:"type:text"`
	SortNumber   int               `gorm:"not null;index:product_collects_idx_sort_top,priority:2"`
	IsTop        bool              `gorm:"not null;index:product_collects_idx_sort_top,priority:1"`
	Metadata     datatypes.JSONMap
	CreateTime   time.Time         `gorm:"not null"`
	UpdateTime   time.Time         `gorm:"not null"`
}

func (collectRow) TableName() string { return TableName }

// Model expõe o modelo da tabela para o AutoMigrate (usado apenas em testes com SQLite).
func Model() interface{} { return &collectRow{} }

func toRow(c *domain.Collect) collectRow {
	var metadata datatypes.JSONMap
	if c.Metadata != nil {
		metadata = datatypes.JSONMap(c.Metadata)
	}
	return collectRow{
		ID:           c.ID,
		UserID:       c.UserID,
		SkuID:        c.SkuID,
		Status:       c.Status.String(),
		CollectGroup: c.CollectGroup,
		Note:         c.Note,
		SortNumber:   c.SortNumber,
		IsTop:        c.IsTop,
		Metadata:     metadata,
		CreateTime:   c.CreateTime.UTC(),
		UpdateTime:   c.UpdateTime.UTC(),
	}
}

func (r collectRow) toDomain() *domain.Collect {
	var metadata map[string]any
	if r.Metadata != nil {
		metadata = map[string]any(r.Metadata)
	}
	return &domain.Collect{
		Stamp: domain.Stamp{
			ID:         r.ID,
			CreateTime: r.CreateTime.UTC(),
			UpdateTime: r.UpdateTime.UTC(),
		},
		UserID:       r.UserID,
		SkuID:        r.SkuID,
		Status:       domain.CollectStatus(r.Status),
		CollectGroup: r.CollectGroup,
		Note:         r.Note,
		SortNumber:   r.SortNumber,
		IsTop:        r.IsTop,
		Metadata:     metadata,
	}
}

func toDomainList(rows []collectRow) []*domain.Collect {
	out := make([]*domain.Collect, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out
}
