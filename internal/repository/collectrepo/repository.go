package collectrepo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"gocollect/internal/domain"
	apperror "gocollect/internal/errors"
	"gocollect/internal/pkg/logger"
)

// CollectRepository é o armazenamento dos favoritos sobre o GORM.
// Cada chamada é limitada por DBTimeout; não há cache nem lock interno.
type CollectRepository struct {
	DB        *gorm.DB
	DBTimeout time.Duration
	Logger    logger.Logger

	now func() time.Time
}

// NewCollectRepository cria e retorna uma nova instância do Repositório.
func NewCollectRepository(db *gorm.DB, dbTimeout time.Duration, log logger.Logger) *CollectRepository {
	return &CollectRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		Logger:    log,
		now:       time.Now,
	}
}

// WithClock substitui o relógio usado para carimbar create_time/update_time.
func (r *CollectRepository) WithClock(now func() time.Time) *CollectRepository {
	r.now = now
	return r
}

// --- Escrita ---

// Save insere o registro quando ainda não tem ID e atualiza caso contrário.
// user_id, sku_id e create_time nunca são reescritos numa atualização.
func (r *CollectRepository) Save(ctx context.Context, c *domain.Collect) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if err := r.save(r.DB.WithContext(ctxTimeout), c); err != nil {
		r.Logger.Error("Falha ao salvar favorito", err)
		return err
	}

	r.Logger.Debug("Favorito salvo", map[string]interface{}{
		"collect_id": c.ID,
		"user_id":    c.UserID,
		"sku_id":     c.SkuID,
		"status":     c.Status,
	})
	return nil
}

// SaveBatch persiste todos os registros numa única transação.
// Qualquer falha desfaz o lote inteiro e os registros novos voltam a não ter ID.
func (r *CollectRepository) SaveBatch(ctx context.Context, collects []*domain.Collect) error {
	if len(collects) == 0 {
		return nil
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	stamps := make([]domain.Stamp, len(collects))
	for i, c := range collects {
		stamps[i] = c.Stamp
	}

	err := r.DB.WithContext(ctxTimeout).Transaction(func(tx *gorm.DB) error {
		for _, c := range collects {
			if err := r.save(tx, c); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		for i, c := range collects {
			c.Stamp = stamps[i]
		}
		r.Logger.Error("Falha ao salvar lote de favoritos (rollback)", err)
		return err
	}

	r.Logger.Debug("Lote de favoritos salvo", map[string]interface{}{"count": len(collects)})
	return nil
}

func (r *CollectRepository) save(db *gorm.DB, c *domain.Collect) error {
	isNew := c.IsNew()
	previous := c.Stamp

	if err := c.Touch(r.now()); err != nil {
		return apperror.NewInternalError("falha ao gerar o ID do favorito", err)
	}
	row := toRow(c)

	if isNew {
		if err := db.Create(&row).Error; err != nil {
			c.Stamp = previous
			return translateWriteError("falha ao inserir favorito", err)
		}
		return nil
	}

	res := db.Model(&collectRow{}).
		Where("id = ?", row.ID).
		Updates(map[string]interface{}{
			"status":        row.Status,
			"collect_group": row.CollectGroup,
			"note":          row.Note,
			"sort_number":   row.SortNumber,
			"is_top":        row.IsTop,
			"metadata":      row.Metadata,
			"update_time":   row.UpdateTime,
		})
	if res.Error != nil {
		c.Stamp = previous
		return translateWriteError("falha ao atualizar favorito", res.Error)
	}
	if res.RowsAffected == 0 {
		c.Stamp = previous
		return apperror.NewCollectNotFoundError(row.ID)
	}
	return nil
}

// Remove exclui fisicamente o registro. Remover um registro inexistente não é erro.
func (r *CollectRepository) Remove(ctx context.Context, c *domain.Collect) error {
	if c == nil || c.ID == "" {
		return apperror.NewValidationError("o favorito a remover não possui ID.")
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if err := r.DB.WithContext(ctxTimeout).Where("id = ?", c.ID).Delete(&collectRow{}).Error; err != nil {
		r.Logger.Error("Falha ao remover favorito", err)
		return apperror.NewDBError("falha ao remover favorito", err)
	}

	r.Logger.Debug("Favorito removido", map[string]interface{}{"collect_id": c.ID})
	return nil
}

// PurgeCancelledOlderThan exclui os registros cancelados com update_time estritamente anterior ao corte.
func (r *CollectRepository) PurgeCancelledOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	res := r.DB.WithContext(ctxTimeout).
		Where("status = ? AND update_time < ?", domain.StatusCancelled.String(), cutoff.UTC()).
		Delete(&collectRow{})
	if res.Error != nil {
		r.Logger.Error("Falha ao expurgar favoritos cancelados", res.Error)
		return 0, apperror.NewDBError("falha ao expurgar favoritos cancelados", res.Error)
	}
	return res.RowsAffected, nil
}

// --- Leitura ---

// FindByID retorna (nil, nil) quando o registro não existe.
func (r *CollectRepository) FindByID(ctx context.Context, id string) (*domain.Collect, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var rows []collectRow
	if err := r.DB.WithContext(ctxTimeout).Where("id = ?", id).Limit(1).Find(&rows).Error; err != nil {
		return nil, r.readError("falha ao buscar favorito por ID", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].toDomain(), nil
}

// FindByIDs ignora silenciosamente os IDs inexistentes.
func (r *CollectRepository) FindByIDs(ctx context.Context, ids []string) ([]*domain.Collect, error) {
	if len(ids) == 0 {
		return []*domain.Collect{}, nil
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var rows []collectRow
	err := r.DB.WithContext(ctxTimeout).
		Where("id IN ?", ids).
		Order("create_time DESC").Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, r.readError("falha ao buscar favoritos por IDs", err)
	}
	return toDomainList(rows), nil
}

// FindByUserAndSku retorna (nil, nil) quando o par não existe.
func (r *CollectRepository) FindByUserAndSku(ctx context.Context, userID, skuID string) (*domain.Collect, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var rows []collectRow
	err := r.DB.WithContext(ctxTimeout).
		Where("user_id = ? AND sku_id = ?", userID, skuID).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return nil, r.readError("falha ao buscar favorito do usuário", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].toDomain(), nil
}

// FindByUser lista os registros do usuário na ordem padrão
// (is_top DESC, sort_number ASC, create_time DESC).
func (r *CollectRepository) FindByUser(ctx context.Context, userID string, status *domain.CollectStatus) ([]*domain.Collect, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var rows []collectRow
	q := r.DB.WithContext(ctxTimeout).Where("user_id = ?", userID)
	err := defaultOrder(withStatus(q, status)).Find(&rows).Error
	if err != nil {
		return nil, r.readError("falha ao listar favoritos do usuário", err)
	}
	return toDomainList(rows), nil
}

// FindByUserAndGroup lista um grupo do usuário; group nil seleciona os registros sem grupo.
func (r *CollectRepository) FindByUserAndGroup(ctx context.Context, userID string, group *string, status *domain.CollectStatus) ([]*domain.Collect, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	q := r.DB.WithContext(ctxTimeout).Where("user_id = ?", userID)
	if group == nil {
		q = q.Where("collect_group IS NULL")
	} else {
		q = q.Where("collect_group = ?", *group)
	}

	var rows []collectRow
	if err := defaultOrder(withStatus(q, status)).Find(&rows).Error; err != nil {
		return nil, r.readError("falha ao listar grupo de favoritos", err)
	}
	return toDomainList(rows), nil
}

// FindTopByUser lista os registros ativos fixados no topo.
func (r *CollectRepository) FindTopByUser(ctx context.Context, userID string, limit int) ([]*domain.Collect, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var rows []collectRow
	err := r.DB.WithContext(ctxTimeout).
		Where("user_id = ? AND status = ? AND is_top = ?", userID, domain.StatusActive.String(), true).
		Order("sort_number ASC").Order("create_time DESC").Order("id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, r.readError("falha ao listar favoritos do topo", err)
	}
	return toDomainList(rows), nil
}

// FindRecentByUser lista os registros ativos mais recentes.
func (r *CollectRepository) FindRecentByUser(ctx context.Context, userID string, limit int) ([]*domain.Collect, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var rows []collectRow
	err := r.DB.WithContext(ctxTimeout).
		Where("user_id = ? AND status = ?", userID, domain.StatusActive.String()).
		Order("create_time DESC").Order("id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, r.readError("falha ao listar favoritos recentes", err)
	}
	return toDomainList(rows), nil
}

// FindBySku lista quem favoritou o SKU, do mais recente para o mais antigo.
func (r *CollectRepository) FindBySku(ctx context.Context, skuID string, status *domain.CollectStatus) ([]*domain.Collect, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var rows []collectRow
	q := withStatus(r.DB.WithContext(ctxTimeout).Where("sku_id = ?", skuID), status)
	if err := q.Order("create_time DESC").Order("id DESC").Find(&rows).Error; err != nil {
		return nil, r.readError("falha ao listar favoritos do SKU", err)
	}
	return toDomainList(rows), nil
}

// Search aplica os filtros administrativos e retorna a página pedida e o total sem paginação.
func (r *CollectRepository) Search(ctx context.Context, filter domain.CollectFilter) ([]*domain.Collect, int64, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	db := r.DB.WithContext(ctxTimeout)

	var total int64
	if err := applyFilter(db.Model(&collectRow{}), filter).Count(&total).Error; err != nil {
		return nil, 0, r.readError("falha ao contar favoritos", err)
	}

	q := applyFilter(db, filter)
	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		q = q.Offset((page - 1) * filter.Limit).Limit(filter.Limit)
	}

	var rows []collectRow
	if err := defaultOrder(q).Find(&rows).Error; err != nil {
		return nil, 0, r.readError("falha ao pesquisar favoritos", err)
	}
	return toDomainList(rows), total, nil
}

// --- Contagens e agregações ---

func (r *CollectRepository) CountByUser(ctx context.Context, userID string, status *domain.CollectStatus) (int64, error) {
	return r.count(ctx, "falha ao contar favoritos do usuário", func(q *gorm.DB) *gorm.DB {
		return withStatus(q.Where("user_id = ?", userID), status)
	})
}

func (r *CollectRepository) CountBySku(ctx context.Context, skuID string, status *domain.CollectStatus) (int64, error) {
	return r.count(ctx, "falha ao contar favoritos do SKU", func(q *gorm.DB) *gorm.DB {
		return withStatus(q.Where("sku_id = ?", skuID), status)
	})
}

func (r *CollectRepository) CountAll(ctx context.Context, status *domain.CollectStatus) (int64, error) {
	return r.count(ctx, "falha ao contar favoritos", func(q *gorm.DB) *gorm.DB {
		return withStatus(q, status)
	})
}

func (r *CollectRepository) CountDistinctUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, "falha ao contar usuários distintos", func(q *gorm.DB) *gorm.DB {
		return q.Distinct("user_id")
	})
}

func (r *CollectRepository) CountDistinctSkus(ctx context.Context) (int64, error) {
	return r.count(ctx, "falha ao contar SKUs distintos", func(q *gorm.DB) *gorm.DB {
		return q.Distinct("sku_id")
	})
}

func (r *CollectRepository) count(ctx context.Context, msg string, scope func(*gorm.DB) *gorm.DB) (int64, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var n int64
	if err := scope(r.DB.WithContext(ctxTimeout).Model(&collectRow{})).Count(&n).Error; err != nil {
		return 0, r.readError(msg, err)
	}
	return n, nil
}

// GroupsByUser agrega os registros ativos com grupo por nome (count DESC, name ASC).
func (r *CollectRepository) GroupsByUser(ctx context.Context, userID string) ([]domain.GroupCount, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var rows []struct {
		GroupName    string
		CollectCount int64
	}
	err := r.DB.WithContext(ctxTimeout).
		Model(&collectRow{}).
		Select("collect_group AS group_name, COUNT(id) AS collect_count").
		Where("user_id = ? AND status = ? AND collect_group IS NOT NULL", userID, domain.StatusActive.String()).
		Group("collect_group").
		Order("collect_count DESC").Order("collect_group ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, r.readError("falha ao agregar grupos do usuário", err)
	}

	out := make([]domain.GroupCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.GroupCount{Name: row.GroupName, Count: row.CollectCount})
	}
	return out, nil
}

// PopularSkus ranqueia os SKUs pelo número de registros ativos (count DESC, sku_id ASC).
func (r *CollectRepository) PopularSkus(ctx context.Context, limit int) ([]domain.SkuCount, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var rows []domain.SkuCount
	err := r.DB.WithContext(ctxTimeout).
		Model(&collectRow{}).
		Select("sku_id, COUNT(id) AS collect_count").
		Where("status = ?", domain.StatusActive.String()).
		Group("sku_id").
		Order("collect_count DESC").Order("sku_id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, r.readError("falha ao ranquear SKUs populares", err)
	}
	if rows == nil {
		rows = []domain.SkuCount{}
	}
	return rows, nil
}

// --- Helpers ---

func defaultOrder(q *gorm.DB) *gorm.DB {
	return q.Order("is_top DESC").Order("sort_number ASC").Order("create_time DESC").Order("id DESC")
}

func applyFilter(q *gorm.DB, filter domain.CollectFilter) *gorm.DB {
	if filter.UserID != "" {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if filter.SkuID != "" {
		q = q.Where("sku_id = ?", filter.SkuID)
	}
	q = withStatus(q, filter.Status)
	if filter.CollectGroup != nil {
		q = q.Where("collect_group = ?", *filter.CollectGroup)
	}
	if filter.IsTop != nil {
		q = q.Where("is_top = ?", *filter.IsTop)
	}
	if filter.CreatedAfter != nil {
		q = q.Where("create_time >= ?", filter.CreatedAfter.UTC())
	}
	if filter.CreatedBefore != nil {
		q = q.Where("create_time <= ?", filter.CreatedBefore.UTC())
	}
	if filter.UpdatedAfter != nil {
		q = q.Where("update_time >= ?", filter.UpdatedAfter.UTC())
	}
	if filter.UpdatedBefore != nil {
		q = q.Where("update_time <= ?", filter.UpdatedBefore.UTC())
	}
	return q
}

func withStatus(q *gorm.DB, status *domain.CollectStatus) *gorm.DB {
	if status == nil {
		return q
	}
	return q.Where("status = ?", status.String())
}

func (r *CollectRepository) readError(msg string, err error) error {
	r.Logger.Error(msg, err)
	return apperror.NewDBError(msg, err)
}

func translateWriteError(msg string, err error) error {
	if isUniqueViolation(err) {
		return apperror.NewConstraintViolationError("já existe um favorito para este usuário e SKU.", err)
	}
	return apperror.NewDBError(msg, err)
}

// isUniqueViolation reconhece a violação de uniq_user_sku no PostgreSQL (lib/pq, código 23505),
// no erro traduzido pelo GORM e na mensagem do SQLite.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint")
}
