package collectservice

import (
	"context"
	"math"
	"time"

	"gocollect/internal/domain"
	apperror "gocollect/internal/errors"
	"gocollect/internal/pkg/logger"
)

const (
	DefaultTopLimit     = 10
	DefaultRecentLimit  = 20
	DefaultPopularLimit = 100
	DefaultCleanupDays  = 30

	defaultPageSize = 20
	maxPageSize     = 100
)

// CollectRepository define o contrato (interface) que este Serviço espera
// da camada de Persistência. Buscas retornam (nil, nil) quando o registro não existe.
type CollectRepository interface {
	Save(ctx context.Context, c *domain.Collect) error
	SaveBatch(ctx context.Context, collects []*domain.Collect) error
	Remove(ctx context.Context, c *domain.Collect) error
	PurgeCancelledOlderThan(ctx context.Context, cutoff time.Time) (int64, error)

	FindByID(ctx context.Context, id string) (*domain.Collect, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Collect, error)
	FindByUserAndSku(ctx context.Context, userID, skuID string) (*domain.Collect, error)
	FindByUser(ctx context.Context, userID string, status *domain.CollectStatus) ([]*domain.Collect, error)
	FindByUserAndGroup(ctx context.Context, userID string, group *string, status *domain.CollectStatus) ([]*domain.Collect, error)
	FindTopByUser(ctx context.Context, userID string, limit int) ([]*domain.Collect, error)
	FindRecentByUser(ctx context.Context, userID string, limit int) ([]*domain.Collect, error)
	FindBySku(ctx context.Context, skuID string, status *domain.CollectStatus) ([]*domain.Collect, error)
	Search(ctx context.Context, filter domain.CollectFilter) ([]*domain.Collect, int64, error)

	CountByUser(ctx context.Context, userID string, status *domain.CollectStatus) (int64, error)
	CountBySku(ctx context.Context, skuID string, status *domain.CollectStatus) (int64, error)
	CountAll(ctx context.Context, status *domain.CollectStatus) (int64, error)
	CountDistinctUsers(ctx context.Context) (int64, error)
	CountDistinctSkus(ctx context.Context) (int64, error)
	GroupsByUser(ctx context.Context, userID string) ([]domain.GroupCount, error)
	PopularSkus(ctx context.Context, limit int) ([]domain.SkuCount, error)
}

// Service concentra as regras de negócio da coleção de favoritos.
// Não mantém estado mutável próprio nem locks: a unicidade (user_id, sku_id) é garantida pelo DB.
type Service struct {
	repo            CollectRepository
	logger          logger.Logger
	now             func() time.Time
	collectionLimit int
}

// Option customiza o Service na construção.
type Option func(*Service)

// WithClock substitui o relógio usado no cálculo do corte de retenção.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithCollectionLimit define a quantidade máxima de favoritos ativos por usuário (0 = sem limite).
func WithCollectionLimit(limit int) Option {
	return func(s *Service) { s.collectionLimit = limit }
}

// NewService cria e retorna uma nova instância do Serviço de Favoritos.
func NewService(repo CollectRepository, log logger.Logger, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		logger: log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// --- Transições de estado ---

// AddToCollection cria o favorito ou reativa um registro cancelado/oculto.
// Na reativação, group e note só são sobrescritos quando informados.
func (s *Service) AddToCollection(ctx context.Context, userID, skuID string, group, note *string) (*domain.Collect, error) {
	if err := validatePair(userID, skuID); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByUserAndSku(ctx, userID, skuID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		if existing.IsActive() {
			s.logger.Warn("SKU já favoritado", map[string]interface{}{"user_id": userID, "sku_id": skuID})
			return nil, apperror.NewAlreadyCollectedError()
		}
		if err := s.checkLimit(ctx, userID, 1); err != nil {
			return nil, err
		}

		existing.Activate()
		if group != nil {
			existing.CollectGroup = group
		}
		if note != nil {
			existing.Note = note
		}
		if err := s.repo.Save(ctx, existing); err != nil {
			return nil, err
		}

		s.logger.Info("Favorito reativado", map[string]interface{}{"collect_id": existing.ID, "user_id": userID, "sku_id": skuID})
		return existing, nil
	}

	if err := s.checkLimit(ctx, userID, 1); err != nil {
		return nil, err
	}

	collect := domain.NewCollect(userID, skuID, group, note)
	if err := s.repo.Save(ctx, collect); err != nil {
		return nil, err
	}

	s.logger.Info("Favorito criado", map[string]interface{}{"collect_id": collect.ID, "user_id": userID, "sku_id": skuID})
	return collect, nil
}

// RemoveFromCollection exclui fisicamente o favorito.
func (s *Service) RemoveFromCollection(ctx context.Context, userID, skuID string) error {
	existing, err := s.findExisting(ctx, userID, skuID)
	if err != nil {
		return err
	}

	if err := s.repo.Remove(ctx, existing); err != nil {
		return err
	}

	s.logger.Info("Favorito removido", map[string]interface{}{"collect_id": existing.ID, "user_id": userID, "sku_id": skuID})
	return nil
}

func (s *Service) CancelCollection(ctx context.Context, userID, skuID string) (*domain.Collect, error) {
	return s.transition(ctx, userID, skuID, domain.StatusCancelled)
}

func (s *Service) RestoreCollection(ctx context.Context, userID, skuID string) (*domain.Collect, error) {
	return s.transition(ctx, userID, skuID, domain.StatusActive)
}

// HideCollection oculta o favorito sem cancelá-lo.
func (s *Service) HideCollection(ctx context.Context, userID, skuID string) (*domain.Collect, error) {
	return s.transition(ctx, userID, skuID, domain.StatusHidden)
}

func (s *Service) transition(ctx context.Context, userID, skuID string, status domain.CollectStatus) (*domain.Collect, error) {
	existing, err := s.findExisting(ctx, userID, skuID)
	if err != nil {
		return nil, err
	}

	applyStatus(existing, status)
	if err := s.repo.Save(ctx, existing); err != nil {
		return nil, err
	}

	s.logger.Info("Status do favorito alterado", map[string]interface{}{
		"collect_id": existing.ID,
		"user_id":    userID,
		"sku_id":     skuID,
		"status":     status,
	})
	return existing, nil
}

// ToggleCollection alterna entre ativo e cancelado; sem registro, delega para AddToCollection.
// group e note só são usados na criação.
func (s *Service) ToggleCollection(ctx context.Context, userID, skuID string, group, note *string) (*domain.Collect, error) {
	if err := validatePair(userID, skuID); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByUserAndSku(ctx, userID, skuID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return s.AddToCollection(ctx, userID, skuID, group, note)
	}

	if existing.IsActive() {
		existing.Cancel()
	} else {
		if err := s.checkLimit(ctx, userID, 1); err != nil {
			return nil, err
		}
		existing.Activate()
	}

	if err := s.repo.Save(ctx, existing); err != nil {
		return nil, err
	}

	s.logger.Info("Favorito alternado", map[string]interface{}{"collect_id": existing.ID, "status": existing.Status})
	return existing, nil
}

// IsCollected indica se existe um favorito ATIVO para o par.
func (s *Service) IsCollected(ctx context.Context, userID, skuID string) (bool, error) {
	existing, err := s.repo.FindByUserAndSku(ctx, userID, skuID)
	if err != nil {
		return false, err
	}
	return existing != nil && existing.IsActive(), nil
}

// --- Atualizações de atributo ---

// UpdateCollectionGroup altera o grupo pelo ID do registro; group nil desagrupa.
func (s *Service) UpdateCollectionGroup(ctx context.Context, collectID string, group *string) (*domain.Collect, error) {
	collect, err := s.GetCollection(ctx, collectID)
	if err != nil {
		return nil, err
	}

	collect.CollectGroup = group
	if err := s.repo.Save(ctx, collect); err != nil {
		return nil, err
	}
	return collect, nil
}

// UpdateCollectionNote retorna false (sem erro) quando o par não tem registro.
func (s *Service) UpdateCollectionNote(ctx context.Context, userID, skuID string, note *string) (bool, error) {
	return s.updateByPair(ctx, userID, skuID, func(c *domain.Collect) { c.Note = note })
}

// UpdateCollectionTop retorna false (sem erro) quando o par não tem registro.
func (s *Service) UpdateCollectionTop(ctx context.Context, userID, skuID string, isTop bool) (bool, error) {
	return s.updateByPair(ctx, userID, skuID, func(c *domain.Collect) { c.SetTop(isTop) })
}

// UpdateCollectionSort retorna false (sem erro) quando o par não tem registro.
func (s *Service) UpdateCollectionSort(ctx context.Context, userID, skuID string, sortNumber int) (bool, error) {
	if sortNumber < 0 {
		return false, apperror.NewValidationError("sort_number não pode ser negativo.")
	}
	return s.updateByPair(ctx, userID, skuID, func(c *domain.Collect) { c.SortNumber = sortNumber })
}

func (s *Service) updateByPair(ctx context.Context, userID, skuID string, mutate func(*domain.Collect)) (bool, error) {
	existing, err := s.repo.FindByUserAndSku(ctx, userID, skuID)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}

	mutate(existing)
	if err := s.repo.Save(ctx, existing); err != nil {
		return false, err
	}
	return true, nil
}

// --- Operações em lote e manutenção ---

// BatchAddToCollection cria os favoritos que ainda não existem e os persiste num único commit.
// SKUs já presentes (em qualquer status) e repetidos na própria lista são ignorados.
func (s *Service) BatchAddToCollection(ctx context.Context, userID string, skuIDs []string, group *string) ([]*domain.Collect, error) {
	if userID == "" {
		return nil, apperror.NewValidationError("user_id é obrigatório.")
	}

	seen := make(map[string]struct{}, len(skuIDs))
	created := make([]*domain.Collect, 0, len(skuIDs))
	for _, skuID := range skuIDs {
		if skuID == "" {
			return nil, apperror.NewValidationError("sku_id vazio no lote.")
		}
		if _, dup := seen[skuID]; dup {
			continue
		}
		seen[skuID] = struct{}{}

		existing, err := s.repo.FindByUserAndSku(ctx, userID, skuID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			continue
		}
		created = append(created, domain.NewCollect(userID, skuID, group, nil))
	}

	if len(created) == 0 {
		return created, nil
	}
	if err := s.checkLimit(ctx, userID, len(created)); err != nil {
		return nil, err
	}
	if err := s.repo.SaveBatch(ctx, created); err != nil {
		return nil, err
	}

	s.logger.Info("Lote de favoritos criado", map[string]interface{}{
		"user_id":   userID,
		"requested": len(skuIDs),
		"created":   len(created),
	})
	return created, nil
}

// EffectiveCleanupDays retorna a idade de expurgo efetivamente aplicada.
func EffectiveCleanupDays(daysOld int) int {
	if daysOld <= 0 {
		return DefaultCleanupDays
	}
	return daysOld
}

// CleanupCancelledCollections expurga os cancelados com update_time anterior a now - daysOld dias.
// daysOld <= 0 usa o padrão de 30 dias.
func (s *Service) CleanupCancelledCollections(ctx context.Context, daysOld int) (int64, error) {
	daysOld = EffectiveCleanupDays(daysOld)
	cutoff := s.now().UTC().Add(-time.Duration(daysOld) * 24 * time.Hour)

	deleted, err := s.repo.PurgeCancelledOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	s.logger.Info("Limpeza de favoritos cancelados concluída", map[string]interface{}{
		"days_old": daysOld,
		"cutoff":   cutoff,
		"deleted":  deleted,
	})
	return deleted, nil
}

// --- Consultas ---

func (s *Service) GetUserCollections(ctx context.Context, userID string, status *domain.CollectStatus) ([]*domain.Collect, error) {
	return s.repo.FindByUser(ctx, userID, status)
}

func (s *Service) GetUserActiveCollections(ctx context.Context, userID string) ([]*domain.Collect, error) {
	return s.repo.FindByUser(ctx, userID, domain.StatusPtr(domain.StatusActive))
}

func (s *Service) GetUserCollectionsByGroup(ctx context.Context, userID string, group *string, status *domain.CollectStatus) ([]*domain.Collect, error) {
	return s.repo.FindByUserAndGroup(ctx, userID, group, status)
}

func (s *Service) GetUserCollectionGroups(ctx context.Context, userID string) ([]domain.GroupCount, error) {
	return s.repo.GroupsByUser(ctx, userID)
}

func (s *Service) GetUserCollectionCount(ctx context.Context, userID string, status *domain.CollectStatus) (int64, error) {
	return s.repo.CountByUser(ctx, userID, status)
}

func (s *Service) GetUserActiveCollectionCount(ctx context.Context, userID string) (int64, error) {
	return s.repo.CountByUser(ctx, userID, domain.StatusPtr(domain.StatusActive))
}

func (s *Service) GetTopCollections(ctx context.Context, userID string, limit int) ([]*domain.Collect, error) {
	return s.repo.FindTopByUser(ctx, userID, orDefault(limit, DefaultTopLimit))
}

func (s *Service) GetRecentCollections(ctx context.Context, userID string, limit int) ([]*domain.Collect, error) {
	return s.repo.FindRecentByUser(ctx, userID, orDefault(limit, DefaultRecentLimit))
}

func (s *Service) GetSkuCollectionCount(ctx context.Context, skuID string, status *domain.CollectStatus) (int64, error) {
	return s.repo.CountBySku(ctx, skuID, status)
}

func (s *Service) GetSkuActiveCollectionCount(ctx context.Context, skuID string) (int64, error) {
	return s.repo.CountBySku(ctx, skuID, domain.StatusPtr(domain.StatusActive))
}

func (s *Service) GetSkuCollections(ctx context.Context, skuID string, status *domain.CollectStatus) ([]*domain.Collect, error) {
	return s.repo.FindBySku(ctx, skuID, status)
}

func (s *Service) GetPopularSkus(ctx context.Context, limit int) ([]domain.SkuCount, error) {
	return s.repo.PopularSkus(ctx, orDefault(limit, DefaultPopularLimit))
}

// GetCollectionStatistics retorna as contagens por status de um usuário.
func (s *Service) GetCollectionStatistics(ctx context.Context, userID string) (domain.UserStatistics, error) {
	var stats domain.UserStatistics
	var err error

	if stats.Total, err = s.repo.CountByUser(ctx, userID, nil); err != nil {
		return domain.UserStatistics{}, err
	}
	if stats.Active, err = s.repo.CountByUser(ctx, userID, domain.StatusPtr(domain.StatusActive)); err != nil {
		return domain.UserStatistics{}, err
	}
	if stats.Cancelled, err = s.repo.CountByUser(ctx, userID, domain.StatusPtr(domain.StatusCancelled)); err != nil {
		return domain.UserStatistics{}, err
	}
	if stats.Hidden, err = s.repo.CountByUser(ctx, userID, domain.StatusPtr(domain.StatusHidden)); err != nil {
		return domain.UserStatistics{}, err
	}
	return stats, nil
}

// GetGlobalCollectionStatistics agrega a base inteira.
// A média é active / unique_users com duas casas decimais (0 sem usuários).
func (s *Service) GetGlobalCollectionStatistics(ctx context.Context) (domain.GlobalStatistics, error) {
	var stats domain.GlobalStatistics
	var err error

	if stats.TotalCollections, err = s.repo.CountAll(ctx, nil); err != nil {
		return domain.GlobalStatistics{}, err
	}
	if stats.ActiveCollections, err = s.repo.CountAll(ctx, domain.StatusPtr(domain.StatusActive)); err != nil {
		return domain.GlobalStatistics{}, err
	}
	if stats.CancelledCollections, err = s.repo.CountAll(ctx, domain.StatusPtr(domain.StatusCancelled)); err != nil {
		return domain.GlobalStatistics{}, err
	}
	if stats.UniqueUsers, err = s.repo.CountDistinctUsers(ctx); err != nil {
		return domain.GlobalStatistics{}, err
	}
	if stats.UniqueSkus, err = s.repo.CountDistinctSkus(ctx); err != nil {
		return domain.GlobalStatistics{}, err
	}

	if stats.UniqueUsers > 0 {
		avg := float64(stats.ActiveCollections) / float64(stats.UniqueUsers)
		stats.AvgCollectionsPerUser = math.Round(avg*100) / 100
	}
	return stats, nil
}

// --- Operações administrativas ---

// GetCollection busca pelo ID; ausente gera CollectNotFound.
func (s *Service) GetCollection(ctx context.Context, collectID string) (*domain.Collect, error) {
	collect, err := s.repo.FindByID(ctx, collectID)
	if err != nil {
		return nil, err
	}
	if collect == nil {
		return nil, apperror.NewCollectNotFoundError(collectID)
	}
	return collect, nil
}

// SearchCollections aplica a paginação padrão (página 1, 20 itens, máximo 100).
func (s *Service) SearchCollections(ctx context.Context, filter domain.CollectFilter) ([]*domain.Collect, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}
	return s.repo.Search(ctx, filter)
}

// BatchUpdateStatus aplica o status aos registros encontrados e retorna quantos foram alterados.
// IDs inexistentes são ignorados; o limite de favoritos não se aplica.
func (s *Service) BatchUpdateStatus(ctx context.Context, ids []string, status domain.CollectStatus) (int, error) {
	if !status.IsValid() {
		return 0, apperror.NewInvalidStatusError(status.String())
	}

	collects, err := s.repo.FindByIDs(ctx, uniqueStrings(ids))
	if err != nil {
		return 0, err
	}
	for _, c := range collects {
		applyStatus(c, status)
	}
	if err := s.repo.SaveBatch(ctx, collects); err != nil {
		return 0, err
	}

	s.logger.Info("Status em lote aplicado", map[string]interface{}{
		"requested": len(ids),
		"updated":   len(collects),
		"status":    status,
	})
	return len(collects), nil
}

// ToggleTop inverte o pino do registro.
func (s *Service) ToggleTop(ctx context.Context, collectID string) (*domain.Collect, error) {
	collect, err := s.GetCollection(ctx, collectID)
	if err != nil {
		return nil, err
	}

	collect.SetTop(!collect.IsTop)
	if err := s.repo.Save(ctx, collect); err != nil {
		return nil, err
	}
	return collect, nil
}

// --- Helpers ---

func (s *Service) findExisting(ctx context.Context, userID, skuID string) (*domain.Collect, error) {
	existing, err := s.repo.FindByUserAndSku(ctx, userID, skuID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NewNotCollectedError()
	}
	return existing, nil
}

// checkLimit rejeita a operação quando adding novos ativos ultrapassariam o limite configurado.
func (s *Service) checkLimit(ctx context.Context, userID string, adding int) error {
	if s.collectionLimit <= 0 {
		return nil
	}

	active, err := s.repo.CountByUser(ctx, userID, domain.StatusPtr(domain.StatusActive))
	if err != nil {
		return err
	}
	if active+int64(adding) > int64(s.collectionLimit) {
		s.logger.Warn("Limite de favoritos excedido", map[string]interface{}{
			"user_id": userID,
			"active":  active,
			"limit":   s.collectionLimit,
		})
		return apperror.NewCollectionLimitExceededError(s.collectionLimit)
	}
	return nil
}

func applyStatus(c *domain.Collect, status domain.CollectStatus) {
	switch status {
	case domain.StatusActive:
		c.Activate()
	case domain.StatusCancelled:
		c.Cancel()
	case domain.StatusHidden:
		c.Hide()
	}
}

func validatePair(userID, skuID string) error {
	if userID == "" || skuID == "" {
		return apperror.NewValidationError("user_id e sku_id são obrigatórios.")
	}
	return nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
