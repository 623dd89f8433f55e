package collect

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gocollect/internal/api/request"
	"gocollect/internal/api/response"
	"gocollect/internal/domain"
	apperror "gocollect/internal/errors"
	"gocollect/internal/pkg/catalog"
	"gocollect/internal/pkg/logger"
	"gocollect/internal/pkg/validator"
)

// CollectService define o contrato que o Handler espera da camada de Serviço.
type CollectService interface {
	AddToCollection(ctx context.Context, userID, skuID string, group, note *string) (*domain.Collect, error)
	ToggleCollection(ctx context.Context, userID, skuID string, group, note *string) (*domain.Collect, error)
	BatchAddToCollection(ctx context.Context, userID string, skuIDs []string, group *string) ([]*domain.Collect, error)
	RemoveFromCollection(ctx context.Context, userID, skuID string) error
	CancelCollection(ctx context.Context, userID, skuID string) (*domain.Collect, error)
	RestoreCollection(ctx context.Context, userID, skuID string) (*domain.Collect, error)
	HideCollection(ctx context.Context, userID, skuID string) (*domain.Collect, error)
	IsCollected(ctx context.Context, userID, skuID string) (bool, error)
	UpdateCollectionNote(ctx context.Context, userID, skuID string, note *string) (bool, error)
	UpdateCollectionTop(ctx context.Context, userID, skuID string, isTop bool) (bool, error)
	UpdateCollectionSort(ctx context.Context, userID, skuID string, sortNumber int) (bool, error)

	GetUserCollections(ctx context.Context, userID string, status *domain.CollectStatus) ([]*domain.Collect, error)
	GetUserActiveCollections(ctx context.Context, userID string) ([]*domain.Collect, error)
	GetUserCollectionsByGroup(ctx context.Context, userID string, group *string, status *domain.CollectStatus) ([]*domain.Collect, error)
	GetUserCollectionGroups(ctx context.Context, userID string) ([]domain.GroupCount, error)
	GetUserCollectionCount(ctx context.Context, userID string, status *domain.CollectStatus) (int64, error)
	GetUserActiveCollectionCount(ctx context.Context, userID string) (int64, error)
	GetTopCollections(ctx context.Context, userID string, limit int) ([]*domain.Collect, error)
	GetRecentCollections(ctx context.Context, userID string, limit int) ([]*domain.Collect, error)
	GetCollectionStatistics(ctx context.Context, userID string) (domain.UserStatistics, error)

	GetSkuCollectionCount(ctx context.Context, skuID string, status *domain.CollectStatus) (int64, error)
	GetSkuActiveCollectionCount(ctx context.Context, skuID string) (int64, error)
	GetPopularSkus(ctx context.Context, limit int) ([]domain.SkuCount, error)
}

// Handler expõe a coleção do usuário autenticado.
type Handler struct {
	Service CollectService
	Catalog catalog.Resolver
	Logger  logger.Logger
}

func NewHandler(svc CollectService, resolver catalog.Resolver, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Catalog: resolver,
		Logger:  log,
	}
}

// Routes monta as rotas sob /v1/collections.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.ListHandler)
	r.Post("/", h.AddHandler)
	r.Post("/toggle", h.ToggleHandler)
	r.Post("/batch", h.BatchAddHandler)
	r.Get("/top", h.TopHandler)
	r.Get("/recent", h.RecentHandler)
	r.Get("/groups", h.GroupsHandler)
	r.Get("/stats", h.StatsHandler)
	r.Get("/count", h.CountHandler)

	r.Route("/skus/{skuID}", func(r chi.Router) {
		r.Get("/", h.IsCollectedHandler)
		r.Delete("/", h.RemoveHandler)
		r.Post("/cancel", h.CancelHandler)
		r.Post("/restore", h.RestoreHandler)
		r.Post("/hide", h.HideHandler)
		r.Patch("/note", h.UpdateNoteHandler)
		r.Patch("/top", h.UpdateTopHandler)
		r.Patch("/sort", h.UpdateSortHandler)
	})
}

// SkuRoutes monta as rotas públicas por SKU sob /v1/skus.
func (h *Handler) SkuRoutes(r chi.Router) {
	r.Get("/popular", h.PopularSkusHandler)
	r.Get("/{skuID}/collections/count", h.SkuCountHandler)
}

// --- Payloads ---

type addRequest struct {
	SkuID        string  `json:"sku_id" validate:"required,max=64"`
	CollectGroup *string `json:"collect_group" validate:"omitempty,max=50"`
	Note         *string `json:"note" validate:"omitempty,max=5000"`
}

type batchAddRequest struct {
	SkuIDs       []string `json:"sku_ids" validate:"required,min=1,max=100,dive,required,max=64"`
	CollectGroup *string  `json:"collect_group" validate:"omitempty,max=50"`
}

type batchAddResponse struct {
	Created []*domain.Collect `json:"created"`
	Count   int               `json:"count"`
}

type noteRequest struct {
	Note *string `json:"note" validate:"omitempty,max=5000"`
}

type topRequest struct {
	IsTop *bool `json:"is_top" validate:"required"`
}

type sortRequest struct {
	SortNumber *int `json:"sort_number" validate:"required,gte=0"`
}

type collectedResponse struct {
	SkuID     string `json:"sku_id"`
	Collected bool   `json:"collected"`
}

type countResponse struct {
	Count int64 `json:"count"`
}

// --- Escrita ---

// AddHandler lida com a requisição POST /v1/collections.
// @Summary Favorita um SKU
// @Description Adiciona o SKU à coleção do usuário. Registros cancelados ou ocultos são reativados.
// @Tags collections
// @Accept json
// @Produce json
// @Param collect body addRequest true "SKU, grupo e nota"
// @Success 201 {object} domain.Collect
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 404 {object} domain.ErrorResponse "SKU inexistente"
// @Failure 409 {object} domain.ErrorResponse "SKU já favoritado"
// @Failure 429 {object} domain.ErrorResponse "Limite de favoritos excedido"
// @Security ApiKeyAuth
// @Router /collections [post]
func (h *Handler) AddHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := request.UserID(r)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	var req addRequest
	if err := validator.DecodeAndValidate(w, r, &req); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	if _, err := h.Catalog.Resolve(r.Context(), req.SkuID); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	collect, err := h.Service.AddToCollection(r.Context(), userID, req.SkuID, req.CollectGroup, req.Note)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, http.StatusCreated, collect)
}

// ToggleHandler lida com a requisição POST /v1/collections/toggle.
// @Summary Alterna o favorito de um SKU
// @Tags collections
// @Accept json
// @Produce json
// @Param collect body addRequest true "SKU, grupo e nota"
// @Success 200 {object} domain.Collect
// @Failure 404 {object} domain.ErrorResponse "SKU inexistente"
// @Security ApiKeyAuth
// @Router /collections/toggle [post]
func (h *Handler) ToggleHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := request.UserID(r)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	var req addRequest
	if err := validator.DecodeAndValidate(w, r, &req); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	if _, err := h.Catalog.Resolve(r.Context(), req.SkuID); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	collect, err := h.Service.ToggleCollection(r.Context(), userID, req.SkuID, req.CollectGroup, req.Note)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, http.StatusOK, collect)
}

// BatchAddHandler lida com a requisição POST /v1/collections/batch.
// @Summary Favorita vários SKUs
// @Description SKUs já presentes na coleção, em qualquer estado, são ignorados.
// @Tags collections
// @Accept json
// @Produce json
// @Param batch body batchAddRequest true "SKUs e grupo"
// @Success 201 {object} batchAddResponse
// @Failure 404 {object} domain.ErrorResponse "SKU inexistente"
// @Failure 429 {object} domain.ErrorResponse "Limite de favoritos excedido"
// @Security ApiKeyAuth
// @Router /collections/batch [post]
func (h *Handler) BatchAddHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := request.UserID(r)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	var req batchAddRequest
	if err := validator.DecodeAndValidate(w, r, &req); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	for _, skuID := range req.SkuIDs {
		if _, err := h.Catalog.Resolve(r.Context(), skuID); err != nil {
			response.Error(w, r, h.Logger, err)
			return
		}
	}

	created, err := h.Service.BatchAddToCollection(r.Context(), userID, req.SkuIDs, req.CollectGroup)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, http.StatusCreated, batchAddResponse{Created: created, Count: len(created)})
}

// RemoveHandler lida com a requisição DELETE /v1/collections/skus/{skuID}.
// @Summary Remove o favorito definitivamente
// @Tags collections
// @Param skuID path string true "ID do SKU"
// @Success 204
// @Failure 404 {object} domain.ErrorResponse "SKU não favoritado"
// @Security ApiKeyAuth
// @Router /collections/skus/{skuID} [delete]
func (h *Handler) RemoveHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := request.UserID(r)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	if err := h.Service.RemoveFromCollection(r.Context(), userID, chi.URLParam(r, "skuID")); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CancelHandler lida com a requisição POST /v1/collections/skus/{skuID}/cancel.
// @Summary Cancela o favorito (soft)
// @Tags collections
// @Produce json
// @Param skuID path string true "ID do SKU"
// @Success 200 {object} domain.Collect
// @Failure 404 {object} domain.ErrorResponse "SKU não favoritado"
// @Security ApiKeyAuth
// @Router /collections/skus/{skuID}/cancel [post]
func (h *Handler) CancelHandler(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Service.CancelCollection)
}

// RestoreHandler lida com a requisição POST /v1/collections/skus/{skuID}/restore.
// @Summary Restaura um favorito cancelado ou oculto
// @Tags collections
// @Produce json
// @Param skuID path string true "ID do SKU"
// @Success 200 {object} domain.Collect
// @Failure 404 {object} domain.ErrorResponse "SKU não favoritado"
// @Security ApiKeyAuth
// @Router /collections/skus/{skuID}/restore [post]
func (h *Handler) RestoreHandler(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Service.RestoreCollection)
}

// HideHandler lida com a requisição POST /v1/collections/skus/{skuID}/hide.
// @Summary Oculta um favorito
// @Tags collections
// @Produce json
// @Param skuID path string true "ID do SKU"
// @Success 200 {object} domain.Collect
// @Failure 404 {object} domain.ErrorResponse "SKU não favoritado"
// @Security ApiKeyAuth
// @Router /collections/skus/{skuID}/hide [post]
func (h *Handler) HideHandler(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.Service.HideCollection)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, apply func(ctx context.Context, userID, skuID string) (*domain.Collect, error)) {
	userID, err := request.UserID(r)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	collect, err := apply(r.Context(), userID, chi.URLParam(r, "skuID"))
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, http.StatusOK, collect)
}

// UpdateNoteHandler lida com a requisição PATCH /v1/collections/skus/{skuID}/note.
// @Summary Atualiza a nota do favorito
// @Tags collections
// @Accept json
// @Param skuID path string true "ID do SKU"
// @Param note body noteRequest true "Nova nota (null remove)"
// @Success 204
// @Failure 404 {object} domain.ErrorResponse "SKU não favoritado"
// @Security ApiKeyAuth
// @Router /collections/skus/{skuID}/note [patch]
func (h *Handler) UpdateNoteHandler(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	h.updateByPair(w, r, &req, func(ctx context.Context, userID, skuID string) (bool, error) {
		return h.Service.UpdateCollectionNote(ctx, userID, skuID, req.Note)
	})
}

// UpdateTopHandler lida com a requisição PATCH /v1/collections/skus/{skuID}/top.
// @Summary Fixa ou desafixa o favorito no topo
// @Tags collections
// @Accept json
// @Param skuID path string true "ID do SKU"
// @Param top body topRequest true "Novo valor do pino"
// @Success 204
// @Failure 404 {object} domain.ErrorResponse "SKU não favoritado"
// @Security ApiKeyAuth
// @Router /collections/skus/{skuID}/top [patch]
func (h *Handler) UpdateTopHandler(w http.ResponseWriter, r *http.Request) {
	var req topRequest
	h.updateByPair(w, r, &req, func(ctx context.Context, userID, skuID string) (bool, error) {
		return h.Service.UpdateCollectionTop(ctx, userID, skuID, *req.IsTop)
	})
}

// UpdateSortHandler lida com a requisição PATCH /v1/collections/skus/{skuID}/sort.
// @Summary Atualiza a posição manual do favorito
// @Tags collections
// @Accept json
// @Param skuID path string true "ID do SKU"
// @Param sort body sortRequest true "Nova posição (>= 0)"
// @Success 204
// @Failure 400 {object} domain.ErrorResponse "Posição negativa"
// @Failure 404 {object} domain.ErrorResponse "SKU não favoritado"
// @Security ApiKeyAuth
// @Router /collections/skus/{skuID}/sort [patch]
func (h *Handler) UpdateSortHandler(w http.ResponseWriter, r *http.Request) {
	var req sortRequest
	h.updateByPair(w, r, &req, func(ctx context.Context, userID, skuID string) (bool, error) {
		return h.Service.UpdateCollectionSort(ctx, userID, skuID, *req.SortNumber)
	})
}

// updateByPair decodifica o payload e traduz o retorno false do serviço em 404.
func (h *Handler) updateByPair(w http.ResponseWriter, r *http.Request, dst any, apply func(ctx context.Context, userID, skuID string) (bool, error)) {
	userID, err := request.UserID(r)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	if err := validator.DecodeAndValidate(w, r, dst); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	updated, err := apply(r.Context(), userID, chi.URLParam(r, "skuID"))
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	if !updated {
		response.Error(w, r, h.Logger, apperror.NewNotCollectedError())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Leitura ---

// ListHandler lida com a requisição GET /v1/collections.
// @Summary Lista a coleção do usuário
// @Description Ordenação: fixados primeiro, sort_number crescente, mais recentes primeiro.
// @Tags collections
// @Produce json
// @Param status query string false "active, cancelled ou hidden"
// @Param group query string false "Nome do grupo"
// @Param ungrouped query bool false "Apenas registros sem grupo"
// @Success 200 {array} domain.Collect
// @Failure 400 {object} domain.ErrorResponse "Status inválido"
// @Security ApiKeyAuth
// @Router /collections [get]
func (h *Handler) ListHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := request.UserID(r)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	status, err := request.Status(r, "status")
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	ungrouped, err := request.Bool(r, "ungrouped")
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	group := request.OptionalString(r, "group")

	var collects []*domain.Collect
	switch {
	case ungrouped != nil && *ungrouped:
		collects, err = h.Service.GetUserCollectionsByGroup(r.Context(), userID, nil, status)
	case group != nil:
		collects, err = h.Service.GetUserCollectionsByGroup(r.Context(), userID, group, status)
	case status != nil && status.IsActive():
		collects, err = h.Service.GetUserActiveCollections(r.Context(), userID)
	default:
		collects, err = h.Service.GetUserCollections(r.Context(), userID, status)
	}
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, http.StatusOK, emptyIfNil(collects))
}

// TopHandler lida com a requisição GET /v1/collections/top.
// @Summary Lista os favoritos fixados
// @Tags collections
// @Produce json
// @Param limit query int false "Máximo de itens (padrão 10)"
// @Success 200 {array} domain.Collect
// @Security ApiKeyAuth
// @Router /collections/top [get]
func (h *Handler) TopHandler(w http.ResponseWriter, r *http.Request) {
	h.limited(w, r, h.Service.GetTopCollections)
}

// RecentHandler lida com a requisição GET /v1/collections/recent.
// @Summary Lista os favoritos mais recentes
// @Tags collections
// @Produce json
// @Param limit query int false "Máximo de itens (padrão 20)"
// @Success 200 {array} domain.Collect
// @Security ApiKeyAuth
// @Router /collections/recent [get]
func (h *Handler) RecentHandler(w http.ResponseWriter, r *http.Request) {
	h.limited(w, r, h.Service.GetRecentCollections)
}

func (h *Handler) limited(w http.ResponseWriter, r *http.Request, list func(ctx context.Context, userID string, limit int) ([]*domain.Collect, error)) {
	userID, err := request.UserID(r)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	limit, err := request.Int(r, "limit")
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	collects, err := list(r.Context(), userID, limit)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, http.StatusOK, emptyIfNil(collects))
}

// GroupsHandler lida com a requisição GET /v1/collections/groups.
// @Summary Lista os grupos ativos do usuário com contagem
// @Tags collections
// @Produce json
// @Success 200 {array} domain.GroupCount
// @Security ApiKeyAuth
// @Router /collections/groups [get]
func (h *Handler) GroupsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := request.UserID(r)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	groups, err := h.Service.GetUserCollectionGroups(r.Context(), userID)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	if groups == nil {
		groups = []domain.GroupCount{}
	}
	response.JSON(w, http.StatusOK, groups)
}

// StatsHandler lida com a requisição GET /v1/collections/stats.
// @Summary Contagens por estado da coleção do usuário
// @Tags collections
// @Produce json
// @Success 200 {object} domain.UserStatistics
// @Security ApiKeyAuth
// @Router /collections/stats [get]
func (h *Handler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := request.UserID(r)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	stats, err := h.Service.GetCollectionStatistics(r.Context(), userID)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, http.StatusOK, stats)
}

// CountHandler lida com a requisição GET /v1/collections/count.
// @Summary Conta os favoritos do usuário
// @Tags collections
// @Produce json
// @Param status query string false "active, cancelled ou hidden"
// @Success 200 {object} countResponse
// @Security ApiKeyAuth
// @Router /collections/count [get]
func (h *Handler) CountHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := request.UserID(r)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	status, err := request.Status(r, "status")
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	var n int64
	if status != nil && status.IsActive() {
		n, err = h.Service.GetUserActiveCollectionCount(r.Context(), userID)
	} else {
		n, err = h.Service.GetUserCollectionCount(r.Context(), userID, status)
	}
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, http.StatusOK, countResponse{Count: n})
}

// IsCollectedHandler lida com a requisição GET /v1/collections/skus/{skuID}.
// @Summary Indica se o SKU está favoritado (ativo)
// @Tags collections
// @Produce json
// @Param skuID path string true "ID do SKU"
// @Success 200 {object} collectedResponse
// @Security ApiKeyAuth
// @Router /collections/skus/{skuID} [get]
func (h *Handler) IsCollectedHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := request.UserID(r)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	skuID := chi.URLParam(r, "skuID")

	collected, err := h.Service.IsCollected(r.Context(), userID, skuID)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, http.StatusOK, collectedResponse{SkuID: skuID, Collected: collected})
}

// SkuCountHandler lida com a requisição GET /v1/skus/{skuID}/collections/count.
// @Summary Conta quantos usuários favoritaram o SKU
// @Description Sem status, conta apenas registros ativos.
// @Tags skus
// @Produce json
// @Param skuID path string true "ID do SKU"
// @Param status query string false "active, cancelled ou hidden"
// @Success 200 {object} countResponse
// @Security ApiKeyAuth
// @Router /skus/{skuID}/collections/count [get]
func (h *Handler) SkuCountHandler(w http.ResponseWriter, r *http.Request) {
	skuID := chi.URLParam(r, "skuID")
	status, err := request.Status(r, "status")
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	var n int64
	if status == nil {
		n, err = h.Service.GetSkuActiveCollectionCount(r.Context(), skuID)
	} else {
		n, err = h.Service.GetSkuCollectionCount(r.Context(), skuID, status)
	}
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, http.StatusOK, countResponse{Count: n})
}

// PopularSkusHandler lida com a requisição GET /v1/skus/popular.
// @Summary Ranking de SKUs mais favoritados
// @Tags skus
// @Produce json
// @Param limit query int false "Máximo de itens (padrão 100)"
// @Success 200 {array} domain.SkuCount
// @Security ApiKeyAuth
// @Router /skus/popular [get]
func (h *Handler) PopularSkusHandler(w http.ResponseWriter, r *http.Request) {
	limit, err := request.Int(r, "limit")
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	skus, err := h.Service.GetPopularSkus(r.Context(), limit)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	if skus == nil {
		skus = []domain.SkuCount{}
	}
	response.JSON(w, http.StatusOK, skus)
}

func emptyIfNil(collects []*domain.Collect) []*domain.Collect {
	if collects == nil {
		return []*domain.Collect{}
	}
	return collects
}
