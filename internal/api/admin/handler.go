package admin

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"gocollect/internal/api/request"
	"gocollect/internal/api/response"
	"gocollect/internal/domain"
	"gocollect/internal/pkg/catalog"
	"gocollect/internal/pkg/logger"
	"gocollect/internal/pkg/validator"
	"gocollect/internal/service/collectservice"
)

// CollectService é o subconjunto administrativo do serviço de coleção.
type CollectService interface {
	SearchCollections(ctx context.Context, filter domain.CollectFilter) ([]*domain.Collect, int64, error)
	GetCollection(ctx context.Context, collectID string) (*domain.Collect, error)
	UpdateCollectionGroup(ctx context.Context, collectID string, group *string) (*domain.Collect, error)
	ToggleTop(ctx context.Context, collectID string) (*domain.Collect, error)
	BatchUpdateStatus(ctx context.Context, ids []string, status domain.CollectStatus) (int, error)
	CleanupCancelledCollections(ctx context.Context, daysOld int) (int64, error)
	GetGlobalCollectionStatistics(ctx context.Context) (domain.GlobalStatistics, error)
	GetSkuCollections(ctx context.Context, skuID string, status *domain.CollectStatus) ([]*domain.Collect, error)
}

// AuthService emite o token do administrador.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type Handler struct {
	Service CollectService
	Auth    AuthService
	Catalog catalog.Resolver
	Logger  logger.Logger
}

func NewHandler(svc CollectService, auth AuthService, resolver catalog.Resolver, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Auth:    auth,
		Catalog: resolver,
		Logger:  log,
	}
}

// Routes monta as rotas protegidas sob /v1/admin. O login fica fora (LoginHandler).
func (h *Handler) Routes(r chi.Router) {
	r.Get("/statuses", h.StatusesHandler)
	r.Get("/skus/{skuID}/collections", h.SkuCollectionsHandler)

	r.Route("/collections", func(r chi.Router) {
		r.Get("/", h.SearchHandler)
		r.Get("/stats", h.StatsHandler)
		r.Post("/batch-status", h.BatchStatusHandler)
		r.Post("/cleanup", h.CleanupHandler)
		r.Get("/{id}", h.GetHandler)
		r.Patch("/{id}/group", h.UpdateGroupHandler)
		r.Post("/{id}/toggle-top", h.ToggleTopHandler)
	})
}

// --- Payloads ---

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type groupRequest struct {
	CollectGroup *string `json:"collect_group" validate:"omitempty,max=50"`
}

type batchStatusRequest struct {
	IDs    []string `json:"ids" validate:"required,min=1,max=500,dive,required"`
	Status string   `json:"status" validate:"required"`
}

type batchStatusResponse struct {
	Updated int `json:"updated"`
}

type cleanupRequest struct {
	DaysOld int `json:"days_old" validate:"gte=0"`
}

type cleanupResponse struct {
	DaysOld int   `json:"days_old"`
	Deleted int64 `json:"deleted"`
}

type searchResponse struct {
	Items []*domain.Collect `json:"items"`
	Total int64             `json:"total"`
}

type collectDetail struct {
	*domain.Collect
	Sku *domain.SkuInfo `json:"sku,omitempty"`
}

type statusChoice struct {
	Value      domain.CollectStatus `json:"value"`
	Label      string               `json:"label"`
	BadgeClass string               `json:"badge_class"`
}

// LoginHandler lida com a requisição POST /v1/admin/login.
// @Summary Login do administrador
// @Tags admin
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Email e senha"
// @Success 200 {object} loginResponse
// @Failure 401 {object} domain.ErrorResponse "Credenciais inválidas"
// @Failure 403 {object} domain.ErrorResponse "Login administrativo desativado"
// @Router /admin/login [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := validator.DecodeAndValidate(w, r, &req); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	token, err := h.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, http.StatusOK, loginResponse{Token: token})
}

// SearchHandler lida com a requisição GET /v1/admin/collections.
// @Summary Busca paginada de favoritos
// @Tags admin
// @Produce json
// @Param user_id query string false "Usuário"
// @Param sku_id query string false "SKU"
// @Param status query string false "active, cancelled ou hidden"
// @Param collect_group query string false "Grupo"
// @Param is_top query bool false "Fixados"
// @Param created_after query string false "RFC 3339"
// @Param created_before query string false "RFC 3339"
// @Param updated_after query string false "RFC 3339"
// @Param updated_before query string false "RFC 3339"
// @Param page query int false "Página (padrão 1)"
// @Param limit query int false "Itens por página (padrão 20, máximo 100)"
// @Success 200 {object} searchResponse
// @Failure 400 {object} domain.ErrorResponse "Filtro inválido"
// @Security ApiKeyAuth
// @Router /admin/collections [get]
func (h *Handler) SearchHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	items, total, err := h.Service.SearchCollections(r.Context(), filter)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	if items == nil {
		items = []*domain.Collect{}
	}
	response.JSON(w, http.StatusOK, searchResponse{Items: items, Total: total})
}

func parseFilter(r *http.Request) (domain.CollectFilter, error) {
	q := r.URL.Query()
	filter := domain.CollectFilter{
		UserID:       q.Get("user_id"),
		SkuID:        q.Get("sku_id"),
		CollectGroup: request.OptionalString(r, "collect_group"),
	}

	var err error
	if filter.Status, err = request.Status(r, "status"); err != nil {
		return filter, err
	}
	if filter.IsTop, err = request.Bool(r, "is_top"); err != nil {
		return filter, err
	}
	if filter.CreatedAfter, err = request.Time(r, "created_after"); err != nil {
		return filter, err
	}
	if filter.CreatedBefore, err = request.Time(r, "created_before"); err != nil {
		return filter, err
	}
	if filter.UpdatedAfter, err = request.Time(r, "updated_after"); err != nil {
		return filter, err
	}
	if filter.UpdatedBefore, err = request.Time(r, "updated_before"); err != nil {
		return filter, err
	}
	if filter.Page, err = request.Int(r, "page"); err != nil {
		return filter, err
	}
	if filter.Limit, err = request.Int(r, "limit"); err != nil {
		return filter, err
	}
	return filter, nil
}

// GetHandler lida com a requisição GET /v1/admin/collections/{id}.
// @Summary Detalhe do favorito com dados do SKU
// @Description Falhas do catálogo não impedem a resposta; o campo sku fica ausente.
// @Tags admin
// @Produce json
// @Param id path string true "ID do favorito"
// @Success 200 {object} collectDetail
// @Failure 404 {object} domain.ErrorResponse "Favorito não encontrado"
// @Security ApiKeyAuth
// @Router /admin/collections/{id} [get]
func (h *Handler) GetHandler(w http.ResponseWriter, r *http.Request) {
	collect, err := h.Service.GetCollection(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	detail := collectDetail{Collect: collect}
	info, err := h.Catalog.Resolve(r.Context(), collect.SkuID)
	if err != nil {
		h.Logger.Warn("Dados do SKU indisponíveis para o detalhe", map[string]interface{}{
			"collect_id": collect.ID,
			"sku_id":     collect.SkuID,
			"error":      err.Error(),
		})
	} else {
		detail.Sku = &info
	}
	response.JSON(w, http.StatusOK, detail)
}

// UpdateGroupHandler lida com a requisição PATCH /v1/admin/collections/{id}/group.
// @Summary Altera o grupo do favorito
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "ID do favorito"
// @Param group body groupRequest true "Novo grupo (null desagrupa)"
// @Success 200 {object} domain.Collect
// @Failure 404 {object} domain.ErrorResponse "Favorito não encontrado"
// @Security ApiKeyAuth
// @Router /admin/collections/{id}/group [patch]
func (h *Handler) UpdateGroupHandler(w http.ResponseWriter, r *http.Request) {
	var req groupRequest
	if err := validator.DecodeAndValidate(w, r, &req); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	collect, err := h.Service.UpdateCollectionGroup(r.Context(), chi.URLParam(r, "id"), req.CollectGroup)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, http.StatusOK, collect)
}

// ToggleTopHandler lida com a requisição POST /v1/admin/collections/{id}/toggle-top.
// @Summary Inverte o pino do favorito
// @Tags admin
// @Produce json
// @Param id path string true "ID do favorito"
// @Success 200 {object} domain.Collect
// @Failure 404 {object} domain.ErrorResponse "Favorito não encontrado"
// @Security ApiKeyAuth
// @Router /admin/collections/{id}/toggle-top [post]
func (h *Handler) ToggleTopHandler(w http.ResponseWriter, r *http.Request) {
	collect, err := h.Service.ToggleTop(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, http.StatusOK, collect)
}

// BatchStatusHandler lida com a requisição POST /v1/admin/collections/batch-status.
// @Summary Aplica um status a vários favoritos
// @Description IDs inexistentes são ignorados.
// @Tags admin
// @Accept json
// @Produce json
// @Param batch body batchStatusRequest true "IDs e status"
// @Success 200 {object} batchStatusResponse
// @Failure 400 {object} domain.ErrorResponse "Status inválido"
// @Security ApiKeyAuth
// @Router /admin/collections/batch-status [post]
func (h *Handler) BatchStatusHandler(w http.ResponseWriter, r *http.Request) {
	var req batchStatusRequest
	if err := validator.DecodeAndValidate(w, r, &req); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	// Valores fora do enum chegam ao serviço como estão e são rejeitados lá.
	status, err := domain.ParseCollectStatus(req.Status)
	if err != nil {
		status = domain.CollectStatus(req.Status)
	}

	updated, err := h.Service.BatchUpdateStatus(r.Context(), req.IDs, status)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, http.StatusOK, batchStatusResponse{Updated: updated})
}

// CleanupHandler lida com a requisição POST /v1/admin/collections/cleanup.
// @Summary Expurga favoritos cancelados antigos
// @Description days_old 0 ou ausente usa 30 dias.
// @Tags admin
// @Accept json
// @Produce json
// @Param cleanup body cleanupRequest true "Idade mínima em dias"
// @Success 200 {object} cleanupResponse
// @Security ApiKeyAuth
// @Router /admin/collections/cleanup [post]
func (h *Handler) CleanupHandler(w http.ResponseWriter, r *http.Request) {
	var req cleanupRequest
	if err := validator.DecodeAndValidate(w, r, &req); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	deleted, err := h.Service.CleanupCancelledCollections(r.Context(), req.DaysOld)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, http.StatusOK, cleanupResponse{DaysOld: collectservice.EffectiveCleanupDays(req.DaysOld), Deleted: deleted})
}

// StatsHandler lida com a requisição GET /v1/admin/collections/stats.
// @Summary Estatísticas globais da coleção
// @Tags admin
// @Produce json
// @Success 200 {object} domain.GlobalStatistics
// @Security ApiKeyAuth
// @Router /admin/collections/stats [get]
func (h *Handler) StatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.GetGlobalCollectionStatistics(r.Context())
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, http.StatusOK, stats)
}

// SkuCollectionsHandler lida com a requisição GET /v1/admin/skus/{skuID}/collections.
// @Summary Lista quem favoritou o SKU
// @Tags admin
// @Produce json
// @Param skuID path string true "ID do SKU"
// @Param status query string false "active, cancelled ou hidden"
// @Success 200 {array} domain.Collect
// @Security ApiKeyAuth
// @Router /admin/skus/{skuID}/collections [get]
func (h *Handler) SkuCollectionsHandler(w http.ResponseWriter, r *http.Request) {
	status, err := request.Status(r, "status")
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	collects, err := h.Service.GetSkuCollections(r.Context(), chi.URLParam(r, "skuID"), status)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	if collects == nil {
		collects = []*domain.Collect{}
	}
	response.JSON(w, http.StatusOK, collects)
}

// StatusesHandler lida com a requisição GET /v1/admin/statuses.
// @Summary Estados possíveis com rótulo e badge
// @Tags admin
// @Produce json
// @Success 200 {array} statusChoice
// @Security ApiKeyAuth
// @Router /admin/statuses [get]
func (h *Handler) StatusesHandler(w http.ResponseWriter, r *http.Request) {
	statuses := domain.AllCollectStatuses()
	choices := make([]statusChoice, 0, len(statuses))
	for _, s := range statuses {
		choices = append(choices, statusChoice{Value: s, Label: s.Label(), BadgeClass: s.BadgeClass()})
	}
	response.JSON(w, http.StatusOK, choices)
}
