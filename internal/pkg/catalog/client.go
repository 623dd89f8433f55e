// Package catalog resolve SKUs no catálogo de produtos externo.
// O núcleo de favoritos só guarda o sku_id; título e miniatura vêm daqui, sob demanda.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"

	"gocollect/internal/domain"
	apperror "gocollect/internal/errors"
	"gocollect/internal/pkg/logger"
	"gocollect/internal/pkg/metrics"
)

// Resolver é o contrato consumido pelos handlers.
// Um SKU inexistente retorna um erro com apperror.ErrSkuNotFound na cadeia.
type Resolver interface {
	Resolve(ctx context.Context, skuID string) (domain.SkuInfo, error)
}

// BreakerConfig agrupa os parâmetros do circuit breaker.
type BreakerConfig struct {
	Name         string
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	FailureRatio float64
	MinRequests  uint32
}

// DefaultBreakerConfig retorna os valores usados em produção.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Name:         "catalog",
		MaxRequests:  1,
		Interval:     60 * time.Second,
		Timeout:      30 * time.Second,
		FailureRatio: 0.5,
		MinRequests:  5,
	}
}

// HTTPClient consulta GET {baseURL}/v1/skus/{id} protegido por um circuit breaker.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[domain.SkuInfo]
	logger  logger.Logger
}

// NewHTTPClient cria o cliente do catálogo.
func NewHTTPClient(baseURL string, timeout time.Duration, cbCfg BreakerConfig, log logger.Logger) *HTTPClient {
	settings := gobreaker.Settings{
		Name:        cbCfg.Name,
		MaxRequests: cbCfg.MaxRequests,
		Interval:    cbCfg.Interval,
		Timeout:     cbCfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cbCfg.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cbCfg.FailureRatio
		},
		// SKU inexistente é uma resposta válida do catálogo, não uma falha do serviço.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, apperror.ErrSkuNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("Circuit breaker mudou de estado", map[string]interface{}{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			})
			metrics.CircuitBreakerState.WithLabelValues(name).Set(metrics.BreakerStateValue(to))
		},
	}
	metrics.CircuitBreakerState.WithLabelValues(cbCfg.Name).Set(0)

	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker[domain.SkuInfo](settings),
		logger:  log,
	}
}

// Resolve busca o SKU no catálogo.
func (c *HTTPClient) Resolve(ctx context.Context, skuID string) (domain.SkuInfo, error) {
	info, err := c.breaker.Execute(func() (domain.SkuInfo, error) {
		return c.fetch(ctx, skuID)
	})
	if err == nil || errors.Is(err, apperror.ErrSkuNotFound) {
		return info, err
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		c.logger.Warn("Catálogo indisponível (circuit breaker aberto)", map[string]interface{}{"sku_id": skuID})
	}
	return domain.SkuInfo{}, apperror.NewInternalError("catálogo de produtos indisponível", err)
}

func (c *HTTPClient) fetch(ctx context.Context, skuID string) (domain.SkuInfo, error) {
	endpoint := fmt.Sprintf("%s/v1/skus/%s", c.baseURL, url.PathEscape(skuID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return domain.SkuInfo{}, fmt.Errorf("criar requisição ao catálogo: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.SkuInfo{}, fmt.Errorf("consultar catálogo: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.SkuInfo{}, apperror.NewSkuNotFoundError(skuID)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.SkuInfo{}, fmt.Errorf("catálogo respondeu %d: %s", resp.StatusCode, string(body))
	}

	var info domain.SkuInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return domain.SkuInfo{}, fmt.Errorf("decodificar resposta do catálogo: %w", err)
	}
	if info.ID == "" {
		info.ID = skuID
	}
	return info, nil
}

// State retorna o estado atual do circuit breaker.
func (c *HTTPClient) State() gobreaker.State {
	return c.breaker.State()
}

// PassthroughResolver aceita qualquer SKU sem consultar o catálogo.
// Usado quando CATALOG_URL não está configurado (ambiente local).
type PassthroughResolver struct{}

func (PassthroughResolver) Resolve(_ context.Context, skuID string) (domain.SkuInfo, error) {
	return domain.SkuInfo{ID: skuID}, nil
}
