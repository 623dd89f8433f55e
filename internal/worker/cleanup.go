// Package worker agrupa as tarefas periódicas do serviço.
package worker

import (
	"context"
	"time"

	"gocollect/internal/pkg/logger"
	"gocollect/internal/pkg/metrics"
)

// Purger é o contrato do serviço de coleção usado pela limpeza.
type Purger interface {
	CleanupCancelledCollections(ctx context.Context, daysOld int) (int64, error)
}

// Cleanup expurga periodicamente os favoritos cancelados há mais de DaysOld dias.
type Cleanup struct {
	purger   Purger
	daysOld  int
	interval time.Duration
	logger   logger.Logger
}

func NewCleanup(purger Purger, daysOld int, interval time.Duration, log logger.Logger) *Cleanup {
	return &Cleanup{
		purger:   purger,
		daysOld:  daysOld,
		interval: interval,
		logger:   log,
	}
}

// Run bloqueia até ctx ser cancelado. interval <= 0 desativa o worker.
// A primeira execução acontece após o primeiro intervalo.
func (c *Cleanup) Run(ctx context.Context) {
	if c.interval <= 0 {
		c.logger.Info("Worker de limpeza desativado", nil)
		return
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.logger.Info("Worker de limpeza iniciado", map[string]interface{}{
		"interval": c.interval.String(),
		"days_old": c.daysOld,
	})

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("Worker de limpeza encerrado", nil)
			return
		case <-ticker.C:
			c.RunOnce(ctx)
		}
	}
}

// RunOnce executa uma única varredura e registra o resultado nas métricas.
func (c *Cleanup) RunOnce(ctx context.Context) (int64, error) {
	deleted, err := c.purger.CleanupCancelledCollections(ctx, c.daysOld)
	if err != nil {
		metrics.CleanupRunsTotal.WithLabelValues("error").Inc()
		c.logger.Error("Falha na limpeza de favoritos cancelados", err)
		return 0, err
	}

	metrics.CleanupRunsTotal.WithLabelValues("success").Inc()
	metrics.CleanupPurgedTotal.Add(float64(deleted))
	return deleted, nil
}
