package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/actions"
	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucAgendamento "github.com/BruksfildServices01/salon-scheduler/internal/usecase/agendamento"
)

// RegisterRoutes monta a API e devolve o dispatcher de auditoria para ser fechado no shutdown.
// rdb pode ser nil: as estatísticas passam a ir sempre ao banco.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log *zap.Logger,
) *audit.Dispatcher {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware())
	r.Use(metrics.Middleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	agendamentoRepo := infraRepo.NewAgendamentoGormRepository(db)
	unitRepo := infraRepo.NewUnitGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	var statsCache ucAgendamento.StatsCache
	if rdb != nil {
		statsCache = cache.NewStatsRedisCache(rdb, cfg.StatsCacheTTL, log)
	}

	// ======================================================
	// 🧠 AÇÕES / USE CASES
	// ======================================================
	agendamentos := actions.NewAgendamentos(agendamentoRepo, auditDispatcher, log, actions.Options{
		AgendaStart: cfg.AgendaStart,
		AgendaEnd:   cfg.AgendaEnd,
		StatsCache:  statsCache,
	})

	workingHoursUC := ucAgendamento.NewWorkingHours(agendamentoRepo, auditDispatcher)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	agendamentoHandler := handlers.NewAgendamentoHandler(agendamentos, unitRepo)
	workingHoursHandler := handlers.NewWorkingHoursHandler(workingHoursUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger, unitRepo)

	// ======================================================
	// 🩺 OPERAÇÃO
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// ======================================================
	// 🔐 API PRIVADA (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(cfg.RateLimitPerMin, log))
	api.Use(middleware.AuthMiddleware(cfg))
	{
		// ------------------------------
		// AGENDAMENTOS
		// ------------------------------
		ag := api.Group("/agendamentos")
		{
			ag.POST("", agendamentoHandler.Create)
			ag.GET("", agendamentoHandler.List)
			ag.GET("/stats", agendamentoHandler.Stats)
			ag.GET("/disponibilidade", agendamentoHandler.Availability)
			ag.GET("/:id", agendamentoHandler.Get)
			ag.PATCH("/:id/reagendar", agendamentoHandler.Reschedule)
			ag.PATCH("/:id/status", agendamentoHandler.UpdateStatus)
			ag.PATCH("/:id/cancelar", agendamentoHandler.Cancel)
		}

		// ------------------------------
		// EXPEDIENTE
		// ------------------------------
		api.GET("/profissionais/:id/horarios", workingHoursHandler.Get)
		api.PUT("/profissionais/:id/horarios", workingHoursHandler.Update)

		api.GET("/audit-logs", auditLogsHandler.List)
	}

	return auditDispatcher
}
