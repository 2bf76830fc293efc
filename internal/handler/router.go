package handler

import (
	"log/slog"
	"net/http"

	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/domain/user"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/handler/api"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/handler/middleware"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/metrics"
	"github.com/juliocnc19/mvp-tigrito-web-sub000/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Postings     *api.PostingHandler
	Transactions *api.TransactionHandler
	Payments     *api.PaymentHandler
	Withdrawals  *api.WithdrawalHandler
	Promos       *api.PromoHandler
	Reviews      *api.ReviewHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// Public catalogue reads.
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/professionals/:id/reviews", Handler: h.Reviews.ListByProfessional},
			{Method: http.MethodGet, Path: "/professionals/:id/rating", Handler: h.Reviews.RatingSummary},
		})

		authed := apiGroup.Group("")
		authed.Use(authMiddleware.RequireAuth())

		clientOnly := authMiddleware.RequireRole(user.RoleClient)
		proOnly := authMiddleware.RequireRole(user.RoleProfessional)

		addRoutes(authed, []route{
			{Method: http.MethodPost, Path: "/postings", Handler: h.Postings.Create, Mw: []gin.HandlerFunc{clientOnly}},
			{Method: http.MethodGet, Path: "/postings", Handler: h.Postings.ListOpen},
			{Method: http.MethodGet, Path: "/postings/:id", Handler: h.Postings.Get},
			{Method: http.MethodPost, Path: "/postings/:id/offers", Handler: h.Postings.SubmitOffer, Mw: []gin.HandlerFunc{proOnly}},
			{Method: http.MethodPost, Path: "/offers/:id/accept", Handler: h.Postings.AcceptOffer},

			{Method: http.MethodPost, Path: "/transactions", Handler: h.Transactions.Book, Mw: []gin.HandlerFunc{clientOnly}},
			{Method: http.MethodGet, Path: "/transactions", Handler: h.Transactions.ListMine},
			{Method: http.MethodGet, Path: "/transactions/:id", Handler: h.Transactions.Get},
			{Method: http.MethodPost, Path: "/transactions/:id/schedule", Handler: h.Transactions.Schedule},
			{Method: http.MethodPost, Path: "/transactions/:id/start", Handler: h.Transactions.Start},
			{Method: http.MethodPost, Path: "/transactions/:id/complete", Handler: h.Transactions.Complete},
			{Method: http.MethodPost, Path: "/transactions/:id/cancel", Handler: h.Transactions.Cancel},
			{Method: http.MethodPost, Path: "/transactions/:id/payments", Handler: h.Payments.Initiate, Mw: []gin.HandlerFunc{clientOnly}},
			{Method: http.MethodPost, Path: "/transactions/:id/review", Handler: h.Reviews.Create, Mw: []gin.HandlerFunc{clientOnly}},

			{Method: http.MethodGet, Path: "/balance", Handler: h.Withdrawals.Balance},
			{Method: http.MethodPost, Path: "/withdrawals", Handler: h.Withdrawals.Request},
			{Method: http.MethodGet, Path: "/withdrawals", Handler: h.Withdrawals.ListMine},

			{Method: http.MethodPost, Path: "/promo-codes/preview", Handler: h.Promos.Preview},
		})

		admin := authed.Group("/admin")
		admin.Use(authMiddleware.RequireRole(user.RoleAdmin))
		addRoutes(admin, []route{
			{Method: http.MethodPost, Path: "/postings/:id/close", Handler: h.Postings.ForceClose},
			{Method: http.MethodPost, Path: "/transactions/:id/refund", Handler: h.Payments.Refund},
			{Method: http.MethodGet, Path: "/withdrawals", Handler: h.Withdrawals.ListAll},
			{Method: http.MethodPost, Path: "/withdrawals/:id/approve", Handler: h.Withdrawals.Approve},
			{Method: http.MethodPost, Path: "/withdrawals/:id/reject", Handler: h.Withdrawals.Reject},
			{Method: http.MethodPost, Path: "/promo-codes", Handler: h.Promos.Create},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
