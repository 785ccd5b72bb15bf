package handler

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"library-backend/internal/handler/api"
	"library-backend/internal/handler/middleware"
	"library-backend/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Transactions *api.TransactionHandler
	Books        *api.BookHandler
	Accounts     *api.AccountHandlers
	Reviews      *api.ReviewHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, authorizer *middleware.Authorizer, h Handlers) {
	setupMiddleware(engine, cfg, logger, authorizer)
	setupRoutes(engine, h)
	setupStatic(engine, cfg.Server.StaticDir)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, authorizer *middleware.Authorizer) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
	engine.Use(authorizer.Handle())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")

	addRoutes(apiGroup.Group("/auth"), []route{
		{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
		{Method: http.MethodPost, Path: "/registro", Handler: h.Auth.Register},
		{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
	})

	addRoutes(apiGroup.Group("/compras"), []route{
		{Method: http.MethodGet, Path: "", Handler: h.Transactions.List},
		{Method: http.MethodPost, Path: "", Handler: h.Transactions.Create},
		{Method: http.MethodGet, Path: "/minhas", Handler: h.Transactions.Mine},
		{Method: http.MethodGet, Path: "/cliente/:clienteId", Handler: h.Transactions.ListByCustomer},
		{Method: http.MethodGet, Path: "/status/:status", Handler: h.Transactions.ListByStatus},
		{Method: http.MethodGet, Path: "/:id", Handler: h.Transactions.Get},
		{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Transactions.ChangeStatus},
		{Method: http.MethodPatch, Path: "/:id/finalizar", Handler: h.Transactions.Finalize},
		{Method: http.MethodPatch, Path: "/:id/renovar", Handler: h.Transactions.Renew},
		{Method: http.MethodDelete, Path: "/:id", Handler: h.Transactions.Delete},
	})

	addRoutes(apiGroup.Group("/livros"), []route{
		{Method: http.MethodGet, Path: "", Handler: h.Books.List},
		{Method: http.MethodPost, Path: "", Handler: h.Books.Create},
		{Method: http.MethodGet, Path: "/buscar", Handler: h.Books.Search},
		{Method: http.MethodGet, Path: "/buscar/titulo", Handler: h.Books.SearchBy("titulo")},
		{Method: http.MethodGet, Path: "/buscar/autor", Handler: h.Books.SearchBy("autor")},
		{Method: http.MethodGet, Path: "/buscar/genero", Handler: h.Books.SearchBy("genero")},
		{Method: http.MethodGet, Path: "/:id", Handler: h.Books.Get},
		{Method: http.MethodPut, Path: "/:id", Handler: h.Books.Update},
		{Method: http.MethodDelete, Path: "/:id", Handler: h.Books.Delete},
	})

	customers := apiGroup.Group("/clientes")
	addAccountRoutes(customers, h.Accounts.Customers)
	addRoutes(customers, []route{
		{Method: http.MethodGet, Path: "/cpf/:cpf", Handler: h.Accounts.Customers.GetByCPF},
		{Method: http.MethodGet, Path: "/email/:email", Handler: h.Accounts.Customers.GetByEmail},
	})
	addAccountRoutes(apiGroup.Group("/funcionarios"), h.Accounts.Staff)
	addAccountRoutes(apiGroup.Group("/administradores"), h.Accounts.Admins)

	addRoutes(apiGroup.Group("/avaliacoes"), []route{
		{Method: http.MethodGet, Path: "", Handler: h.Reviews.List},
		{Method: http.MethodPost, Path: "", Handler: h.Reviews.Create},
		{Method: http.MethodGet, Path: "/livro/:livroId", Handler: h.Reviews.ListByBook},
		{Method: http.MethodGet, Path: "/cliente/:clienteId", Handler: h.Reviews.ListByCustomer},
		{Method: http.MethodGet, Path: "/:id", Handler: h.Reviews.Get},
		{Method: http.MethodPut, Path: "/:id", Handler: h.Reviews.Update},
		{Method: http.MethodDelete, Path: "/:id", Handler: h.Reviews.Delete},
	})
}

func addAccountRoutes(g *gin.RouterGroup, h *api.AccountHandler) {
	addRoutes(g, []route{
		{Method: http.MethodGet, Path: "", Handler: h.List},
		{Method: http.MethodPost, Path: "", Handler: h.Create},
		{Method: http.MethodGet, Path: "/:id", Handler: h.Get},
		{Method: http.MethodPut, Path: "/:id", Handler: h.Update},
		{Method: http.MethodDelete, Path: "/:id", Handler: h.Delete},
	})
}

// setupStatic serves the bundled front end when STATIC_DIR is set.
func setupStatic(engine *gin.Engine, dir string) {
	if dir == "" {
		return
	}
	engine.StaticFile("/", filepath.Join(dir, "index.html"))
	engine.StaticFile("/index.html", filepath.Join(dir, "index.html"))
	engine.Static("/pages", filepath.Join(dir, "pages"))
	engine.Static("/assets", filepath.Join(dir, "assets"))
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
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
