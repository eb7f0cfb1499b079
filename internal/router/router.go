package router

import (
	"time"

	"github.com/Odenfis/taytaApp/internal/config"
	"github.com/Odenfis/taytaApp/internal/handler"
	"github.com/Odenfis/taytaApp/internal/middleware"
	"github.com/Odenfis/taytaApp/internal/repository"
	"github.com/Odenfis/taytaApp/internal/service"
	"github.com/Odenfis/taytaApp/internal/session"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	sesiones := session.NewStore(rdb, time.Duration(cfg.SessionTTLHours)*time.Hour)

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	empleadoRepo := repository.NewEmpleadoRepository(db)
	lineaRepo := repository.NewLineaRepository(db)
	claseRepo := repository.NewClaseRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	referenciaRepo := repository.NewReferenciaRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, sesiones)
	clienteSvc := service.NewClienteService(clienteRepo)
	proveedorSvc := service.NewProveedorService(proveedorRepo)
	empleadoSvc := service.NewEmpleadoService(empleadoRepo, referenciaRepo)
	catalogoSvc := service.NewCatalogoService(lineaRepo, claseRepo)
	productoSvc := service.NewProductoService(productoRepo, lineaRepo, claseRepo, proveedorRepo, referenciaRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc, cfg)
	clientesH := handler.NewClientesHandler(clienteSvc)
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc)
	empleadosH := handler.NewEmpleadosHandler(empleadoSvc)
	catalogosH := handler.NewCatalogosHandler(catalogoSvc)
	productosH := handler.NewProductosHandler(productoSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.POST("/api/login", middleware.LoginRateLimiter(), authH.Login)

	// Everything else under /api requires a live session.
	api := r.Group("/api", middleware.SessionAuth(sesiones, cfg.SessionCookie))
	{
		api.GET("/user-info", authH.UserInfo)
		api.GET("/logout", authH.Logout)

		api.GET("/clientes", clientesH.Listar)
		api.POST("/clientes", clientesH.Crear)
		api.GET("/clientes/:id", clientesH.Obtener)
		api.PUT("/clientes/:id", clientesH.Actualizar)
		api.PATCH("/clientes/delete/:id", clientesH.Eliminar)

		api.GET("/proveedores", proveedoresH.Listar)
		api.POST("/proveedores", proveedoresH.Crear)
		api.GET("/proveedores/:id", proveedoresH.Obtener)
		api.PUT("/proveedores/:id", proveedoresH.Actualizar)
		api.PATCH("/proveedores/delete/:id", proveedoresH.Eliminar)

		api.GET("/tipo-empleado", empleadosH.ListarTipos)
		api.GET("/empleados", empleadosH.Listar)
		api.POST("/empleados", empleadosH.Crear)
		api.GET("/empleados/:id", empleadosH.Obtener)
		api.PUT("/empleados/:id", empleadosH.Actualizar)
		api.PATCH("/empleados/delete/:id", empleadosH.Eliminar)

		api.GET("/productos-config", productosH.Config)
		api.GET("/productos", productosH.Listar)
		api.POST("/productos", productosH.Crear)
		api.GET("/productos/:id", productosH.Obtener)
		api.PUT("/productos/:id", productosH.Actualizar)
		api.PATCH("/productos/delete/:id", productosH.Eliminar)

		// Generic catalog routes. Static segments above always win over
		// :tabla, so these only see tokens the entity routes did not claim;
		// the handler rejects anything outside {lineas, clases}.
		api.GET("/:tabla", catalogosH.Listar)
		api.POST("/:tabla", catalogosH.Crear)
		api.GET("/:tabla/:id", catalogosH.Obtener)
		api.PUT("/:tabla/:id", catalogosH.Actualizar)
		api.PATCH("/:tabla/delete/:id", catalogosH.Eliminar)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
