package router

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/VictorPko73/mi-sistema-facturacion-v1/internal/apierror"
	"github.com/VictorPko73/mi-sistema-facturacion-v1/internal/config"
	"github.com/VictorPko73/mi-sistema-facturacion-v1/internal/handler"
	"github.com/VictorPko73/mi-sistema-facturacion-v1/internal/middleware"
	"github.com/VictorPko73/mi-sistema-facturacion-v1/internal/repository"
	"github.com/VictorPko73/mi-sistema-facturacion-v1/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.FrontendOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	clienteRepo := repository.NewClienteRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	facturaRepo := repository.NewFacturaRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	clienteSvc := service.NewClienteService(clienteRepo)
	productoSvc := service.NewProductoService(productoRepo)
	facturaSvc := service.NewFacturaService(facturaRepo, clienteRepo, productoRepo, cfg.PDFStoragePath)

	// ── Handlers ─────────────────────────────────────────────────────────────
	clientesH := handler.NewClientesHandler(clienteSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	facturasH := handler.NewFacturasHandler(facturaSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db))

	api := r.Group("/api")
	{
		clientes := api.Group("/clientes")
		{
			clientes.POST("", clientesH.Crear)
			clientes.GET("", clientesH.Listar)
			clientes.GET("/:id", clientesH.ObtenerPorID)
			clientes.PUT("/:id", clientesH.Actualizar)
			clientes.DELETE("/:id", clientesH.Eliminar)
		}

		productos := api.Group("/productos")
		{
			productos.POST("", productosH.Crear)
			productos.GET("", productosH.Listar)
			productos.GET("/:id", productosH.ObtenerPorID)
			productos.PUT("/:id", productosH.Actualizar)
			productos.DELETE("/:id", productosH.Eliminar)
		}

		facturas := api.Group("/facturas")
		{
			facturas.POST("", facturasH.Crear)
			facturas.GET("", facturasH.Listar)
			facturas.GET("/:id", facturasH.ObtenerPorID)
			facturas.GET("/:id/pdf", facturasH.DescargarPDF)
			facturas.DELETE("/:id", facturasH.Eliminar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// ── Static SPA ───────────────────────────────────────────────────────────
	// The desktop shell loads the built frontend from this server. Unmatched
	// non-API paths fall back to index.html so client-side routing works;
	// /api misses stay JSON.
	r.NoRoute(spaFallback(cfg.FrontendDir))

	return r
}

func spaFallback(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/api" || strings.HasPrefix(path, "/api/") {
			c.JSON(404, apierror.NotFound("Recurso no encontrado"))
			return
		}
		if dir == "" {
			c.Status(404)
			return
		}
		file := filepath.Join(dir, filepath.Clean("/"+path))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.File(filepath.Join(dir, "index.html"))
	}
}
