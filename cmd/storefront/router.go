package main

import (
	"context"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/MikeMC777/homefood/internal/account"
	"github.com/MikeMC777/homefood/internal/business"
	"github.com/MikeMC777/homefood/internal/catalog"
	"github.com/MikeMC777/homefood/internal/httpx"
	"github.com/MikeMC777/homefood/internal/order"
	"github.com/MikeMC777/homefood/internal/payment"
	"github.com/MikeMC777/homefood/internal/report"
	"github.com/MikeMC777/homefood/internal/session"
)

// Prober reports whether the process' dependencies are reachable.
type Prober interface {
	Probe(ctx context.Context) error
}

// App is everything the HTTP layer needs.
type App struct {
	Log       zerolog.Logger
	Sessions  *session.Manager
	Accounts  *account.Service
	Catalog   *catalog.Service
	Orders    *order.Service
	Payments  *payment.Service
	Reports   *report.Service
	Business  *business.Service
	Health    Prober
	PublicDir string
	UploadDir string
	MaxUpload int64
}

func newRouter(a *App) *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = a.MaxUpload
	r.Use(httpx.RequestID(), httpx.Logger(a.Log), httpx.Recovery(a.Log), httpx.WithLogger(a.Log), httpx.Session(a.Sessions))

	r.GET("/healthz", healthHandler(a.Health))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if a.UploadDir != "" {
		r.Static("/uploads", a.UploadDir)
	}

	api := r.Group("/api")

	api.POST("/user/login", userLoginHandler(a.Accounts, a.Sessions))
	api.POST("/user/logout", userLogoutHandler(a.Sessions))
	api.GET("/user/profile", httpx.RequireUser(), getProfileHandler(a.Accounts))
	api.PUT("/user/profile", httpx.RequireUser(), updateProfileHandler(a.Accounts))

	api.POST("/admin/login", adminLoginHandler(a.Accounts, a.Sessions))
	api.POST("/admin/logout", adminLogoutHandler(a.Sessions))

	api.GET("/products", listProductsHandler(a.Catalog))
	api.GET("/products/:id", getProductHandler(a.Catalog))
	api.POST("/products", httpx.RequireAdmin(), createProductHandler(a.Catalog))
	api.PUT("/products/:id", httpx.RequireAdmin(), updateProductHandler(a.Catalog))
	api.DELETE("/products/:id", httpx.RequireAdmin(), deleteProductHandler(a.Catalog))

	api.POST("/orders", httpx.RequireUser(), createOrderHandler(a.Orders))
	api.PUT("/orders/:id", httpx.RequireUser(), updateOrderHandler(a.Orders))
	api.GET("/my-orders", httpx.RequireUser(), myOrdersHandler(a.Orders))
	api.GET("/orders/:id", getOrderHandler(a.Orders))
	api.PUT("/orders/:id/status", httpx.RequireAdmin(), updateOrderStatusHandler(a.Orders))
	api.POST("/orders/:id/payment", httpx.RequireAdmin(), recordPaymentHandler(a.Payments))
	api.GET("/orders/:id/payment", getPaymentHandler(a.Payments))

	api.GET("/business-profile", getBusinessProfileHandler(a.Business))

	// The admin read surface is reachable under both prefixes.
	mountAdmin(api.Group("/admin", httpx.RequireAdmin()), a)
	mountAdmin(api.Group("/dashboard", httpx.RequireAdmin()), a)

	r.NoRoute(staticFallback(a.PublicDir))
	return r
}

func mountAdmin(g *gin.RouterGroup, a *App) {
	g.GET("/orders", adminOrdersHandler(a.Orders))
	g.GET("/users", adminUsersHandler(a.Reports))
	g.GET("/users/:mobile/orders", adminUserOrdersHandler(a.Orders))
	g.PUT("/users/:mobile", adminUpdateUserHandler(a.Accounts))
	g.DELETE("/users/:mobile", adminDeleteUserHandler(a.Accounts))
	g.GET("/business-profile", getBusinessProfileHandler(a.Business))
	g.POST("/business-profile", saveBusinessProfileHandler(a.Business))
	g.GET("/stats", statsHandler(a.Reports))
	g.GET("/revenue/breakdown", breakdownHandler(a.Reports))
	g.GET("/revenue/daily", dailyRevenueHandler(a.Reports))
}

// staticFallback serves files from dir for unmatched GETs outside /api, and a JSON 404 otherwise.
func staticFallback(dir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := c.Request.URL.Path
		if dir != "" && !strings.HasPrefix(p, "/api/") &&
			(c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead) {
			clean := path.Clean("/" + p)
			if clean == "/" {
				clean = "/index.html"
			}
			file := filepath.Join(dir, filepath.FromSlash(clean))
			if st, err := os.Stat(file); err == nil && !st.IsDir() {
				c.File(file)
				return
			}
		}
		c.JSON(http.StatusNotFound, httpx.HTTPError{Error: "endpoint not found"})
	}
}

// healthHandler godoc
// @Summary  Liveness and dependency check
// @Tags     health
// @Produce  json
// @Success  200 {object} map[string]string
// @Failure  503 {object} httpx.HTTPError
// @Router   /healthz [get]
func healthHandler(h Prober) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.Probe(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, httpx.HTTPError{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
