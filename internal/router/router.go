package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"lollyshoppe/internal/auth"
	"lollyshoppe/internal/config"
	"lollyshoppe/internal/handler"
	"lollyshoppe/internal/httpx"
	"lollyshoppe/internal/service"
	"lollyshoppe/internal/validation"
)

// Register wires routes and middleware. Every /api route sits behind the
// identity provider's token check plus the actor resolver; there are no
// public API routes because the core never manages credentials itself.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userService service.UserService,
	userHandler *handler.UserHandler,
	projectHandler *handler.ProjectHandler,
	milestoneHandler *handler.MilestoneHandler,
	deliverableHandler *handler.DeliverableHandler,
	invoiceHandler *handler.InvoiceHandler,
	dashboardHandler *handler.DashboardHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validation.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		ErrorHandler: func(c echo.Context, err error) error {
			return httpx.Fail(c, http.StatusUnauthorized, "Unauthorized")
		},
	}), resolveActor(userService))

	// Users / identity
	api.POST("/users/sync", userHandler.Sync)
	api.GET("/me", userHandler.Me)
	api.GET("/users", userHandler.ListUsers)
	api.GET("/clients", userHandler.ListClients)
	api.GET("/clients/:id/projects", projectHandler.ListByClient)
	api.GET("/clients/:id/invoices", invoiceHandler.ListByClient)

	// Projects
	api.GET("/projects", projectHandler.List)
	api.POST("/projects", projectHandler.Create)
	api.GET("/projects/:id", projectHandler.Get)
	api.PUT("/projects/:id", projectHandler.Update)
	api.DELETE("/projects/:id", projectHandler.Delete)

	// Milestones
	api.GET("/projects/:id/milestones", milestoneHandler.ListByProject)
	api.PUT("/projects/:id/milestones/order", milestoneHandler.Reorder)
	api.POST("/milestones", milestoneHandler.Create)
	api.GET("/milestones/:id", milestoneHandler.Get)
	api.PUT("/milestones/:id", milestoneHandler.Update)
	api.DELETE("/milestones/:id", milestoneHandler.Delete)
	api.POST("/milestones/:id/toggle", milestoneHandler.ToggleComplete)

	// Deliverables
	api.GET("/projects/:id/deliverables", deliverableHandler.ListByProject)
	api.POST("/deliverables", deliverableHandler.Create)
	api.GET("/deliverables/:id", deliverableHandler.Get)
	api.PUT("/deliverables/:id", deliverableHandler.Update)
	api.DELETE("/deliverables/:id", deliverableHandler.Delete)

	// Invoices
	api.GET("/invoices", invoiceHandler.List)
	api.POST("/invoices", invoiceHandler.Create)
	api.GET("/invoices/:id", invoiceHandler.Get)
	api.PUT("/invoices/:id", invoiceHandler.Update)
	api.DELETE("/invoices/:id", invoiceHandler.Delete)
	api.POST("/invoices/:id/pay", invoiceHandler.MarkAsPaid)

	// Dashboards
	api.GET("/dashboard/admin", dashboardHandler.Admin)
	api.GET("/dashboard/client", dashboardHandler.Client)
}

// resolveActor turns the verified token into a local user. First sight of a
// subject id creates the user with the CLIENT role, so the sync happens
// implicitly on any authenticated request.
func resolveActor(users service.UserService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return httpx.Fail(c, http.StatusUnauthorized, "Unauthorized")
			}
			identity, err := auth.IdentityFromToken(token)
			if err != nil {
				return httpx.Fail(c, http.StatusUnauthorized, "Unauthorized")
			}
			user, err := users.Sync(c.Request().Context(), identity)
			if err != nil {
				return httpx.Fail(c, http.StatusUnauthorized, "Unauthorized")
			}
			auth.SetActor(c, &auth.Actor{UserID: user.ID, Role: user.Role})
			return next(c)
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
