// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"checkin/internal/delivery/api/middleware"
	"checkin/internal/delivery/api/router/handler"
	"checkin/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler       *handler.SessionHandler
	EstablishmentHandler *handler.EstablishmentHandler
	VisitorHandler       *handler.VisitorHandler
	OnboardingHandler    *handler.OnboardingHandler
	SessionMiddleware    *middleware.SessionMiddleware
	RateLimitMiddleware  *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler       *handler.SessionHandler
	establishmentHandler *handler.EstablishmentHandler
	visitorHandler       *handler.VisitorHandler
	onboardingHandler    *handler.OnboardingHandler
	sessionMiddleware    *middleware.SessionMiddleware
	rateLimitMiddleware  *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:       params.SessionHandler,
		establishmentHandler: params.EstablishmentHandler,
		visitorHandler:       params.VisitorHandler,
		onboardingHandler:    params.OnboardingHandler,
		sessionMiddleware:    params.SessionMiddleware,
		rateLimitMiddleware:  params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)
	e.GET("/", handler.Index)

	r.registerEstablishmentRoutes(e.Group("/establishment"))
	r.registerVisitorRoutes(e.Group("/visitor"))
}

func (r *router) registerEstablishmentRoutes(g *echo.Group) {
	kind := entity.ActorEstablishment
	page := r.sessionMiddleware.RequirePage(kind)
	data := r.sessionMiddleware.RequireData(kind)

	// Session routes
	g.GET("/login", r.sessionHandler.LoginPage(kind))
	g.POST("/login", r.sessionHandler.Login(kind))
	g.GET("/logout", r.sessionHandler.Logout(kind))

	// Public routes
	g.POST("/request", r.onboardingHandler.Submit)
	g.GET("/code/:email", r.establishmentHandler.IssueCode, r.rateLimitMiddleware.PerIPAndParam("code", "email"))

	// Signed-in establishment routes
	g.GET("/home", r.establishmentHandler.Home, page)
	g.GET("/dashboard", r.establishmentHandler.Dashboard, page)
	g.POST("/qr", r.establishmentHandler.CheckIn, data)
}

func (r *router) registerVisitorRoutes(g *echo.Group) {
	kind := entity.ActorVisitor
	page := r.sessionMiddleware.RequirePage(kind)

	// Session routes
	g.GET("/login", r.sessionHandler.LoginPage(kind))
	g.POST("/login", r.sessionHandler.Login(kind))
	g.GET("/logout", r.sessionHandler.Logout(kind))

	// Public routes
	g.POST("/register", r.visitorHandler.Register)

	// Signed-in visitor routes
	g.GET("/profile", r.visitorHandler.Profile, page)
	g.GET("/pass", r.visitorHandler.Pass, page)
}
