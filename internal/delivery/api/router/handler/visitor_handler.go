package handler

import (
	"log/slog"
	"net/http"

	"checkin/internal/delivery/api/response"
	"checkin/internal/delivery/api/validator"
	deliverycontext "checkin/internal/delivery/context"
	"checkin/internal/domain/entity"
	"checkin/internal/errors"
	"checkin/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// VisitorHandlerParams holds dependencies for VisitorHandler, injected by Fx.
type VisitorHandlerParams struct {
	fx.In

	VisitorUC usecase.VisitorUsecase
	Logger    *slog.Logger
}

// VisitorHandler holds dependencies for visitor-facing handlers.
type VisitorHandler struct {
	visitorUC usecase.VisitorUsecase
	logger    *slog.Logger
}

// NewVisitorHandler is the constructor for VisitorHandler.
func NewVisitorHandler(params VisitorHandlerParams) *VisitorHandler {
	return &VisitorHandler{
		visitorUC: params.VisitorUC,
		logger:    params.Logger,
	}
}

// RegisterVisitorRequest is the visitor registration form.
type RegisterVisitorRequest struct {
	FirstName  string `json:"firstName" form:"fname" validate:"required,max=100"`
	MiddleName string `json:"middleName" form:"mi" validate:"max=100"`
	LastName   string `json:"lastName" form:"lname" validate:"required,max=100"`
	Email      string `json:"email" form:"email" validate:"required,email,max=254"`
	Password   string `json:"password" form:"pass" validate:"required,min=8,max=72"`
}

// VisitorProfile is the public view of a visitor account.
type VisitorProfile struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	FirstName  string    `json:"firstName"`
	MiddleName string    `json:"middleName,omitempty"`
	LastName   string    `json:"lastName"`
	Name       string    `json:"name"`
}

func toVisitorProfile(visitor *entity.Visitor) VisitorProfile {
	return VisitorProfile{
		ID:         visitor.ID,
		Email:      visitor.Email,
		FirstName:  visitor.Name.First,
		MiddleName: visitor.Name.Middle,
		LastName:   visitor.Name.Last,
		Name:       visitor.DisplayName(),
	}
}

// Register creates a visitor account and sends the visitor to the login page.
func (h *VisitorHandler) Register(c echo.Context) error {
	var req RegisterVisitorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, validator.FieldErrors(err))
	}

	_, err := h.visitorUC.Register(c.Request().Context(), usecase.RegisterVisitorInput{
		FirstName:  req.FirstName,
		MiddleName: req.MiddleName,
		LastName:   req.LastName,
		Email:      req.Email,
		Password:   req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusSeeOther, entity.ActorVisitor.LoginPath())
}

// Profile returns the signed-in visitor's profile.
func (h *VisitorHandler) Profile(c echo.Context) error {
	visitor, ok := deliverycontext.GetVisitor(c)
	if !ok {
		return response.Unauthenticated(c)
	}

	return response.Success(c, http.StatusOK, toVisitorProfile(visitor))
}

// Pass serves the signed-in visitor's QR pass as a PNG.
func (h *VisitorHandler) Pass(c echo.Context) error {
	visitor, ok := deliverycontext.GetVisitor(c)
	if !ok {
		return response.Unauthenticated(c)
	}

	png, err := h.visitorUC.GetPass(c.Request().Context(), visitor.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "private, no-store")

	return c.Blob(http.StatusOK, "image/png", png)
}
