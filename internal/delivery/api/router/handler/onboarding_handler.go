package handler

import (
	"log/slog"
	"mime/multipart"
	"net/http"

	"checkin/internal/delivery/api/response"
	"checkin/internal/delivery/api/validator"
	"checkin/internal/domain/entity"
	"checkin/internal/errors"
	"checkin/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OnboardingHandlerParams holds dependencies for OnboardingHandler, injected by Fx.
type OnboardingHandlerParams struct {
	fx.In

	OnboardingUC usecase.OnboardingUsecase
	Logger       *slog.Logger
}

// OnboardingHandler accepts establishment onboarding applications.
type OnboardingHandler struct {
	onboardingUC usecase.OnboardingUsecase
	logger       *slog.Logger
}

// NewOnboardingHandler is the constructor for OnboardingHandler.
func NewOnboardingHandler(params OnboardingHandlerParams) *OnboardingHandler {
	return &OnboardingHandler{
		onboardingUC: params.OnboardingUC,
		logger:       params.Logger,
	}
}

// OnboardingRequest holds the text fields of the multipart application form.
type OnboardingRequest struct {
	Name    string `form:"name" validate:"required,max=200"`
	Owner   string `form:"owner" validate:"required,max=200"`
	Email   string `form:"email" validate:"required,email,max=254"`
	Address string `form:"address" validate:"required,max=500"`
	Contact string `form:"contact" validate:"required,max=100"`
	Message string `form:"message" validate:"max=2000"`
}

// Submit stores the application with its permit and valid ID uploads.
func (h *OnboardingHandler) Submit(c echo.Context) error {
	var req OnboardingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid onboarding input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, validator.FieldErrors(err))
	}

	permit, err := openUpload(c, "permit")
	if err != nil {
		return response.ValidationFailed(c, map[string]string{"permit": "required"})
	}
	defer permit.Close()

	validID, err := openUpload(c, "validID")
	if err != nil {
		return response.ValidationFailed(c, map[string]string{"validID": "required"})
	}
	defer validID.Close()

	_, err = h.onboardingUC.Submit(c.Request().Context(), usecase.SubmitOnboardingInput{
		Name:    req.Name,
		Owner:   req.Owner,
		Email:   req.Email,
		Address: req.Address,
		Contact: req.Contact,
		Message: req.Message,
		Permit:  permit.document(),
		ValidID: validID.document(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusSeeOther, entity.ActorEstablishment.LoginPath())
}

// upload is an opened multipart file.
type upload struct {
	header *multipart.FileHeader
	file   multipart.File
}

func openUpload(c echo.Context, field string) (*upload, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	file, err := header.Open()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &upload{header: header, file: file}, nil
}

func (u *upload) document() usecase.Document {
	return usecase.Document{
		Filename:    u.header.Filename,
		ContentType: u.header.Header.Get(echo.HeaderContentType),
		Content:     u.file,
	}
}

func (u *upload) Close() error {
	return u.file.Close()
}
