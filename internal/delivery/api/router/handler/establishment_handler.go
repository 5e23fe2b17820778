package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"checkin/internal/delivery/api/response"
	"checkin/internal/delivery/api/validator"
	deliverycontext "checkin/internal/delivery/context"
	"checkin/internal/errors"
	"checkin/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EstablishmentHandlerParams holds dependencies for EstablishmentHandler, injected by Fx.
type EstablishmentHandlerParams struct {
	fx.In

	CheckInUC      usecase.CheckInUsecase
	VerificationUC usecase.VerificationUsecase
	Logger         *slog.Logger
}

// EstablishmentHandler holds dependencies for establishment-facing handlers.
type EstablishmentHandler struct {
	checkInUC      usecase.CheckInUsecase
	verificationUC usecase.VerificationUsecase
	logger         *slog.Logger
}

// NewEstablishmentHandler is the constructor for EstablishmentHandler.
func NewEstablishmentHandler(params EstablishmentHandlerParams) *EstablishmentHandler {
	return &EstablishmentHandler{
		checkInUC:      params.CheckInUC,
		verificationUC: params.VerificationUC,
		logger:         params.Logger,
	}
}

// EstablishmentProfile is the public view of an establishment account.
type EstablishmentProfile struct {
	ID      uuid.UUID `json:"id"`
	Email   string    `json:"email"`
	Name    string    `json:"name"`
	Owner   string    `json:"owner"`
	Address string    `json:"address"`
	Contact string    `json:"contact"`
}

// VisitLogEntry is one row of the dashboard.
type VisitLogEntry struct {
	VisitorID uuid.UUID `json:"visitorId"`
	Name      string    `json:"name"`
	Date      time.Time `json:"date"`
}

// DashboardResponse lists recent visits and the total visit count.
type DashboardResponse struct {
	Records []VisitLogEntry `json:"records"`
	Count   int64           `json:"count"`
}

// CheckInRequest carries the text decoded by the establishment's QR scanner.
type CheckInRequest struct {
	DecodedText string `json:"decodedText" form:"decodedText" validate:"required"`
}

// CheckInResponse names the visitor that was checked in.
type CheckInResponse struct {
	RecordID    uuid.UUID `json:"recordId"`
	VisitorID   uuid.UUID `json:"visitorId"`
	Name        string    `json:"name"`
	CheckedInAt time.Time `json:"checkedInAt"`
}

// CodeRequest names the email a verification code is issued for.
type CodeRequest struct {
	Email string `param:"email" validate:"required,email"`
}

// CodeResponse returns the issued verification code to the registration page.
type CodeResponse struct {
	Code int `json:"code"`
}

// Home returns the signed-in establishment's profile.
func (h *EstablishmentHandler) Home(c echo.Context) error {
	establishment, ok := deliverycontext.GetEstablishment(c)
	if !ok {
		return response.Unauthenticated(c)
	}

	return response.Success(c, http.StatusOK, EstablishmentProfile{
		ID:      establishment.ID,
		Email:   establishment.Email,
		Name:    establishment.Name,
		Owner:   establishment.Owner,
		Address: establishment.Address,
		Contact: establishment.Contact,
	})
}

// Dashboard lists the most recent visits at the signed-in establishment.
func (h *EstablishmentHandler) Dashboard(c echo.Context) error {
	establishment, ok := deliverycontext.GetEstablishment(c)
	if !ok {
		return response.Unauthenticated(c)
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.ValidationFailed(c, map[string]string{"limit": "min"})
		}
		if parsed > usecase.MaxVisitLogLimit {
			return response.ValidationFailed(c, map[string]string{"limit": "max"})
		}
		limit = parsed
	}

	output, err := h.checkInUC.ListVisitLogs(c.Request().Context(), establishment.ID, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	records := make([]VisitLogEntry, 0, len(output.Records))
	for _, entry := range output.Records {
		records = append(records, VisitLogEntry{
			VisitorID: entry.VisitorID,
			Name:      entry.VisitorName,
			Date:      entry.VisitedAt,
		})
	}

	return response.Success(c, http.StatusOK, DashboardResponse{
		Records: records,
		Count:   output.Count,
	})
}

// CheckIn records a visit for the scanned visitor pass.
func (h *EstablishmentHandler) CheckIn(c echo.Context) error {
	establishment, ok := deliverycontext.GetEstablishment(c)
	if !ok {
		return response.Unauthenticated(c)
	}

	var req CheckInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid check-in input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, validator.FieldErrors(err))
	}

	output, err := h.checkInUC.CheckIn(c.Request().Context(), establishment, req.DecodedText)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, CheckInResponse{
		RecordID:    output.RecordID,
		VisitorID:   output.VisitorID,
		Name:        output.VisitorName,
		CheckedInAt: output.CheckedInAt,
	})
}

// IssueCode mails a verification code to an unregistered visitor email.
func (h *EstablishmentHandler) IssueCode(c echo.Context) error {
	var req CodeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid email")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, validator.FieldErrors(err))
	}

	code, err := h.verificationUC.IssueCode(c.Request().Context(), req.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, CodeResponse{Code: code})
}
