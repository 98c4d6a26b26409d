package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"carebook/internal/bookings/service"
	"carebook/internal/session"
	apperrors "carebook/pkg/errors"
	httputil "carebook/pkg/http"
	"carebook/pkg/logger"
	"carebook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

const directoryPath = "/api/v1/providers"

type ProviderCard struct {
	model.Provider
	AvailabilityLabel string `json:"availability_label"`
	AcceptsBookings   bool   `json:"accepts_bookings"`
}

type ListingResponse struct {
	Heading    string         `json:"heading"`
	Query      string         `json:"query"`
	CountLabel string         `json:"count_label"`
	Providers  []ProviderCard `json:"providers"`
}

type ProfileResponse struct {
	Provider ProviderCard     `json:"provider"`
	Summary  *service.Summary `json:"booking_summary,omitempty"`
}

type SearchRequest struct {
	Query string `json:"query"`
}

type SearchResponse struct {
	Query string `json:"query"`
}

type BookingResponse struct {
	Confirmation service.Confirmation `json:"confirmation"`
	Notification service.Notification `json:"notification"`
}

type BookingHandler struct {
	session   *session.Session
	onSuccess service.SuccessFunc
	log       *logger.Logger
}

func NewBookingHandler(s *session.Session, onSuccess service.SuccessFunc, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		session:   s,
		onSuccess: onSuccess,
		log:       log,
	}
}

func newProviderCard(p model.Provider) ProviderCard {
	return ProviderCard{
		Provider:          p,
		AvailabilityLabel: p.Availability.Label(),
		AcceptsBookings:   p.AcceptsBookings(),
	}
}

func (h *BookingHandler) listing() ListingResponse {
	listing := h.session.Listing()
	cards := make([]ProviderCard, len(listing.Providers))
	for i, p := range listing.Providers {
		cards[i] = newProviderCard(p)
	}
	return ListingResponse{
		Heading:    listing.Heading,
		Query:      listing.Query,
		CountLabel: listing.CountLabel,
		Providers:  cards,
	}
}

func (h *BookingHandler) ListProviders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if query := r.URL.Query(); query.Has("q") {
		h.session.SetSearchQuery(query.Get("q"))
	}

	if err := httputil.WriteSuccess(w, h.listing()); err != nil {
		h.log.Error("failed to write success response", "handler", "ListProviders", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) GetSearch(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, SearchResponse{Query: h.session.SearchQuery()}); err != nil {
		h.log.Error("failed to write success response", "handler", "GetSearch", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) SetSearch(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Invalid request body")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "SetSearch", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	h.session.SetSearchQuery(req.Query)

	if err := httputil.WriteSuccess(w, h.listing()); err != nil {
		h.log.Error("failed to write success response", "handler", "SetSearch", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) GetProvider(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	provider, err := h.session.Provider(ps.ByName("id"))
	if err != nil {
		h.writeProviderError(w, "GetProvider", err)
		return
	}

	resp := ProfileResponse{Provider: newProviderCard(provider)}
	if provider.AcceptsBookings() {
		summary := h.session.NewBookingForm(provider, nil).Summary()
		resp.Summary = &summary
	}

	if err := httputil.WriteSuccess(w, resp); err != nil {
		h.log.Error("failed to write success response", "handler", "GetProvider", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	provider, err := h.session.Provider(ps.ByName("id"))
	if err != nil {
		h.writeProviderError(w, "CreateBooking", err)
		return
	}

	var req model.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Invalid request body")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "CreateBooking", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	form := h.session.NewBookingForm(provider, h.onSuccess)
	form.Fill(req)

	if _, err := form.Submit(r.Context()); err != nil {
		h.writeSubmitError(w, form, err)
		return
	}

	confirmation, _ := form.Confirmation()
	notification, _ := form.LastNotification()
	if err := httputil.WriteCreated(w, BookingResponse{
		Confirmation: confirmation,
		Notification: notification,
	}); err != nil {
		h.log.Error("failed to write created response", "handler", "CreateBooking", "operation", "WriteCreated", "error", err)
	}
}

func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteSuccess(w, h.session.Bookings()); err != nil {
		h.log.Error("failed to write success response", "handler", "ListBookings", "operation", "WriteSuccess", "error", err)
	}
}

// writeProviderError renders the "doctor not found" fallback view for
// unknown providers.
func (h *BookingHandler) writeProviderError(w http.ResponseWriter, handler string, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code == apperrors.CodeNotFound {
		err = apperrors.NotFound("Doctor").WithDetails(map[string]any{
			"id":   appErr.Details["id"],
			"link": directoryPath,
		})
	}
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *BookingHandler) writeSubmitError(w http.ResponseWriter, form *service.BookingForm, err error) {
	if notification, ok := form.LastNotification(); ok {
		appErr := apperrors.AsAppError(err)
		err = apperrors.Wrap(appErr.Err, appErr.Code, appErr.Message, appErr.HTTPStatus).
			WithDetails(map[string]any{"notification": notification})
	}
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", "CreateBooking", "operation", "WriteError", "error", writeErr)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/providers", h.ListProviders)
	router.GET("/api/v1/providers/:id", h.GetProvider)
	router.POST("/api/v1/providers/:id/bookings", h.CreateBooking)
	router.GET("/api/v1/search", h.GetSearch)
	router.PUT("/api/v1/search", h.SetSearch)
	router.GET("/api/v1/bookings", h.ListBookings)
}
