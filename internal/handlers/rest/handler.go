// Package rest exposes the hit point service over HTTP and JSON.
package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	domain "github.com/Cameron637/ddb-backend-developer-challenge/internal/domain/hitpoints"
	dnderr "github.com/Cameron637/ddb-backend-developer-challenge/internal/errors"
	hitpointsService "github.com/Cameron637/ddb-backend-developer-challenge/internal/services/hitpoints"
	"github.com/Cameron637/ddb-backend-developer-challenge/internal/uuid"
)

// maxBodyBytes bounds request bodies
const maxBodyBytes = 1 << 20

// healthTimeout bounds the store ping behind /healthz
const healthTimeout = 2 * time.Second

// Handler serves the hit point routes
type Handler struct {
	service hitpointsService.Service
	logger  *zap.Logger
	ids     uuid.Generator
}

// HandlerConfig holds configuration for the handler
type HandlerConfig struct {
	Service     hitpointsService.Service // Required
	Logger      *zap.Logger              // Optional, no-op when nil
	IDGenerator uuid.Generator           // Optional, random UUIDs when nil
}

// NewHandler creates a new HTTP handler
func NewHandler(cfg *HandlerConfig) *Handler {
	if cfg == nil {
		panic("HandlerConfig cannot be nil")
	}
	if cfg.Service == nil {
		panic("service is required")
	}

	h := &Handler{
		service: cfg.Service,
		logger:  cfg.Logger,
		ids:     cfg.IDGenerator,
	}
	if h.logger == nil {
		h.logger = zap.NewNop()
	}
	if h.ids == nil {
		h.ids = uuid.NewGoogleUUIDGenerator()
	}
	return h
}

// Router builds the mux with every route and middleware installed
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.requestID, h.logRequests, h.recoverPanics)

	r.HandleFunc("/healthz", h.HandleHealth).Methods(http.MethodGet)

	r.HandleFunc("/hp/{id}", h.HandleGet).Methods(http.MethodGet)
	r.HandleFunc("/hp/{id}", h.HandleCreateOrUpdate).Methods(http.MethodPut)
	r.HandleFunc("/hp/{id}", h.HandleDelete).Methods(http.MethodDelete)
	r.HandleFunc("/hp/{id}/deal-damage", h.HandleDealDamage).Methods(http.MethodPost)
	r.HandleFunc("/hp/{id}/heal", h.HandleHeal).Methods(http.MethodPost)
	r.HandleFunc("/hp/{id}/add-temporary-hit-points", h.HandleAddTemporaryHitPoints).Methods(http.MethodPost)

	// mux skips middleware for unmatched requests
	r.NotFoundHandler = h.requestID(h.logRequests(http.HandlerFunc(h.routeNotFound)))
	r.MethodNotAllowedHandler = h.requestID(h.logRequests(http.HandlerFunc(h.methodNotAllowed)))

	return r
}

// HandleCreateOrUpdate handles PUT /hp/{id}
func (h *Handler) HandleCreateOrUpdate(w http.ResponseWriter, r *http.Request) {
	var req createOrUpdateRequest
	if !h.decode(w, r, &req) {
		return
	}

	input := &hitpointsService.CreateOrUpdateInput{
		ID:        mux.Vars(r)["id"],
		HitPoints: req.HitPoints,
	}
	if req.Defenses != nil {
		input.Defenses = make([]hitpointsService.DefenseInput, 0, len(req.Defenses))
		for _, d := range req.Defenses {
			input.Defenses = append(input.Defenses, hitpointsService.DefenseInput{Type: d.Type, Defense: d.Defense})
		}
	}

	record, err := h.service.CreateOrUpdate(r.Context(), input)
	h.respond(w, r, record, err)
}

// HandleGet handles GET /hp/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	record, err := h.service.Get(r.Context(), mux.Vars(r)["id"])
	h.respond(w, r, record, err)
}

// HandleDelete handles DELETE /hp/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDealDamage handles POST /hp/{id}/deal-damage
func (h *Handler) HandleDealDamage(w http.ResponseWriter, r *http.Request) {
	var req dealDamageRequest
	if !h.decode(w, r, &req) {
		return
	}

	input := &hitpointsService.DealDamageInput{ID: mux.Vars(r)["id"]}
	if req.Damage != nil {
		input.Damage = make([]hitpointsService.DamageInput, 0, len(req.Damage))
		for _, d := range req.Damage {
			input.Damage = append(input.Damage, hitpointsService.DamageInput{Type: d.Type, Amount: d.Amount})
		}
	}

	record, err := h.service.DealDamage(r.Context(), input)
	h.respond(w, r, record, err)
}

// HandleHeal handles POST /hp/{id}/heal
func (h *Handler) HandleHeal(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if !h.decode(w, r, &req) {
		return
	}

	record, err := h.service.Heal(r.Context(), &hitpointsService.AmountInput{
		ID:     mux.Vars(r)["id"],
		Amount: req.Amount,
	})
	h.respond(w, r, record, err)
}

// HandleAddTemporaryHitPoints handles POST /hp/{id}/add-temporary-hit-points
func (h *Handler) HandleAddTemporaryHitPoints(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if !h.decode(w, r, &req) {
		return
	}

	record, err := h.service.AddTemporaryHitPoints(r.Context(), &hitpointsService.AmountInput{
		ID:     mux.Vars(r)["id"],
		Amount: req.Amount,
	})
	h.respond(w, r, record, err)
}

// HandleHealth handles GET /healthz
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.service.Ping(ctx); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, dnderr.NotFoundf("no route for %s %s", r.Method, r.URL.Path))
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{
		Code:    "method_not_allowed",
		Message: r.Method + " is not supported on " + r.URL.Path,
	})
}

// decode reads the JSON body into dst, answering 400 itself on failure
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		h.writeError(w, r, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument, "request body is not valid JSON"))
		return false
	}
	return true
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, record *domain.Record, err error) {
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}
