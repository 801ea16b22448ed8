package handlers

import (
	"errors"
	"net/http"

	"storefront/entities"
	"storefront/models"
	"storefront/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	ps      services.ProductService
	cs      *services.CartService
	cas     services.CategoryService
	logger  *zap.SugaredLogger
	env     string
	version string
}

type HandlerParams struct {
	PrdService  services.ProductService
	CrtService  *services.CartService
	CatsService services.CategoryService
	Logger      *zap.SugaredLogger
	Env         string
	Version     string
}

func NewHandler(params HandlerParams) *Handler {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Handler{
		ps:      params.PrdService,
		cs:      params.CrtService,
		cas:     params.CatsService,
		logger:  logger,
		env:     params.Env,
		version: params.Version,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, entities.HealthResponse{Status: "ok", Env: h.env, Version: h.version})
}

// product
func (h *Handler) GetProducts(w http.ResponseWriter, r *http.Request) {
	prods, err := h.ps.GetProducts(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		h.WriteErrorResponse(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, prods)
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	prod, err := h.ps.GetProductById(r.Context(), id)
	if err != nil {
		h.WriteErrorResponse(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, prod)
}

func (h *Handler) GetAllCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.cas.GetAllCategories(r.Context())
	if err != nil {
		h.WriteErrorResponse(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, cats)
}

// cart
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cs.GetCartItems(r.Context())
	if err != nil {
		h.WriteErrorResponse(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	req := entities.CartRequest{}
	if err := h.readRequest(w, r, &req); err != nil {
		h.WriteErrorResponse(w, r, err)
		return
	}
	cart, err := h.cs.UpsertCartItem(r.Context(), req)
	if err != nil {
		h.WriteErrorResponse(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) DeleteFromCart(w http.ResponseWriter, r *http.Request) {
	req := entities.CartDeleteRequest{}
	if err := h.readRequest(w, r, &req); err != nil {
		h.WriteErrorResponse(w, r, err)
		return
	}
	cart, err := h.cs.RemoveCartItem(r.Context(), req.Id)
	if err != nil {
		h.WriteErrorResponse(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusNotFound, entities.ErrorResponse{Error: "not found"})
}

func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusMethodNotAllowed, entities.ErrorResponse{Error: "method not allowed"})
}

// WriteErrorResponse maps domain errors to a status and a JSON error body.
// Unknown errors are logged and reported as 500.
func (h *Handler) WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, models.ErrProductNotFound):
		h.writeJSON(w, http.StatusNotFound, entities.ErrorResponse{Error: models.ErrProductNotFound.Error()})
	case errors.Is(err, models.ErrBadRequest):
		h.writeJSON(w, http.StatusBadRequest, entities.ErrorResponse{Error: err.Error()})
	default:
		h.logger.Errorw("request failed", "method", r.Method, "path", r.URL.Path, "request_id", RequestID(r.Context()), "error", err)
		h.writeJSON(w, http.StatusInternalServerError, entities.ErrorResponse{Error: models.ErrServerError.Error()})
	}
}
