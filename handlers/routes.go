package handlers

import (
	"expvar"
	"net/http"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
)

// NewRouter mounts the API at the root and again under /api.
func NewRouter(ha *Handler, allowedOrigins []string) http.Handler {
	router := mux.NewRouter()
	// Use only wraps matched routes
	router.NotFoundHandler = ha.RequestIDMiddleware(ha.AccessLogMiddleware(http.HandlerFunc(ha.NotFound)))
	router.MethodNotAllowedHandler = ha.RequestIDMiddleware(ha.AccessLogMiddleware(http.HandlerFunc(ha.MethodNotAllowed)))
	router.Use(ha.RequestIDMiddleware)
	router.Use(ha.AccessLogMiddleware)
	router.Use(ha.ErrorHandleMiddleware)

	router.HandleFunc("/health", ha.Health).Methods(http.MethodGet)
	router.Handle("/debug/vars", expvar.Handler()).Methods(http.MethodGet)

	ha.mountAPI(router.PathPrefix("/api").Subrouter())
	ha.mountAPI(router)

	if len(allowedOrigins) == 0 {
		return router
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	})(router)
}

func (h *Handler) mountAPI(r *mux.Router) {
	r.HandleFunc("/products", h.GetProducts).Methods(http.MethodGet)
	r.HandleFunc("/products/{id}", h.GetProduct).Methods(http.MethodGet)
	r.HandleFunc("/categories", h.GetAllCategories).Methods(http.MethodGet)

	r.HandleFunc("/cart", h.GetCart).Methods(http.MethodGet)
	r.HandleFunc("/cart", h.AddToCart).Methods(http.MethodPost)
	r.HandleFunc("/cart", h.DeleteFromCart).Methods(http.MethodDelete)
}
