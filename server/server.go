// Package server exposes route queries over a loaded park map as a small
// JSON HTTP API.
//
//	GET /api/nodes                              all attractions
//	GET /api/nodes/{id}                         one attraction
//	GET /api/routes?from=1&to=3[&accessible=true]
//	GET /api/connectivity                       all-pairs reachability
//
// A query whose endpoints exist but are not connected answers 200 with
// "found": false; unknown endpoints answer 404; malformed parameters 400.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/katalvlaran/magicmap/connectivity"
	"github.com/katalvlaran/magicmap/core"
	"github.com/katalvlaran/magicmap/render"
	"github.com/katalvlaran/magicmap/routing"
)

// Handler serves the park map API.
type Handler struct {
	g       *core.Graph
	log     *zap.Logger
	routing []routing.Option
}

// NewHandler creates a Handler over g. The graph must not be mutated while
// the handler is serving.
func NewHandler(g *core.Graph, log *zap.Logger, opts ...routing.Option) *Handler {
	if log == nil {
		log = zap.NewNop()
	}

	return &Handler{g: g, log: log, routing: opts}
}

// RegisterRoutes mounts the API on router.
func (h *Handler) RegisterRoutes(router *mux.Router) {
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/nodes", h.ListNodes).Methods(http.MethodGet)
	api.HandleFunc("/nodes/{id:[0-9-]+}", h.GetNode).Methods(http.MethodGet)
	api.HandleFunc("/routes", h.FindRoute).Methods(http.MethodGet)
	api.HandleFunc("/connectivity", h.Connectivity).Methods(http.MethodGet)
}

// Router returns a new router with the API mounted.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	h.RegisterRoutes(r)

	return r
}

// NodeResponse is the JSON form of an attraction.
type NodeResponse struct {
	ID           int64             `json:"id"`
	Name         string            `json:"name"`
	Type         string            `json:"type"`
	CategoryName string            `json:"category"`
	Color        string            `json:"color"`
	Attrs        map[string]string `json:"attrs,omitempty"`
}

func nodeResponse(n core.Node) NodeResponse {
	return NodeResponse{
		ID:           n.ID,
		Name:         n.Name,
		Type:         string(n.Category),
		CategoryName: n.Category.String(),
		Color:        render.Color(n.Category),
		Attrs:        n.Attrs,
	}
}

// HopResponse is one step of a route.
type HopResponse struct {
	From   NodeResponse `json:"from"`
	To     NodeResponse `json:"to"`
	Weight float64      `json:"weight"`
}

// RouteResponse is the JSON form of a routing.Route. Distance is omitted
// when no route was found.
type RouteResponse struct {
	From       NodeResponse  `json:"from"`
	To         NodeResponse  `json:"to"`
	Accessible bool          `json:"accessible"`
	Found      bool          `json:"found"`
	Distance   *float64      `json:"distance,omitempty"`
	Hops       []HopResponse `json:"hops"`
	Message    string        `json:"message,omitempty"`
}

// ConnectivityResponse reports the all-pairs reachability check.
type ConnectivityResponse struct {
	Connected bool   `json:"connected"`
	From      *int64 `json:"from,omitempty"`
	To        *int64 `json:"to,omitempty"`
}

// ListNodes answers GET /api/nodes.
func (h *Handler) ListNodes(w http.ResponseWriter, r *http.Request) {
	nodes := h.g.Nodes()
	out := make([]NodeResponse, len(nodes))
	for i, n := range nodes {
		out[i] = nodeResponse(n)
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{"nodes": out, "count": len(out)})
}

// GetNode answers GET /api/nodes/{id}.
func (h *Handler) GetNode(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid node id")
		return
	}
	n, err := h.g.Node(id)
	if errors.Is(err, core.ErrNodeNotFound) {
		h.writeError(w, http.StatusNotFound, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, nodeResponse(n))
}

// FindRoute answers GET /api/routes.
func (h *Handler) FindRoute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, err := strconv.ParseInt(q.Get("from"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "from: expected a node id")
		return
	}
	to, err := strconv.ParseInt(q.Get("to"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "to: expected a node id")
		return
	}
	accessible := false
	if v := q.Get("accessible"); v != "" {
		if accessible, err = strconv.ParseBool(v); err != nil {
			h.writeError(w, http.StatusBadRequest, "accessible: expected a boolean")
			return
		}
	}

	find := routing.FindShortestPath
	if accessible {
		find = routing.FindShortestPathAccessible
	}
	route, err := find(h.g, from, to, h.routing...)
	switch {
	case errors.Is(err, routing.ErrInvalidNodeReference):
		h.writeError(w, http.StatusNotFound, err.Error())
		return
	case err != nil:
		h.log.Error("route query failed", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "route query failed")
		return
	}

	resp := RouteResponse{
		From:       nodeResponse(route.Source),
		To:         nodeResponse(route.Target),
		Accessible: route.Accessible,
		Found:      route.Found,
		Hops:       make([]HopResponse, len(route.Hops)),
	}
	for i, hop := range route.Hops {
		resp.Hops[i] = HopResponse{From: nodeResponse(hop.From), To: nodeResponse(hop.To), Weight: hop.Weight}
	}
	if route.Found {
		d := route.Distance
		resp.Distance = &d
	} else {
		resp.Message = route.Err().Error()
	}
	h.log.Debug("route served", zap.Int64("from", from), zap.Int64("to", to), zap.Bool("found", route.Found))
	h.writeJSON(w, http.StatusOK, resp)
}

// Connectivity answers GET /api/connectivity.
func (h *Handler) Connectivity(w http.ResponseWriter, r *http.Request) {
	from, to, broken := connectivity.FirstUnreachable(h.g)
	resp := ConnectivityResponse{Connected: !broken}
	if broken {
		resp.From, resp.To = &from, &to
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Warn("write response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}

// ListenAndServe serves the API on addr until ctx is cancelled, then shuts
// down gracefully.
func ListenAndServe(ctx context.Context, addr string, h *Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		h.log.Info("http server listening", zap.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		h.log.Info("http server shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
