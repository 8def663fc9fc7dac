package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"GoNLP/internal/config"
	"GoNLP/internal/logging"
	"GoNLP/internal/module"
	"GoNLP/internal/value"
)

// Handler holds HTTP handlers for the module host API.
type Handler struct {
	registry *module.Registry
	cfg      config.Config
	version  string
	logger   *zap.Logger
}

// NewHandler creates a new Handler serving the modules of registry.
// Non-positive limits in cfg fall back to their defaults.
func NewHandler(registry *module.Registry, cfg config.Config, version string, logger *zap.Logger) *Handler {
	return &Handler{
		registry: registry,
		cfg:      cfg.WithLimits(),
		version:  version,
		logger:   logging.OrNop(logger),
	}
}

// Routes returns the router with all API routes registered.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)

	// Probes and service info.
	r.Get("/", h.handleInfo)
	r.Get("/health", h.handleHealth)
	r.Get("/ready", h.handleReady)

	// Module catalog.
	r.Get("/modules", h.handleListModules)
	r.Get("/modules/{name}", h.handleGetModule)

	// Invocation.
	r.Post("/modules/{name}/invoke", h.handleInvoke)
	r.Post("/invoke", h.handleBatchInvoke)

	return r
}

// --- Probes ---

func (h *Handler) handleInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"name":      "GoNLP",
		"version":   h.version,
		"namespace": h.registry.Namespace(),
	})
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": h.version,
	})
}

func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ready",
		"modules": len(h.registry.Names()),
	})
}

// --- Module catalog ---

type moduleInfo struct {
	Name          string     `json:"name"`
	QualifiedName string     `json:"qualified_name"`
	Version       string     `json:"version"`
	Description   string     `json:"description"`
	InputType     value.Type `json:"input_type"`
	OutputType    value.Type `json:"output_type"`
}

func (h *Handler) describe(def module.Definition) moduleInfo {
	return moduleInfo{
		Name:          def.Name,
		QualifiedName: h.registry.QualifiedName(def.Name),
		Version:       def.Version,
		Description:   def.Description,
		InputType:     def.InputType,
		OutputType:    def.OutputType,
	}
}

func (h *Handler) handleListModules(w http.ResponseWriter, r *http.Request) {
	defs := h.registry.Definitions()
	infos := make([]moduleInfo, 0, len(defs))
	for _, def := range defs {
		infos = append(infos, h.describe(def))
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"namespace": h.registry.Namespace(),
		"modules":   infos,
	})
}

func (h *Handler) handleGetModule(w http.ResponseWriter, r *http.Request) {
	def, err := h.registry.Get(chi.URLParam(r, "name"))
	if err != nil {
		status, body := classify(err)
		writeError(w, status, requestID(r.Context()), body)
		return
	}
	writeJSON(w, http.StatusOK, h.describe(def))
}

// --- Invocation ---

type invokeRequest struct {
	Input value.Wire `json:"input"`
}

type invokeResponse struct {
	RequestID string     `json:"request_id"`
	Module    string     `json:"module"`
	Output    value.Wire `json:"output"`
	TookMS    int64      `json:"took_ms"`
}

func (h *Handler) handleInvoke(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := requestID(ctx)
	name := chi.URLParam(r, "name")

	def, err := h.registry.Get(name)
	if err != nil {
		status, body := classify(err)
		writeError(w, status, reqID, body)
		return
	}

	var req invokeRequest
	if err := decodeJSON(w, r, h.cfg.Server.MaxBodyBytes, &req); err != nil {
		status, body := classify(err)
		writeError(w, status, reqID, body)
		return
	}

	start := time.Now()
	out, err := h.invoke(ctx, def.Name, req.Input.Value)
	if err != nil {
		status, body := classify(err)
		writeError(w, status, reqID, body)
		return
	}

	writeJSON(w, http.StatusOK, invokeResponse{
		RequestID: reqID,
		Module:    h.registry.QualifiedName(def.Name),
		Output:    value.Wire{Value: out},
		TookMS:    time.Since(start).Milliseconds(),
	})
}

type batchRequest struct {
	Items []batchItem `json:"items"`
}

type batchItem struct {
	Module string     `json:"module"`
	Input  value.Wire `json:"input"`
}

type batchResult struct {
	Module string      `json:"module"`
	Output *value.Wire `json:"output,omitempty"`
	Error  *errorBody  `json:"error,omitempty"`
}

// handleBatchInvoke runs every item of a batch concurrently. Item errors
// are reported in place; results keep request order.
func (h *Handler) handleBatchInvoke(w http.ResponseWriter, r *http.Request) {
	reqID := requestID(r.Context())

	var req batchRequest
	if err := decodeJSON(w, r, h.cfg.Server.MaxBodyBytes, &req); err != nil {
		status, body := classify(err)
		writeError(w, status, reqID, body)
		return
	}
	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, reqID, errorBody{Kind: kindRequest, Message: "no items provided"})
		return
	}
	if len(req.Items) > h.cfg.Batch.MaxItems {
		writeError(w, http.StatusBadRequest, reqID, errorBody{
			Kind:    kindRequest,
			Message: fmt.Sprintf("batch of %d items exceeds limit of %d", len(req.Items), h.cfg.Batch.MaxItems),
		})
		return
	}

	start := time.Now()
	results := make([]batchResult, len(req.Items))

	g, ctx := errgroup.WithContext(r.Context())
	g.SetLimit(h.cfg.Batch.MaxConcurrency)
	for i, item := range req.Items {
		g.Go(func() error {
			res := batchResult{Module: item.Module}
			out, err := h.invoke(ctx, item.Module, item.Input.Value)
			if err != nil {
				_, body := classify(err)
				res.Error = &body
			} else {
				res.Output = &value.Wire{Value: out}
			}
			results[i] = res
			return nil
		})
	}
	_ = g.Wait()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"request_id": reqID,
		"results":    results,
		"took_ms":    time.Since(start).Milliseconds(),
	})
}

// invoke runs one module call and logs its outcome.
func (h *Handler) invoke(ctx context.Context, name string, input value.Value) (value.Value, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", errCanceled, err)
	}

	start := time.Now()
	out, err := h.registry.Invoke(name, input)
	fields := []zap.Field{
		zap.String("request_id", requestID(ctx)),
		zap.String("module", name),
		zap.Duration("duration", time.Since(start)),
	}
	if err != nil {
		h.logger.Info("invocation failed", append(fields, zap.Error(err))...)
		return nil, err
	}
	h.logger.Debug("invocation completed", fields...)
	return out, nil
}
