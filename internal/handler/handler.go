package handler

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"paycheck-engine/internal/engine"
	"paycheck-engine/internal/model"
	"paycheck-engine/internal/scenario"
)

const (
	maxAlternatives = 32
	compareTimeout  = 30 * time.Second
)

type Handler struct {
	processor *engine.Processor
	tables    engine.TableSource
	logger    *zap.Logger
}

func New(processor *engine.Processor, tables engine.TableSource, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{processor: processor, tables: tables, logger: logger}
}

// Handle routes a request and logs its outcome.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	path := string(ctx.Path())

	switch {
	case path == "/projections":
		h.post(ctx, h.handleProjection)
	case path == "/comparisons":
		h.post(ctx, h.handleComparison)
	case strings.HasPrefix(path, "/tax-tables/"):
		h.get(ctx, func(ctx *fasthttp.RequestCtx) {
			h.handleTaxTable(ctx, strings.TrimPrefix(path, "/tax-tables/"))
		})
	case path == "/healthz":
		h.get(ctx, func(ctx *fasthttp.RequestCtx) {
			writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
		})
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}

	h.logger.Info("request",
		zap.String("method", string(ctx.Method())),
		zap.String("path", path),
		zap.Int("status", ctx.Response.StatusCode()),
		zap.Duration("elapsed", time.Since(start)))
}

func (h *Handler) post(ctx *fasthttp.RequestCtx, next fasthttp.RequestHandler) {
	if !ctx.IsPost() {
		ctx.Response.Header.Set("Allow", fasthttp.MethodPost)
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	next(ctx)
}

func (h *Handler) get(ctx *fasthttp.RequestCtx, next fasthttp.RequestHandler) {
	if !ctx.IsGet() {
		ctx.Response.Header.Set("Allow", fasthttp.MethodGet)
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	next(ctx)
}

func (h *Handler) handleProjection(ctx *fasthttp.RequestCtx) {
	var req model.ProjectionRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	resp := h.processor.Process(&req)

	status := fasthttp.StatusOK
	if resp.Failed() {
		status = fasthttp.StatusUnprocessableEntity
	}
	writeJSON(ctx, status, resp)
}

func (h *Handler) handleComparison(ctx *fasthttp.RequestCtx) {
	var req model.ComparisonRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(req.Alternatives) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "At least one alternative is required")
		return
	}
	if len(req.Alternatives) > maxAlternatives {
		writeError(ctx, fasthttp.StatusBadRequest, "At most "+strconv.Itoa(maxAlternatives)+" alternatives are allowed")
		return
	}

	cctx, cancel := context.WithTimeout(context.Background(), compareTimeout)
	defer cancel()

	report, err := scenario.Compare(cctx, h.processor, req.Baseline, req.Alternatives)
	if err != nil {
		if errors.Is(err, model.ErrInvalidConfiguration) {
			writeError(ctx, fasthttp.StatusUnprocessableEntity, err.Error())
			return
		}
		h.logger.Error("comparison failed", zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, "Comparison failed")
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, report)
}

func (h *Handler) handleTaxTable(ctx *fasthttp.RequestCtx, yearParam string) {
	year, err := strconv.Atoi(yearParam)
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid tax year: "+yearParam)
		return
	}
	table, _, err := h.tables.Get(year)
	if err != nil {
		writeError(ctx, fasthttp.StatusNotFound, err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, table)
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{
		Status:  status,
		Message: message,
	})
}
