package handler

import (
	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"agreement-engine/internal/catalog"
	"agreement-engine/internal/document"
	"agreement-engine/internal/engine"
	"agreement-engine/internal/model"
)

// Handle routes agreement requests. Every endpoint is POST-only and
// stateless: the request carries the full action batch, the response the
// derived result.
func Handle(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusBadRequest, "Method not allowed")
		return
	}

	switch string(ctx.Path()) {
	case "/v1/agreement/configure":
		handleConfigure(ctx)
	case "/v1/agreement/document":
		handleDocument(ctx)
	case "/v1/agreement/download":
		handleDownload(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func handleConfigure(ctx *fasthttp.RequestCtx) {
	req, ok := decodeRequest(ctx)
	if !ok {
		return
	}
	if len(req.ConfigurationInstructions.Actions) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "At least one action is required")
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, engine.Process(req, catalog.Resolve()))
}

func handleDocument(ctx *fasthttp.RequestCtx) {
	req, ok := decodeRequest(ctx)
	if !ok {
		return
	}

	cat := catalog.Resolve()
	resp := engine.Process(req, cat)
	if resp.ConfigurationMetadata.ConfigurationOutcome == model.OutcomeFailure {
		writeJSON(ctx, fasthttp.StatusUnprocessableEntity, resp)
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, document.Build(&resp.ConfigurationResult.EndState.State, cat))
}

func handleDownload(ctx *fasthttp.RequestCtx) {
	req, ok := decodeRequest(ctx)
	if !ok {
		return
	}

	cat := catalog.Resolve()
	resp := engine.Process(req, cat)
	if resp.ConfigurationMetadata.ConfigurationOutcome == model.OutcomeFailure {
		writeJSON(ctx, fasthttp.StatusUnprocessableEntity, resp)
		return
	}

	doc := document.Build(&resp.ConfigurationResult.EndState.State, cat)
	body, err := document.JSONRenderer{}.Render(ctx, doc)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Render failed: "+err.Error())
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetContentType("application/json")
	ctx.Response.Header.Set("Content-Disposition", `attachment; filename="`+doc.FileName+`"`)
	ctx.SetBody(body)
}

func decodeRequest(ctx *fasthttp.RequestCtx) (*model.ConfigurationRequest, bool) {
	var req model.ConfigurationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return nil, false
	}
	return &req, true
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	if err := json.NewEncoder(ctx).Encode(v); err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
	}
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, model.ErrorResponse{Status: status, Message: message})
}
