package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/todoapp/api/transport"
	"github.com/fastygo/todoapp/domain"
	"github.com/fastygo/todoapp/pkg/httpcontext"
	appLogger "github.com/fastygo/todoapp/pkg/logger"
	todoUC "github.com/fastygo/todoapp/usecase/todo"
)

type TodoHandler struct {
	baseHandler
	uc *todoUC.UseCase
}

func NewTodoHandler(uc *todoUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *TodoHandler {
	return &TodoHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// List handles GET /api/todos.
func (h *TodoHandler) List(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	appLogger.WithRequestID(stdCtx, h.logger).Info("listing todos")

	todos, err := h.uc.ListTodos(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.NewTodoListResponse(todos))
}

// Create handles POST /api/todos.
func (h *TodoHandler) Create(ctx *fasthttp.RequestCtx) {
	var req transport.CreateTodoRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondError(ctx, domain.WrapError(domain.ErrCodeInvalid, "invalid payload", err))
		return
	}
	if err := req.Validate(); err != nil {
		h.respondError(ctx, err)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	appLogger.WithRequestID(stdCtx, h.logger).Info("creating todo", zap.String("title", *req.Title))

	created, err := h.uc.CreateTodo(stdCtx, *req.Title, req.Description, req.DueDate, req.Priority.Domain())
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusCreated, transport.NewTodoResponse(created))
}

// Get handles GET /api/todos/{id}.
func (h *TodoHandler) Get(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	appLogger.WithRequestID(stdCtx, h.logger).Info("fetching todo", zap.String("id", id.String()))

	todo, err := h.uc.GetTodo(stdCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.NewTodoResponse(todo))
}

// Update handles PUT /api/todos/{id}.
func (h *TodoHandler) Update(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	var req transport.UpdateTodoRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondError(ctx, domain.WrapError(domain.ErrCodeInvalid, "invalid payload", err))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	appLogger.WithRequestID(stdCtx, h.logger).Info("updating todo", zap.String("id", id.String()))

	updated, err := h.uc.UpdateTodo(stdCtx, id, req.Change())
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.NewTodoResponse(updated))
}

// Delete handles DELETE /api/todos/{id}.
func (h *TodoHandler) Delete(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	appLogger.WithRequestID(stdCtx, h.logger).Info("deleting todo", zap.String("id", id.String()))

	if err := h.uc.DeleteTodo(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.SetStatusCode(http.StatusNoContent)
}

func (h *TodoHandler) pathID(ctx *fasthttp.RequestCtx) (uuid.UUID, bool) {
	raw, _ := ctx.UserValue("id").(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		h.respondError(ctx, domain.WrapError(domain.ErrCodeInvalid, "invalid todo id", err))
		return uuid.Nil, false
	}
	return id, true
}
