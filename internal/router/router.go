package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/fastygo/todoapp/api/handler"
)

type Handlers struct {
	Todo   *apiHandler.TodoHandler
	Health *apiHandler.HealthHandler
}

// New wires the API routes and falls back to serving the pre-built UI
// bundle for every path the router does not know.
func New(handlers Handlers, staticDir string) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	r.GET("/api/todos", handlers.Todo.List)
	r.POST("/api/todos", handlers.Todo.Create)
	r.GET("/api/todos/{id}", handlers.Todo.Get)
	r.PUT("/api/todos/{id}", handlers.Todo.Update)
	r.DELETE("/api/todos/{id}", handlers.Todo.Delete)

	r.NotFound = staticHandler(staticDir)

	return r
}

func staticHandler(dir string) fasthttp.RequestHandler {
	fs := &fasthttp.FS{
		Root:               dir,
		IndexNames:         []string{"index.html"},
		AcceptByteRange:    true,
		GenerateIndexPages: false,
		PathNotFound: func(ctx *fasthttp.RequestCtx) {
			ctx.SetStatusCode(fasthttp.StatusNotFound)
		},
	}
	return fs.NewRequestHandler()
}
