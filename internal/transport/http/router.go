package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	audithandler "github.com/SeanJibowu555/dealer-qualifier/internal/audit/handler"
	platformmw "github.com/SeanJibowu555/dealer-qualifier/internal/platform/middleware"
	qualifyhandler "github.com/SeanJibowu555/dealer-qualifier/internal/qualify/handler"
	"github.com/SeanJibowu555/dealer-qualifier/internal/ratelimit"
	"github.com/SeanJibowu555/dealer-qualifier/pkg/platform/httputil"
	"github.com/SeanJibowu555/dealer-qualifier/pkg/platform/middleware/metadata"
	"github.com/SeanJibowu555/dealer-qualifier/pkg/platform/middleware/requestid"
	"github.com/SeanJibowu555/dealer-qualifier/pkg/platform/middleware/requesttime"
)

// Deps are the handlers and middlewares the router mounts. AuditHandler and
// Limiter may be nil; the corresponding surface is simply not mounted.
type Deps struct {
	Qualify      *qualifyhandler.Handler
	AuditHandler *audithandler.Handler
	Limiter      *ratelimit.MemoryStore
	Validator    platformmw.JWTValidator
	Logger       *slog.Logger
}

// NewRouter wires all public endpoints. The qualification and audit endpoints
// sit behind bearer auth and the rate limit; health and metrics do not.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)

	r.Get("/healthz", handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(platformmw.RequireAuth(deps.Validator, deps.Logger))
		if deps.Limiter != nil {
			r.Use(ratelimit.Middleware(deps.Limiter, deps.Logger))
		}
		deps.Qualify.Register(r)
		if deps.AuditHandler != nil {
			deps.AuditHandler.Register(r)
		}
	})

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
