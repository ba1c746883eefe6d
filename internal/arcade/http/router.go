package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/arcade/internal/arcade/metrics"
	"github.com/aussiebroadwan/arcade/internal/arcade/service"
	"github.com/aussiebroadwan/arcade/pkg/httpx"
	"github.com/aussiebroadwan/arcade/pkg/jwtx"
	"github.com/aussiebroadwan/arcade/pkg/slogx"

	_ "github.com/aussiebroadwan/arcade/api/arcade" // Swagger docs
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       jwtx.Signer
	verifier     jwtx.Verifier
	issuer       string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        Pinger

	Registry *service.UserRegistry
	Ledger   *service.ScoreLedger

	SessionTTL time.Duration
	Cookie     httpx.SessionCookie

	// Metrics defaults to metrics.Nop. Gatherer, when set, is served on
	// /metrics.
	Metrics  metrics.Recorder
	Gatherer prometheus.Gatherer
}

func NewRouter(
	signer jwtx.Signer,
	verifier jwtx.Verifier,
	issuer, buildVersion string,
	st Pinger,
	logger *slog.Logger,
) *Router {
	return &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		verifier:     verifier,
		issuer:       issuer,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		SessionTTL:   jwtx.DefaultSessionTTL,
		Metrics:      metrics.Nop{},
	}
}

// ApplyRoutes registers every route. Set the exported fields first.
func (r *Router) ApplyRoutes() {
	// metrics sits inside slogx so it sees the request the mux annotates
	// with its matched pattern.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		metrics.HTTPMiddleware(r.Metrics),
	}

	r.registerAccounts()
	r.registerScores()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Arcade API
//	@version		0.1.0
//	@description	Accounts and per-level best scores for the arcade browser game.
//	@description
//	@description				Sessions are Ed25519-signed JWTs, sent either as the arcade_session cookie or as a bearer token.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/arcade
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) requireSession() httpx.Middleware {
	return httpx.RequireSession(r.verifier, r.Registry, r.Cookie)
}

func (r *Router) registerAccounts() {
	r.Mux.Handle("POST /v1/register", &RegisterHandler{
		Registry: r.Registry,
		Metrics:  r.Metrics,
	})

	r.Mux.Handle("POST /v1/login", &LoginHandler{
		Registry:   r.Registry,
		Signer:     r.signer,
		Issuer:     r.issuer,
		SessionTTL: r.SessionTTL,
		Cookie:     r.Cookie,
		Metrics:    r.Metrics,
	})

	r.Mux.Handle("POST /v1/logout", LogoutHandler(r.Cookie))

	r.Mux.Handle("GET /v1/profile",
		httpx.Chain(&ProfileHandler{Registry: r.Registry, Cookie: r.Cookie},
			r.requireSession(),
		),
	)
}

func (r *Router) registerScores() {
	h := &ScoresHandler{
		Ledger:  r.Ledger,
		Cookie:  r.Cookie,
		Metrics: r.Metrics,
	}

	r.Mux.Handle("GET /v1/scores", httpx.Chain(http.HandlerFunc(h.HandleList), r.requireSession()))
	r.Mux.Handle("GET /v1/scores/{level}", httpx.Chain(http.HandlerFunc(h.HandleGet), r.requireSession()))
	r.Mux.Handle("POST /v1/scores/{level}", httpx.Chain(http.HandlerFunc(h.HandleSubmit), r.requireSession()))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))

	if r.Gatherer != nil {
		r.Mux.Handle("GET /metrics", metrics.Handler(r.Gatherer))
	}
}
