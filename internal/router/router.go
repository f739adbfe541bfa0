package router

import (
	"database/sql"
	"net/http"

	mem "patient-registry/internal/adapters/storage/memory"
	pg "patient-registry/internal/adapters/storage/postgres"
	"patient-registry/internal/domain/comments"
	"patient-registry/internal/domain/dashboard"
	"patient-registry/internal/domain/patients"
	"patient-registry/internal/middleware"
	"patient-registry/internal/platform/logger"
	"patient-registry/internal/ports/auth"

	_ "patient-registry/docs" // registro del doc swagger generado

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // nil => modo dev (X-Debug-User-ID)

	// Si viene DB, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// MemStore permite inyectar un store pre-sembrado (tests/dev).
	// Solo se usa cuando DB == nil.
	MemStore *mem.Store

	Logger logger.Logger // nil => NewFromEnv
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLog(log))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		patientsRepo  patients.Repository
		commentsRepo  comments.Repository
		dashboardRepo dashboard.Repository
	)

	if opts.DB != nil {
		patientsRepo = pg.NewPatientsRepo(opts.DB)
		commentsRepo = pg.NewCommentsRepo(opts.DB)
		dashboardRepo = pg.NewDashboardRepo(opts.DB)
	} else {
		store := opts.MemStore
		if store == nil {
			store = mem.NewStore()
		}
		patientsRepo = mem.NewPatientsRepo(store)
		commentsRepo = mem.NewCommentsRepo(store)
		dashboardRepo = mem.NewDashboardRepo(store)
	}

	// Services por módulo
	patientsSvc := patients.NewService(patientsRepo)
	commentsSvc := comments.NewService(commentsRepo, patientsSvc)
	dashboardSvc := dashboard.NewService(dashboardRepo)

	// Rutas por módulo
	patients.RegisterRoutes(r, patientsSvc, commentsSvc)
	comments.RegisterRoutes(r, commentsSvc)
	dashboard.RegisterRoutes(r, dashboardSvc)

	return r
}
