package app

import (
	"net/http"

	slotAPI "slot_backend/internal/api/slot"
	"slot_backend/internal/config"
	"slot_backend/internal/config/env"
	"slot_backend/internal/repository"
	"slot_backend/internal/repository/session_repo"
	"slot_backend/internal/repository/stats_repo"
	"slot_backend/internal/service"
	"slot_backend/internal/service/slot"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type ServiceProvider struct {
	// Slot bits
	slotCfg   config.SlotConfig
	sessions  repository.SessionRepository
	statsRepo repository.StatsRepository
	slotServ  service.SlotService
	slotHand  *slotAPI.Handler

	// Router and HTTP config
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) SlotCfg() config.SlotConfig {
	if sp.slotCfg == nil {
		cfg, err := env.NewSlotConfigFromYAML("config.yaml")
		if err != nil {
			panic("failed to get slot config: " + err.Error())
		}
		sp.slotCfg = cfg
	}
	return sp.slotCfg
}

func (sp *ServiceProvider) SessionRepository() repository.SessionRepository {
	if sp.sessions == nil {
		sp.sessions = session_repo.NewSessionRepository()
	}
	return sp.sessions
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository()
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) SlotService() service.SlotService {
	if sp.slotServ == nil {
		sp.slotServ = slot.NewSlotService(sp.SlotCfg(), sp.SessionRepository(), sp.StatsRepository())
	}
	return sp.slotServ
}

func (sp *ServiceProvider) SlotHandler() *slotAPI.Handler {
	if sp.slotHand == nil {
		sp.slotHand = slotAPI.NewHandler(slotAPI.HandlerDeps{
			Serv: sp.SlotService(),
		})
	}
	return sp.slotHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}
	return sp.httpCfg
}

func (sp *ServiceProvider) Router() chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		// CORS middleware
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: false,
			MaxAge:           60 * 15,
		}))

		// Slot endpoints
		slotHandler := sp.SlotHandler()
		r.Route("/slot", func(rr chi.Router) {
			rr.Post("/session", slotHandler.NewSession)
			rr.Post("/bet", slotHandler.SetBet)
			rr.Post("/spin", slotHandler.Spin)
			rr.Get("/stats", slotHandler.Stats)
			rr.Get("/casino", slotHandler.CasinoState)
		})

		// Prometheus metrics
		r.Method(http.MethodGet, "/metrics", promhttp.Handler())

		sp.router = r
	}

	return sp.router
}
