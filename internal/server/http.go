package server

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/varadarohokale/boxing-arena/internal/boxer"
	"github.com/varadarohokale/boxing-arena/internal/config"
	"github.com/varadarohokale/boxing-arena/internal/leaderboard"
	"github.com/varadarohokale/boxing-arena/internal/metrics"
	"github.com/varadarohokale/boxing-arena/internal/ring"
	"github.com/varadarohokale/boxing-arena/pkg/http/respond"
)

// NewHTTPServer wires all API routes plus health and metrics.
func NewHTTPServer(
	cfg *config.App,
	logger zerolog.Logger,
	boxerHandlers *boxer.HTTPHandlers,
	ringHandlers *ring.HTTPHandlers,
	lbHandler *leaderboard.HTTPHandler,
	feed *FightFeed,
) *http.Server {
	mux := http.NewServeMux()

	handle := func(pattern, route string, handler http.HandlerFunc) {
		mux.Handle(pattern, withRequestMetrics(route, handler))
	}

	handle("GET /api/health", "health", func(w http.ResponseWriter, r *http.Request) {
		respond.Success(w, http.StatusOK, map[string]interface{}{
			"service": cfg.Name,
		})
	})
	handle("GET /api/db-check", "db_check", boxerHandlers.DBCheck)

	handle("POST /api/create-boxer", "create_boxer", boxerHandlers.Create)
	handle("DELETE /api/delete-boxer/{id}", "delete_boxer", boxerHandlers.Delete)
	handle("GET /api/get-boxer-by-id/{id}", "get_boxer_by_id", boxerHandlers.GetByID)
	handle("GET /api/get-boxer-by-name/{name}", "get_boxer_by_name", boxerHandlers.GetByName)
	handle("POST /api/update-boxer-stats", "update_boxer_stats", boxerHandlers.UpdateStats)

	handle("POST /api/enter-ring", "enter_ring", ringHandlers.Enter)
	handle("POST /api/start-fight", "start_fight", ringHandlers.StartFight)
	handle("POST /api/clear-ring", "clear_ring", ringHandlers.Clear)
	handle("GET /api/get-boxers", "get_boxers", ringHandlers.GetBoxers)
	handle("GET /api/get-fighting-skill", "get_fighting_skill", ringHandlers.GetSkill)
	handle("GET /api/recent-fights", "recent_fights", ringHandlers.RecentFights)

	handle("GET /api/leaderboard", "leaderboard", lbHandler.Get)

	if feed != nil {
		mux.HandleFunc("GET /ws/fights", feed.HandleWebSocket)
	}

	mux.Handle("/metrics", promhttp.Handler())

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: mux,
	}
}

// statusRecorder captures the response code for request metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func withRequestMetrics(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		class := strconv.Itoa(rec.status/100) + "xx"
		metrics.HTTPRequestsTotal.WithLabelValues(route, class).Inc()
	})
}
