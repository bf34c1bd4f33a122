package misc

import (
	"encoding/json"
	"net/http"

	"github.com/fitplanpro/fitplan-backend/internal/telemetry/tracing"
	"github.com/fitplanpro/fitplan-backend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const statusMessage = "FitPlan Pro API is running"

type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
}

// WelcomeResponse is the health document plus a training quote to greet
// API explorers with.
type WelcomeResponse struct {
	HealthStatus
	Quote *Quote `json:"quote,omitempty"`
}

type Handler struct {
	quotesManager *QuotesManager
	versionInfo   string
}

func NewHandler(quotesManager *QuotesManager, versionInfo string) *Handler {
	return &Handler{
		quotesManager: quotesManager,
		versionInfo:   versionInfo,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleWelcome).Methods("GET").Name("welcome")
	mainRouter.HandleFunc("/health", handler.handleHealth).Methods("GET").Name("health")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
}

func (handler *Handler) handleWelcome(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.welcome")
	defer span.End()

	resp := WelcomeResponse{
		HealthStatus: handler.healthStatus(),
	}
	if handler.quotesManager != nil {
		resp.Quote = handler.quotesManager.RandomQuote()
	}

	respBytes, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("marshal welcome response: %s", err)
		http.Error(w, "", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}

func (handler *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.health")
	defer span.End()

	respBytes, err := json.Marshal(handler.healthStatus())
	if err != nil {
		log.Errorf("marshal health response: %s", err)
		http.Error(w, "", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

func (handler *Handler) healthStatus() HealthStatus {
	return HealthStatus{
		Status:  "healthy",
		Message: statusMessage,
		Version: handler.versionInfo,
	}
}
