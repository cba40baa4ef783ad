package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"h2_simulator/internal/electrolyzer"
	"h2_simulator/internal/plant"
	"h2_simulator/internal/scenario"
	"h2_simulator/internal/ws"
)

// Handler exposes the simulator over plain JSON for non-WebSocket callers.
// The ws payload types double as the REST schema so both surfaces stay in sync.
type Handler struct {
	log      zerolog.Logger
	defaults scenario.Scenario
}

func NewHandler(defaults scenario.Scenario, log zerolog.Logger) *Handler {
	return &Handler{log: log, defaults: defaults}
}

// RegisterRoutes attaches the API endpoints to the given (sub)router.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/defaults", h.handleDefaults).Methods("GET")
	r.HandleFunc("/simulate", h.handleSimulate).Methods("POST")
}

// SimulateRequest is the POST /simulate body. Economics is optional; when
// omitted the default scenario's economic parameters apply.
type SimulateRequest struct {
	Plant ws.PlantParamsPayload `json:"plant"`
	Econ  *ws.EconParamsPayload `json:"econ,omitempty"`
}

type SimulateResponse struct {
	Result  ws.PlantResultPayload `json:"result"`
	Summary ws.EconSummaryPayload `json:"summary"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) handleDefaults(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, ws.ScenarioLoadedFromScenario(h.defaults))
}

func (h *Handler) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req SimulateRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("decoding request: %w", err))
		return
	}

	in := req.Plant.Inputs()
	if err := in.Validate(); err != nil {
		h.writeError(w, badRequestStatus(err), err)
		return
	}

	econ := h.defaults.EconParams()
	if req.Econ != nil {
		econ = req.Econ.Params()
		if err := econ.Validate(); err != nil {
			h.writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	res, err := plant.Simulate(in)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	summary := plant.Economics(res, in, econ)

	h.writeJSON(w, http.StatusOK, SimulateResponse{
		Result:  ws.ResultPayloadFromResult(res),
		Summary: ws.SummaryPayloadFromSummary(summary),
	})
}

// badRequestStatus keeps validation failures as 400s; anything unexpected
// would be a 500, but all simulator errors today are input errors.
func badRequestStatus(err error) int {
	switch {
	case errors.Is(err, plant.ErrCellCountTooSmall),
		errors.Is(err, plant.ErrNegativeCapacity),
		errors.Is(err, plant.ErrNegativePrice),
		errors.Is(err, electrolyzer.ErrTemperatureOutOfRange),
		errors.Is(err, electrolyzer.ErrMembraneTooThin):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error().Err(err).Msg("writing response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}
