package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"h2_simulator/internal/plant"
	"h2_simulator/internal/scenario"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler manages WebSocket connections and the shared plant scenario. Every
// accepted parameter change triggers a full recompute and a broadcast, so all
// connected views stay in sync.
type Handler struct {
	hub *Hub
	log zerolog.Logger

	mu     sync.Mutex
	inputs plant.Inputs
	econ   plant.EconParams
}

func NewHandler(hub *Hub, s scenario.Scenario, log zerolog.Logger) *Handler {
	return &Handler{
		hub:    hub,
		log:    log,
		inputs: s.Inputs(),
		econ:   s.EconParams(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := &Client{
		hub:  h.hub,
		conn: conn,
		send: make(chan []byte, 256),
	}

	h.hub.Register(client)
	go client.writePump()

	// New clients get the current scenario and its results immediately.
	h.sendScenario(client)
	h.sendResults(client)

	h.readPump(client)
}

func (h *Handler) readPump(c *Client) {
	defer func() {
		h.hub.Unregister(c)
		c.conn.Close()
	}()

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Warn().Err(err).Msg("websocket read error")
			}
			return
		}

		h.handleMessage(c, msg)
	}
}

func (h *Handler) handleMessage(c *Client, msg []byte) {
	var env Envelope
	if err := json.Unmarshal(msg, &env); err != nil {
		h.log.Warn().Err(err).Msg("invalid message")
		return
	}

	switch env.Type {
	case TypePlantParams:
		var p PlantParamsPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			h.log.Warn().Err(err).Msg("invalid plant:params payload")
			return
		}
		in := p.Inputs()
		if err := in.Validate(); err != nil {
			h.sendError(c, err.Error())
			return
		}
		h.mu.Lock()
		h.inputs = in
		h.mu.Unlock()
		h.broadcastResults()

	case TypeEconParams:
		var p EconParamsPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			h.log.Warn().Err(err).Msg("invalid econ:params payload")
			return
		}
		econ := p.Params()
		if err := econ.Validate(); err != nil {
			h.sendError(c, err.Error())
			return
		}
		h.mu.Lock()
		h.econ = econ
		h.mu.Unlock()
		h.broadcastResults()

	default:
		h.log.Warn().Str("type", env.Type).Msg("unknown message type")
	}
}

// Scenario returns the handler's current parameter set.
func (h *Handler) Scenario() (plant.Inputs, plant.EconParams) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.inputs, h.econ
}

// compute runs the simulator on the current scenario. Inputs are validated
// before they reach the handler state, so a failure here is a bug.
func (h *Handler) compute() (PlantResultPayload, EconSummaryPayload, error) {
	in, econ := h.Scenario()

	res, err := plant.Simulate(in)
	if err != nil {
		return PlantResultPayload{}, EconSummaryPayload{}, err
	}
	summary := plant.Economics(res, in, econ)
	return ResultPayloadFromResult(res), SummaryPayloadFromSummary(summary), nil
}

func (h *Handler) broadcastResults() {
	result, summary, err := h.compute()
	if err != nil {
		h.log.Error().Err(err).Msg("simulation failed")
		return
	}

	if msg, err := NewEnvelope(TypePlantResult, result); err == nil {
		h.hub.Broadcast(msg)
	}
	if msg, err := NewEnvelope(TypeEconSummary, summary); err == nil {
		h.hub.Broadcast(msg)
	}
}

func (h *Handler) sendScenario(c *Client) {
	in, econ := h.Scenario()
	payload := ScenarioLoadedPayload{
		Plant: PlantParamsFromInputs(in),
		Econ:  EconParamsFromPlant(econ),
	}
	msg, err := NewEnvelope(TypeScenarioLoaded, payload)
	if err != nil {
		h.log.Error().Err(err).Msg("marshaling scenario:loaded")
		return
	}
	h.trySend(c, msg)
}

func (h *Handler) sendResults(c *Client) {
	result, summary, err := h.compute()
	if err != nil {
		h.log.Error().Err(err).Msg("simulation failed")
		return
	}
	if msg, err := NewEnvelope(TypePlantResult, result); err == nil {
		h.trySend(c, msg)
	}
	if msg, err := NewEnvelope(TypeEconSummary, summary); err == nil {
		h.trySend(c, msg)
	}
}

func (h *Handler) sendError(c *Client, message string) {
	msg, err := NewEnvelope(TypePlantError, ErrorPayload{Message: message})
	if err != nil {
		return
	}
	h.trySend(c, msg)
}

func (h *Handler) trySend(c *Client, msg []byte) {
	select {
	case c.send <- msg:
	default:
	}
}
