package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"h2_simulator/internal/scenario"
	"h2_simulator/internal/ws"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	r := mux.NewRouter()
	h := NewHandler(scenario.Default(), zerolog.Nop())
	h.RegisterRoutes(r.PathPrefix("/api").Subrouter())
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server
}

func postSimulate(t *testing.T, server *httptest.Server, req SimulateRequest) *http.Response {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)
	resp, err := http.Post(server.URL+"/api/simulate", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	return resp
}

func TestDefaults(t *testing.T) {
	server := testServer(t)

	resp, err := http.Get(server.URL + "/api/defaults")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loaded ws.ScenarioLoadedPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&loaded))
	assert.InDelta(t, 60, loaded.Plant.TemperatureC, 1e-9)
	assert.InDelta(t, 0.05, loaded.Econ.ElectricityPriceKWh, 1e-9)
}

func TestSimulate_OK(t *testing.T) {
	server := testServer(t)

	resp := postSimulate(t, server, SimulateRequest{
		Plant: ws.PlantParamsPayload{
			TemperatureC:        60,
			MembraneThicknessUm: 125,
			SolarCapacityKW:     100,
			CellCount:           50,
		},
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out SimulateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Len(t, out.Result.Voltage, 50)
	assert.Len(t, out.Result.H2GramsPerHour, 96)
	assert.Positive(t, out.Summary.DailyKg)
	require.NotNil(t, out.Summary.LCOHPerKg)
}

func TestSimulate_EconOverride(t *testing.T) {
	server := testServer(t)

	resp := postSimulate(t, server, SimulateRequest{
		Plant: ws.PlantParamsPayload{
			TemperatureC:        60,
			MembraneThicknessUm: 125,
			SolarCapacityKW:     100,
			CellCount:           50,
		},
		Econ: &ws.EconParamsPayload{ElectricityPriceKWh: 0.10, CapexPerKW: 500},
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out SimulateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.InDelta(t, 20000, out.Summary.AnnualOpexUSD, 1e-6)
	assert.InDelta(t, 50000, out.Summary.CapexUSD, 1e-6)
}

func TestSimulate_InvalidInputs(t *testing.T) {
	server := testServer(t)

	resp := postSimulate(t, server, SimulateRequest{
		Plant: ws.PlantParamsPayload{
			TemperatureC:        60,
			MembraneThicknessUm: 125,
			SolarCapacityKW:     100,
			CellCount:           0,
		},
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Contains(t, out["error"], "cell count")
}

func TestSimulate_ZeroCapacityNullLCOH(t *testing.T) {
	server := testServer(t)

	resp := postSimulate(t, server, SimulateRequest{
		Plant: ws.PlantParamsPayload{
			TemperatureC:        60,
			MembraneThicknessUm: 125,
			SolarCapacityKW:     0,
			CellCount:           50,
		},
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out SimulateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Zero(t, out.Summary.DailyKg)
	assert.Nil(t, out.Summary.LCOHPerKg)
}

func TestSimulate_RejectsUnknownFields(t *testing.T) {
	server := testServer(t)

	resp, err := http.Post(server.URL+"/api/simulate", "application/json",
		bytes.NewReader([]byte(`{"plant":{},"bogus":1}`)))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSimulate_MethodNotAllowed(t *testing.T) {
	server := testServer(t)

	resp, err := http.Get(server.URL + "/api/simulate")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
