package ws

import (
	"encoding/json"
	"math"

	"h2_simulator/internal/plant"
	"h2_simulator/internal/scenario"
)

// Envelope wraps all WebSocket messages with a type discriminator.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Message type constants
const (
	// Client -> Server
	TypePlantParams = "plant:params"
	TypeEconParams  = "econ:params"

	// Server -> Client
	TypeScenarioLoaded = "scenario:loaded"
	TypePlantResult    = "plant:result"
	TypeEconSummary    = "econ:summary"
	TypePlantError     = "plant:error"
)

// Client -> Server payloads

type PlantParamsPayload struct {
	TemperatureC        float64 `json:"temperature_c"`
	MembraneThicknessUm float64 `json:"membrane_thickness_um"`
	SolarCapacityKW     float64 `json:"solar_capacity_kw"`
	CellCount           int     `json:"cell_count"`
}

type EconParamsPayload struct {
	ElectricityPriceKWh float64 `json:"electricity_price_kwh"`
	CapexPerKW          float64 `json:"capex_per_kw"`
}

// Server -> Client payloads

type ScenarioLoadedPayload struct {
	Plant PlantParamsPayload `json:"plant"`
	Econ  EconParamsPayload  `json:"econ"`
}

type PlantResultPayload struct {
	CurrentDensity []float64 `json:"current_density"` // A/cm²
	Voltage        []float64 `json:"voltage"`         // V
	Hours          []float64 `json:"hours"`
	SolarKW        []float64 `json:"solar_kw"`
	H2GramsPerHour []float64 `json:"h2_g_hr"`
}

// EconSummaryPayload carries the headline metrics. LCOH is null when the
// plant produces no hydrogen (the cost is undefined, not zero).
type EconSummaryPayload struct {
	DailyKg       float64  `json:"daily_kg"`
	AnnualKg      float64  `json:"annual_kg"`
	CapexUSD      float64  `json:"capex_usd"`
	AnnualOpexUSD float64  `json:"annual_opex_usd"`
	LCOHPerKg     *float64 `json:"lcoh_usd_kg"`
	EfficiencyPct float64  `json:"efficiency_pct"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

func NewEnvelope(msgType string, payload any) ([]byte, error) {
	var raw json.RawMessage
	if payload != nil {
		var err error
		raw, err = json.Marshal(payload)
		if err != nil {
			return nil, err
		}
	}
	return json.Marshal(Envelope{Type: msgType, Payload: raw})
}

func PlantParamsFromInputs(in plant.Inputs) PlantParamsPayload {
	return PlantParamsPayload{
		TemperatureC:        in.TemperatureC,
		MembraneThicknessUm: in.MembraneThicknessCm * 1e4,
		SolarCapacityKW:     in.SolarCapacityKW,
		CellCount:           in.CellCount,
	}
}

func (p PlantParamsPayload) Inputs() plant.Inputs {
	return plant.Inputs{
		TemperatureC:        p.TemperatureC,
		MembraneThicknessCm: p.MembraneThicknessUm / 1e4,
		SolarCapacityKW:     p.SolarCapacityKW,
		CellCount:           p.CellCount,
	}
}

func EconParamsFromPlant(p plant.EconParams) EconParamsPayload {
	return EconParamsPayload{
		ElectricityPriceKWh: p.ElectricityPricePerKWh,
		CapexPerKW:          p.CapexPerKW,
	}
}

func (p EconParamsPayload) Params() plant.EconParams {
	return plant.EconParams{
		ElectricityPricePerKWh: p.ElectricityPriceKWh,
		CapexPerKW:             p.CapexPerKW,
	}
}

func ScenarioLoadedFromScenario(s scenario.Scenario) ScenarioLoadedPayload {
	return ScenarioLoadedPayload{
		Plant: PlantParamsFromInputs(s.Inputs()),
		Econ:  EconParamsFromPlant(s.EconParams()),
	}
}

func ResultPayloadFromResult(r *plant.Result) PlantResultPayload {
	return PlantResultPayload{
		CurrentDensity: r.Polarization.CurrentDensity,
		Voltage:        r.Polarization.Voltage,
		Hours:          r.Hours,
		SolarKW:        r.SolarKW,
		H2GramsPerHour: r.H2GramsPerHour,
	}
}

func SummaryPayloadFromSummary(s plant.Summary) EconSummaryPayload {
	p := EconSummaryPayload{
		DailyKg:       s.DailyKg,
		AnnualKg:      s.AnnualKg,
		CapexUSD:      s.CapexUSD,
		AnnualOpexUSD: s.AnnualOpexUSD,
		EfficiencyPct: s.EfficiencyPct,
	}
	if !math.IsInf(s.LCOHPerKg, 0) && !math.IsNaN(s.LCOHPerKg) {
		lcoh := s.LCOHPerKg
		p.LCOHPerKg = &lcoh
	}
	return p
}
