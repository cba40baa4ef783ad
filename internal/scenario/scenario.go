package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"h2_simulator/internal/plant"
)

// Scenario is the on-disk parameter set for one plant configuration: the four
// physics/scale inputs plus the two economic scalars.
type Scenario struct {
	Plant     PlantSection `yaml:"plant"`
	Economics EconSection  `yaml:"economics"`
}

type PlantSection struct {
	TemperatureC        float64 `yaml:"temperature_c"`
	MembraneThicknessUm float64 `yaml:"membrane_thickness_um"`
	SolarCapacityKW     float64 `yaml:"solar_capacity_kw"`
	CellCount           int     `yaml:"cell_count"`
}

type EconSection struct {
	ElectricityPricePerKWh float64 `yaml:"electricity_price_kwh"`
	CapexPerKW             float64 `yaml:"capex_per_kw"`
}

// Default returns the reference scenario: a 100 kW array feeding a 50-cell
// stack at 60°C with a 125 µm membrane.
func Default() Scenario {
	return Scenario{
		Plant: PlantSection{
			TemperatureC:        60,
			MembraneThicknessUm: 125,
			SolarCapacityKW:     100,
			CellCount:           50,
		},
		Economics: EconSection{
			ElectricityPricePerKWh: 0.05,
			CapexPerKW:             1000,
		},
	}
}

// Load reads a scenario YAML file. Missing keys keep their default values.
func Load(path string) (Scenario, error) {
	s := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("reading scenario: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing scenario %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// Inputs converts the plant section to simulator inputs. Membrane thickness is
// stored in micrometres in the file and converted to centimetres here.
func (s Scenario) Inputs() plant.Inputs {
	return plant.Inputs{
		TemperatureC:        s.Plant.TemperatureC,
		MembraneThicknessCm: s.Plant.MembraneThicknessUm / 1e4,
		SolarCapacityKW:     s.Plant.SolarCapacityKW,
		CellCount:           s.Plant.CellCount,
	}
}

// EconParams converts the economics section.
func (s Scenario) EconParams() plant.EconParams {
	return plant.EconParams{
		ElectricityPricePerKWh: s.Economics.ElectricityPricePerKWh,
		CapexPerKW:             s.Economics.CapexPerKW,
	}
}

func (s Scenario) Validate() error {
	if err := s.Inputs().Validate(); err != nil {
		return err
	}
	return s.EconParams().Validate()
}
