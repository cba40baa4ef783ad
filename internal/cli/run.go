package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"h2_simulator/internal/plant"
	"h2_simulator/internal/render"
)

func newRunCmd() *cobra.Command {
	var (
		temperature float64
		membraneUm  float64
		capacityKW  float64
		cells       int
		elecPrice   float64
		capexPerKW  float64
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one simulation and print charts and metrics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadScenario(cmd)
			if err != nil {
				return err
			}

			in := s.Inputs()
			econ := s.EconParams()

			// Flag overrides beat the scenario file.
			flags := cmd.Flags()
			if flags.Changed("temperature") {
				in.TemperatureC = temperature
			}
			if flags.Changed("membrane-um") {
				in.MembraneThicknessCm = membraneUm / 1e4
			}
			if flags.Changed("capacity") {
				in.SolarCapacityKW = capacityKW
			}
			if flags.Changed("cells") {
				in.CellCount = cells
			}
			if flags.Changed("electricity-price") {
				econ.ElectricityPricePerKWh = elecPrice
			}
			if flags.Changed("capex") {
				econ.CapexPerKW = capexPerKW
			}

			if err := in.Validate(); err != nil {
				return err
			}
			if err := econ.Validate(); err != nil {
				return err
			}

			res, err := plant.Simulate(in)
			if err != nil {
				return err
			}
			summary := plant.Economics(res, in, econ)

			log := logger()
			log.Debug().
				Float64("temperature_c", in.TemperatureC).
				Float64("capacity_kw", in.SolarCapacityKW).
				Int("cells", in.CellCount).
				Msg("simulation complete")

			fmt.Fprintln(cmd.OutOrStdout(), render.Report(res, summary))
			return nil
		},
	}

	cmd.Flags().Float64Var(&temperature, "temperature", 60, "operating temperature (°C)")
	cmd.Flags().Float64Var(&membraneUm, "membrane-um", 125, "membrane thickness (µm)")
	cmd.Flags().Float64Var(&capacityKW, "capacity", 100, "solar array capacity (kW)")
	cmd.Flags().IntVar(&cells, "cells", 50, "number of cells in the stack")
	cmd.Flags().Float64Var(&elecPrice, "electricity-price", 0.05, "electricity price ($/kWh)")
	cmd.Flags().Float64Var(&capexPerKW, "capex", 1000, "system CAPEX ($/kW)")

	return cmd
}
