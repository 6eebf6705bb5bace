package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
	"liyu1981.xyz/hydro-plant-simulator/pkg/common"
	"liyu1981.xyz/hydro-plant-simulator/pkg/monitoring"
	"liyu1981.xyz/hydro-plant-simulator/pkg/plant"
	"liyu1981.xyz/hydro-plant-simulator/pkg/simulator"
)

var maxPlants int = 1000
var stepsPerPlant int = 24 * 7

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

type plantParams struct {
	fillRatio float64
	flowM3s   float64
}

type plantResult struct {
	energyMWh float64
	alerts    uint32
}

func main() {
	common.SetLoggerNop()

	params := make([]plantParams, maxPlants)
	for i := range maxPlants {
		params[i] = plantParams{
			fillRatio: 0.3 + rnd.Float64()*0.7,
			flowM3s:   30 + rnd.Float64()*80,
		}
	}
	fmt.Printf("generated %v plant configurations\n", maxPlants)

	results := make([]plantResult, maxPlants)

	startTime := time.Now()
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.NumCPU())
	for i := range maxPlants {
		g.Go(func() error {
			res, err := runPlant(ctx, params[i])
			if err != nil {
				return fmt.Errorf("plant %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
	usedTime := time.Since(startTime)

	var totalEnergy float64
	var totalAlerts uint32
	for _, res := range results {
		totalEnergy += res.energyMWh
		totalAlerts += res.alerts
	}

	fmt.Printf(
		"simulated %v plants x %v steps: used time=%v seconds, throughput=%v steps/second\n",
		maxPlants, stepsPerPlant, usedTime.Seconds(), float64(maxPlants*stepsPerPlant)/usedTime.Seconds(),
	)
	fmt.Printf("fleet energy=%.1f MWh, alerts=%v\n", totalEnergy, totalAlerts)
}

func runPlant(ctx context.Context, p plantParams) (plantResult, error) {
	turbine, err := plant.NewTurbine("Turbine", 100.0, 0.85)
	if err != nil {
		return plantResult{}, err
	}
	generator, err := plant.NewGenerator("Generator", 95.0, 0.92)
	if err != nil {
		return plantResult{}, err
	}
	reservoir, err := plant.NewReservoir("Reservoir", 1e8, 1e8*p.fillRatio)
	if err != nil {
		return plantResult{}, err
	}
	waterFlow, err := plant.NewWaterFlow(p.flowM3s, 0.1)
	if err != nil {
		return plantResult{}, err
	}

	opts := simulator.DefaultOptions()
	opts.Output = io.Discard
	opts.InitialOutflowM3s = p.flowM3s
	opts.RetentionHours = 24

	monitor := monitoring.NewSystem()
	sim, err := simulator.New(simulator.Components{
		Turbine:   turbine,
		Generator: generator,
		Reservoir: reservoir,
		WaterFlow: waterFlow,
	}, monitor, opts)
	if err != nil {
		return plantResult{}, err
	}

	if err := sim.Run(ctx, stepsPerPlant); err != nil {
		return plantResult{}, err
	}
	return plantResult{energyMWh: sim.TotalEnergyMWh(), alerts: monitor.Metrics().TotalAlerts}, nil
}
