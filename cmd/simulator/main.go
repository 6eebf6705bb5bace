package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"liyu1981.xyz/hydro-plant-simulator/pkg/common"
	"liyu1981.xyz/hydro-plant-simulator/pkg/db"
	"liyu1981.xyz/hydro-plant-simulator/pkg/monitoring"
	"liyu1981.xyz/hydro-plant-simulator/pkg/plant"
	"liyu1981.xyz/hydro-plant-simulator/pkg/simulator"
)

const defaultSteps = 24

func main() {
	var err error

	// .env is optional, every key has a default
	if err = godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	steps, err := common.EnvInt(common.EnvKeySimSteps, defaultSteps)
	if err != nil {
		log.Fatal(err)
	}
	stepRate, err := common.EnvFloat(common.EnvKeySimStepRate, 0)
	if err != nil {
		log.Fatal(err)
	}
	retentionHours, err := common.EnvFloat(common.EnvKeySimRetentionHours, 0)
	if err != nil {
		log.Fatal(err)
	}

	var archive *db.DB
	archiveType := strings.TrimSpace(os.Getenv(common.EnvKeySimArchive))
	switch archiveType {
	case "", "none":
	case "memory":
		archive = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown SIM_ARCHIVE: " + archiveType + ", should be memory or none")
	}

	logger := common.GetLogger()

	turbine, err := plant.NewTurbine("Main Turbine", 100.0, 0.85)
	if err != nil {
		log.Fatalf("failed to create turbine: %v", err)
	}
	generator, err := plant.NewGenerator("Main Generator", 95.0, 0.92)
	if err != nil {
		log.Fatalf("failed to create generator: %v", err)
	}
	reservoir, err := plant.NewReservoir("Main Reservoir", 1e8, 9e7)
	if err != nil {
		log.Fatalf("failed to create reservoir: %v", err)
	}
	waterFlow, err := plant.NewWaterFlow(50.0, 0.1)
	if err != nil {
		log.Fatalf("failed to create water flow: %v", err)
	}

	opts := simulator.DefaultOptions()
	opts.StepsPerSecond = stepRate
	opts.RetentionHours = retentionHours
	opts.Archive = archive

	sim, err := simulator.New(simulator.Components{
		Turbine:   turbine,
		Generator: generator,
		Reservoir: reservoir,
		WaterFlow: waterFlow,
	}, monitoring.NewSystem(), opts)
	if err != nil {
		log.Fatalf("failed to create simulator: %v", err)
	}

	logger.Info("Simulator created with:",
		zap.Int("steps", steps),
		zap.Float64("step_rate", stepRate),
		zap.Float64("retention_hours", retentionHours),
		zap.Bool("archive", archive != nil),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := sim.Run(ctx, steps); err != nil {
		logger.Error("Simulation failed", zap.Error(err))
		stop()
		os.Exit(1)
	}

	if archive != nil {
		logger.Info("Run archived", zap.String("run_id", sim.RunID()))
	}
}
