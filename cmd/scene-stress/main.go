package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"

	"github.com/plus3/scenekit/config"
	"github.com/plus3/scenekit/render"
	"github.com/plus3/scenekit/scene"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	layerCount := flag.Int("layers", 4, "The number of layers, including the default layer.")
	configPath := flag.String("config", "", "Optional settings YAML file.")
	profileMode := flag.String("profile", "", "Write a profile to the working directory: cpu, mem or allocs.")
	seed := flag.Int64("seed", 1, "Random seed for unit selection.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	settings := config.Default()
	if *configPath != "" {
		var err error
		if settings, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
	}

	if p := startProfile(*profileMode); p != nil {
		defer p.Stop()
	}

	log.Println("Starting scene stress test...")

	ctx := scene.NewContext(settings, render.Discard{}, nil)
	s := scene.New(ctx, scene.WithName("stress"))
	layers := []*scene.Layer{s.DefaultLayer()}
	for i := 1; i < *layerCount; i++ {
		l := scene.NewLayer(fmt.Sprintf("layer-%d", i))
		if err := s.AddLayer(l); err != nil {
			log.Fatalf("Failed to add layer: %v", err)
		}
		layers = append(layers, l)
	}

	log.Printf("Populating scene with %d entities across %d layers...\n", *entityCount, len(layers))
	rng := rand.New(rand.NewSource(*seed))
	var spawned int64
	units := s.WorldUnits()
	for i := 0; i < *entityCount; i++ {
		e := scene.NewEntity(fmt.Sprintf("e%d", i%16))
		addRandomUnits(e, rng, rng.Intn(5)+1, &spawned, units)
		if err := s.AddEntityTo(e, layers[i%len(layers)]); err != nil {
			log.Fatalf("Failed to add entity: %v", err)
		}
	}
	log.Println("Population complete.")

	s.Resize(settings.WindowWidth, settings.WindowHeight)
	s.Resume()

	report := &Report{
		Duration:       *duration,
		Entities:       *entityCount,
		Layers:         len(layers),
		GCPauseMetrics: *gcPauseMetrics,
		FrameTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	runCtx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalFrames int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-runCtx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			frameStart := time.Now()
			s.Update(deltaTime.Seconds())
			s.Render()
			report.FrameTime.Samples = append(report.FrameTime.Samples, time.Since(frameStart))
			totalFrames++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalFrames = totalFrames
	report.Respawned = spawned
	report.FinalEntities = s.EntityCount()
	report.Phases = s.Stats()
	report.FrameTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	s.Pause()
	s.Destroy()
	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

func startProfile(mode string) interface{ Stop() } {
	opts := []func(*profile.Profile){profile.ProfilePath("."), profile.NoShutdownHook}
	switch mode {
	case "":
		return nil
	case "cpu":
		opts = append(opts, profile.CPUProfile)
	case "mem":
		opts = append(opts, profile.MemProfile)
	case "allocs":
		opts = append(opts, profile.MemProfileAllocs)
	default:
		log.Fatalf("Unknown profile mode %q", mode)
	}
	return profile.Start(opts...)
}
