// Command struck runs the Struck tracker over a video sequence,
// initializing on a user-supplied bounding box and writing one result
// box per frame (spec.md §6.4).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/schollz/progressbar/v3"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"gocv.io/x/gocv"

	struck "github.com/brobeson/struck"
	"github.com/brobeson/struck/analyze"
	"github.com/brobeson/struck/config"
	"github.com/brobeson/struck/geometry"
	"github.com/brobeson/struck/imageio"
	"github.com/brobeson/struck/logging"
	"github.com/brobeson/struck/metrics"
	"github.com/brobeson/struck/render"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a YAML config file (uses defaults if empty)")
	legacyConfigPath := flag.String("legacy-config", "", "path to a legacy name=value config file")
	video := flag.String("video", "", "path to the input video file")
	output := flag.String("output", "", "path to write per-frame result boxes as CSV")
	compactOutput := flag.String("compact-output", "", "path to also write result boxes as a float16 compact archive (disabled if empty)")
	initX := flag.Float64("init-x", 0, "initial bounding box x_min")
	initY := flag.Float64("init-y", 0, "initial bounding box y_min")
	initWidth := flag.Float64("init-width", 0, "initial bounding box width")
	initHeight := flag.Float64("init-height", 0, "initial bounding box height")
	metricsAddr := flag.String("metrics-addr", "", "address to serve Prometheus metrics on, e.g. :9090 (disabled if empty)")
	debugDir := flag.String("debug", "", "directory to write annotated debug frames to (disabled if empty)")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *legacyConfigPath)
	if err != nil {
		return err
	}

	runID := uuid.New().String()
	log := logging.New("cmd/struck", cfg.LogLevel)
	log.Info().Str("run_id", runID).Msg("starting tracking run")

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	if *metricsAddr != "" {
		go serveMetrics(*metricsAddr, reg)
	}

	extractor, k, err := buildFeatureAndKernel(cfg)
	if err != nil {
		return err
	}
	loss, err := buildLoss(cfg)
	if err != nil {
		return err
	}
	manipulator, err := buildManipulator(cfg)
	if err != nil {
		return err
	}

	tracker, err := struck.New(cfg, extractor, k, loss, manipulator)
	if err != nil {
		return fmt.Errorf("cmd/struck: %w", err)
	}

	if *video == "" {
		return fmt.Errorf("cmd/struck: -video is required")
	}
	seq, err := imageio.OpenVideo(*video)
	if err != nil {
		return err
	}
	defer seq.Close()

	var writer *imageio.BoxWriter
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return fmt.Errorf("cmd/struck: creating output file: %w", err)
		}
		defer f.Close()
		writer = imageio.NewBoxWriter(f)
		defer writer.Flush()
	}

	initBB := geometry.New(*initX, *initY, *initWidth, *initHeight)
	if initBB.Area() <= 0 {
		return fmt.Errorf("cmd/struck: initial bounding box %v has zero area; pass -init-x/-init-y/-init-width/-init-height", initBB)
	}

	var debugWriter *render.DebugWriter
	if *debugDir != "" {
		if err := os.MkdirAll(*debugDir, 0o755); err != nil {
			return fmt.Errorf("cmd/struck: creating debug directory: %w", err)
		}
		debugWriter = render.NewDebugWriter(*debugDir)
	}

	bar := progressbar.Default(-1, "tracking")
	previousEvictions := 0
	frame := gocv.NewMat()
	defer frame.Close()

	var resultBoxes []geometry.Box
	first := true
	for seq.Next(&frame) {
		if first {
			if err := tracker.Initialise(frame, initBB); err != nil {
				return err
			}
			first = false
		} else {
			if err := tracker.Track(frame); err != nil {
				return err
			}
		}

		bb := tracker.GetBB()
		if writer != nil {
			if err := writer.Write(bb); err != nil {
				return err
			}
		}
		if *compactOutput != "" {
			resultBoxes = append(resultBoxes, bb)
		}

		frameDebug := tracker.Debug()
		if debugWriter != nil {
			score := 0.0
			if len(frameDebug.Scores) > 0 {
				for _, s := range frameDebug.Scores {
					if s > score {
						score = s
					}
				}
			}
			if err := debugWriter.Write(&frame, bb, score); err != nil {
				return err
			}
		}

		debug := frameDebug.Learner
		m.Sample(debug.Patterns, debug.Vectors, debug.Dual, debug.IllConditionedSMO)
		m.RecordEvictions(debug.Evictions - previousEvictions)
		previousEvictions = debug.Evictions
		m.FramesTracked.Inc()

		_ = bar.Add(1)
	}

	if *compactOutput != "" {
		f, err := os.Create(*compactOutput)
		if err != nil {
			return fmt.Errorf("cmd/struck: creating compact output file: %w", err)
		}
		defer f.Close()
		if err := analyze.WriteCompactBoxes(f, resultBoxes); err != nil {
			return err
		}
	}

	log.Info().Str("run_id", runID).Msg("tracking run complete")
	return nil
}

func loadConfig(yamlPath, legacyPath string) (config.Config, error) {
	switch {
	case yamlPath != "":
		return config.Load(yamlPath)
	case legacyPath != "":
		return config.LoadLegacy(legacyPath)
	default:
		return config.Defaults(), nil
	}
}

func serveMetrics(addr string, reg *prometheus.Registry) {
	handler := fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	if err := fasthttp.ListenAndServe(addr, handler); err != nil {
		fmt.Fprintf(os.Stderr, "cmd/struck: metrics server: %v\n", err)
	}
}
