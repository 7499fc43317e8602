package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// LoadLegacy reads the original "name = value" text configuration format
// from Config.cpp: one setting per line, comments beginning with '#',
// malformed or unrecognized lines silently skipped (matching the
// source's own tolerant parser). It exists for round-trip compatibility
// with existing config files predating the YAML format.
func LoadLegacy(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: opening legacy config %s: %w", path, err)
	}
	defer f.Close()

	cfg := Defaults()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 || fields[1] != "=" {
			continue
		}
		name := fields[0]
		rest := fields[2:]

		switch name {
		case "seed":
			cfg.Seed = parseInt64(rest[0], cfg.Seed)
		case "quietMode":
			cfg.QuietMode = parseBool(rest[0], cfg.QuietMode)
		case "debugMode":
			cfg.DebugMode = parseBool(rest[0], cfg.DebugMode)
		case "sequenceBasePath":
			cfg.SequenceBasePath = rest[0]
		case "sequenceName":
			cfg.SequenceName = rest[0]
		case "resultsPath":
			cfg.ResultsPath = rest[0]
		case "frameWidth":
			cfg.FrameWidth = parseInt(rest[0], cfg.FrameWidth)
		case "frameHeight":
			cfg.FrameHeight = parseInt(rest[0], cfg.FrameHeight)
		case "searchRadius":
			cfg.SearchRadius = parseFloat(rest[0], cfg.SearchRadius)
		case "svmC":
			cfg.SVMC = parseFloat(rest[0], cfg.SVMC)
		case "svmBudgetSize":
			cfg.SVMBudgetSize = parseInt(rest[0], cfg.SVMBudgetSize)
		case "processOld":
			cfg.ProcessOld = rest[0] != "off"
		case "optimizeAll":
			cfg.OptimizeAll = rest[0] == "on"
		case "svm":
			if rest[0] == "fuzzy" {
				cfg.SVMVariant = "fuzzy"
			} else {
				cfg.SVMVariant = "standard"
			}
		case "feature":
			if len(rest) < 2 {
				continue
			}
			pair := FeatureKernelPair{Feature: rest[0], Kernel: rest[1]}
			if len(rest) >= 3 {
				pair.Param = parseFloat(rest[2], 0)
			}
			cfg.Features = append(cfg.Features, pair)
		}
	}

	if err := scanner.Err(); err != nil {
		return Config{}, fmt.Errorf("config: reading legacy config %s: %w", path, err)
	}
	return cfg, nil
}

func parseInt(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

func parseInt64(s string, fallback int64) int64 {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fallback
	}
	return v
}

func parseFloat(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}

func parseBool(s string, fallback bool) bool {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fallback
	}
	return v
}
