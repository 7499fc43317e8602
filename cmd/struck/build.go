package main

import (
	"fmt"

	"github.com/brobeson/struck/config"
	"github.com/brobeson/struck/features"
	"github.com/brobeson/struck/kernel"
	"github.com/brobeson/struck/learner"
)

// buildFeatureAndKernel turns cfg.Features into a (possibly composite)
// extractor and matching kernel, replicating Config.cpp's "feature
// <name> <kernel> [param]" lines and Tracker.h's MultiFeatures/
// MultiKernel combination when more than one is configured.
func buildFeatureAndKernel(cfg config.Config) (features.Extractor, kernel.Function, error) {
	pairs := cfg.Features
	if len(pairs) == 0 {
		pairs = []config.FeatureKernelPair{{Feature: "raw", Kernel: "gaussian", Param: 0.2}}
	}

	extractors := make([]features.Extractor, 0, len(pairs))
	kernels := make([]kernel.Function, 0, len(pairs))

	for _, pair := range pairs {
		extractor, err := buildFeature(pair)
		if err != nil {
			return nil, nil, err
		}
		k, err := buildKernel(pair)
		if err != nil {
			return nil, nil, err
		}
		extractors = append(extractors, extractor)
		kernels = append(kernels, k)
	}

	if len(extractors) == 1 {
		return extractors[0], kernels[0], nil
	}

	composite := features.Composite{Extractors: extractors}
	return composite, kernel.Composite{Kernels: kernels, Sizes: composite.Sizes()}, nil
}

func buildFeature(pair config.FeatureKernelPair) (features.Extractor, error) {
	switch pair.Feature {
	case "raw":
		size := 16
		if pair.Param > 0 {
			size = int(pair.Param)
		}
		return features.RawPixel{Width: size, Height: size}, nil
	case "haar":
		grid := 4
		if pair.Param > 0 {
			grid = int(pair.Param)
		}
		return features.Haar{Grid: grid}, nil
	case "histogram":
		bins := 16
		if pair.Param > 0 {
			bins = int(pair.Param)
		}
		return features.ColorHistogram{Bins: bins, Channels: 3}, nil
	default:
		return nil, fmt.Errorf("cmd/struck: unknown feature %q", pair.Feature)
	}
}

func buildKernel(pair config.FeatureKernelPair) (kernel.Function, error) {
	switch pair.Kernel {
	case "linear":
		return kernel.Linear{}, nil
	case "gaussian":
		sigma := pair.Param
		if sigma <= 0 {
			sigma = 0.2
		}
		return kernel.NewGaussian(sigma)
	case "intersection":
		return kernel.Intersection{}, nil
	case "chi2":
		return kernel.Chi2{}, nil
	default:
		return nil, fmt.Errorf("cmd/struck: unknown kernel %q", pair.Kernel)
	}
}

func buildLoss(cfg config.Config) (learner.Loss, error) {
	switch cfg.Loss {
	case "", "iou":
		return learner.IoULoss{}, nil
	case "distance":
		return learner.NewDistanceLoss(1.0)
	default:
		return nil, fmt.Errorf("cmd/struck: unknown loss %q", cfg.Loss)
	}
}

func buildManipulator(cfg config.Config) (learner.Manipulator, error) {
	switch cfg.Manipulator {
	case "", "identity":
		return learner.Identity{}, nil
	case "smooth_step":
		return learner.SmoothStep{}, nil
	default:
		return nil, fmt.Errorf("cmd/struck: unknown manipulator %q", cfg.Manipulator)
	}
}
