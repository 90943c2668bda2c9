// Package augmentgo provides a consistency-preserving image augmentation
// engine for Go, designed for training-data pipelines and on-the-fly
// augmentation in data-loading loops.
//
// AugmentGo applies one stochastic transform to a whole bundle of
// co-registered artifacts (image, mask, bounding boxes, keypoints) with a
// single shared activation draw and parameter set, so every artifact stays
// spatially consistent with the others after the call.
//
// # Features
//
// - Controlled randomness: one activation draw and one parameter set per call
// - Cross-artifact consistency: image, masks, boxes and keypoints move together
// - Target aliasing: route user-defined keys through existing apply paths
// - Provenance tracking: every artifact carries its ordered transform history
// - Robust error handling: structured errors with stack traces
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/augmentgo/augmentations"
//	    "github.com/YuminosukeSato/augmentgo/core/artifact"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    flip, err := augmentations.NewHorizontalFlip()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    bundle := artifact.Bundle{
//	        "image":  artifact.NewRaster(mat.NewDense(4, 4, nil)),
//	        "bboxes": artifact.NewBoxList([]artifact.Box{{0, 0, 2, 2, 7}}),
//	    }
//
//	    out, err := flip.Invoke(true, bundle)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(out["bboxes"].(*artifact.BoxList).Items)
//	}
//
// # Packages
//
// The library is organized into several packages:
//
//   - core/transform: the transform contract, activation and dispatch engine
//   - core/artifact: artifact kinds, bundles and provenance history
//   - augmentations: concrete reference transforms
//   - visualize: debug rendering of augmented bundles
//   - pkg/errors: structured error types
//   - pkg/log: structured logging utilities
//
// # License
//
// AugmentGo is released under the MIT License.
package augmentgo
