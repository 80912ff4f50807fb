// Package pipeline provides the core processing pipeline for Pedigraph.
//
// This package implements the complete parse → layout pipeline that can be
// used by CLI and API components. By centralizing this logic, we ensure
// consistent behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Parse: Read GEDCOM source and build the pedigree graph with
//     generation assignments
//  2. Layout: Compute x/y positions for every node in the graph
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Source: gedcomText,
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	graph := result.Graph
//
// Run individual stages:
//
//	// Parse only
//	g, err := runner.Parse(ctx, opts)
//
//	// Layout with existing graph
//	laid, err := runner.Layout(ctx, g, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pedigraph/pedigraph/pkg/cache"
	"github.com/pedigraph/pedigraph/pkg/pedigree"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultHSpacing is the default horizontal distance between layout slots.
	DefaultHSpacing = pedigree.DefaultHSpacing

	// DefaultVSpacing is the default vertical distance between generation rows.
	DefaultVSpacing = pedigree.DefaultVSpacing
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Parse options
	Source  string `json:"source"`            // GEDCOM text
	Refresh bool   `json:"refresh,omitempty"` // Bypass the cache and reparse

	// Layout options
	HSpacing float64 `json:"h_spacing,omitempty"`
	VSpacing float64 `json:"v_spacing,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the pedigree graph with generations and positions assigned.
	Graph *pedigree.Graph

	// GraphHash is the content hash of the parsed graph, before layout.
	GraphHash string

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount   int
	LinkCount   int
	DroppedRefs int
	ParseTime   time.Duration
	LayoutTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ParseHit  bool // Whether the parsed graph came from cache
	LayoutHit bool // Whether the layout came from cache
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForParse(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForParse checks required fields for parsing.
func (o *Options) ValidateForParse() error {
	if o.Source == "" {
		return fmt.Errorf("source is required")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	if o.HSpacing < 0 {
		return fmt.Errorf("h_spacing must be positive, got %v", o.HSpacing)
	}
	if o.VSpacing < 0 {
		return fmt.Errorf("v_spacing must be positive, got %v", o.VSpacing)
	}
	if o.HSpacing == 0 {
		o.HSpacing = DefaultHSpacing
	}
	if o.VSpacing == 0 {
		o.VSpacing = DefaultVSpacing
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// LayoutOptions converts pipeline options to layout options.
func (o *Options) LayoutOptions() pedigree.LayoutOptions {
	return pedigree.LayoutOptions{
		HSpacing: o.HSpacing,
		VSpacing: o.VSpacing,
	}
}

// GraphKeyOpts returns cache key options for graph parsing.
func (o *Options) GraphKeyOpts() cache.GraphKeyOpts {
	return cache.GraphKeyOpts{}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		HSpacing: o.HSpacing,
		VSpacing: o.VSpacing,
	}
}
