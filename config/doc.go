// Package config holds the explicit configuration of an encoding run.
//
// Every option recognised by the binning and indicator-expansion steps is a
// field of Config; nothing is read from package-level state. Values come
// from three layers, later layers winning:
//
//  1. Default(): documented defaults;
//  2. an optional YAML file (gopkg.in/yaml.v2);
//  3. LVCUT_* environment variables (github.com/kelseyhightower/envconfig).
//
// Validate checks enumerations with go-playground/validator struct tags and
// per-column structure (edges, labels) with the bins package validators.
//
// Example file:
//
//	closed_side: upper
//	on_out_of_range: clamp
//	on_unknown_category: drop
//	delimiter: "|"
//	columns:
//	  - name: age
//	    edges: [18, 25, 35, 60, 100]
//	    labels: [Youth, YoungAdult, MiddleAged, Senior]
//	  - name: genres
package config
