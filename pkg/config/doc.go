// Package config loads classifier and indicator settings from JSON or YAML.
//
//	policy:
//	  mode: hybrid
//	  mediumLength: 8
//	  strongLength: 12
//	labels:
//	  weak: "Too weak"
//	palette:
//	  strong: "#4fbf68"
//	theme:
//	  name: acme
//	  variant: dark
//
// Omitted values keep their defaults. Labels are reduced to plain text.
package config
