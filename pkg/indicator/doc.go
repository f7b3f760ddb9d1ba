// Package indicator maps a strength variant to what a password field shows:
// a description label and three coloured segments.
//
// Weak fills the first segment, Medium the first two and Strong all three.
// Each filled segment takes its own tier colour; the rest use the neutral
// unused colour. Palettes can be overridden from go-theme tokens.
package indicator
