package strength

import (
	"errors"
	"fmt"
)

// Default thresholds, measured in runes. A length equal to a threshold falls
// into the stronger bucket.
const (
	DefaultMediumLength = 8
	DefaultStrongLength = 12

	// DefaultDiverseClassCount is the number of character classes a password
	// needs before hybrid mode lowers the thresholds.
	DefaultDiverseClassCount = 3
	// DefaultDiversityDiscount is how many runes hybrid mode removes from each
	// threshold for a diverse password.
	DefaultDiversityDiscount = 2
)

// ErrInvalidPolicy is wrapped by every Policy validation failure.
var ErrInvalidPolicy = errors.New("strength: invalid policy")

// Mode selects the scoring axes a Policy uses.
type Mode string

const (
	// ModeLength classifies on rune count alone.
	ModeLength Mode = "length"
	// ModeHybrid classifies on rune count with thresholds lowered for passwords
	// that mix enough character classes.
	ModeHybrid Mode = "hybrid"
)

// Policy holds the tunable thresholds of the classifier.
type Policy struct {
	Mode              Mode `json:"mode" yaml:"mode"`
	MediumLength      int  `json:"mediumLength" yaml:"mediumLength"`
	StrongLength      int  `json:"strongLength" yaml:"strongLength"`
	DiverseClassCount int  `json:"diverseClassCount" yaml:"diverseClassCount"`
	DiversityDiscount int  `json:"diversityDiscount" yaml:"diversityDiscount"`
}

// DefaultPolicy returns the length policy with 8/12 thresholds.
func DefaultPolicy() Policy {
	return Policy{
		Mode:              ModeLength,
		MediumLength:      DefaultMediumLength,
		StrongLength:      DefaultStrongLength,
		DiverseClassCount: DefaultDiverseClassCount,
		DiversityDiscount: DefaultDiversityDiscount,
	}
}

// Validate reports the first inconsistency in the policy.
func (p Policy) Validate() error {
	switch p.Mode {
	case ModeLength, ModeHybrid:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidPolicy, p.Mode)
	}
	if p.MediumLength < 1 {
		return fmt.Errorf("%w: medium length must be at least 1, got %d", ErrInvalidPolicy, p.MediumLength)
	}
	if p.StrongLength <= p.MediumLength {
		return fmt.Errorf("%w: strong length %d must exceed medium length %d", ErrInvalidPolicy, p.StrongLength, p.MediumLength)
	}
	if p.Mode == ModeHybrid {
		if p.DiverseClassCount < 1 || p.DiverseClassCount > 4 {
			return fmt.Errorf("%w: diverse class count must be between 1 and 4, got %d", ErrInvalidPolicy, p.DiverseClassCount)
		}
		if p.DiversityDiscount < 0 {
			return fmt.Errorf("%w: diversity discount must not be negative, got %d", ErrInvalidPolicy, p.DiversityDiscount)
		}
	}
	return nil
}

// Thresholds returns the effective medium and strong lengths for a password
// with the given class profile.
func (p Policy) Thresholds(classes Classes) (medium, strong int) {
	medium, strong = p.MediumLength, p.StrongLength
	if p.Mode != ModeHybrid || classes.Count() < p.DiverseClassCount {
		return medium, strong
	}
	medium -= p.DiversityDiscount
	strong -= p.DiversityDiscount
	if medium < 1 {
		medium = 1
	}
	if strong <= medium {
		strong = medium + 1
	}
	return medium, strong
}

func (p Policy) classify(length int, classes Classes) Strength {
	medium, strong := p.Thresholds(classes)
	switch {
	case length >= strong:
		return Strong
	case length >= medium:
		return Medium
	default:
		return Weak
	}
}
