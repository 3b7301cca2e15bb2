// Package bmi implements the Oxford 2013 body mass index and the weight
// classification built on top of it.
package bmi

import (
	"errors"
	"math"
)

// Oxford 2013 formula: BMI = 1.3 * weight / height^2.5 (kg, m).
const (
	OxfordFactor   = 1.3
	OxfordExponent = 2.5
)

// Reference BMI values used to derive the ideal weight range. The upper
// value is 24.9, not the 25.0 boundary Classify uses for Overweight.
const (
	IdealMinBMI = 18.5
	IdealMaxBMI = 24.9
)

// ErrInvalidHeight is returned for a zero height, which would divide by zero.
var ErrInvalidHeight = errors.New("height must be greater than zero")

// Range is an ideal weight interval in kilograms.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Assessment collects everything the report shows for one person.
type Assessment struct {
	HeightCm uint16   `json:"height_cm" yaml:"height_cm"`
	WeightKg uint16   `json:"weight_kg" yaml:"weight_kg"`
	BMI      float64  `json:"bmi" yaml:"bmi"`
	Category Category `json:"category" yaml:"category"`
	Ideal    Range    `json:"ideal_weight" yaml:"ideal_weight"`
}

func heightFactor(heightCm uint16) (float64, error) {
	if heightCm == 0 {
		return 0, ErrInvalidHeight
	}
	return math.Pow(float64(heightCm)/100, OxfordExponent), nil
}

// Compute returns the Oxford 2013 BMI for a height in centimeters and a
// weight in kilograms.
func Compute(heightCm, weightKg uint16) (float64, error) {
	h, err := heightFactor(heightCm)
	if err != nil {
		return 0, err
	}
	return OxfordFactor * float64(weightKg) / h, nil
}

// IdealWeightRange inverts the formula at IdealMinBMI and IdealMaxBMI.
func IdealWeightRange(heightCm uint16) (Range, error) {
	h, err := heightFactor(heightCm)
	if err != nil {
		return Range{}, err
	}
	return Range{
		Min: IdealMinBMI * h / OxfordFactor,
		Max: IdealMaxBMI * h / OxfordFactor,
	}, nil
}

// Assess computes the BMI, its category and the ideal weight range.
func Assess(heightCm, weightKg uint16) (*Assessment, error) {
	value, err := Compute(heightCm, weightKg)
	if err != nil {
		return nil, err
	}
	ideal, err := IdealWeightRange(heightCm)
	if err != nil {
		return nil, err
	}
	return &Assessment{
		HeightCm: heightCm,
		WeightKg: weightKg,
		BMI:      value,
		Category: Classify(value),
		Ideal:    ideal,
	}, nil
}
