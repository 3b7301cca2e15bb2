package bmi

// Category is a weight status, ordered from lightest to heaviest.
type Category int

const (
	SevereThinness Category = iota
	InsufficientWeight
	SlightUnderweight
	IdealWeight
	Overweight
	ObesityTypeI
	ObesityTypeII
	ObesityTypeIII
	HypermorbidObesity
)

var categoryLabels = [...]string{
	SevereThinness:     "Severe thinness (severe anorexia)",
	InsufficientWeight: "Insufficient weight (moderate anorexia)",
	SlightUnderweight:  "Slight underweight",
	IdealWeight:        "Ideal weight (normal)",
	Overweight:         "Overweight",
	ObesityTypeI:       "Obesity type I",
	ObesityTypeII:      "Obesity type II",
	ObesityTypeIII:     "Obesity type III",
	HypermorbidObesity: "Hypermorbid Obesity type IV",
}

// Categories lists every category in ascending order.
func Categories() []Category {
	cs := make([]Category, 0, len(categoryLabels))
	for c := range categoryLabels {
		cs = append(cs, Category(c))
	}
	return cs
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryLabels) {
		return "Unknown"
	}
	return categoryLabels[c]
}

// MarshalText renders the label, so JSON and YAML output carry the same
// text as the console report.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Classify maps a BMI to its category. Ranges are half-open [lower, upper)
// except Obesity type III, which includes 45.0. NaN falls through to
// HypermorbidObesity.
func Classify(bmi float64) Category {
	switch {
	case bmi < 16.0:
		return SevereThinness
	case bmi >= 16.0 && bmi < 17.0:
		return InsufficientWeight
	case bmi >= 17.0 && bmi < 18.5:
		return SlightUnderweight
	case bmi >= 18.5 && bmi < 25.0:
		return IdealWeight
	case bmi >= 25.0 && bmi < 30.0:
		return Overweight
	case bmi >= 30.0 && bmi < 35.0:
		return ObesityTypeI
	case bmi >= 35.0 && bmi < 40.0:
		return ObesityTypeII
	case bmi >= 40.0 && bmi <= 45.0:
		return ObesityTypeIII
	default:
		return HypermorbidObesity
	}
}
