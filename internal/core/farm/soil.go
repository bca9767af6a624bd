package farm

// SoilReading is the latest soil snapshot for the farmer's field.
// Fractions are in [0,1]; PH is in [0,14].
type SoilReading struct {
	Moisture   float64   `json:"moisture"`
	PH         float64   `json:"ph"`
	Nutrients  Nutrients `json:"nutrients"`
	Resistance float64   `json:"resistance"`
}

// Nutrients holds the NPK fractions
type Nutrients struct {
	Nitrogen   float64 `json:"nitrogen"`
	Phosphorus float64 `json:"phosphorus"`
	Potassium  float64 `json:"potassium"`
}

// ResistanceBand describes how hard the soil is on roots
type ResistanceBand string

const (
	ResistanceLow    ResistanceBand = "Low resistance - Good for planting"
	ResistanceMedium ResistanceBand = "Medium resistance - Moderate difficulty for roots"
	ResistanceHigh   ResistanceBand = "High resistance - May impede root growth"
)

// Band classifies the resistance fraction
func (s SoilReading) Band() ResistanceBand {
	switch {
	case s.Resistance < 0.3:
		return ResistanceLow
	case s.Resistance < 0.5:
		return ResistanceMedium
	default:
		return ResistanceHigh
	}
}

// Percent renders a fraction as a whole percentage for display
func Percent(fraction float64) int {
	return RoundHalfUp(fraction * 100)
}
