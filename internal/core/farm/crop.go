package farm

import "time"

// HealthStatus values the backend reports for a crop
const (
	HealthGood = "Good"
	HealthFair = "Fair"
	HealthPoor = "Poor"
)

// CropRecord is the farmer's current crop
type CropRecord struct {
	CurrentCrop     string `json:"currentCrop"`
	PlantingDate    string `json:"plantingDate"`
	HarvestEstimate string `json:"harvestEstimate"`
	GrowthStage     string `json:"growthStage"`
	HealthStatus    string `json:"healthStatus"`
}

// LongDate renders an ISO date as "April 15, 2023". Unparseable input is
// returned unchanged.
func LongDate(iso string) string {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return iso
}
