package farm

// SensorStatusActive is the status of a reporting sensor
const SensorStatusActive = "ACTIVE"

// Default paging for the sensor list
const (
	DefaultSensorPage = 0
	DefaultSensorSize = 10
)

// SensorRecord is one field sensor. Status is kept verbatim.
type SensorRecord struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Status   string `json:"status"`
}

// IsActive reports whether the sensor is reporting
func (s SensorRecord) IsActive() bool {
	return s.Status == SensorStatusActive
}

// SensorPage is the paginated envelope returned by the sensor endpoint
type SensorPage struct {
	Content       []SensorRecord `json:"content"`
	TotalPages    int            `json:"totalPages"`
	TotalElements int64          `json:"totalElements"`
	Size          int            `json:"size"`
	Number        int            `json:"number"`
	First         bool           `json:"first"`
	Last          bool           `json:"last"`
	Empty         bool           `json:"empty"`
}

// NormalizePaging applies the default page and size to out-of-range values
func NormalizePaging(page, size int) (int, int) {
	if page < 0 {
		page = DefaultSensorPage
	}
	if size <= 0 {
		size = DefaultSensorSize
	}
	return page, size
}
