package mockbackend

import (
	"fmt"
	"net/http"
	"strconv"

	"farmwatch.app/internal/core/farm"
	"github.com/gin-gonic/gin"
)

func (s *Server) getSoil(c *gin.Context) {
	c.JSON(http.StatusOK, s.soil)
}

func (s *Server) getCrop(c *gin.Context) {
	c.JSON(http.StatusOK, s.crop)
}

// getSensors pages the sensor list the way a Spring Data endpoint does
func (s *Server) getSensors(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		c.JSON(http.StatusBadRequest, message("page must be a non-negative number"))
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "20"))
	if err != nil || size < 1 {
		c.JSON(http.StatusBadRequest, message("size must be a positive number"))
		return
	}

	c.JSON(http.StatusOK, paginate(s.sensors, page, size))
}

func paginate(sensors []farm.SensorRecord, page, size int) farm.SensorPage {
	total := len(sensors)
	totalPages := (total + size - 1) / size

	start := page * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	content := make([]farm.SensorRecord, end-start)
	copy(content, sensors[start:end])

	return farm.SensorPage{
		Content:       content,
		TotalPages:    totalPages,
		TotalElements: int64(total),
		Size:          size,
		Number:        page,
		First:         page == 0,
		Last:          page >= totalPages-1,
		Empty:         len(content) == 0,
	}
}

func generateSensors(n int) []farm.SensorRecord {
	sensors := make([]farm.SensorRecord, 0, n)
	for i := 1; i <= n; i++ {
		status := farm.SensorStatusActive
		if i%4 == 0 {
			status = "INACTIVE"
		}
		sensors = append(sensors, farm.SensorRecord{
			ID:       farm.NumberID(int64(i)),
			Name:     fmt.Sprintf("Soil Probe %02d", i),
			Location: fmt.Sprintf("Field %c", 'A'+rune((i-1)%5)),
			Status:   status,
		})
	}
	return sensors
}
