package mockbackend

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const forecastDays = 7

// weather codes cycled through the daily series
var dailyCodes = []int{0, 2, 3, 61, 95, 71, 45}

type forecastCurrent struct {
	Temperature   float64 `json:"temperature_2m"`
	Humidity      float64 `json:"relative_humidity_2m"`
	Precipitation float64 `json:"precipitation"`
	WeatherCode   int     `json:"weather_code"`
	WindSpeed     float64 `json:"wind_speed_10m"`
}

type forecastDaily struct {
	Time           []string  `json:"time"`
	TemperatureMax []float64 `json:"temperature_2m_max"`
	WeatherCode    []int     `json:"weather_code"`
}

type forecastResponse struct {
	Latitude  float64         `json:"latitude"`
	Longitude float64         `json:"longitude"`
	Timezone  string          `json:"timezone"`
	Current   forecastCurrent `json:"current"`
	Daily     forecastDaily   `json:"daily"`
}

func forecastError(reason string) gin.H {
	return gin.H{"error": true, "reason": reason}
}

// forecast answers like the public forecast endpoint. Values are derived
// from the coordinates so different farms see different weather.
func (s *Server) forecast(c *gin.Context) {
	latitude, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil || latitude < -90 || latitude > 90 {
		c.JSON(http.StatusBadRequest, forecastError("Latitude must be in range of -90 to 90°."))
		return
	}
	longitude, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil || longitude < -180 || longitude > 180 {
		c.JSON(http.StatusBadRequest, forecastError("Longitude must be in range of -180 to 180°."))
		return
	}

	seed := int(math.Abs(latitude*100)+math.Abs(longitude*10)) % len(dailyCodes)
	base := 22 + math.Mod(math.Abs(latitude*7+longitude), 8)

	daily := forecastDaily{
		Time:           make([]string, 0, forecastDays),
		TemperatureMax: make([]float64, 0, forecastDays),
		WeatherCode:    make([]int, 0, forecastDays),
	}
	today := s.today()
	for i := 0; i < forecastDays; i++ {
		daily.Time = append(daily.Time, today.AddDate(0, 0, i).Format("2006-01-02"))
		daily.TemperatureMax = append(daily.TemperatureMax, math.Round((base+float64(i%3)*1.5)*10)/10)
		daily.WeatherCode = append(daily.WeatherCode, dailyCodes[(seed+i)%len(dailyCodes)])
	}

	c.JSON(http.StatusOK, forecastResponse{
		Latitude:  latitude,
		Longitude: longitude,
		Timezone:  c.DefaultQuery("timezone", "GMT"),
		Current: forecastCurrent{
			Temperature:   math.Round(base*10) / 10,
			Humidity:      65,
			Precipitation: 0.2,
			WeatherCode:   dailyCodes[seed],
			WindSpeed:     11.5,
		},
		Daily: daily,
	})
}
