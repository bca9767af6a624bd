// Package farm holds the records passed between the API client and the
// screens: the normalized session, weather snapshot and forecast, soil,
// crop and sensor readings. Nothing here is persisted.
package farm
