package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testObs = Observation{
	Latitude:    51.5085,
	Longitude:   -0.1257,
	Timezone:    3600,
	ObservedAt:  1717680000, // 2024-06-06 13:20:00 UTC
	Temperature: 15.2,
	FeelsLike:   14.8,
	Pressure:    1012,
	Humidity:    60,
	Visibility:  10000,
	WindSpeed:   4.12,
	Description: "scattered clouds",
}

// jsonKeys marshals a report and returns its top-level JSON object, so shape
// tests can assert exactly which keys are present.
func jsonKeys(t *testing.T, v any) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	return m
}

func TestProject_BasicShape(t *testing.T) {
	report := Project(testObs, DetailNone)
	assert.Equal(t, DetailNone, report.Detail())

	m := jsonKeys(t, report)
	require.Len(t, m, 3)
	assert.Equal(t, 15.2, m["temperature"])
	assert.Equal(t, 14.8, m["feels_like"])
	assert.Equal(t, "scattered clouds", m["description"])
}

func TestProject_StandardShape(t *testing.T) {
	report := Project(testObs, DetailPartial)
	assert.Equal(t, DetailPartial, report.Detail())

	m := jsonKeys(t, report)
	require.Len(t, m, 6)
	assert.Equal(t, 51.5085, m["latitude"])
	assert.Equal(t, -0.1257, m["longitude"])
	assert.Equal(t, "2024-06-06 13:20:00 UTC", m["date"])
	assert.Equal(t, 15.2, m["temperature"])
	assert.Equal(t, 14.8, m["feels_like"])
	assert.Equal(t, "scattered clouds", m["description"])
}

func TestProject_FullShape(t *testing.T) {
	report := Project(testObs, DetailFull)
	assert.Equal(t, DetailFull, report.Detail())

	m := jsonKeys(t, report)
	require.Len(t, m, 11)
	assert.Equal(t, 51.5085, m["latitude"])
	assert.Equal(t, -0.1257, m["longitude"])
	assert.Equal(t, float64(3600), m["timezone"])
	assert.Equal(t, "2024-06-06 13:20:00 UTC", m["date"])
	assert.Equal(t, 15.2, m["temperature"])
	assert.Equal(t, 14.8, m["feels_like"])
	assert.Equal(t, float64(1012), m["pressure"])
	assert.Equal(t, float64(60), m["humidity"])
	assert.Equal(t, float64(10000), m["visibility"])
	assert.Equal(t, 4.12, m["wind_speed"])
	assert.Equal(t, "scattered clouds", m["description"])
}

func TestFormatObservationTime(t *testing.T) {
	assert.Equal(t, "1970-01-01 00:00:00 UTC", FormatObservationTime(0))
	assert.Equal(t, "2024-06-06 13:20:00 UTC", FormatObservationTime(1717680000))
}

func TestFields_OrderAndValues(t *testing.T) {
	fields := Project(testObs, DetailFull).Fields()
	require.Len(t, fields, 11)

	labels := make([]string, len(fields))
	for i, f := range fields {
		labels[i] = f.Label
	}
	assert.Equal(t, []string{
		"latitude", "longitude", "timezone", "date", "temperature",
		"feels_like", "pressure", "humidity", "visibility", "wind_speed",
		"description",
	}, labels)

	assert.Equal(t, Field{"temperature", "15.2"}, fields[4])
	assert.Equal(t, Field{"humidity", "60"}, fields[7])
	assert.Equal(t, Field{"description", "scattered clouds"}, fields[10])
}

func TestFields_BasicCount(t *testing.T) {
	assert.Len(t, Project(testObs, DetailNone).Fields(), 3)
	assert.Len(t, Project(testObs, DetailPartial).Fields(), 6)
}

func TestLookupError_Message(t *testing.T) {
	err := &LookupError{City: "atlantis"}
	assert.Equal(t, "No weather info for atlantis", err.Error())
}
