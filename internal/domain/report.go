package domain

import (
	"strconv"
	"time"
)

// Observation is the full set of fields extracted from a successful provider
// response, before projection down to a report shape.
type Observation struct {
	Latitude    float64
	Longitude   float64
	Timezone    int   // UTC offset in seconds
	ObservedAt  int64 // epoch seconds
	Temperature float64
	FeelsLike   float64
	Pressure    int
	Humidity    int
	Visibility  int
	WindSpeed   float64
	Description string
}

// Field is one rendered report entry, in display order.
type Field struct {
	Label string
	Value string
}

// Report is one of the three fixed-shape projections of an Observation.
type Report interface {
	// Detail identifies which shape this report is.
	Detail() Detail
	// Fields returns label/value pairs in display order for page rendering.
	Fields() []Field
}

// BasicReport is the no-suffix projection.
type BasicReport struct {
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Description string  `json:"description"`
}

// StandardReport is the "+" projection: basic fields plus coordinates and
// the observation date.
type StandardReport struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Date        string  `json:"date"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Description string  `json:"description"`
}

// FullReport is the "++" projection: everything the provider gives us.
type FullReport struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timezone    int     `json:"timezone"`
	Date        string  `json:"date"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Pressure    int     `json:"pressure"`
	Humidity    int     `json:"humidity"`
	Visibility  int     `json:"visibility"`
	WindSpeed   float64 `json:"wind_speed"`
	Description string  `json:"description"`
}

// Project maps an observation onto the report shape for the given detail level.
func Project(obs Observation, detail Detail) Report {
	switch detail {
	case DetailPartial:
		return StandardReport{
			Latitude:    obs.Latitude,
			Longitude:   obs.Longitude,
			Date:        FormatObservationTime(obs.ObservedAt),
			Temperature: obs.Temperature,
			FeelsLike:   obs.FeelsLike,
			Description: obs.Description,
		}
	case DetailFull:
		return FullReport{
			Latitude:    obs.Latitude,
			Longitude:   obs.Longitude,
			Timezone:    obs.Timezone,
			Date:        FormatObservationTime(obs.ObservedAt),
			Temperature: obs.Temperature,
			FeelsLike:   obs.FeelsLike,
			Pressure:    obs.Pressure,
			Humidity:    obs.Humidity,
			Visibility:  obs.Visibility,
			WindSpeed:   obs.WindSpeed,
			Description: obs.Description,
		}
	default:
		return BasicReport{
			Temperature: obs.Temperature,
			FeelsLike:   obs.FeelsLike,
			Description: obs.Description,
		}
	}
}

// FormatObservationTime renders provider epoch seconds as
// "YYYY-MM-DD HH:MM:SS UTC".
func FormatObservationTime(epoch int64) string {
	return time.Unix(epoch, 0).UTC().Format("2006-01-02 15:04:05") + " UTC"
}

func (BasicReport) Detail() Detail    { return DetailNone }
func (StandardReport) Detail() Detail { return DetailPartial }
func (FullReport) Detail() Detail     { return DetailFull }

func (r BasicReport) Fields() []Field {
	return []Field{
		{"temperature", fmtFloat(r.Temperature)},
		{"feels_like", fmtFloat(r.FeelsLike)},
		{"description", r.Description},
	}
}

func (r StandardReport) Fields() []Field {
	return []Field{
		{"latitude", fmtFloat(r.Latitude)},
		{"longitude", fmtFloat(r.Longitude)},
		{"date", r.Date},
		{"temperature", fmtFloat(r.Temperature)},
		{"feels_like", fmtFloat(r.FeelsLike)},
		{"description", r.Description},
	}
}

func (r FullReport) Fields() []Field {
	return []Field{
		{"latitude", fmtFloat(r.Latitude)},
		{"longitude", fmtFloat(r.Longitude)},
		{"timezone", strconv.Itoa(r.Timezone)},
		{"date", r.Date},
		{"temperature", fmtFloat(r.Temperature)},
		{"feels_like", fmtFloat(r.FeelsLike)},
		{"pressure", strconv.Itoa(r.Pressure)},
		{"humidity", strconv.Itoa(r.Humidity)},
		{"visibility", strconv.Itoa(r.Visibility)},
		{"wind_speed", fmtFloat(r.WindSpeed)},
		{"description", r.Description},
	}
}

// fmtFloat renders a float the way encoding/json would: no trailing zeros,
// no exponent for ordinary magnitudes.
func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
