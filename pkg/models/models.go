package models

import "time"

// FlightRecord is one row of historical international flight count data:
// total flights reported for a given date, route, and carrier combination.
type FlightRecord struct {
	Date         time.Time `json:"date"`
	Origin       string    `json:"origin_airport"`
	Destination  string    `json:"destination_airport"`
	Airline      string    `json:"airline_code"`
	CarrierGroup int       `json:"carrier_group"`
	FlightType   string    `json:"flight_type"`
	Scheduled    bool      `json:"scheduled"`
	Charter      bool      `json:"charter"`
	Total        float64   `json:"total_flights"`
}

// MonthlyPoint is the aggregated flight total for one calendar month.
// Month is the month-end date used as the bucket key.
type MonthlyPoint struct {
	Month time.Time `json:"month"`
	Total float64   `json:"total"`
}

// ForecastPoint is a model output for one period: a point estimate
// surrounded by its prediction interval.
type ForecastPoint struct {
	Date     time.Time `json:"date"`
	Estimate float64   `json:"estimate"`
	Lower    float64   `json:"lower"`
	Upper    float64   `json:"upper"`
}
