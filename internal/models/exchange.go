package models

import "time"

// Rates maps ISO currency codes to units per 1 EUR. EUR is always 1.0.
type Rates map[string]float64

type RatesResult struct {
	Success   bool      `json:"success"`
	Rates     Rates     `json:"rates"`
	Cached    bool      `json:"cached"`
	Source    string    `json:"source,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
