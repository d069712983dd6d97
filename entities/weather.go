package entities

import "time"

// WeatherSnapshot caches the last external reading. A single row (fixed key)
// is kept; freshness is judged against FetchedAt.
type WeatherSnapshot struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Temperature int       `json:"temperature"` // °C
	Condition   string    `json:"condition"`
	Icon        string    `json:"icon"`
	Location    string    `json:"location"`
	Source      string    `json:"source"` // open-meteo|wttr.in
	FetchedAt   time.Time `json:"fetched_at"`
}
