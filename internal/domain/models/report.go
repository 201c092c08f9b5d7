package models

import "time"

// Snapshot records the inventory state right after a day has been applied.
// Day 0 is the state the inventory was seeded with.
type Snapshot struct {
	Day       int       `bson:"day" json:"day"`
	Date      time.Time `bson:"date" json:"date"`
	Items     []Item    `bson:"items" json:"items"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// Summary aggregates a snapshot for notifications.
type Summary struct {
	Day          int `json:"day"`
	Total        int `json:"total"`
	Expired      int `json:"expired"`
	AtMaxQuality int `json:"at_max_quality"`
	Worthless    int `json:"worthless"`
}
