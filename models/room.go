package models

import "time"

// Room represents a clinic room with a fixed number of physical beds.
type Room struct {
	ID          string    `bson:"id" json:"id"`                     // Unique room identifier (e.g., UUID)
	Name        string    `bson:"name" json:"name"`                 // Display name (e.g., "Room 12")
	Ward        string    `bson:"ward,omitempty" json:"ward,omitempty"`
	BedCapacity int       `bson:"bed_capacity" json:"bed_capacity"` // Number of physical beds; always >= 1
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
