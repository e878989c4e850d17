// Package domain holds the entities persisted and served by the API.
package domain

import "time"

// Report is the outcome of a robot executing a list of commands.
type Report struct {
	ID        int       `json:"id" bson:"_id"`              // Assigned by the report store
	Timestamp time.Time `json:"timestamp" bson:"timestamp"` // Time the execution completed
	Commands  int       `json:"commands" bson:"commands"`   // Number of commands executed
	Result    int       `json:"result" bson:"result"`       // Number of unique cells cleaned
	Duration  float64   `json:"duration" bson:"duration"`   // Execution time in seconds
}
