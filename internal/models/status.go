package models

import "time"

// StatusCheck is a liveness-probe record left by a client.
type StatusCheck struct {
	ID         string    `db:"id"`
	ClientName string    `db:"client_name"`
	Timestamp  time.Time `db:"timestamp"`
}
