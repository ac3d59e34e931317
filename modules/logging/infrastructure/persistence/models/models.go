package models

import "time"

type ImportLog struct {
	ID        uint
	Actor     string
	Action    string
	Module    string
	Details   string
	CreatedAt time.Time
}
