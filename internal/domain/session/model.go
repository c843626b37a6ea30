package session

import (
	"fmt"
	"time"
)

// Session is one training session for one player on one calendar date.
// Created once during ingestion or by administrative entry and never updated
// afterward; TotalPitches is a derived cache kept for display only, the
// authoritative count is the child pitch rows.
type Session struct {
	ID           int64
	PlayerID     int64
	CoachID      *int64
	DataSourceID int64
	Date         time.Time
	Type         string
	Location     string
	Focus        string
	Notes        string
	TotalPitches int
}

func (s Session) Validate() error {
	if s.PlayerID <= 0 {
		return fmt.Errorf("session player id is required")
	}
	if s.DataSourceID <= 0 {
		return fmt.Errorf("session data source id is required")
	}
	if s.Date.IsZero() {
		return fmt.Errorf("session date is required")
	}
	if s.Type == "" {
		return fmt.Errorf("session type is required")
	}
	return nil
}
