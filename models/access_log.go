// ba-dashboard/models/access_log.go

package models

import "gorm.io/gorm"

// AccessStatus is the outcome recorded for one authentication event.
type AccessStatus string

const (
	StatusSuccess AccessStatus = "SUCCESS"
	StatusFailed  AccessStatus = "FAILED"
	StatusLogout  AccessStatus = "LOGOUT"
)

// TimeLayout is the timestamp format of the access log, matching the layout
// the shared spreadsheet has always used.
const TimeLayout = "2006-01-02 15:04:05"

// AccessLogEntry is one row of the shared access log. Entries are append-only
// and kept newest-first; duplicates are allowed and nothing ever mutates or
// deletes an entry.
type AccessLogEntry struct {
	LoginTime string       `json:"login_time"`
	Username  string       `json:"username"`
	Status    AccessStatus `json:"status"`
}

// AccessLogRow is the database form of AccessLogEntry, used by the Postgres
// log store.
type AccessLogRow struct {
	gorm.Model
	LoginTime string       `json:"loginTime" gorm:"not null"`
	Username  string       `json:"username" gorm:"not null;index"`
	Status    AccessStatus `json:"status" gorm:"not null"`
}

func (AccessLogRow) TableName() string { return "access_logs" }

// Entry converts a database row back to the wire form.
func (r AccessLogRow) Entry() AccessLogEntry {
	return AccessLogEntry{LoginTime: r.LoginTime, Username: r.Username, Status: r.Status}
}
