package model

import "time"

// Session is a login record in one of the two session tables. Identity is the
// employee username or the customer phone depending on the table.
type Session struct {
	Token    string    `db:"token" json:"token"`
	Identity string    `db:"identity" json:"identity"`
	LoginAt  time.Time `db:"login_at" json:"login_at"`
}
