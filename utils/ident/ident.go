package ident

import (
	"strings"

	"github.com/google/uuid"
)

// New returns a short prefixed id such as "car-1f2a3b4c". Eight hex chars of
// a fresh uuid keep ids readable in dashboards and CSV exports while staying
// unique in practice for a single dealership.
func New(prefix string) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + hex[:8]
}
