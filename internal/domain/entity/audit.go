package entity

import "time"

// Audit outcomes.
const (
	AuditOK     = "ok"
	AuditFailed = "failed"
)

// AuditEntry is one line of the lifecycle audit trail: which operation ran,
// the key it ran against (localizer, id card or room key), and how it ended.
// The trail is observability only; lifecycle decisions never read it.
type AuditEntry struct {
	ID        uint
	Operation string
	Key       string
	Outcome   string
	Detail    string
	CreatedAt time.Time
}
