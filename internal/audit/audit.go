package audit

// Entry represents a single append-only audit log row.
//
// Entries are never mutated or deleted once written.
type Entry struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
	Level   string `json:"level"`
	Action  string `json:"action"`
	// Timestamp is the server-side UTC creation time in ISO-8601 (RFC 3339).
	Timestamp string `json:"timestamp"`
}

// # Severity Levels

const (
	LevelInfo     = "Info"
	LevelDebug    = "Debug"
	LevelWarning  = "Warning"
	LevelError    = "Error"
	LevelCritical = "Critical"
)

// # Action Kinds

const (
	ActionCreate  = "Create"
	ActionUpdate  = "Update"
	ActionDelete  = "Delete"
	ActionDisable = "Disable"
	ActionEnable  = "Enable"
)
