package schema

// SystemAuditLogTable represents the 'system.auditlog' table
type SystemAuditLogTable struct {
	Table     string
	ID        string
	Message   string
	Level     string
	Action    string
	Timestamp string
}

// SystemAuditLog is the schema definition for system.auditlog
var SystemAuditLog = SystemAuditLogTable{
	Table:     "system.auditlog",
	ID:        "id",
	Message:   "message",
	Level:     "level",
	Action:    "action",
	Timestamp: "timestamp",
}
