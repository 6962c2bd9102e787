package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table       string
	ID          string
	Username    string
	Email       string
	Password    string
	FullName    string
	Role        string
	IsActive    string
	CreatedAt   string
	UpdatedAt   string
	LastLoginAt string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:       "users.account",
	ID:          "id",
	Username:    "username",
	Email:       "email",
	Password:    "passwordhash",
	FullName:    "fullname",
	Role:        "role",
	IsActive:    "isactive",
	CreatedAt:   "createdat",
	UpdatedAt:   "updatedat",
	LastLoginAt: "lastloginat",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Username, t.Email, t.Password, t.FullName, t.Role,
		t.IsActive, t.CreatedAt, t.UpdatedAt, t.LastLoginAt,
	}
}
