package models

// Category is the semantic purpose of a worksheet.
type Category string

const (
	CategoryDevice    Category = "device"
	CategoryAccounts  Category = "accounts"
	CategoryMessages  Category = "messages"
	CategoryContacts  Category = "contacts"
	CategoryLocations Category = "locations"
	CategoryApps      Category = "apps"
	CategoryCalls     Category = "calls"
	CategoryWeb       Category = "web"
)

// Categories lists every category in report order.
var Categories = []Category{
	CategoryDevice,
	CategoryAccounts,
	CategoryMessages,
	CategoryContacts,
	CategoryLocations,
	CategoryApps,
	CategoryCalls,
	CategoryWeb,
}

// Valid reports whether c belongs to the closed category set.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Role is the semantic purpose of a column within a table.
type Role string

const (
	RoleDate   Role = "date"
	RoleBody   Role = "body"
	RoleFrom   Role = "from"
	RoleTo     Role = "to"
	RoleLat    Role = "lat"
	RoleLon    Role = "lon"
	RoleName   Role = "name"
	RoleNumber Role = "number"
	RoleIMEI   Role = "imei"
	RoleBrand  Role = "brand"
	RoleModel  Role = "model"
	RoleUser   Role = "user"
	RolePath   Role = "path"
)

// Roles lists every role in display order.
var Roles = []Role{
	RoleDate, RoleFrom, RoleTo, RoleBody, RoleName, RoleNumber,
	RoleLat, RoleLon, RoleIMEI, RoleBrand, RoleModel, RoleUser, RolePath,
}

// CategoryMapping maps a category to the worksheet holding it.
// A category that was not found is absent, never mapped to "".
type CategoryMapping map[Category]string

// Sheet returns the sheet mapped to c and whether one was found.
func (m CategoryMapping) Sheet(c Category) (string, bool) {
	name, ok := m[c]
	return name, ok
}

// ColumnRef identifies a column by position and label.
// Labels may repeat within a table, so Index is authoritative.
type ColumnRef struct {
	// Index is the 0-based column position.
	Index int `json:"index"`
	// Label is the header text of the column.
	Label string `json:"label"`
}

// FieldMapping maps a role to the column playing it in one table.
type FieldMapping map[Role]ColumnRef

// Lookup returns the column mapped to r and whether one was found.
func (m FieldMapping) Lookup(r Role) (ColumnRef, bool) {
	ref, ok := m[r]
	return ref, ok
}
