// ba-dashboard/models/user.go

package models

// User is one entry of the fixed login roster. The roster is maintained in a
// JSON file outside the repository; passwords are stored as bcrypt hashes,
// never in source.
type User struct {
	Login        string `json:"login"`
	PasswordHash string `json:"passwordHash"`
	FullName     string `json:"fullName"`
}
