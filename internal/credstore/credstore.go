// ba-dashboard/internal/credstore/credstore.go

package credstore

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"ba-dashboard/models"
)

// Verifier checks one login/password pair. Implementations must not reveal
// whether the login or the password was the wrong half: unknown login and
// wrong password both come back false.
type Verifier interface {
	Verify(login, password string) bool
}

// StaticVerifier verifies against a fixed in-memory roster. Logins are
// matched exactly, case-sensitive, no trimming.
type StaticVerifier struct {
	users map[string]models.User
}

// NewStaticVerifier builds a verifier from roster entries. Later duplicates
// of the same login win.
func NewStaticVerifier(users []models.User) *StaticVerifier {
	m := make(map[string]models.User, len(users))
	for _, u := range users {
		m[u.Login] = u
	}
	return &StaticVerifier{users: m}
}

// LoadRoster reads the JSON roster file and returns a verifier over it.
func LoadRoster(path string) (*StaticVerifier, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read roster file: %w", err)
	}
	var users []models.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("could not parse roster file %s: %w", path, err)
	}
	return NewStaticVerifier(users), nil
}

func (v *StaticVerifier) Verify(login, password string) bool {
	u, ok := v.users[login]
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// User returns the roster entry for a verified login, for display purposes.
func (v *StaticVerifier) User(login string) (models.User, bool) {
	u, ok := v.users[login]
	return u, ok
}
