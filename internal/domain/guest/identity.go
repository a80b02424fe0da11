package guest

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"regexp"
	"strings"
)

var (
	ErrNameRequired  = errors.New("name is required")
	ErrEmailRequired = errors.New("email is required")
	ErrInvalidEmail  = errors.New("invalid email format")
	ErrPhoneRequired = errors.New("phone is required")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Identity is the contact block attached to reservations and used to
// provision guest accounts. A session carries one of these so the booking
// workflow never reads identity from ambient state.
type Identity struct {
	Name  string
	Email string
	Phone string
}

func NewIdentity(name, email, phone string) (Identity, error) {
	ident := Identity{
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
		Phone: strings.TrimSpace(phone),
	}
	if err := ident.Validate(); err != nil {
		return Identity{}, err
	}
	return ident, nil
}

func (i Identity) Validate() error {
	if i.Name == "" {
		return ErrNameRequired
	}
	if i.Email == "" {
		return ErrEmailRequired
	}
	if !emailRegex.MatchString(i.Email) {
		return ErrInvalidEmail
	}
	if i.Phone == "" {
		return ErrPhoneRequired
	}
	return nil
}

// Complete reports whether every field a reservation submission needs is
// populated. Sessions missing email or phone must not reach the booking API.
func (i Identity) Complete() bool {
	return i.Name != "" && i.Email != "" && i.Phone != ""
}

// CredentialPolicy decides the password used when auto-provisioning a guest
// account during booking.
type CredentialPolicy interface {
	Password(ident Identity) (string, error)
}

// EmailAsPassword sets the password equal to the guest's email address so the
// guest can log in later without a separate credential. This is NOT a sound
// credential scheme; it is kept as an isolated policy so it can be replaced
// without touching the workflow.
type EmailAsPassword struct{}

func (EmailAsPassword) Password(ident Identity) (string, error) {
	if ident.Email == "" {
		return "", ErrEmailRequired
	}
	return ident.Email, nil
}

// RandomCredential generates an unguessable password. Guests booking under
// this policy need a reset link to log in later.
type RandomCredential struct {
	Bytes int
}

func (r RandomCredential) Password(_ Identity) (string, error) {
	n := r.Bytes
	if n <= 0 {
		n = 24
	}
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
