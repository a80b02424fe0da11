//go:build unit

package guest_test

import (
	"testing"

	"sweethomes-api/internal/domain/guest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdentity(t *testing.T) {
	t.Run("trims whitespace", func(t *testing.T) {
		ident, err := guest.NewIdentity("  Ada Obi  ", " ada@example.com ", " +2348012345678 ")
		require.NoError(t, err)
		assert.Equal(t, "Ada Obi", ident.Name)
		assert.Equal(t, "ada@example.com", ident.Email)
		assert.Equal(t, "+2348012345678", ident.Phone)
	})

	cases := []struct {
		name  string
		ident [3]string
		errIs error
	}{
		{name: "missing name", ident: [3]string{"", "ada@example.com", "0801"}, errIs: guest.ErrNameRequired},
		{name: "missing email", ident: [3]string{"Ada", "", "0801"}, errIs: guest.ErrEmailRequired},
		{name: "malformed email", ident: [3]string{"Ada", "not-an-email", "0801"}, errIs: guest.ErrInvalidEmail},
		{name: "email without tld", ident: [3]string{"Ada", "ada@example", "0801"}, errIs: guest.ErrInvalidEmail},
		{name: "missing phone", ident: [3]string{"Ada", "ada@example.com", ""}, errIs: guest.ErrPhoneRequired},
		{name: "whitespace only name", ident: [3]string{"   ", "ada@example.com", "0801"}, errIs: guest.ErrNameRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := guest.NewIdentity(tc.ident[0], tc.ident[1], tc.ident[2])
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestIdentityComplete(t *testing.T) {
	full := guest.Identity{Name: "Ada", Email: "ada@example.com", Phone: "0801"}
	assert.True(t, full.Complete())

	noPhone := guest.Identity{Name: "Ada", Email: "ada@example.com"}
	assert.False(t, noPhone.Complete())

	assert.False(t, guest.Identity{}.Complete())
}

func TestEmailAsPassword(t *testing.T) {
	ident := guest.Identity{Name: "Ada", Email: "ada@example.com", Phone: "0801"}

	pw, err := guest.EmailAsPassword{}.Password(ident)
	require.NoError(t, err)
	assert.Equal(t, ident.Email, pw)

	_, err = guest.EmailAsPassword{}.Password(guest.Identity{})
	assert.ErrorIs(t, err, guest.ErrEmailRequired)
}

func TestRandomCredential(t *testing.T) {
	policy := guest.RandomCredential{}

	first, err := policy.Password(guest.Identity{})
	require.NoError(t, err)
	second, err := policy.Password(guest.Identity{})
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}
