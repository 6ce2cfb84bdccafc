package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fastArgon2 = Argon2idParams{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 8, KeyLength: 16}

func TestAdminGuard(t *testing.T) {
	t.Parallel()

	encoded, err := HashAdminToken("s3cret", fastArgon2)
	require.NoError(t, err)

	guard, err := NewAdminGuard(encoded)
	require.NoError(t, err)

	assert.NoError(t, guard.Verify("s3cret"))
	assert.ErrorIs(t, guard.Verify("wrong"), ErrUnauthorized)
	assert.ErrorIs(t, guard.Verify(""), ErrUnauthorized)

	var nilGuard *AdminGuard
	assert.ErrorIs(t, nilGuard.Verify("s3cret"), ErrUnauthorized)
}

func TestNewAdminGuard_RejectsMalformedHashes(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"empty":              "",
		"wrong scheme":       "$bcrypt$v=19$m=1024,t=1,p=1$c2FsdA$a2V5",
		"bad params":         "$argon2id$v=19$memory$c2FsdA$a2V5",
		"bad salt":           "$argon2id$v=19$m=1024,t=1,p=1$!!$a2V5",
		"empty salt":         "$argon2id$v=19$m=1024,t=1,p=1$$a2V5",
		"empty key":          "$argon2id$v=19$m=65536,t=3,p=2$c2FsdHNhbHRzYWx0c2FsdA$",
		"zero rounds":        "$argon2id$v=19$m=65536,t=0,p=2$c2FsdHNhbHRzYWx0c2FsdA$a2V5",
		"zero threads":       "$argon2id$v=19$m=65536,t=3,p=0$c2FsdHNhbHRzYWx0c2FsdA$a2V5",
		"zero memory":        "$argon2id$v=19$m=0,t=3,p=1$c2FsdHNhbHRzYWx0c2FsdA$a2V5",
		"memory below lanes": "$argon2id$v=19$m=15,t=3,p=2$c2FsdHNhbHRzYWx0c2FsdA$a2V5",
	}
	for name, encoded := range cases {
		_, err := NewAdminGuard(encoded)
		assert.ErrorIs(t, err, ErrInvalidTokenHash, name)
	}

	_, err := NewAdminGuard("$argon2id$v=16$m=1024,t=1,p=1$c2FsdA$a2V5")
	assert.ErrorIs(t, err, ErrIncompatibleTokenVersion)

	_, err = HashAdminToken("  ", fastArgon2)
	assert.Error(t, err)

	_, err = HashAdminToken("s3cret", Argon2idParams{Memory: 1024, Parallelism: 1, SaltLength: 8, KeyLength: 16})
	assert.Error(t, err, "zero iterations")
}

func TestAdminGuard_VerifyNeverPanicsOnParsedHash(t *testing.T) {
	t.Parallel()

	guard, err := NewAdminGuard("$argon2id$v=19$m=8,t=1,p=1$c2FsdHNhbHQ$a2V5a2V5a2V5a2V5")
	require.NoError(t, err)
	assert.NotPanics(t, func() {
		assert.ErrorIs(t, guard.Verify("anything-at-all"), ErrUnauthorized)
	})
}
