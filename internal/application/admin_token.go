package application

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	ErrInvalidTokenHash         = errors.New("application: invalid admin token hash format")
	ErrIncompatibleTokenVersion = errors.New("application: incompatible admin token hash version")
)

// Argon2idParams tunes the key derivation used for admin tokens.
type Argon2idParams struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

var DefaultArgon2idParams = Argon2idParams{
	Memory:      64 * 1024,
	Iterations:  3,
	Parallelism: 2,
	SaltLength:  16,
	KeyLength:   32,
}

// HashAdminToken derives an encoded argon2id hash suitable for the
// admin_token_hash setting.
func HashAdminToken(token string, params Argon2idParams) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "", fmt.Errorf("admin token must not be empty")
	}
	if err := params.validate(); err != nil {
		return "", fmt.Errorf("argon2id parameters: %w", err)
	}

	salt := make([]byte, params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key := argon2.IDKey([]byte(token), salt, params.Iterations, params.Memory, params.Parallelism, params.KeyLength)

	// $argon2id$v=19$m=...,t=...,p=...$salt$key
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, params.Memory, params.Iterations, params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// validate rejects parameters argon2.IDKey cannot derive a key from.
func (p Argon2idParams) validate() error {
	switch {
	case p.SaltLength == 0:
		return errors.New("salt is empty")
	case p.KeyLength == 0:
		return errors.New("key is empty")
	case p.Iterations < 1:
		return errors.New("iterations must be at least 1")
	case p.Parallelism < 1:
		return errors.New("parallelism must be at least 1")
	case p.Memory < 8*uint32(p.Parallelism):
		return fmt.Errorf("memory must be at least %d KiB", 8*uint32(p.Parallelism))
	}
	return nil
}

// AdminGuard checks presented tokens against a stored hash.
type AdminGuard struct {
	salt   []byte
	key    []byte
	params Argon2idParams
}

// NewAdminGuard parses an encoded hash produced by HashAdminToken.
func NewAdminGuard(encoded string) (*AdminGuard, error) {
	parts := strings.Split(strings.TrimSpace(encoded), "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, ErrInvalidTokenHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTokenHash, err)
	}
	if version != argon2.Version {
		return nil, ErrIncompatibleTokenVersion
	}

	var params Argon2idParams
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Iterations, &params.Parallelism); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTokenHash, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTokenHash, err)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTokenHash, err)
	}
	params.SaltLength = uint32(len(salt))
	params.KeyLength = uint32(len(key))
	if err := params.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTokenHash, err)
	}

	return &AdminGuard{salt: salt, key: key, params: params}, nil
}

// Verify returns ErrUnauthorized unless token matches the stored hash.
func (g *AdminGuard) Verify(token string) error {
	if g == nil || token == "" {
		return ErrUnauthorized
	}
	candidate := argon2.IDKey([]byte(token), g.salt, g.params.Iterations, g.params.Memory, g.params.Parallelism, g.params.KeyLength)
	if subtle.ConstantTimeCompare(g.key, candidate) == 1 {
		return nil
	}
	return ErrUnauthorized
}
