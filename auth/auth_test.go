package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	req := require.New(t)
	password := "MySuperSecretPassw0rd!"

	hash, err := HashPassword(password)
	req.NoError(err)
	req.True(strings.HasPrefix(hash, "$argon2id$"))

	match, err := ComparePassword(password, hash)
	req.NoError(err)
	req.True(match)

	// wrong password must not match
	match, err = ComparePassword("WrongPassword", hash)
	req.NoError(err)
	req.False(match)
}

func TestRegistrationValidation(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr bool
	}{
		{"Valid request", RegisterRequest{"alice", "alice@example.com", "ComplexPass123!"}, false},
		{"Invalid email", RegisterRequest{"alice", "notanemail", "ComplexPass123!"}, true},
		{"Username too short", RegisterRequest{"al", "alice@example.com", "ComplexPass123!"}, true},
		{"Username with spaces", RegisterRequest{"al ice", "alice@example.com", "ComplexPass123!"}, true},
		{"Password too short", RegisterRequest{"alice", "alice@example.com", "Short1!"}, true},
		{"Missing digit", RegisterRequest{"alice", "alice@example.com", "NoDigitPassword!"}, true},
		{"Missing special char", RegisterRequest{"alice", "alice@example.com", "NoSpecialChar123"}, true},
		{"Missing uppercase", RegisterRequest{"alice", "alice@example.com", "nouppercase123!"}, true},
		{"Password too long (edge case)", RegisterRequest{"alice", "alice@example.com", strings.Repeat("a", 73)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegister(tt.req)
			if tt.wantErr {
				req.Error(err)
			} else {
				req.NoError(err)
			}
		})
	}
}

func TestTokenRoundTrip(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken("alice", []string{"user"}, time.Hour)
	req.NoError(err)
	req.NotEmpty(token)

	claims, err := ValidateToken(token)
	req.NoError(err)
	req.Equal("alice", claims.Username)
	req.Equal([]string{"user"}, claims.Roles)
	req.Equal("channel-lab", claims.Issuer)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken("alice", []string{"user"}, -time.Minute)
	req.NoError(err)

	_, err = ValidateToken(token)
	req.Error(err)
}

// BenchmarkHashPassword measures the CPU/RAM cost of a hash (sizing matters
// when registration spikes).
func BenchmarkHashPassword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = HashPassword("A-very-long-and-complex-password-for-bench-123!")
	}
}
