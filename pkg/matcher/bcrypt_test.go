package matcher

import (
	"testing"

	"github.com/quizkey/quizkey/pkg/types"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

// Cost-4 vectors so the real-bcrypt path stays fast under go test.
const (
	parisHash  = "$2b$04$abcdefghijklmnopqrstuu.EASjTYszt4GBd0XifLuPjXx25iIEXa"
	romeHash   = "$2b$04$bcdefghijklmnopqrstuvu6JvlIoAWo9iORZF1hLTgZfHzua2Kz96"
	londonHash = "$2b$04$cdefghijklmnopqrstuvwuiqbmaG03Wnpiz3LjletIPdw8zxXZLtm"
)

func TestBcryptVerifier_Verify(t *testing.T) {
	v := BcryptVerifier{}

	assert.True(t, v.Verify(parisHash, "Paris"))
	assert.True(t, v.Verify(romeHash, "Rome"))
	assert.True(t, v.Verify(londonHash, "London"))
	assert.False(t, v.Verify(parisHash, "Rome"))
	assert.False(t, v.Verify(londonHash, "Paris"))
	assert.False(t, v.Verify(parisHash, ""))
}

func TestBcryptVerifier_MalformedHashIsNoMatch(t *testing.T) {
	v := BcryptVerifier{}

	malformed := []string{
		"",
		"not-a-hash",
		"$2b$04$tooshort",
		"$9z$04$abcdefghijklmnopqrstuu.EASjTYszt4GBd0XifLuPjXx25iIEXa",
	}
	for _, h := range malformed {
		assert.False(t, v.Verify(h, "Paris"), "hash %q", h)
	}
}

func TestBcryptVerifier_AcceptsFreshlyGeneratedHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("blue whale"), bcrypt.MinCost)
	assert.NoError(t, err)

	v := BcryptVerifier{}
	assert.True(t, v.Verify(string(hash), "blue whale"))
	assert.False(t, v.Verify(string(hash), "blue whal"))
}

func TestFindCorrectOption_RealBcrypt(t *testing.T) {
	m := New()

	q := &types.Question{
		Option1: strptr("Rome"),
		Option2: strptr("Paris"),
		Answer:  parisHash,
	}

	got, ok := m.FindCorrectOption(q)
	assert.True(t, ok)
	assert.Equal(t, 2, got)

	// Malformed stored hash folds into no-match, never an error.
	q.Answer = "garbage"
	_, ok = m.FindCorrectOption(q)
	assert.False(t, ok)
}
