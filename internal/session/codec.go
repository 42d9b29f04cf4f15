// Package session implements the self-contained session token: a JSON
// identity sealed with AES-256-GCM under the payload key, carried as a claim
// inside an HS256-signed JWT under the signing key. Nothing is stored server
// side; signing out only clears the client cookie.
package session

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const nonceSize = 12

// Identity is the payload embedded in a session token.
type Identity struct {
	ID string `json:"id"`
}

// Codec encodes and decodes session tokens. The payload key and signing key
// are independent secrets.
type Codec struct {
	payloadKey [32]byte
	signingKey []byte
	ttl        time.Duration
}

type sessionClaims struct {
	Data string `json:"data"`
	jwt.RegisteredClaims
}

// New builds a codec. Keys of any length are stretched to 32 bytes.
func New(payloadKey, signingKey string, ttl time.Duration) *Codec {
	return &Codec{
		payloadKey: sha256.Sum256([]byte(payloadKey)),
		signingKey: []byte(signingKey),
		ttl:        ttl,
	}
}

// Encode seals the identity and signs the envelope.
func (c *Codec) Encode(identity Identity) (string, error) {
	plaintext, err := json.Marshal(identity)
	if err != nil {
		return "", err
	}

	sealed, err := c.seal(plaintext)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := sessionClaims{
		Data: base64.RawURLEncoding.EncodeToString(sealed),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.signingKey)
}

// Decode verifies the envelope and opens the payload. Every failure mode
// (malformed token, bad signature, expiry, garbage payload) collapses to nil.
func (c *Codec) Decode(token string) *Identity {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.signingKey, nil
	})
	if err != nil || !parsed.Valid {
		return nil
	}

	sealed, err := base64.RawURLEncoding.DecodeString(claims.Data)
	if err != nil {
		return nil
	}

	plaintext, err := c.open(sealed)
	if err != nil {
		return nil
	}

	identity := &Identity{}
	if err := json.Unmarshal(plaintext, identity); err != nil || identity.ID == "" {
		return nil
	}
	return identity
}

func (c *Codec) seal(plaintext []byte) ([]byte, error) {
	gcm, err := c.gcm()
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func (c *Codec) open(sealed []byte) ([]byte, error) {
	gcm, err := c.gcm()
	if err != nil {
		return nil, err
	}

	if len(sealed) < nonceSize {
		return nil, cipherTooShortError{}
	}

	return gcm.Open(nil, sealed[:nonceSize], sealed[nonceSize:], nil)
}

func (c *Codec) gcm() (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.payloadKey[:])
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

type cipherTooShortError struct{}

func (cipherTooShortError) Error() string { return "session: sealed payload too short" }
