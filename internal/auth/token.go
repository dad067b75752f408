package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const CookieName = "auth_token"

// Payload is the signed session claim set carried in the auth cookie.
type Payload struct {
	Sub   int    `json:"sub"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// TokenCodec signs and verifies `base64url(payload).base64url(hmac)` tokens.
type TokenCodec struct {
	secret []byte
}

func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret)}
}

func (c *TokenCodec) Sign(p Payload) string {
	raw, _ := json.Marshal(p)
	base := base64.RawURLEncoding.EncodeToString(raw)
	return base + "." + c.signature(base)
}

// Verify returns the payload when the signature matches, nil otherwise.
func (c *TokenCodec) Verify(token string) *Payload {
	if token == "" {
		return nil
	}
	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return nil
	}
	base, sig := parts[0], parts[1]
	if !hmac.Equal([]byte(c.signature(base)), []byte(sig)) {
		return nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(base)
	if err != nil {
		return nil
	}
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil
	}
	if p.Sub == 0 || p.Email == "" {
		return nil
	}
	return &p
}

func (c *TokenCodec) signature(base string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(base))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
