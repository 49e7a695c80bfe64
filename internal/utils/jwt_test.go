package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	accountID := uuid.New()
	duration := time.Hour
	key := "secret-key"

	signed, err := GenerateJWTToken(issuer, accountID, duration, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if signed == "" {
		t.Fatal("expected non-empty signed token")
	}

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (any, error) {
		return []byte(key), nil
	})
	if err != nil {
		t.Fatalf("expected token to parse, got: %v", err)
	}
	if claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, claims.Issuer)
	}
	if claims.Subject != accountID.String() {
		t.Errorf("expected subject %s, got %s", accountID, claims.Subject)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	accountID := uuid.New()
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, accountID, tt.duration, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	accountID := uuid.New()
	key := "secret-key"
	duration := time.Minute * 5

	signed, err := GenerateJWTToken(issuer, accountID, duration, key)
	if err != nil {
		t.Fatalf("setup: generate token: %v", err)
	}

	got, err := ValidateAndParseJWTToken(signed, key, issuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if got != accountID {
		t.Errorf("expected accountID %s, got %s", accountID, got)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	issuer := "test-issuer"
	key := "correct-key"
	wrongKey := "wrong-key"

	signed, err := GenerateJWTToken(issuer, uuid.New(), time.Hour, key)
	if err != nil {
		t.Fatalf("setup: generate token: %v", err)
	}

	_, err = ValidateAndParseJWTToken(signed, wrongKey, issuer)
	if err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issuer := "test-issuer"
	key := "key"

	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   uuid.New().String(),
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	if err != nil {
		t.Fatalf("setup: sign token: %v", err)
	}

	_, err = ValidateAndParseJWTToken(signed, key, issuer)
	if err == nil {
		t.Error("expected error for expired token, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	key := "key"
	signed, err := GenerateJWTToken("real-issuer", uuid.New(), time.Hour, key)
	if err != nil {
		t.Fatalf("setup: generate token: %v", err)
	}

	_, err = ValidateAndParseJWTToken(signed, key, "fake-issuer")
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss")
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestValidateAndParseJWTToken_InvalidSubject(t *testing.T) {
	issuer := "test-issuer"
	key := "key"

	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   "not-a-uuid",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(key))
	if err != nil {
		t.Fatalf("setup: sign token: %v", err)
	}

	_, err = ValidateAndParseJWTToken(signed, key, issuer)
	if err == nil {
		t.Error("expected error for non-uuid subject, got nil")
	}
}

func TestParseBearerToken_Success(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token != "abc.def.ghi" {
		t.Errorf("expected 'abc.def.ghi', got %s", token)
	}
}

func TestParseBearerToken_Invalid(t *testing.T) {
	tests := []string{"", "Bearer", "Bearer ", "justtoken", "Bearer a b"}
	for _, in := range tests {
		if _, err := ParseBearerToken(in); err == nil {
			t.Errorf("expected error for input %q, got nil", in)
		}
	}
}
