package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/rakib/uniportal/internal/app/models"
)

func testService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret-key",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 720 * time.Hour,
		TokenIssuer:     "uniportal.test",
	})
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := testService(time.Hour)
	user := &models.User{ID: 7, Email: "rakib22205341183@diu.edu.bd", RoleType: models.RoleStudent}

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("GenerateTokenPair returned error: %v", err)
	}
	if accessToken == "" || refreshToken == "" {
		t.Fatal("expected non-empty tokens")
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}
	if refreshExpiresIn != int((720 * time.Hour).Seconds()) {
		t.Errorf("refreshExpiresIn = %d, want %d", refreshExpiresIn, int((720*time.Hour).Seconds()))
	}

	claims, err := svc.ValidateAndExtractClaims(accessToken)
	if err != nil {
		t.Fatalf("ValidateAndExtractClaims returned error: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("userID = %d, want %d", claims.UserID, user.ID)
	}
	if claims.Email != user.Email {
		t.Errorf("email = %q, want %q", claims.Email, user.Email)
	}
	if claims.RoleType != string(models.RoleStudent) {
		t.Errorf("roleType = %q, want %q", claims.RoleType, models.RoleStudent)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := testService(time.Hour)
	user := &models.User{ID: 7, Email: "x@diu.edu.bd", RoleType: models.RoleStudent}

	accessToken, _, _, _, err := issuer.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("GenerateTokenPair returned error: %v", err)
	}

	verifier := NewJWTService(JWTConfig{
		SecretKey:       "another-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
	})
	if _, err := verifier.ValidateToken(accessToken); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := testService(-time.Minute)
	user := &models.User{ID: 7, Email: "x@diu.edu.bd", RoleType: models.RoleStudent}

	accessToken, _, _, _, err := svc.GenerateTokenPair(user)
	if err != nil {
		t.Fatalf("GenerateTokenPair returned error: %v", err)
	}

	if _, err := svc.ValidateToken(accessToken); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("err = %v, want ErrExpiredToken", err)
	}
}

func TestValidateAndExtractClaimsRejectsEmpty(t *testing.T) {
	svc := testService(time.Hour)
	if _, err := svc.ValidateAndExtractClaims(""); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	t.Run("strips the Bearer prefix", func(t *testing.T) {
		token, err := ExtractBearerToken("Bearer abc.def.ghi")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "abc.def.ghi" {
			t.Errorf("token = %q, want abc.def.ghi", token)
		}
	})

	t.Run("empty header is rejected", func(t *testing.T) {
		if _, err := ExtractBearerToken(""); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("err = %v, want ErrInvalidFormat", err)
		}
	})
}
