package tests

import (
	"context"
	"testing"
	"time"

	"dukapos/internal/dto"
	"dukapos/internal/model"
	"dukapos/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func seedUser(t *testing.T, repo *stubUserRepo, email, password string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.User{Email: email, Name: "Operator", PasswordHash: string(hash), Active: true}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestLoginSuccessIssuesToken(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "op@dukapos.co.tz", "secret123")
	svc := service.NewAuthService(repo, testSecret, 8*time.Hour)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "op@dukapos.co.tz", Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, int((8 * time.Hour).Seconds()), resp.ExpiresIn)
	assert.Equal(t, "op@dukapos.co.tz", resp.User.Email)

	// Token verifies against the signing secret and carries identity claims
	token, err := jwt.Parse(resp.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, resp.User.ID, claims["user_id"])
	assert.Equal(t, "op@dukapos.co.tz", claims["email"])
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "op@dukapos.co.tz", "secret123")
	svc := service.NewAuthService(repo, testSecret, time.Hour)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "op@dukapos.co.tz", Password: "wrong",
	})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLoginUnknownOrInactiveUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := service.NewAuthService(repo, testSecret, time.Hour)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "nobody@dukapos.co.tz", Password: "whatever",
	})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)

	u := seedUser(t, repo, "gone@dukapos.co.tz", "secret123")
	u.Active = false
	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email: "gone@dukapos.co.tz", Password: "secret123",
	})
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := service.NewAuthService(repo, testSecret, time.Hour)

	_, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Email: "op@dukapos.co.tz", Name: "First", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Email: "op@dukapos.co.tz", Name: "Second", Password: "other456",
	})
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestCreateUserHashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := service.NewAuthService(repo, testSecret, time.Hour)

	resp, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Email: "op@dukapos.co.tz", Name: "Operator", Password: "secret123",
	})
	require.NoError(t, err)
	assert.True(t, resp.Active)

	stored := repo.users["op@dukapos.co.tz"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
}
