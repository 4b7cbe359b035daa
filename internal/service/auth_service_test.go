package service

import (
	"context"
	"testing"
	"time"

	"github.com/Mouhib912/Event-Management-Platform/internal/apierror"
	"github.com/Mouhib912/Event-Management-Platform/internal/dto"
	"github.com/Mouhib912/Event-Management-Platform/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRevoker struct {
	jti string
	ttl time.Duration
}

func (r *recordingRevoker) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	r.jti, r.ttl = jti, ttl
	return nil
}

func TestAuth_RegisterAndLogin(t *testing.T) {
	f := newFixture(t)
	svc := NewAuthService(f.users, f.cfg, nil)
	ctx := context.Background()

	user, err := svc.Register(ctx, f.owner, dto.RegisterRequest{
		Email: "sales@events.test", Password: "secret123", Name: "Sam", Role: "commercial",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleCommercial, user.Role)

	_, err = svc.Register(ctx, f.owner, dto.RegisterRequest{
		Email: "sales@events.test", Password: "secret123", Name: "Sam", Role: "commercial",
	})
	assert.Equal(t, "User already exists", apierror.PublicMessage(err))

	resp, err := svc.Login(ctx, dto.LoginRequest{Email: "sales@events.test", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.User.ID)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(resp.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(f.cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleCommercial, claims["role"])
	assert.Equal(t, "Sam", claims["name"])
	assert.NotEmpty(t, claims["jti"])
	sub, err := claims.GetSubject()
	require.NoError(t, err)
	assert.NotEmpty(t, sub)
}

func TestAuth_LoginRejectsBadCredentials(t *testing.T) {
	f := newFixture(t)
	svc := NewAuthService(f.users, f.cfg, nil)
	ctx := context.Background()
	created, err := svc.EnsureOwner(ctx, "boss@events.test", "right-password", "Boss")
	require.NoError(t, err)
	require.True(t, created)

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "boss@events.test", Password: "wrong"})
	assert.Equal(t, apierror.KindUnauthorized, apierror.KindOf(err))
	assert.Equal(t, "Invalid credentials", apierror.PublicMessage(err))

	_, err = svc.Login(ctx, dto.LoginRequest{Email: "nobody@events.test", Password: "x"})
	assert.Equal(t, "Invalid credentials", apierror.PublicMessage(err))
}

func TestAuth_EnsureOwnerIsIdempotent(t *testing.T) {
	f := newFixture(t)
	svc := NewAuthService(f.users, f.cfg, nil)
	ctx := context.Background()

	created, err := svc.EnsureOwner(ctx, "boss@events.test", "pw123456", "Boss")
	require.NoError(t, err)
	assert.True(t, created)
	created, err = svc.EnsureOwner(ctx, "boss@events.test", "other", "Boss")
	require.NoError(t, err)
	assert.False(t, created)
}

func TestAuth_UserManagement(t *testing.T) {
	f := newFixture(t)
	svc := NewAuthService(f.users, f.cfg, nil)
	ctx := context.Background()
	other, err := svc.Register(ctx, f.owner, dto.RegisterRequest{Email: "a@events.test", Password: "secret1", Name: "A", Role: "finance"})
	require.NoError(t, err)

	taken := "owner@events.test"
	_, err = svc.UpdateUser(ctx, other.ID, dto.UpdateUserRequest{Email: &taken})
	assert.Equal(t, "Email already in use", apierror.PublicMessage(err))

	role := "logistics"
	updated, err := svc.UpdateUser(ctx, other.ID, dto.UpdateUserRequest{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, model.RoleLogistics, updated.Role)

	err = svc.DeleteUser(ctx, f.owner, f.owner.UserID)
	assert.Equal(t, "Cannot delete your own account", apierror.PublicMessage(err))
	require.NoError(t, svc.DeleteUser(ctx, f.owner, other.ID))

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestAuth_LogoutRevokesUntilExpiry(t *testing.T) {
	f := newFixture(t)
	rev := &recordingRevoker{}
	svc := NewAuthService(f.users, f.cfg, rev)

	require.NoError(t, svc.Logout(context.Background(), "jti-1", time.Now().Add(time.Hour)))
	assert.Equal(t, "jti-1", rev.jti)
	assert.InDelta(t, time.Hour.Seconds(), rev.ttl.Seconds(), 5)

	// Without a denylist logout is a no-op.
	assert.NoError(t, NewAuthService(f.users, f.cfg, nil).Logout(context.Background(), "jti-2", time.Now().Add(time.Hour)))
}
