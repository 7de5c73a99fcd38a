package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	AccountIDKey contextKey = "account_id"
	RoleKey      contextKey = "role"
	EmailKey     contextKey = "email"
	TokenKey     contextKey = "token"
)

// SetUserContext stores the session principal (id, role, email)
func SetUserContext(ctx context.Context, accountID uuid.UUID, role, email string) context.Context {
	ctx = context.WithValue(ctx, AccountIDKey, accountID.String())
	ctx = context.WithValue(ctx, RoleKey, role)
	ctx = context.WithValue(ctx, EmailKey, email)
	return ctx
}

func GetAccountIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	idVal := ctx.Value(AccountIDKey)
	if idVal == nil {
		return uuid.Nil, false
	}

	idStr, ok := idVal.(string)
	if !ok {
		return uuid.Nil, false
	}

	accountID, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}

	return accountID, true
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	roleVal := ctx.Value(RoleKey)
	if roleVal == nil {
		return "", false
	}

	role, ok := roleVal.(string)
	return role, ok
}

func GetEmailFromContext(ctx context.Context) (string, bool) {
	emailVal := ctx.Value(EmailKey)
	if emailVal == nil {
		return "", false
	}

	email, ok := emailVal.(string)
	return email, ok
}

func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}

func GetTokenFromContext(ctx context.Context) (string, bool) {
	tokenVal := ctx.Value(TokenKey)
	if tokenVal == nil {
		return "", false
	}

	token, ok := tokenVal.(string)
	return token, ok
}
