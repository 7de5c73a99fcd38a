package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jklassic/logistics/internal/data/entity"
	"github.com/jklassic/logistics/internal/data/repository"
	"github.com/jklassic/logistics/internal/dto/request"
	"github.com/jklassic/logistics/internal/usecase"
	"github.com/jklassic/logistics/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthFixture() (usecase.AuthService, *fakeWorkerRepo, *fakeAdminRepo, *fakeSessionRepo, *fakeMailer) {
	workerRepo := newFakeWorkerRepo()
	adminRepo := newFakeAdminRepo()
	sessionRepo := newFakeSessionRepo()
	repo := &repository.Repository{
		Parcel:  newFakeParcelRepo(),
		Worker:  workerRepo,
		Admin:   adminRepo,
		Session: sessionRepo,
	}
	mail := newFakeMailer()
	config := &utils.Config{
		App:     utils.AppConfig{BaseURL: "http://localhost:8080"},
		Session: utils.SessionConfig{ExpiryHours: 24},
	}

	return usecase.NewAuthService(repo, mail, config, zap.NewNop()), workerRepo, adminRepo, sessionRepo, mail
}

func validWorkerRequest() *request.RegisterWorkerRequest {
	return &request.RegisterWorkerRequest{
		FirstName:  "Grace",
		SecondName: "Mwale",
		Email:      "grace@example.com",
		PhoneNo:    "0977123456",
		Branch:     "Lusaka",
		Password:   "secret123",
	}
}

func TestAuthService_RegisterWorker(t *testing.T) {
	t.Run("creates an unapproved STAFF account with ABC- display id", func(t *testing.T) {
		service, workerRepo, _, _, _ := newAuthFixture()

		account, err := service.RegisterWorker(context.Background(), validWorkerRequest(), nil, "")
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(account.DisplayID, "ABC-"))
		assert.Len(t, account.DisplayID, 10)
		assert.Equal(t, entity.SessionRoleWorker, account.Role)
		assert.Empty(t, account.Token)

		stored, err := workerRepo.FindByEmail(context.Background(), "grace@example.com")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.False(t, stored.Approved)
		assert.Equal(t, entity.RoleStaff, stored.Role)
	})

	t.Run("never persists the plaintext password", func(t *testing.T) {
		service, workerRepo, _, _, _ := newAuthFixture()

		_, err := service.RegisterWorker(context.Background(), validWorkerRequest(), nil, "")
		require.NoError(t, err)

		stored, err := workerRepo.FindByEmail(context.Background(), "grace@example.com")
		require.NoError(t, err)
		require.NotNil(t, stored)

		assert.NotEqual(t, "secret123", stored.PasswordHash)
		assert.True(t, utils.CheckPasswordHash("secret123", stored.PasswordHash))
		assert.False(t, utils.CheckPasswordHash("secret124", stored.PasswordHash))
	})

	t.Run("rejects duplicate email before writing", func(t *testing.T) {
		service, _, _, _, _ := newAuthFixture()

		_, err := service.RegisterWorker(context.Background(), validWorkerRequest(), nil, "")
		require.NoError(t, err)

		_, err = service.RegisterWorker(context.Background(), validWorkerRequest(), nil, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("dispatches the welcome mail", func(t *testing.T) {
		service, _, _, _, mail := newAuthFixture()

		_, err := service.RegisterWorker(context.Background(), validWorkerRequest(), nil, "")
		require.NoError(t, err)

		assert.Eventually(t, func() bool { return mail.count() == 1 }, time.Second, 10*time.Millisecond)
		assert.Equal(t, []string{"grace@example.com"}, mail.last().To)
	})
}

func TestAuthService_RegisterAdmin(t *testing.T) {
	t.Run("creates an approved ADMIN account with 6-char display id", func(t *testing.T) {
		service, _, adminRepo, _, _ := newAuthFixture()

		account, err := service.RegisterAdmin(context.Background(), &request.RegisterAdminRequest{
			FirstName:  "Peter",
			SecondName: "Zulu",
			Email:      "peter@example.com",
			Password:   "secret123",
		}, nil, "")
		require.NoError(t, err)

		assert.Len(t, account.DisplayID, 6)
		assert.Equal(t, entity.SessionRoleAdmin, account.Role)

		stored, err := adminRepo.FindByEmail(context.Background(), "peter@example.com")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.True(t, stored.Approved)
		assert.Equal(t, entity.RoleAdmin, stored.Role)
	})
}

func TestAuthService_SignIn(t *testing.T) {
	register := func(t *testing.T, service usecase.AuthService) {
		t.Helper()
		_, err := service.RegisterWorker(context.Background(), validWorkerRequest(), nil, "")
		require.NoError(t, err)
	}

	t.Run("rejects an unapproved worker with correct credentials", func(t *testing.T) {
		service, _, _, _, _ := newAuthFixture()
		register(t, service)

		_, err := service.SignIn(context.Background(), &request.SignInRequest{
			Email:    "grace@example.com",
			Password: "secret123",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not approved")
	})

	t.Run("accepts the same worker once approved", func(t *testing.T) {
		service, workerRepo, _, sessionRepo, _ := newAuthFixture()
		register(t, service)

		stored, err := workerRepo.FindByEmail(context.Background(), "grace@example.com")
		require.NoError(t, err)
		require.NoError(t, workerRepo.Approve(context.Background(), stored.ID))

		account, err := service.SignIn(context.Background(), &request.SignInRequest{
			Email:    "grace@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, entity.SessionRoleWorker, account.Role)
		assert.NotEmpty(t, account.Token)

		session, err := sessionRepo.FindValidSession(context.Background(), account.Token)
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, "grace@example.com", session.Email)
	})

	t.Run("wrong password gets the generic message", func(t *testing.T) {
		service, workerRepo, _, _, _ := newAuthFixture()
		register(t, service)

		stored, err := workerRepo.FindByEmail(context.Background(), "grace@example.com")
		require.NoError(t, err)
		require.NoError(t, workerRepo.Approve(context.Background(), stored.ID))

		_, err = service.SignIn(context.Background(), &request.SignInRequest{
			Email:    "grace@example.com",
			Password: "wrong-password",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "email or password incorrect")
	})

	t.Run("falls back to the admin store", func(t *testing.T) {
		service, _, _, _, _ := newAuthFixture()

		_, err := service.RegisterAdmin(context.Background(), &request.RegisterAdminRequest{
			FirstName:  "Peter",
			SecondName: "Zulu",
			Email:      "peter@example.com",
			Password:   "secret123",
		}, nil, "")
		require.NoError(t, err)

		account, err := service.SignIn(context.Background(), &request.SignInRequest{
			Email:    "peter@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.Equal(t, entity.SessionRoleAdmin, account.Role)
		assert.NotEmpty(t, account.Token)
	})

	t.Run("unknown email gets the generic message", func(t *testing.T) {
		service, _, _, _, _ := newAuthFixture()

		_, err := service.SignIn(context.Background(), &request.SignInRequest{
			Email:    "nobody@example.com",
			Password: "secret123",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "email or password incorrect")
	})
}

func TestAuthService_SignOut(t *testing.T) {
	t.Run("revokes the session", func(t *testing.T) {
		service, workerRepo, _, sessionRepo, _ := newAuthFixture()

		_, err := service.RegisterWorker(context.Background(), validWorkerRequest(), nil, "")
		require.NoError(t, err)

		stored, err := workerRepo.FindByEmail(context.Background(), "grace@example.com")
		require.NoError(t, err)
		require.NoError(t, workerRepo.Approve(context.Background(), stored.ID))

		account, err := service.SignIn(context.Background(), &request.SignInRequest{
			Email:    "grace@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)

		require.NoError(t, service.SignOut(context.Background(), account.Token))

		session, err := sessionRepo.FindValidSession(context.Background(), account.Token)
		require.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("rejects a malformed token", func(t *testing.T) {
		service, _, _, _, _ := newAuthFixture()

		err := service.SignOut(context.Background(), "not-a-uuid")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid token")
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	t.Run("updates the hash for an existing worker", func(t *testing.T) {
		service, workerRepo, _, _, _ := newAuthFixture()

		_, err := service.RegisterWorker(context.Background(), validWorkerRequest(), nil, "")
		require.NoError(t, err)

		require.NoError(t, service.ResetPassword(context.Background(), &request.ResetPasswordRequest{
			Email:       "grace@example.com",
			NewPassword: "changed123",
		}))

		stored, err := workerRepo.FindByEmail(context.Background(), "grace@example.com")
		require.NoError(t, err)
		assert.True(t, utils.CheckPasswordHash("changed123", stored.PasswordHash))
		assert.False(t, utils.CheckPasswordHash("secret123", stored.PasswordHash))
	})

	t.Run("requires the worker to exist", func(t *testing.T) {
		service, _, _, _, _ := newAuthFixture()

		err := service.ResetPassword(context.Background(), &request.ResetPasswordRequest{
			Email:       "nobody@example.com",
			NewPassword: "changed123",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestStaffService(t *testing.T) {
	newStaffFixture := func() (usecase.StaffService, usecase.AuthService, *fakeWorkerRepo) {
		workerRepo := newFakeWorkerRepo()
		repo := &repository.Repository{
			Parcel:  newFakeParcelRepo(),
			Worker:  workerRepo,
			Admin:   newFakeAdminRepo(),
			Session: newFakeSessionRepo(),
		}
		config := &utils.Config{Session: utils.SessionConfig{ExpiryHours: 24}}
		auth := usecase.NewAuthService(repo, newFakeMailer(), config, zap.NewNop())
		return usecase.NewStaffService(repo, zap.NewNop()), auth, workerRepo
	}

	t.Run("approve flips the sign-in gate", func(t *testing.T) {
		staff, auth, workerRepo := newStaffFixture()

		account, err := auth.RegisterWorker(context.Background(), validWorkerRequest(), nil, "")
		require.NoError(t, err)

		require.NoError(t, staff.ApproveWorker(context.Background(), account.AccountID))

		stored, err := workerRepo.FindByEmail(context.Background(), "grace@example.com")
		require.NoError(t, err)
		assert.True(t, stored.Approved)
	})

	t.Run("approve of unknown worker reports not-found", func(t *testing.T) {
		staff, _, _ := newStaffFixture()

		err := staff.ApproveWorker(context.Background(), uuid.NewString())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("delete removes the account", func(t *testing.T) {
		staff, auth, workerRepo := newStaffFixture()

		account, err := auth.RegisterWorker(context.Background(), validWorkerRequest(), nil, "")
		require.NoError(t, err)

		require.NoError(t, staff.DeleteWorker(context.Background(), account.AccountID))

		stored, err := workerRepo.FindByEmail(context.Background(), "grace@example.com")
		require.NoError(t, err)
		assert.Nil(t, stored)
	})

	t.Run("profile lookup guards unknown ids and types", func(t *testing.T) {
		staff, _, _ := newStaffFixture()

		_, err := staff.GetProfile(context.Background(), "worker", uuid.NewString())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")

		_, err = staff.GetProfile(context.Background(), "courier", uuid.NewString())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid staff type")
	})
}
