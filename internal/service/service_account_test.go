// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type accountMocks struct {
	accounts   *mock.MockAccountRepository
	categories *mock.MockCategoryRepository
	hasher     *mock.MockPasswordHasher
	ids        *mock.MockIDGenerator
}

func newTestAccountSvc(t *testing.T) (*accountService, accountMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := accountMocks{
		accounts:   mock.NewMockAccountRepository(ctrl),
		categories: mock.NewMockCategoryRepository(ctrl),
		hasher:     mock.NewMockPasswordHasher(ctrl),
		ids:        mock.NewMockIDGenerator(ctrl),
	}

	svc := NewAccountService(m.accounts, m.categories, m.hasher, validators.NewVaultValidator(), m.ids, logger.Nop()).(*accountService)
	svc.now = func() time.Time { return fixedNow }

	return svc, m
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAccountService_Register_Success(t *testing.T) {
	svc, m := newTestAccountSvc(t)
	ctx := context.Background()
	req := models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "pw"}

	gomock.InOrder(
		m.hasher.EXPECT().HashPassword("pw", "").Return("hash", "salt", nil),
		m.ids.EXPECT().Generate().Return("user-1"),
		m.accounts.EXPECT().CreateAccount(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, a models.Account) error {
				assert.Equal(t, "user-1", a.ID)
				assert.Equal(t, "alice", a.Username)
				assert.Equal(t, "alice@example.com", a.Email)
				assert.Equal(t, "hash", a.PasswordHash)
				assert.Equal(t, "salt", a.Salt)
				assert.Equal(t, fixedNow, a.CreatedAt)
				assert.Nil(t, a.LastLogin)
				return nil
			},
		),
	)
	m.ids.EXPECT().Generate().Return("cat").Times(len(models.DefaultCategories))
	m.categories.EXPECT().CreateCategories(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, cats ...models.Category) error {
			require.Len(t, cats, 4)
			names := make([]string, 0, len(cats))
			for _, c := range cats {
				assert.Equal(t, "user-1", c.UserID)
				names = append(names, c.Name)
			}
			assert.Equal(t, []string{"Personnel", "Travail", "Finance", "Social"}, names)
			assert.Equal(t, "#ec4899", cats[3].Color)
			return nil
		},
	)

	id, err := svc.Register(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
}

func TestAccountService_Register_InvalidData(t *testing.T) {
	svc, _ := newTestAccountSvc(t)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Username: "alice", Password: "pw"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyEmail)
}

func TestAccountService_Register_Duplicate(t *testing.T) {
	svc, m := newTestAccountSvc(t)
	ctx := context.Background()

	m.hasher.EXPECT().HashPassword("pw", "").Return("hash", "salt", nil)
	m.ids.EXPECT().Generate().Return("user-1")
	m.accounts.EXPECT().CreateAccount(ctx, gomock.Any()).Return(store.ErrAccountAlreadyExists)

	_, err := svc.Register(ctx, models.RegisterRequest{Username: "alice", Email: "a@b.io", Password: "pw"})

	assert.ErrorIs(t, err, store.ErrAccountAlreadyExists)
}

func TestAccountService_Register_HashError(t *testing.T) {
	svc, m := newTestAccountSvc(t)
	hashErr := errors.New("rng exhausted")

	m.hasher.EXPECT().HashPassword("pw", "").Return("", "", hashErr)

	_, err := svc.Register(context.Background(), models.RegisterRequest{Username: "alice", Email: "a@b.io", Password: "pw"})

	assert.ErrorIs(t, err, hashErr)
}

func TestAccountService_Register_DefaultCategoriesError(t *testing.T) {
	svc, m := newTestAccountSvc(t)
	ctx := context.Background()
	dbErr := errors.New("db down")

	m.hasher.EXPECT().HashPassword(gomock.Any(), gomock.Any()).Return("hash", "salt", nil)
	m.ids.EXPECT().Generate().Return("id").AnyTimes()
	m.accounts.EXPECT().CreateAccount(ctx, gomock.Any()).Return(nil)
	m.categories.EXPECT().CreateCategories(ctx, gomock.Any()).Return(dbErr)

	_, err := svc.Register(ctx, models.RegisterRequest{Username: "alice", Email: "a@b.io", Password: "pw"})

	assert.ErrorIs(t, err, dbErr)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAccountService_Login_Success(t *testing.T) {
	svc, m := newTestAccountSvc(t)
	ctx := context.Background()
	stored := models.Account{ID: "user-1", Username: "alice", PasswordHash: "hash", Salt: "salt"}

	gomock.InOrder(
		m.accounts.EXPECT().FindAccountByUsername(ctx, "alice").Return(stored, nil),
		m.hasher.EXPECT().VerifyPassword("hash", "salt", "pw").Return(true),
		m.accounts.EXPECT().UpdateLastLogin(ctx, "user-1", fixedNow).Return(nil),
	)

	account, err := svc.Login(ctx, models.LoginRequest{Username: "alice", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "user-1", account.ID)
	require.NotNil(t, account.LastLogin)
	assert.Equal(t, fixedNow, *account.LastLogin)
}

func TestAccountService_Login_UnknownUser(t *testing.T) {
	svc, m := newTestAccountSvc(t)
	ctx := context.Background()

	m.accounts.EXPECT().FindAccountByUsername(ctx, "ghost").Return(models.Account{}, store.ErrAccountNotFound)

	_, err := svc.Login(ctx, models.LoginRequest{Username: "ghost", Password: "pw"})

	assert.ErrorIs(t, err, store.ErrAccountNotFound)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	svc, m := newTestAccountSvc(t)
	ctx := context.Background()

	m.accounts.EXPECT().FindAccountByUsername(ctx, "alice").Return(models.Account{ID: "user-1", PasswordHash: "h", Salt: "s"}, nil)
	m.hasher.EXPECT().VerifyPassword("h", "s", "bad").Return(false)

	_, err := svc.Login(ctx, models.LoginRequest{Username: "alice", Password: "bad"})

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAccountService_Login_MissingCredentials(t *testing.T) {
	svc, _ := newTestAccountSvc(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "alice"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyPassword)
}

func TestAccountService_Login_LastLoginError(t *testing.T) {
	svc, m := newTestAccountSvc(t)
	ctx := context.Background()
	dbErr := errors.New("db down")

	m.accounts.EXPECT().FindAccountByUsername(ctx, "alice").Return(models.Account{ID: "user-1"}, nil)
	m.hasher.EXPECT().VerifyPassword(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
	m.accounts.EXPECT().UpdateLastLogin(ctx, "user-1", fixedNow).Return(dbErr)

	_, err := svc.Login(ctx, models.LoginRequest{Username: "alice", Password: "pw"})

	assert.ErrorIs(t, err, dbErr)
}
