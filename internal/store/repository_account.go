// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

var accountColumns = []string{"id", "username", "email", "password_hash", "salt", "created_at", "last_login"}

// accountRepository is the SQL implementation of [AccountRepository].
type accountRepository struct {
	db *DB
}

// NewAccountRepository constructs an [AccountRepository] on top of db.
func NewAccountRepository(db *DB) AccountRepository {
	db.logger.Debug().Msg("creating account repository")
	return &accountRepository{db: db}
}

// CreateAccount inserts account. A unique violation on username or email is
// reported as [ErrAccountAlreadyExists].
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(account.TableName()).
		Columns("id", "username", "email", "password_hash", "salt", "created_at").
		Values(account.ID, account.Username, account.Email, account.PasswordHash, account.Salt, account.CreatedAt).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			log.Warn().Str("func", "*accountRepository.CreateAccount").Str("username", account.Username).Msg("account already exists")
			return ErrAccountAlreadyExists
		}
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("failed to insert account")
		r.db.classify(log, err)
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *accountRepository) FindAccountByUsername(ctx context.Context, username string) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(accountColumns...).
		From(models.Account{}.TableName()).
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.FindAccountByUsername").Msg("failed to build query")
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var account models.Account
	if err = r.db.GetContext(ctx, &account, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", "*accountRepository.FindAccountByUsername").Msg("failed to select account")
		r.db.classify(log, err)
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return account, nil
}

func (r *accountRepository) UpdateLastLogin(ctx context.Context, accountID string, at time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(models.Account{}.TableName()).
		Set("last_login", at).
		Where(squirrel.Eq{"id": accountID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdateLastLogin").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.UpdateLastLogin").Str("account_id", accountID).Msg("failed to update last login")
		r.db.classify(log, err)
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}
