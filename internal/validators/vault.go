// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/mail"
	"regexp"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Field names accepted by [VaultValidator.Validate].
const (
	FieldUserID       = "user_id"
	FieldRecordID     = "id"
	FieldUsername     = "username"
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldTitle        = "title"
	FieldURL          = "url"
	FieldCategoryName = "name"
	FieldColor        = "color"
	FieldFavorite     = "favorite"
	FieldAnyUpdate    = "any_update"
)

// Column limits mirrored from the schema.
const (
	maxUsernameLen     = 255
	maxEmailLen        = 255
	maxTitleLen        = 255
	maxURLLen          = 500
	maxCategoryNameLen = 100
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// VaultValidator implements [Validator] for account, secret record and
// category requests.
type VaultValidator struct{}

func NewVaultValidator() Validator {
	return &VaultValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted; any other type yields ErrUnsupportedType.
func (v *VaultValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.AddSecretRequest:
		return v.validateAddSecret(value, fields...)
	case *models.AddSecretRequest:
		return v.validateAddSecret(*value, fields...)

	case models.SecretRecordUpdate:
		return v.validateSecretUpdate(value, fields...)
	case *models.SecretRecordUpdate:
		return v.validateSecretUpdate(*value, fields...)

	case models.FavoriteRequest:
		return v.validateFavorite(value, fields...)
	case *models.FavoriteRequest:
		return v.validateFavorite(*value, fields...)

	case models.CreateCategoryRequest:
		return v.validateCreateCategory(value, fields...)
	case *models.CreateCategoryRequest:
		return v.validateCreateCategory(*value, fields...)

	case models.CategoryUpdate:
		return v.validateCategoryUpdate(value, fields...)
	case *models.CategoryUpdate:
		return v.validateCategoryUpdate(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *VaultValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldUsername:
			err = required(req.Username, maxUsernameLen, ErrEmptyUsername)
		case FieldEmail:
			err = validateEmail(req.Email)
		case FieldPassword:
			err = required(req.Password, 0, ErrEmptyPassword)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *VaultValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if req.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateAddSecret(req models.AddSecretRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTitle, FieldUsername, FieldPassword, FieldURL}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldUserID:
			err = required(req.UserID, 0, ErrInvalidUserID)
		case FieldTitle:
			err = required(req.Title, maxTitleLen, ErrEmptyTitle)
		case FieldUsername:
			err = required(req.Username, maxUsernameLen, ErrEmptyUsername)
		case FieldPassword:
			err = required(req.Password, 0, ErrEmptyPassword)
		case FieldURL:
			err = maxLen(req.URL, maxURLLen)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// validateSecretUpdate checks that provided fields are not blanked. Title,
// username and password may be omitted but never set to "".
func (v *VaultValidator) validateSecretUpdate(u models.SecretRecordUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRecordID, FieldUserID, FieldAnyUpdate, FieldTitle, FieldUsername, FieldPassword, FieldURL}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldRecordID:
			err = required(u.ID, 0, ErrInvalidRecordID)
		case FieldUserID:
			err = required(u.UserID, 0, ErrInvalidUserID)
		case FieldAnyUpdate:
			if u.IsEmpty() {
				err = ErrNoFieldsToUpdate
			}
		case FieldTitle:
			err = optional(u.Title, maxTitleLen, ErrEmptyTitle)
		case FieldUsername:
			err = optional(u.Username, maxUsernameLen, ErrEmptyUsername)
		case FieldPassword:
			err = optional(u.Password, 0, ErrEmptyPassword)
		case FieldURL:
			err = maxLen(u.URL, maxURLLen)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *VaultValidator) validateFavorite(req models.FavoriteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldFavorite}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if req.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldFavorite:
			if req.Favorite == nil {
				return ErrEmptyFavorite
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *VaultValidator) validateCreateCategory(req models.CreateCategoryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldCategoryName, FieldColor}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldUserID:
			err = required(req.UserID, 0, ErrInvalidUserID)
		case FieldCategoryName:
			err = required(req.Name, maxCategoryNameLen, ErrEmptyCategoryName)
		case FieldColor:
			if !colorPattern.MatchString(req.Color) {
				err = ErrInvalidColor
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *VaultValidator) validateCategoryUpdate(u models.CategoryUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRecordID, FieldUserID, FieldAnyUpdate, FieldCategoryName, FieldColor}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldRecordID:
			err = required(u.ID, 0, ErrInvalidRecordID)
		case FieldUserID:
			err = required(u.UserID, 0, ErrInvalidUserID)
		case FieldAnyUpdate:
			if u.IsEmpty() {
				err = ErrNoFieldsToUpdate
			}
		case FieldCategoryName:
			err = optional(u.Name, maxCategoryNameLen, ErrEmptyCategoryName)
		case FieldColor:
			if u.Color != nil && !colorPattern.MatchString(*u.Color) {
				err = ErrInvalidColor
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return ErrEmptyEmail
	}

	if utf8.RuneCountInString(email) > maxEmailLen {
		return fmt.Errorf("%w: email", ErrFieldTooLong)
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}

	return nil
}

// required rejects an empty value and, when limit > 0, one longer than limit
// characters.
func required(value string, limit int, emptyErr error) error {
	if value == "" {
		return emptyErr
	}

	if limit > 0 && utf8.RuneCountInString(value) > limit {
		return fmt.Errorf("%w: %d characters max", ErrFieldTooLong, limit)
	}

	return nil
}

func optional(value *string, limit int, emptyErr error) error {
	if value == nil {
		return nil
	}
	return required(*value, limit, emptyErr)
}

func maxLen(value *string, limit int) error {
	if value != nil && utf8.RuneCountInString(*value) > limit {
		return fmt.Errorf("%w: %d characters max", ErrFieldTooLong, limit)
	}
	return nil
}
