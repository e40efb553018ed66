package service

import apperrors "github.com/jhaverenterprises/uniform-admin/internal/errors"

// withMessage replaces the user-facing message of err and keeps its code.
func withMessage(err error, msg string) error {
	code := apperrors.GetCode(err)
	if code == "" {
		code = apperrors.ErrCodeInternal
	}
	return apperrors.Wrap(err, code, msg)
}
