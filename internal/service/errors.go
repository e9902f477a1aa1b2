package service

import "errors"

var (
	// ErrReportNotOwned is returned when a report mutation matches zero rows.
	// "Does not exist" and "owned by someone else" are deliberately not
	// distinguished; the ownership check is folded into the SQL predicate.
	ErrReportNotOwned = errors.New("report not found or not owned by user")

	// ErrLoginTaken is returned when registration hits the unique login_id
	// constraint.
	ErrLoginTaken = errors.New("login id already taken")

	// ErrInvalidCredentials covers both an unknown login id and a wrong
	// password, so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid login id or password")

	// ErrUserNotFound is returned by the user repository on a missing row.
	ErrUserNotFound = errors.New("user not found")
)
