package domain

import "errors"

var (
	ErrUploadNotFound       = errors.New("upload not found")
	ErrExpenseNotFound      = errors.New("expense not found")
	ErrDuplicateTransaction = errors.New("duplicate transaction id")
	ErrUnparseableMessage   = errors.New("message did not match any known shape")
	ErrInvalidPageParams    = errors.New("invalid page parameters")
	ErrDuplicateEvent       = errors.New("duplicate event")
)
