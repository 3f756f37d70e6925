package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrWorkPlaceNotFound = errors.New("work place not found")
	ErrGoodsNotFound     = errors.New("goods not found")
	ErrCommuteNotFound   = errors.New("commute not found")
	ErrPasswordMismatch  = errors.New("password mismatch")
	ErrInvalidKey        = errors.New("invalid or missing key")
)
