package models

import "github.com/pkg/errors"

type ErrorCode string

const (
	ErrCodeNotFound       ErrorCode = "NOT_FOUND"
	ErrCodeNotAuthorized  ErrorCode = "NOT_AUTHORIZED"
	ErrCodeAlreadyPending ErrorCode = "ALREADY_PENDING"
	ErrCodePunchTooSoon   ErrorCode = "PUNCH_TOO_SOON"
	ErrCodeMissingPunchIn ErrorCode = "MISSING_PUNCH_IN"
	ErrCodeStalePunchIn   ErrorCode = "STALE_PUNCH_IN"
	ErrCodeAlreadyPunched ErrorCode = "ALREADY_PUNCHED_IN"
	ErrCodePunchWindow    ErrorCode = "PUNCH_WINDOW"
	ErrCodeHolidayBlocked ErrorCode = "HOLIDAY_BLOCKED"
	ErrCodeDayLocked      ErrorCode = "DAY_LOCKED"
	ErrCodeBadSequence    ErrorCode = "BAD_SEQUENCE"
)

// CodedError - ошибка движка с машинным кодом, текст предназначен пользователю
type CodedError struct {
	Code    ErrorCode
	Message string
}

func (e *CodedError) Error() string {
	return e.Message
}

func NewCodedError(code ErrorCode, message string) error {
	return &CodedError{
		Code:    code,
		Message: message,
	}
}

// GetErrorCode возвращает код ошибки, либо пустую строку для обычных ошибок
func GetErrorCode(err error) ErrorCode {
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.Code
	}
	return ""
}
