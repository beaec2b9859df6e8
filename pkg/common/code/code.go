package code

import (
	"errors"
	"fmt"
)

// Code is a stable business error. With* helpers return copies so the
// package-level sentinels are never mutated; errors.Is matches on ErrCode.
type Code struct {
	ErrCode int
	ErrMsg  string
	cause   error
}

func New(errCode int, errMsg string) *Code {
	return &Code{ErrCode: errCode, ErrMsg: errMsg}
}

func (c *Code) Error() string {
	if c.cause != nil {
		return fmt.Sprintf("%s: %v", c.ErrMsg, c.cause)
	}
	return c.ErrMsg
}

func (c *Code) WithMsg(msg string) *Code {
	return &Code{ErrCode: c.ErrCode, ErrMsg: msg}
}

func (c *Code) WithMsgf(format string, args ...any) *Code {
	return &Code{ErrCode: c.ErrCode, ErrMsg: fmt.Sprintf(format, args...)}
}

func (c *Code) WithErr(err error) *Code {
	return &Code{ErrCode: c.ErrCode, ErrMsg: c.ErrMsg, cause: err}
}

func (c *Code) Unwrap() error {
	return c.cause
}

func (c *Code) Is(target error) bool {
	t := &Code{}
	if !errors.As(target, &t) {
		return false
	}
	return t.ErrCode == c.ErrCode
}
