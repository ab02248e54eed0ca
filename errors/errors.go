package errors

import (
	stdErr "errors"
	"fmt"
	"runtime"
)

// RuntimeFileInfo appends the calling function, file and line to every wrapped message.
var RuntimeFileInfo = false

func As(err error, target any) bool {
	return stdErr.As(err, target)
}

func Is(err, target error) bool {
	return stdErr.Is(err, target)
}

func Join(errs ...error) error {
	return stdErr.Join(errs...)
}

func New(text string) error {
	return stdErr.New(text)
}

func Newf(text string, args ...any) error {
	return fmt.Errorf(text, args...)
}

func Unwrap(err error) error {
	return stdErr.Unwrap(err)
}

func callerSuffix(skip int, msg string, args []any) (string, []any) {
	if !RuntimeFileInfo {
		return msg, args
	}
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return msg, args
	}
	msg += " function=%s file=%s line=%d"
	return msg, append(args, runtime.FuncForPC(pc).Name(), file, line)
}

func Wrap(err error, msg string, args ...any) error {
	if err == nil {
		return err
	}
	msg, args = callerSuffix(1, msg, args)

	msg += ": %w"
	args = append(args, err)

	return fmt.Errorf(msg, args...)
}

// Mark wraps err like Wrap and additionally makes it match kind with Is.
func Mark(err error, kind error, msg string, args ...any) error {
	if err == nil {
		return err
	}
	msg, args = callerSuffix(1, msg, args)

	msg = "%w: " + msg + ": %w"
	args = append([]any{kind}, args...)
	args = append(args, err)

	return fmt.Errorf(msg, args...)
}
