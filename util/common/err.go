package common

import (
	"errors"
	"fmt"

	"heart-haven/logger"
)

func NewErrorf(format string, a ...any) error {
	msg := fmt.Sprintf(format, a...)
	return errors.New(msg)
}

func NewError(a ...any) error {
	msg := fmt.Sprintln(a...)
	return errors.New(msg)
}

// Combine merges multiple errors into one, skipping nil values.
func Combine(errs ...error) error {
	var sum error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if sum == nil {
			sum = err
		} else {
			sum = fmt.Errorf("%v, %v", sum, err)
		}
	}
	return sum
}

func Recover(msg string) any {
	panicErr := recover()
	if panicErr != nil {
		if msg != "" {
			logger.Error(msg, "panic:", panicErr)
		}
	}
	return panicErr
}
