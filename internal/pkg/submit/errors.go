package submit

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
)

type ErrorClass string

const (
	ClassTypeMismatch ErrorClass = "type-mismatch"
	ClassRange        ErrorClass = "range"
	ClassSyntax       ErrorClass = "syntax"
	ClassUnknown      ErrorClass = "unknown"
)

// User-facing messages.
const (
	SuccessMessage      = "Datas atualizadas com sucesso!"
	TypeMismatchMessage = "Ocorreu um erro de tipo. Por favor, verifique seus dados."
	RangeMessage        = "Ocorreu um erro de intervalo. Por favor, verifique seus dados."
	SyntaxMessage       = "Ocorreu um erro de sintaxe. Por favor, verifique seu código."
	UnknownMessage      = "Ocorreu um erro desconhecido. Por favor, tente novamente."
)

// StatusError is returned for any response outside the 2xx range.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("error status code is not 2xx, got %d", e.StatusCode)
}

// Classify maps a submission error to one of the fixed classes. Transport
// failures count as type mismatches.
func Classify(err error) ErrorClass {
	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		statusErr *StatusError
		numErr    *strconv.NumError
		urlErr    *url.Error
	)

	switch {
	case err == nil:
		return ClassUnknown
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return ClassSyntax
	case errors.As(err, &typeErr):
		return ClassTypeMismatch
	case errors.As(err, &statusErr):
		return ClassRange
	case errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange):
		return ClassRange
	case errors.As(err, &urlErr):
		return ClassTypeMismatch
	default:
		return ClassUnknown
	}
}

func Message(class ErrorClass) string {
	switch class {
	case ClassTypeMismatch:
		return TypeMismatchMessage
	case ClassRange:
		return RangeMessage
	case ClassSyntax:
		return SyntaxMessage
	default:
		return UnknownMessage
	}
}
