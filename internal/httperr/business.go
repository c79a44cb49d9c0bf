package httperr

import "errors"

// Kind classifica falhas de negócio para o mapeamento de status HTTP.
type Kind int

const (
	KindInvalid Kind = iota
	KindNotFound
	KindConflict
)

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrNotFound(code, message string) error {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

func ErrConflict(code, message string) error {
	return BusinessError{Kind: KindConflict, Code: code, Message: message}
}

func ErrInvalid(code, message string) error {
	return BusinessError{Kind: KindInvalid, Code: code, Message: message}
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return BusinessError{}, false
}

func IsBusiness(err error, code string) bool {
	be, ok := AsBusiness(err)
	return ok && be.Code == code
}
