package usecase

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Code: "domain_error", Message: message}
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

// NewTechnicalError embrulha uma falha de infraestrutura com a operação
// que a causou.
func NewTechnicalError(op string, err error) *TechnicalError {
	return &TechnicalError{Code: op, Message: fmt.Sprintf("%s: %v", op, err)}
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}
