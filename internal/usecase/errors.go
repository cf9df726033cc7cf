package usecase

import "errors"

const (
	CodeMissingFields     = "MISSING_FIELDS"
	CodeMissingEmail      = "MISSING_EMAIL"
	CodeProductNotFound   = "PRODUCT_NOT_FOUND"
	CodePartnerUnresolved = "PARTNER_UNRESOLVED"
	CodeERPFailure        = "ODOO_ERROR"
)

// DomainError: a linha não tem como ser sincronizada (dado faltando, produto inexistente).
// Vira skip, não falha.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// TechnicalError: o Odoo ou a rede falharam no meio da linha.
type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

func erpFailure(message string, err error) *TechnicalError {
	return &TechnicalError{Code: CodeERPFailure, Message: message, Err: err}
}
