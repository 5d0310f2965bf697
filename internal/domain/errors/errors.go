package errors

import (
	"net/http"

	"exalum/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Produto não encontrado",
		"",
	)

	// Cart-related errors
	ErrProductOutOfStock = NewBaseError(
		http.StatusConflict,
		"PRODUCT_OUT_OF_STOCK",
		"Este produto não está disponível no momento",
		"",
	)

	ErrStockLimitReached = NewBaseError(
		http.StatusConflict,
		"STOCK_LIMIT_REACHED",
		"Quantidade máxima em estoque atingida",
		"",
	)

	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"Item não encontrado no carrinho",
		"",
	)

	// Checkout-related errors
	ErrCustomerDataMissing = NewBaseError(
		http.StatusBadRequest,
		"CUSTOMER_DATA_MISSING",
		"Por favor, preencha seu nome e telefone",
		"",
	)

	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"Adicione produtos ao carrinho antes de finalizar",
		"",
	)

	ErrOrderCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"ORDER_CREATION_FAILED",
		"Erro ao enviar pedido",
		"",
	)

	// Photo search errors
	ErrPhotoMissing = NewBaseError(
		http.StatusBadRequest,
		"PHOTO_MISSING",
		"Selecione uma foto primeiro",
		"",
	)

	ErrPhotoTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"PHOTO_TOO_LARGE",
		"Imagem muito grande. Máximo 10MB",
		"",
	)

	ErrPhotoUnreadable = NewBaseError(
		http.StatusBadRequest,
		"PHOTO_UNREADABLE",
		"Não foi possível processar a imagem",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"E-mail ou senha incorretos",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Sessão inválida ou expirada",
		"",
	)

	// Admin-management errors
	ErrAdminAccessRequired = NewBaseError(
		http.StatusForbidden,
		"ADMIN_ACCESS_REQUIRED",
		"Apenas administradores podem executar esta ação",
		"",
	)

	ErrAdminFieldsMissing = NewBaseError(
		http.StatusBadRequest,
		"ADMIN_FIELDS_MISSING",
		"Preencha todos os campos para criar um administrador",
		"",
	)

	ErrAccountAlreadyExists = NewBaseError(
		http.StatusConflict,
		"ACCOUNT_ALREADY_EXISTS",
		"Este e-mail já está cadastrado",
		"",
	)

	ErrLastAdmin = NewBaseError(
		http.StatusConflict,
		"LAST_ADMIN",
		"Não é possível remover o único administrador",
		"",
	)

	ErrAdminNotFound = NewBaseError(
		http.StatusNotFound,
		"ADMIN_NOT_FOUND",
		"Administrador não encontrado",
		"",
	)

	// Settings-related errors
	ErrSettingsNotFound = NewBaseError(
		http.StatusNotFound,
		"SETTINGS_NOT_FOUND",
		"Configurações não encontradas",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Dados inválidos",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Falha na transação do banco de dados",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erro interno do sistema",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Acesso negado",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso não encontrado",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Falha ao executar operação no banco de dados"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
