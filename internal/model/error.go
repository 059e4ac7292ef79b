package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON           = "INVALID_JSON"
	ErrCodeMissingField          = "MISSING_FIELD"
	ErrCodeProductNotFound       = "PRODUCT_NOT_FOUND"
	ErrCodeInvalidQuantity       = "INVALID_QUANTITY"
	ErrCodeInvalidOption         = "INVALID_OPTION"
	ErrCodeInvalidGiftCardAmount = "INVALID_GIFT_CARD_AMOUNT"
	ErrCodeInvalidShipping       = "INVALID_SHIPPING_METHOD"
	ErrCodeEmptyCart             = "EMPTY_CART"
	ErrCodeInvalidSettings       = "INVALID_SETTINGS"
	ErrCodeOrderNotFound         = "ORDER_NOT_FOUND"
	ErrCodeInvalidEmail          = "INVALID_EMAIL"
	ErrCodeInvalidQuery          = "INVALID_QUERY"
	ErrCodeUnauthorised          = "UNAUTHORIZED"
	ErrCodeInternalError         = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound       = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrInvalidQuantity       = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be between 1 and 99")
	ErrInvalidSize           = NewDomainError(ErrCodeInvalidOption, "Size is not offered for this product")
	ErrInvalidColor          = NewDomainError(ErrCodeInvalidOption, "Colour is not offered for this product")
	ErrInvalidGiftCardAmount = NewDomainError(ErrCodeInvalidGiftCardAmount, "Gift card amount must be a whole number of dollars between 10 and 1000")
	ErrInvalidShipping       = NewDomainError(ErrCodeInvalidShipping, "Shipping method must be standard or express")
	ErrEmptyCart             = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
	ErrOrderNotFound         = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrInvalidEmail          = NewDomainError(ErrCodeInvalidEmail, "A valid email address is required")
)

// NewInvalidSettingsError reports a rejected settings field.
func NewInvalidSettingsError(message string) *DomainError {
	return NewDomainError(ErrCodeInvalidSettings, message)
}

// NewInvalidQueryError reports a rejected catalogue query parameter.
func NewInvalidQueryError(message string) *DomainError {
	return NewDomainError(ErrCodeInvalidQuery, message)
}
