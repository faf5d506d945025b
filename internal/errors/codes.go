package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken       ErrorCode = "AUTH_001"
	AuthExpiredToken       ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat ErrorCode = "AUTH_003"
	AuthForbidden          ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound           ErrorCode = "ACCOUNT_001"
	AccountInvalidType        ErrorCode = "ACCOUNT_002"
	AccountCreditFieldsMisuse ErrorCode = "ACCOUNT_003"
	AccountHasTransactions    ErrorCode = "ACCOUNT_004"
	AccountNotCredit          ErrorCode = "ACCOUNT_005"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount ErrorCode = "TRANSACTION_002"
	TransactionInvalidType   ErrorCode = "TRANSACTION_003"
	TransactionSameAccount   ErrorCode = "TRANSACTION_004"
	TransactionMissingTarget ErrorCode = "TRANSACTION_005"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound      ErrorCode = "CATEGORY_001"
	CategoryAlreadyExists ErrorCode = "CATEGORY_002"
	CategoryInUse         ErrorCode = "CATEGORY_003"
	CategorySystemLocked  ErrorCode = "CATEGORY_004"
)

// Shared credit limit error codes (SHARED_LIMIT_*)
const (
	SharedLimitNotFound      ErrorCode = "SHARED_LIMIT_001"
	SharedLimitInvalidAmount ErrorCode = "SHARED_LIMIT_002"
	SharedLimitMemberInvalid ErrorCode = "SHARED_LIMIT_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",
	AuthForbidden:          "Insufficient permissions to access this resource",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Account errors
	AccountNotFound:           "Account not found",
	AccountInvalidType:        "Invalid account type",
	AccountCreditFieldsMisuse: "Credit fields are only valid on credit accounts",
	AccountHasTransactions:    "Account has transactions and cannot be deleted; archive it instead",
	AccountNotCredit:          "Account is not a credit card",

	// Transaction errors
	TransactionNotFound:      "Transaction not found",
	TransactionInvalidAmount: "Transaction amount must be positive",
	TransactionInvalidType:   "Invalid transaction type",
	TransactionSameAccount:   "Transfer source and destination must differ",
	TransactionMissingTarget: "Transfer destination account is required",

	// Category errors
	CategoryNotFound:      "Category not found",
	CategoryAlreadyExists: "A category with this name and type already exists",
	CategoryInUse:         "Category is referenced by transactions and cannot be deleted",
	CategorySystemLocked:  "System categories cannot be modified or deleted",

	// Shared credit limit errors
	SharedLimitNotFound:      "Shared credit limit not found",
	SharedLimitInvalidAmount: "Shared credit limit total must not be negative",
	SharedLimitMemberInvalid: "Only credit card accounts can join a shared credit limit",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
