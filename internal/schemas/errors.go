package schemas

// CustomError is the error body returned by every failing route
// Code is a stable identifier clients can switch on
type CustomError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

var (
	BadRequest = &CustomError{
		Message: "The request body is invalid. Please check the request body and try again.",
		Code:    "ERR-001",
	}
	EmailTaken = &CustomError{
		Message: "The email is already registered. Please try another email.",
		Code:    "ERR-002",
	}
	CategoryExists = &CustomError{
		Message: "A category with this name already exists. Please try another name.",
		Code:    "ERR-003",
	}
	UserNotFound = &CustomError{
		Message: "The user was not found. Please check the identifier and try again.",
		Code:    "ERR-004",
	}
	TokenNotFound = &CustomError{
		Message: "The confirmation token was not found. Please request a new confirmation link.",
		Code:    "ERR-005",
	}
	InvalidCredentials = &CustomError{
		Message: "The credentials are invalid. Please check the credentials and try again.",
		Code:    "ERR-006",
	}
	UserNotActivated = &CustomError{
		Message: "User account is disabled or haven't been activated.",
		Code:    "ERR-007",
	}
	CategoryNotFound = &CustomError{
		Message: "The category was not found. Please check the identifier and try again.",
		Code:    "ERR-008",
	}
	TransactionNotFound = &CustomError{
		Message: "The transaction was not found. Please check the identifier and try again.",
		Code:    "ERR-009",
	}
	NoFieldsChanged = &CustomError{
		Message: "No fields were changed.",
		Code:    "ERR-010",
	}
	InvariantViolation = &CustomError{
		Message: "The stored data is inconsistent. Please contact support.",
		Code:    "ERR-011",
	}
	MailDispatchFailed = &CustomError{
		Message: "The confirmation email could not be queued. Please request a new confirmation link later.",
		Code:    "ERR-012",
	}
	DatabaseError = &CustomError{
		Message: "A database error occurred. Please try again later.",
		Code:    "ERR-013",
	}
	Unauthorized = &CustomError{
		Message: "The request is unauthorized. Please login to your account.",
		Code:    "ERR-014",
	}
	InternalServerError = &CustomError{
		Message: "An internal server error occurred. Please try again later.",
		Code:    "ERR-015",
	}
	NotFound = &CustomError{
		Message: "The requested resource was not found.",
		Code:    "ERR-016",
	}
	CategoryInUse = &CustomError{
		Message: "The category is still used by transactions and cannot be deleted.",
		Code:    "ERR-017",
	}
)
