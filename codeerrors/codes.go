package codeerrors

// codes
const (
	CodeInvalidArgument = "invalid_argument"
	CodeNotFound        = "not_found"
	CodeOutOfRange      = "out_of_range"
)

// predefined errors
var (
	ErrInvalidArgument = Error{Code: CodeInvalidArgument}
	ErrNotFound        = Error{Code: CodeNotFound}
	ErrOutOfRange      = Error{Code: CodeOutOfRange}
)
