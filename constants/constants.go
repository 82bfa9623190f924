package constants

const (
	ROLE_CUSTOMER = "customer"
	ROLE_OWNER    = "owner"
)

const (
	ERROR_INTERNAL_ERROR      = "An unexpected error occurred"
	ERROR_TRANSIENT           = "Booking could not be completed right now, please try again"
	MISSING_TOKEN             = "Access denied. No token provided."
	INVALID_TOKEN             = "Invalid token."
	FORBIDDEN_ROLE            = "Access denied for this role"
	INVALID_REQUEST_BODY      = "Invalid request body"
	INVALID_QUERY             = "Invalid query parameters"
	BOOKING_CREATED           = "Booking created successfully"
	BOOKING_CANCELLED         = "Booking cancelled successfully"
	RESTAURANT_NOT_FOUND      = "Restaurant not found or not active"
	USER_NOT_FOUND            = "User not found"
	BOOKING_NOT_FOUND         = "Booking not found or you don't have permission to view it"
	BOOKING_ALREADY_CANCELLED = "Booking is already cancelled"
	CANNOT_CANCEL_PAST        = "Cannot cancel past bookings"
	CANNOT_BOOK_PAST          = "Cannot book a table for past dates"
)

// Date and time layouts used on the wire and in the ledger.
const (
	DATE_LAYOUT = "2006-01-02"
	TIME_LAYOUT = "15:04"
)
