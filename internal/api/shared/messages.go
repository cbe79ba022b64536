package shared

// Client-facing messages. Handlers and middleware share these so the same
// failure always reads the same way.
const (
	MsgUnauthenticated    = "Access denied. Invalid or missing token."
	MsgInvalidCredentials = "Invalid credentials"
	MsgInvalidInput       = "Invalid input"
	MsgInvalidTaskID      = "Invalid task ID format"
	MsgForbidden          = "Access denied"
	MsgTaskNotFound       = "Task not found"
	MsgUserNotFound       = "User not found"
	MsgNotFound           = "Resource not found"
	MsgEmailExists        = "User already exists with this email"
	MsgDuplicate          = "Resource already exists"
	MsgTooLarge           = "Request entity too large"
	MsgTooManyRequests    = "Too many requests, please try again later."
	MsgInternal           = "Internal server error"
)
