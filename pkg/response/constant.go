package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	InternalServerErrorCode = 500

	// DateTimeFormat matches the ISO-8601 timestamps the mobile client parses.
	DateTimeFormat = "2006-01-02T15:04:05.000Z07:00"
)
