package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgInvalidCategory = "Invalid category '%s'. Valid options: score, level, daily"

	// Data management error messages
	ErrMsgExportFailed   = "Failed to export garden data"
	ErrMsgReadBodyFailed = "Failed to read request body"
	ErrMsgResetFailed    = "Failed to reset garden"

	// Streaming error messages
	ErrMsgUpgradeFailed = "Failed to open event stream"
)

// Success messages for API responses
const (
	MsgImportSuccess = "Garden data imported"
	MsgResetSuccess  = "Garden reset"
)

// Log messages
const (
	LogMsgCommandFailed     = "Command failed"
	LogMsgCommandSucceeded  = "Command succeeded"
	LogMsgDecodeFailed      = "Failed to decode request"
	LogMsgRequestDecoded    = "Request decoded"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteFailed       = "Failed to write response buffer"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgStreamOpened      = "Event stream opened"
	LogMsgStreamClosed      = "Event stream closed"
	LogMsgStreamWriteFailed = "Event stream write failed"
)

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgStoreFailed    = "state store unreachable"
)
