// SPDX-License-Identifier: MIT

package logger

// Standard field names for consistent structured logging.
// Use these constants instead of raw strings.
const (
	// Identity and context
	FieldSessionID = "session_id"

	// Commands
	FieldCommand = "command"
	FieldIdent   = "ident"
	FieldLine    = "line"
	FieldScript  = "script"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError  = "error"
	FieldStatus = "status"

	// Matrix shape and size
	FieldRows = "rows"
	FieldCols = "cols"
	FieldNNZ  = "nnz"

	// Process
	FieldHeap = "heap_bytes"
	FieldRSS  = "rss_bytes"
)
