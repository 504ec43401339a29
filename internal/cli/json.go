package cli

import (
	"encoding/json"
	"errors"
	"os"
)

// jsonOutput is set by --json. Every command then writes exactly one
// Response to stdout and nothing else.
var jsonOutput bool

// Response is the envelope of all --json output.
type Response struct {
	OK       bool        `json:"ok"`
	Data     interface{} `json:"data,omitempty"`
	Error    *ErrorInfo  `json:"error,omitempty"`
	Warnings []Warning   `json:"warnings,omitempty"`
	Meta     *Meta       `json:"meta,omitempty"`
}

// ErrorInfo is a failed command's error. Code is one of the Err* constants.
type ErrorInfo struct {
	Code       string      `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	Suggestion string      `json:"suggestion,omitempty"`
}

// Warning is a non-fatal finding. Code is one of the Warn* constants.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Meta carries the result count and the date the command treated as today.
type Meta struct {
	Count int    `json:"count,omitempty"`
	Today string `json:"today,omitempty"`
}

func outputJSON(resp Response) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp)
}

func outputSuccess(data interface{}, meta *Meta) {
	outputSuccessWithWarnings(data, nil, meta)
}

func outputSuccessWithWarnings(data interface{}, warnings []Warning, meta *Meta) {
	outputJSON(Response{OK: true, Data: data, Warnings: warnings, Meta: meta})
}

func outputError(code, message string, details interface{}, suggestion string) {
	outputJSON(Response{Error: &ErrorInfo{
		Code:       code,
		Message:    message,
		Details:    details,
		Suggestion: suggestion,
	}})
}

func isJSONOutput() bool {
	return jsonOutput
}

// todayMeta returns response metadata stamped with the effective today.
func todayMeta(count int) *Meta {
	m := &Meta{Count: count}
	if !today.IsZero() {
		m.Today = today.String()
	}
	return m
}

// handleError reports a command failure. In JSON mode the envelope is
// written here and errHandled returned; otherwise Execute prints the
// returned codedError.
func handleError(code string, err error, suggestion string) error {
	if jsonOutput {
		outputError(code, err.Error(), nil, suggestion)
		return errHandled
	}
	return &codedError{Code: code, Err: err, Suggestion: suggestion}
}

func handleErrorMsg(code, message, suggestion string) error {
	return handleError(code, errors.New(message), suggestion)
}

func handleErrorWithDetails(code, message, suggestion string, details interface{}) error {
	if jsonOutput {
		outputError(code, message, details, suggestion)
		return errHandled
	}
	return &codedError{Code: code, Err: errors.New(message), Suggestion: suggestion}
}
