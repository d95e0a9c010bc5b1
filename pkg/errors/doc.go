// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Every failure that leaves the food repository is a *StructuredError
// carrying one of three codes: ErrCodeInvalidRequest, ErrCodeNotFound or
// ErrCodeInternal. The HTTP layer maps codes to status without inspecting
// error text.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInternal,
//	    "food store insert failed",
//	    cause,
//	    map[string]any{
//	        "operation": "insert",
//	        "id": id.Hex(),
//	    },
//	)
package errors
