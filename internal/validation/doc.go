// Sociolens - Social Media Sentiment Analytics
// Copyright 2026 Aris V. (arisvel)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arisvel/sociolens

// Package validation provides struct validation using go-playground/validator v10.
//
// This package wraps the go-playground/validator library to provide a thread-safe
// singleton validator instance with user-friendly error messages. It integrates
// with the application's API error format for consistent error responses.
//
// # Overview
//
// The package provides:
//   - Thread-safe singleton validator (initialized once, cached struct info)
//   - Error translation to human-readable messages
//   - APIError conversion matching the application's error format
//   - Item-count messages for slice bounds (selection limits)
//   - Future v11 compatibility with WithRequiredStructEnabled
//
// # Quick Start
//
//	type compareCountriesRequest struct {
//	    Countries []string `validate:"required,min=1,max=5,dive,required,max=64"`
//	}
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    req := compareCountriesRequest{
//	        Countries: parseCommaSeparated(r.URL.Query().Get("countries")),
//	    }
//
//	    if verr := validation.ValidateStruct(&req); verr != nil {
//	        apiErr := verr.ToAPIError()
//	        respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	        return
//	    }
//
//	    // proceed with valid request
//	}
//
// # Common Validation Tags
//
// String validations:
//   - required: Field must not be empty
//   - min=n: Minimum length n characters
//   - max=n: Maximum length n characters
//
// Numeric validations:
//   - gte=n: Greater than or equal to n
//   - lte=n: Less than or equal to n
//   - gt=n: Greater than n
//   - lt=n: Less than n
//
// Slice validations:
//   - min=n: Minimum n items
//   - max=n: Maximum n items
//   - dive: Apply the following rules to each element
//
// Enum validations:
//   - oneof=a b c: Must be one of the specified values
//
// # Error Types
//
// ValidationError represents a single field validation failure:
//
//	type ValidationError struct {
//	    Field()   string      // Struct field name
//	    Tag()     string      // Validation tag that failed
//	    Param()   string      // Tag parameter (e.g., "5" for max=5)
//	    Value()   interface{} // Actual value that failed
//	    Error()   string      // Human-readable message
//	}
//
// RequestValidationError aggregates multiple field errors:
//
//	type RequestValidationError struct {
//	    Errors() []ValidationError
//	    Error()  string           // Combined message
//	    ToAPIError() *APIError    // Convert to API error format
//	}
//
// # API Error Integration
//
// The ToAPIError method produces errors matching the application format:
//
//	// Single field error
//	{
//	    "code": "VALIDATION_ERROR",
//	    "message": "Year must be less than or equal to 9999",
//	    "details": {"field": "Year", "tag": "lte", "value": 10000}
//	}
//
//	// Multiple field errors
//	{
//	    "code": "VALIDATION_ERROR",
//	    "message": "Year: must be less than or equal to 9999; Day: must be less than or equal to 31",
//	    "details": {
//	        "fields": [
//	            {"field": "Year", "tag": "lte", "message": "..."},
//	            {"field": "Day", "tag": "lte", "message": "..."}
//	        ]
//	    }
//	}
//
// # Error Message Translation
//
// Human-readable messages are generated for common validation tags:
//
//	required   -> "Countries is required"
//	gte=1      -> "Limit must be greater than or equal to 1"
//	lte=10000  -> "Limit must be less than or equal to 10000"
//	min=1      -> "Countries must contain at least 1 items"
//	max=5      -> "Countries must contain at most 5 items"
//	max=64     -> "Platform must be at most 64 characters"
//	oneof=a b  -> "Format must be one of: a b"
//
// # Struct Tag Examples
//
// Query filter validation:
//
//	type filterParams struct {
//	    Platform string `validate:"omitempty,max=64"`
//	    Country  string `validate:"omitempty,max=64"`
//	    Year     int    `validate:"omitempty,gte=1,lte=9999"`
//	    Month    string `validate:"omitempty,max=32"`
//	    Day      int    `validate:"omitempty,gte=1,lte=31"`
//	}
//
// Token frequency limit:
//
//	type tokensRequest struct {
//	    Limit int `validate:"omitempty,gte=1,lte=10000"`
//	}
//
// # Thread Safety
//
// The singleton validator is initialized once and safe for concurrent use:
//
//	validate := validation.GetValidator()  // Thread-safe
//	err := validation.ValidateStruct(&req) // Thread-safe
//
// # Performance
//
// The validator caches struct reflection information:
//   - First validation of a struct type: ~1ms (reflection + caching)
//   - Subsequent validations: ~10us (cached)
//   - Memory: ~500 bytes per cached struct type
//
// # See Also
//
//   - internal/api: Request handlers using validation
//   - github.com/go-playground/validator/v10: Underlying library
package validation
