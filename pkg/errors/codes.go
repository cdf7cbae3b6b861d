package errors

import (
	"net/http"
	"strings"
)

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common Error Codes
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeNotFound           ErrorCode = "COMMON_003"
	ErrCodeConflict           ErrorCode = "COMMON_004"
	ErrCodeTooManyRequests    ErrorCode = "COMMON_005"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_006"
	ErrCodeTimeout            ErrorCode = "COMMON_007"
	ErrCodeValidation         ErrorCode = "COMMON_008"
	ErrCodeSerialization      ErrorCode = "COMMON_009"
	ErrCodeDatabaseError      ErrorCode = "COMMON_010"
	ErrCodeCacheError         ErrorCode = "COMMON_011"
	ErrCodeExternalService    ErrorCode = "COMMON_012"

	ErrCodeOK      ErrorCode = "OK"
	ErrCodeUnknown ErrorCode = "UNKNOWN"
)

// Geo Resolution Error Codes
const (
	ErrCodeGeoNoMatch        ErrorCode = "GEO_001"
	ErrCodeGeoEmptyCandidate ErrorCode = "GEO_002"
)

// Overview Map Error Codes
const (
	ErrCodeMapQueryFailed      ErrorCode = "MAP_001"
	ErrCodeMapInvalidDateRange ErrorCode = "MAP_002"
	ErrCodeMapInvalidScope     ErrorCode = "MAP_003"
	ErrCodeWatchlistNotFound   ErrorCode = "MAP_004"
	ErrCodeImpactQueryFailed   ErrorCode = "MAP_005"
)

// News Enrichment Error Codes
const (
	ErrCodeEnrichmentUnavailable ErrorCode = "NEWS_001"
	ErrCodeEnrichmentTimeout     ErrorCode = "NEWS_002"
	ErrCodeEnrichmentParseError  ErrorCode = "NEWS_003"
)

// Ingest Error Codes
const (
	ErrCodeIngestDecodeFailed ErrorCode = "INGEST_001"
	ErrCodeIngestWriteFailed  ErrorCode = "INGEST_002"
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeConflict:           http.StatusConflict,
	ErrCodeTooManyRequests:    http.StatusTooManyRequests,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeTimeout:            http.StatusGatewayTimeout,
	ErrCodeValidation:         http.StatusUnprocessableEntity,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeDatabaseError:      http.StatusInternalServerError,
	ErrCodeCacheError:         http.StatusInternalServerError,
	ErrCodeExternalService:    http.StatusBadGateway,

	ErrCodeGeoNoMatch:        http.StatusNotFound,
	ErrCodeGeoEmptyCandidate: http.StatusBadRequest,

	ErrCodeMapQueryFailed:      http.StatusInternalServerError,
	ErrCodeMapInvalidDateRange: http.StatusBadRequest,
	ErrCodeMapInvalidScope:     http.StatusBadRequest,
	ErrCodeWatchlistNotFound:   http.StatusNotFound,
	ErrCodeImpactQueryFailed:   http.StatusInternalServerError,

	ErrCodeEnrichmentUnavailable: http.StatusBadGateway,
	ErrCodeEnrichmentTimeout:     http.StatusGatewayTimeout,
	ErrCodeEnrichmentParseError:  http.StatusBadGateway,

	ErrCodeIngestDecodeFailed: http.StatusBadRequest,
	ErrCodeIngestWriteFailed:  http.StatusInternalServerError,
}

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:           "internal server error",
	ErrCodeBadRequest:         "bad request",
	ErrCodeNotFound:           "resource not found",
	ErrCodeConflict:           "resource conflict",
	ErrCodeTooManyRequests:    "too many requests",
	ErrCodeServiceUnavailable: "service unavailable",
	ErrCodeTimeout:            "request timeout",
	ErrCodeValidation:         "validation failed",
	ErrCodeSerialization:      "serialization failed",
	ErrCodeDatabaseError:      "database error",
	ErrCodeCacheError:         "cache error",
	ErrCodeExternalService:    "external service error",

	ErrCodeGeoNoMatch:        "no coordinates found for location",
	ErrCodeGeoEmptyCandidate: "empty location candidate",

	ErrCodeMapQueryFailed:      "overview map query failed",
	ErrCodeMapInvalidDateRange: "invalid date range",
	ErrCodeMapInvalidScope:     "invalid scope mode",
	ErrCodeWatchlistNotFound:   "watchlist not found",
	ErrCodeImpactQueryFailed:   "corporate impact query failed",

	ErrCodeEnrichmentUnavailable: "news enrichment source unavailable",
	ErrCodeEnrichmentTimeout:     "news enrichment source timed out",
	ErrCodeEnrichmentParseError:  "failed to parse news enrichment response",

	ErrCodeIngestDecodeFailed: "failed to decode ingest message",
	ErrCodeIngestWriteFailed:  "failed to persist ingested event",
}

// HTTPStatusForCode returns the HTTP status code for an ErrorCode.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// IsClientError returns true if the ErrorCode corresponds to a 4xx HTTP status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// IsServerError returns true if the ErrorCode corresponds to a 5xx HTTP status.
func IsServerError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 500 && status < 600
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}

//Personal.AI order the ending
