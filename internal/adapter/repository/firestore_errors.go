package repository

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// isMissingIndex reports whether a query failed because the composite index
// it needs does not exist. Callers fall back to an unordered fetch.
func isMissingIndex(err error) bool {
	return status.Code(err) == codes.FailedPrecondition
}

func isUnavailable(err error) bool {
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded:
		return true
	}
	return false
}
