package response

import "net/http"

// Business error table. Codes are stable across releases; the HTTP status is
// what the client sees on the wire.
var (
	ErrInvalidRequest = newError(40000, http.StatusBadRequest, "invalid request")
	ErrTeamSize       = newError(40001, http.StatusBadRequest, "Invalid data. Team needs 2-4 members.")
	ErrTeamExists     = newError(40002, http.StatusBadRequest, "Team name already exists")
	ErrDuplicateEmail = newError(40003, http.StatusBadRequest, "Duplicate emails in team")
	ErrMemberTaken    = newError(40004, http.StatusBadRequest, "member already registered with another team")
	ErrAlreadyExists  = newError(40005, http.StatusBadRequest, "already exists")
	ErrHasSubmitted   = newError(40006, http.StatusBadRequest, "Team has already submitted")

	ErrUnauthorized    = newError(40100, http.StatusUnauthorized, "unauthorized")
	ErrTokenInvalid    = newError(40101, http.StatusUnauthorized, "missing or invalid session")
	ErrInvalidPassword = newError(40102, http.StatusUnauthorized, "Invalid credentials")
	ErrWrongPassword   = newError(40103, http.StatusUnauthorized, "Current password is incorrect")

	ErrForbidden         = newError(40300, http.StatusForbidden, "forbidden")
	ErrSubmissionsClosed = newError(40301, http.StatusForbidden, "Submissions are currently closed")

	ErrNotFound      = newError(40400, http.StatusNotFound, "not found")
	ErrTeamNotFound  = newError(40401, http.StatusNotFound, "Team not found")
	ErrResultsNotOut = newError(40402, http.StatusNotFound, "Results not yet available for this team")
	ErrAdminNotFound = newError(40403, http.StatusNotFound, "Admin not found")

	ErrTooManyRequests = newError(42900, http.StatusTooManyRequests, "too many requests, slow down")

	ErrDatabase = newError(50000, http.StatusInternalServerError, "internal error")
	ErrInternal = newError(50001, http.StatusInternalServerError, "internal error")
)
