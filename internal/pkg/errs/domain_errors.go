package errs

// Error kinds surfaced at the service boundary. Specific errors are marked with one of these.
var (
	ErrInvalidWindow           = New("invalid window")
	ErrResourceNotFound        = New("resource not found")
	ErrNotFound                = New("not found")
	ErrStaleConflict           = New("stale conflict")
	ErrConflictAlreadyTerminal = New("conflict already terminal")
	ErrUnauthorizedResponder   = New("unauthorized responder")
	ErrForbidden               = New("forbidden")
	ErrPolicyViolation         = New("policy violation")
	ErrInvalidInput            = New("invalid input")

	// Idempotency errors
	ErrIdempotencyMismatch   = New("idempotency key reused with a different request")
	ErrIdempotencyInProgress = New("idempotency in progress")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)

type Kind string

const (
	KindInvalidWindow           Kind = "InvalidWindow"
	KindResourceNotFound        Kind = "ResourceNotFound"
	KindNotFound                Kind = "NotFound"
	KindStaleConflict           Kind = "StaleConflict"
	KindConflictAlreadyTerminal Kind = "ConflictAlreadyTerminal"
	KindUnauthorizedResponder   Kind = "UnauthorizedResponder"
	KindForbidden               Kind = "Forbidden"
	KindPolicyViolation         Kind = "PolicyViolation"
	KindInvalidInput            Kind = "InvalidInput"
	KindIdempotencyConflict     Kind = "IdempotencyConflict"
	KindInternal                Kind = "Internal"
)

var kindOrder = []struct {
	ref  error
	kind Kind
}{
	{ErrInvalidWindow, KindInvalidWindow},
	{ErrResourceNotFound, KindResourceNotFound},
	{ErrNotFound, KindNotFound},
	{ErrStaleConflict, KindStaleConflict},
	{ErrConflictAlreadyTerminal, KindConflictAlreadyTerminal},
	{ErrUnauthorizedResponder, KindUnauthorizedResponder},
	{ErrForbidden, KindForbidden},
	{ErrPolicyViolation, KindPolicyViolation},
	{ErrInvalidInput, KindInvalidInput},
	{ErrIdempotencyMismatch, KindIdempotencyConflict},
	{ErrIdempotencyInProgress, KindIdempotencyConflict},
}

// KindOf classifies err by the first kind marker it carries.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	for _, k := range kindOrder {
		if Is(err, k.ref) {
			return k.kind
		}
	}
	return KindInternal
}

// WithKind creates a sentinel error that is classified as kind.
func WithKind(msg string, kind error) error {
	return Mark(New(msg), kind)
}
