package contract

type PlanErrorCode string

const (
	ErrNotFound   PlanErrorCode = "NOT_FOUND"
	ErrValidation PlanErrorCode = "VALIDATION"
	ErrStaleBatch PlanErrorCode = "STALE_BATCH"
	ErrStorage    PlanErrorCode = "STORAGE"
	ErrInternal   PlanErrorCode = "INTERNAL_ERROR"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}
