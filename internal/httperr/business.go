package httperr

import "errors"

// Business error codes surfaced by the scheduling engine. These are value
// outcomes, not process failures: the caller decides whether to retry or
// report.
const (
	CodeInvalidTimeRange    = "invalid_time_range"
	CodeDoctorUnavailable   = "doctor_unavailable"
	CodeTimeConflict        = "time_conflict"
	CodeAppointmentNotFound = "appointment_not_found"
	CodeInvalidDate         = "invalid_date"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode returns the code of a business error, or "" if err is not one.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
