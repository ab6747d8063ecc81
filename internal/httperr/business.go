package httperr

import "errors"

// Códigos de negócio usados pelo núcleo de agendamento.
// Todos recuperáveis: viram resposta 4xx, nunca derrubam o processo.
const (
	CodePastDate           = "past_date"
	CodeNoSchedule         = "no_schedule"
	CodeBarberUnavailable  = "barber_unavailable"
	CodeOutsideHours       = "outside_working_hours"
	CodeBreakTime          = "break_time"
	CodeExceedsHours       = "exceeds_working_hours"
	CodeTimeConflict       = "time_conflict"
	CodeInvalidTransition  = "invalid_transition"
	CodeInvalidDateOrTime  = "invalid_date_or_time"
	CodeServiceNotFound    = "service_not_found"
	CodeBarberNotFound     = "barber_not_found"
	CodeDuplicateSchedule  = "duplicate_schedule"
	CodeDuplicateException = "duplicate_exception"
)

type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func ErrBusinessf(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extrai o código de negócio, se houver.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
