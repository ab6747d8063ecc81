package timezone

import "time"

// A barbearia opera em um único fuso (configurável via APP_TIMEZONE).
const DefaultTimezone = "America/Sao_Paulo"

var appTimezone = DefaultTimezone

// Configure define o fuso oficial da aplicação. Chamado uma vez no boot.
func Configure(tz string) {
	if IsValid(tz) {
		appTimezone = tz
	}
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location() *time.Location {
	if loc, err := time.LoadLocation(appTimezone); err == nil {
		return loc
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// Today retorna a data de hoje à meia-noite no fuso da aplicação.
func Today() time.Time {
	now := Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
