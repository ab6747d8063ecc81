package validators

import "regexp"

// Formato internacional: '+999999999', até 15 dígitos.
var phoneRegex = regexp.MustCompile(`^\+?1?\d{9,15}$`)

func IsPhoneValid(phone string) bool {
	if phone == "" {
		return true // telefone é opcional
	}
	return phoneRegex.MatchString(phone)
}
