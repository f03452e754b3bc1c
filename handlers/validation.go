package handlers

import (
	"fmt"
	"log"
	"regexp"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateRegistration checks the registration form fields and returns
// per-field error messages.
func ValidateRegistration(name, email, password string) (map[string]string, bool) {
	errors := make(map[string]string)
	const maxName = 50
	const maxEmail = 100
	const maxPassword = 100

	if len(name) == 0 {
		errors["name"] = "Name cannot be empty"
	} else if len(name) > maxName {
		errors["name"] = fmt.Sprintf("Name cannot be longer than %d characters", maxName)
	}

	if len(email) == 0 {
		errors["email"] = "Email cannot be empty"
	} else if len(email) > maxEmail {
		errors["email"] = fmt.Sprintf("Email cannot be longer than %d characters", maxEmail)
	} else if !emailRegex.MatchString(email) {
		errors["email"] = "Invalid email format"
	}

	if len(password) < 8 {
		errors["password"] = "Password must be at least 8 characters long"
	} else if len(password) > maxPassword {
		errors["password"] = fmt.Sprintf("Password cannot be longer than %d characters", maxPassword)
	}

	if len(errors) > 0 {
		log.Println("Validation errors:", errors)
		return errors, false
	}
	return nil, true
}

// ValidateEmail checks a bare email address, used by the newsletter and
// contact forms.
func ValidateEmail(email string) bool {
	return len(email) > 0 && len(email) <= 100 && emailRegex.MatchString(email)
}
