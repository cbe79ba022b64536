package validation

import (
	"io"
	"strings"

	"github.com/phrazzld/tasks-api/internal/domain"
)

type registrationBody struct {
	Name     Field[string] `json:"name"`
	Email    Field[string] `json:"email"`
	Password Field[string] `json:"password"`
}

type credentialsBody struct {
	Email    Field[string] `json:"email"`
	Password Field[string] `json:"password"`
}

// DecodeRegistration reads a registration payload. The name is trimmed and
// the email trimmed and lower-cased before their rules are checked.
func DecodeRegistration(r io.Reader) (domain.Registration, error) {
	var body registrationBody
	if err := decodeJSON(r, &body); err != nil {
		return domain.Registration{}, err
	}

	name, err := text("name", body.Name, true)
	if err != nil {
		return domain.Registration{}, err
	}
	name = strings.TrimSpace(name)
	if err := check("name", name, "required,min=2,max=50"); err != nil {
		return domain.Registration{}, err
	}

	email, err := decodeEmail(body.Email)
	if err != nil {
		return domain.Registration{}, err
	}

	password, err := text("password", body.Password, true)
	if err != nil {
		return domain.Registration{}, err
	}
	if err := check("password", password, "required,min=6,max=128"); err != nil {
		return domain.Registration{}, err
	}

	return domain.Registration{Name: name, Email: email, Password: password}, nil
}

// DecodeCredentials reads a login payload.
func DecodeCredentials(r io.Reader) (domain.Credentials, error) {
	var body credentialsBody
	if err := decodeJSON(r, &body); err != nil {
		return domain.Credentials{}, err
	}

	email, err := decodeEmail(body.Email)
	if err != nil {
		return domain.Credentials{}, err
	}

	password, err := text("password", body.Password, true)
	if err != nil {
		return domain.Credentials{}, err
	}
	if err := check("password", password, "required"); err != nil {
		return domain.Credentials{}, err
	}

	return domain.Credentials{Email: email, Password: password}, nil
}

func decodeEmail(f Field[string]) (string, error) {
	email, err := text("email", f, true)
	if err != nil {
		return "", err
	}
	email = domain.NormalizeEmail(email)
	if err := check("email", email, "required,email"); err != nil {
		return "", err
	}
	return email, nil
}
