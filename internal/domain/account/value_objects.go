package account

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"library-backend/internal/pkg/errs"
)

var (
	ErrInvalidEmail     = errs.NewCategorized("invalid email format", errs.ErrValidation)
	ErrInvalidRole      = errs.NewCategorized("invalid role", errs.ErrValidation)
	ErrInvalidName      = errs.NewCategorized("name must have between 3 and 255 characters", errs.ErrValidation)
	ErrInvalidCPF       = errs.NewCategorized("cpf must have 11 or 14 digits", errs.ErrValidation)
	ErrInvalidPhone     = errs.NewCategorized("phone must have between 10 and 20 digits", errs.ErrValidation)
	ErrPasswordTooShort = errs.NewCategorized("password must be at least 6 characters long", errs.ErrValidation)
	ErrBirthDateFuture  = errs.NewCategorized("birth date cannot be in the future", errs.ErrValidation)
)

const MinPasswordLength = 6

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

// NewEmail trims and lowercases; uniqueness is checked against the lowercased form.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

// ReconstructEmail skips validation for values read back from storage.
func ReconstructEmail(s string) Email {
	return Email{value: s}
}

func (e Email) Value() string {
	return e.value
}

type CPF struct {
	value string
}

// NewCPF keeps digits only. 14 digits are accepted for company registrations.
func NewCPF(s string) (CPF, error) {
	digits := onlyDigits(s)
	if len(digits) != 11 && len(digits) != 14 {
		return CPF{}, ErrInvalidCPF
	}
	return CPF{value: digits}, nil
}

func ReconstructCPF(s string) CPF {
	return CPF{value: s}
}

func (c CPF) Value() string {
	return c.value
}

func ValidatePassword(raw string) error {
	if utf8.RuneCountInString(raw) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// Identity holds the personal data shared by every kind of account.
type Identity struct {
	Name      string
	Email     Email
	CPF       CPF
	BirthDate *time.Time
	Address   string
	Phone     string
}

type IdentityInput struct {
	Name      string
	Email     string
	CPF       string
	BirthDate *time.Time
	Address   string
	Phone     string
}

func NewIdentity(in IdentityInput, today time.Time) (Identity, error) {
	name := strings.TrimSpace(in.Name)
	if n := utf8.RuneCountInString(name); n < 3 || n > 255 {
		return Identity{}, ErrInvalidName
	}

	email, err := NewEmail(in.Email)
	if err != nil {
		return Identity{}, err
	}

	cpf, err := NewCPF(in.CPF)
	if err != nil {
		return Identity{}, err
	}

	phone := onlyDigits(in.Phone)
	if phone != "" && (len(phone) < 10 || len(phone) > 20) {
		return Identity{}, ErrInvalidPhone
	}

	if in.BirthDate != nil && in.BirthDate.After(today) {
		return Identity{}, ErrBirthDateFuture
	}

	return Identity{
		Name:      name,
		Email:     email,
		CPF:       cpf,
		BirthDate: in.BirthDate,
		Address:   strings.TrimSpace(in.Address),
		Phone:     phone,
	}, nil
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
