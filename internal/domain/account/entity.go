package account

import (
	"time"

	"github.com/google/uuid"
)

// Creator records who registered an account. Nil for self-registration.
type Creator struct {
	Email string
	Role  Role
}

type Account struct {
	id           uuid.UUID
	identity     Identity
	passwordHash string
	role         Role
	createdBy    *Creator
	createdAt    time.Time
	updatedAt    time.Time
}

func NewAccount(identity Identity, passwordHash string, role Role, createdBy *Creator, now time.Time) (*Account, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &Account{
		id:           uuid.New(),
		identity:     identity,
		passwordHash: passwordHash,
		role:         role,
		createdBy:    createdBy,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructAccount(id uuid.UUID, identity Identity, passwordHash string, role Role, createdBy *Creator, createdAt, updatedAt time.Time) *Account {
	return &Account{
		id:           id,
		identity:     identity,
		passwordHash: passwordHash,
		role:         role,
		createdBy:    createdBy,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (a *Account) ID() uuid.UUID        { return a.id }
func (a *Account) Identity() Identity   { return a.identity }
func (a *Account) Email() Email         { return a.identity.Email }
func (a *Account) Name() string         { return a.identity.Name }
func (a *Account) PasswordHash() string { return a.passwordHash }
func (a *Account) Role() Role           { return a.role }
func (a *Account) CreatedBy() *Creator  { return a.createdBy }
func (a *Account) CreatedAt() time.Time { return a.createdAt }
func (a *Account) UpdatedAt() time.Time { return a.updatedAt }

// Profile is a partial update; nil or empty fields keep the current value.
type Profile struct {
	Name         *string
	Email        *string
	CPF          *string
	BirthDate    *time.Time
	Address      *string
	Phone        *string
	PasswordHash *string
}

func (a *Account) ApplyProfile(p Profile, now time.Time) error {
	in := IdentityInput{
		Name:      a.identity.Name,
		Email:     a.identity.Email.Value(),
		CPF:       a.identity.CPF.Value(),
		BirthDate: a.identity.BirthDate,
		Address:   a.identity.Address,
		Phone:     a.identity.Phone,
	}
	if p.Name != nil && *p.Name != "" {
		in.Name = *p.Name
	}
	if p.Email != nil && *p.Email != "" {
		in.Email = *p.Email
	}
	if p.CPF != nil && *p.CPF != "" {
		in.CPF = *p.CPF
	}
	if p.BirthDate != nil {
		in.BirthDate = p.BirthDate
	}
	if p.Address != nil && *p.Address != "" {
		in.Address = *p.Address
	}
	if p.Phone != nil && *p.Phone != "" {
		in.Phone = *p.Phone
	}

	identity, err := NewIdentity(in, now)
	if err != nil {
		return err
	}
	a.identity = identity
	if p.PasswordHash != nil && *p.PasswordHash != "" {
		a.passwordHash = *p.PasswordHash
	}
	a.updatedAt = now
	return nil
}
