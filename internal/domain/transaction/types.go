package transaction

import (
	"strings"

	"library-backend/internal/pkg/errs"
)

type Kind string

const (
	KindPurchase Kind = "PURCHASE"
	KindRental   Kind = "RENTAL"
)

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusFinished   Status = "FINISHED"
	StatusCancelled  Status = "CANCELLED"
)

var ErrInvalidStatus = errs.NewCategorized("invalid transaction status", errs.ErrValidation)

var kindAliases = map[string]Kind{
	"PURCHASE": KindPurchase,
	"COMPRA":   KindPurchase,
	"RENTAL":   KindRental,
	"ALUGUEL":  KindRental,
}

var statusAliases = map[string]Status{
	"PENDING":      StatusPending,
	"PENDENTE":     StatusPending,
	"IN_PROGRESS":  StatusInProgress,
	"EM_ANDAMENTO": StatusInProgress,
	"FINISHED":     StatusFinished,
	"FINALIZADA":   StatusFinished,
	"CANCELLED":    StatusCancelled,
	"CANCELADA":    StatusCancelled,
}

func (k Kind) String() string   { return string(k) }
func (s Status) String() string { return string(s) }

func (k Kind) IsValid() bool {
	return k == KindPurchase || k == KindRental
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusFinished, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusFinished || s == StatusCancelled
}

// ParseKind returns false for unknown input; callers treat that as "not supplied".
func ParseKind(s string) (Kind, bool) {
	k, ok := kindAliases[normalizeEnum(s)]
	return k, ok
}

func ParseStatus(s string) (Status, error) {
	st, ok := statusAliases[normalizeEnum(s)]
	if !ok {
		return "", errs.Mark(errs.Newf("unknown status %q", s), ErrInvalidStatus)
	}
	return st, nil
}

func normalizeEnum(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	return strings.ReplaceAll(s, " ", "_")
}
