package repository

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// ErrDuplicateCPF is returned when a student write collides with an existing CPF.
var ErrDuplicateCPF = errors.New("repository: duplicate cpf")

const (
	uniqueViolation           = "23505"
	invalidTextRepresentation = "22P02"
	studentsCPFUnique         = "students_cpf_key"
)

func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return string(pqErr.Code) == uniqueViolation && pqErr.Constraint == constraint
}

// mapStudentWriteError translates constraint failures raised while writing students.
func mapStudentWriteError(err error) error {
	if isUniqueViolation(err, studentsCPFUnique) {
		return ErrDuplicateCPF
	}
	return err
}

// isMalformedID reports whether Postgres rejected a lookup argument as an invalid uuid literal.
func isMalformedID(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == invalidTextRepresentation
}

// mapLookupError turns a malformed id into sql.ErrNoRows; no row can carry such an id.
func mapLookupError(err error) error {
	if isMalformedID(err) {
		return sql.ErrNoRows
	}
	return err
}
