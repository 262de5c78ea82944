package errx

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyParameter indicates a parameter value yielded no usable columns
	// where at least one is required (where clause, insert list, update set list).
	ErrEmptyParameter = errors.New("empty parameter")

	// ErrUnsupportedUpsert indicates the dialect has no upsert form.
	ErrUnsupportedUpsert = errors.New("unsupported upsert")

	// ErrUnboundParameter indicates SQL references @name with no supplied value.
	ErrUnboundParameter = errors.New("unbound parameter")

	// ErrUnsupportedEntity indicates a type that cannot describe an entity.
	ErrUnsupportedEntity = errors.New("unsupported entity type")

	// ErrDuplicateKey indicates an insert/update violated a unique constraint.
	// Note: many drivers return opaque error types; use IsDuplicateKey to detect.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrConstraint indicates a generic constraint violation (FK/CK/NOT NULL/etc).
	ErrConstraint = errors.New("constraint violation")
)

// Error carries structured context while remaining compatible with errors.Is().
type Error struct {
	Kind    error
	Op      string
	Table   string
	Columns []string
	Cause   error
}

func (e *Error) Error() string {
	sb := &strings.Builder{}
	sb.WriteString("sqlgen")
	if e.Op != "" {
		sb.WriteString(" ")
		sb.WriteString(e.Op)
	}
	sb.WriteString(": ")
	if e.Kind != nil {
		sb.WriteString(e.Kind.Error())
	} else {
		sb.WriteString("error")
	}
	if e.Table != "" {
		sb.WriteString(" table=")
		sb.WriteString(e.Table)
	}
	if len(e.Columns) > 0 {
		sb.WriteString(" columns=[")
		sb.WriteString(strings.Join(e.Columns, ","))
		sb.WriteString("]")
	}
	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

func (e *Error) Unwrap() error { return e.Cause }

func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if e.Kind != nil && target == e.Kind {
		return true
	}
	if e.Cause != nil {
		return errors.Is(e.Cause, target)
	}
	return false
}

func EmptyParameter(op, table string) error {
	return &Error{
		Kind:  ErrEmptyParameter,
		Op:    op,
		Table: table,
	}
}

func UnsupportedUpsert(table, dialect string) error {
	return &Error{
		Kind:  ErrUnsupportedUpsert,
		Op:    "upsert",
		Table: table,
		Cause: errors.New("dialect: " + dialect),
	}
}

func UnsupportedEntity(typeName string, cause error) error {
	return &Error{
		Kind:  ErrUnsupportedEntity,
		Op:    "entity",
		Table: typeName,
		Cause: cause,
	}
}

func DuplicateKey(op, table string, cause error) error {
	return &Error{
		Kind:  ErrDuplicateKey,
		Op:    op,
		Table: table,
		Cause: cause,
	}
}

func Constraint(op, table string, cause error) error {
	return &Error{
		Kind:  ErrConstraint,
		Op:    op,
		Table: table,
		Cause: cause,
	}
}

//Classify returns a structured duplicate key or constraint error when the driver error message matches, otherwise err
func Classify(op, table string, err error) error {
	switch {
	case err == nil:
		return nil
	case IsDuplicateKey(err):
		return DuplicateKey(op, table, err)
	case IsConstraint(err):
		return Constraint(op, table, err)
	}
	return err
}

func IsEmptyParameter(err error) bool { return errors.Is(err, ErrEmptyParameter) }

func IsUnsupportedUpsert(err error) bool { return errors.Is(err, ErrUnsupportedUpsert) }

func IsUnboundParameter(err error) bool { return errors.Is(err, ErrUnboundParameter) }

func IsDuplicateKey(err error) bool {
	if errors.Is(err, ErrDuplicateKey) {
		return true
	}
	msg := strings.ToLower(errString(err))
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "violation of primary key")
}

func IsConstraint(err error) bool {
	if errors.Is(err, ErrConstraint) {
		return true
	}
	msg := strings.ToLower(errString(err))
	return strings.Contains(msg, "constraint failed") ||
		strings.Contains(msg, "violates") ||
		strings.Contains(msg, "not null constraint") ||
		strings.Contains(msg, "foreign key constraint") ||
		strings.Contains(msg, "check constraint")
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
