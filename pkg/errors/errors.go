package errors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE
const (
	pgUniqueViolation = "23505"
	pgUndefinedTable  = "42P01"
)

var (
	// ErrDuplicate 唯一约束冲突
	ErrDuplicate = errors.New("记录已存在")
	// ErrTableMissing 数据表不存在，通常意味着迁移尚未执行
	ErrTableMissing = errors.New("数据表不存在")
)

// DuplicateError 携带冲突约束名的唯一约束错误，errors.Is(err, ErrDuplicate) 为真
type DuplicateError struct {
	Constraint string
	cause      error
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDuplicate.Error(), e.Constraint)
}

func (e *DuplicateError) Is(target error) bool { return target == ErrDuplicate }

func (e *DuplicateError) Unwrap() error { return e.cause }

// Translate 将 PostgreSQL 驱动错误归类为仓储层哨兵错误，其他错误原样返回
func Translate(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return &DuplicateError{Constraint: pgErr.ConstraintName, cause: err}
	case pgUndefinedTable:
		return fmt.Errorf("%w: %s", ErrTableMissing, pgErr.Message)
	}
	return err
}

// ConstraintOf 返回唯一约束冲突的约束名，非冲突错误返回空串
func ConstraintOf(err error) string {
	var dup *DuplicateError
	if errors.As(err, &dup) {
		return dup.Constraint
	}
	return ""
}
