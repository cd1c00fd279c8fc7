package repository

import (
	"errors"
	"fmt"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrNotFound 记录不存在（或不在给定的上级路径下）
	ErrNotFound = errors.New("repository: record not found")

	// ErrDuplicateRecord 主键或唯一索引冲突，由数据库约束拒绝
	ErrDuplicateRecord = errors.New("repository: duplicate record")
)

const (
	mysqlDuplicateEntry  = 1062
	pgUniqueViolationErr = "23505"
)

// translateError 将驱动/ORM 错误归类为仓储层错误
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrDuplicateRecord) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if isDuplicateKey(err) {
		return fmt.Errorf("%w: %v", ErrDuplicateRecord, err)
	}
	return err
}

// isDuplicateKey 判断是否唯一约束冲突（MySQL 1062 / PostgreSQL 23505）
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationErr {
		return true
	}
	return false
}
