package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrStaleObject is returned when an optimistic-lock update matched no row
var ErrStaleObject = errors.New("record was modified concurrently")

// ListQuery represents common query parameters
type ListQuery struct {
	Page    int
	PerPage int
	Search  string
	SortBy  string
	SortDir string
	Filters map[string]string
}

// NewListQuery creates a ListQuery with defaults
func NewListQuery() *ListQuery {
	return &ListQuery{
		Page:    1,
		PerPage: 20,
		Filters: make(map[string]string),
	}
}

// Offset returns the row offset for the requested page
func (q *ListQuery) Offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.limit()
}

func (q *ListQuery) limit() int {
	if q.PerPage <= 0 || q.PerPage > 200 {
		return 20
	}
	return q.PerPage
}

// paginate applies ordering and paging to db. sortable maps accepted sort keys to columns.
func (q *ListQuery) paginate(db *gorm.DB, sortable map[string]string, defaultOrder string) *gorm.DB {
	order := defaultOrder
	if column, ok := sortable[q.SortBy]; ok {
		dir := "ASC"
		if strings.EqualFold(q.SortDir, "desc") {
			dir = "DESC"
		}
		order = column + " " + dir
	}
	return db.Order(order).Offset(q.Offset()).Limit(q.limit())
}

// IsDuplicateKeyError reports a unique violation, optionally on a specific constraint
func IsDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && (constraintName == "" || pgErr.ConstraintName == constraintName)
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// IsForeignKeyError reports a foreign key violation (row still referenced, or reference missing)
func IsForeignKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

// IsNumericOverflowError reports a value too large for its numeric column
func IsNumericOverflowError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "22003"
	}
	return false
}
