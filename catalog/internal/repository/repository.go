package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
	// ErrNoCopies is returned when a decrement finds no available copy.
	ErrNoCopies = errors.New("no copies available")
	// ErrAllCopiesIn is returned when an increment would exceed total copies.
	ErrAllCopiesIn = errors.New("all copies already in")
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error

	CreateBook(ctx context.Context, book model.Book) (int64, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	GetBookForUpdate(ctx context.Context, id int64) (model.Book, error)
	GetBookByISBN(ctx context.Context, isbn string) (model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	SearchBooks(ctx context.Context, term string, by model.SearchType) ([]model.Book, error)
	AdjustAvailableCopies(ctx context.Context, bookID int64, delta int) error

	CreateBorrowRecord(ctx context.Context, rec model.BorrowRecord) (int64, error)
	FindActiveRecord(ctx context.Context, patronID string, bookID int64) (model.BorrowRecord, error)
	CountActiveRecords(ctx context.Context, patronID string) (int, error)
	ListActiveRecords(ctx context.Context, patronID string) ([]model.LoanView, error)
	ListAllRecords(ctx context.Context, patronID string) ([]model.LoanView, error)
	FinalizeReturn(ctx context.Context, patronID string, bookID int64, returnedAt time.Time) error
}

const (
	booksTableName         = `books`
	borrowRecordsTableName = `borrow_records`
)

var bookColumns = []string{"id", "title", "author", "isbn", "total_copies", "available_copies"}

type repository struct {
	db      *sqlx.DB
	qb      sq.StatementBuilderType
	dialect dialect
	log     *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	d, err := dialectOf(db.DriverName())
	if err != nil {
		return nil, err
	}
	return &repository{
		db:      db,
		qb:      sq.StatementBuilder.PlaceholderFormat(d.placeholder()),
		dialect: d,
		log:     log.Named("repo"),
	}, nil
}

func (r *repository) CreateBook(ctx context.Context, book model.Book) (int64, error) {
	q, args, err := r.qb.Insert(booksTableName).
		Columns("title", "author", "isbn", "total_copies", "available_copies").
		Values(book.Title, book.Author, book.ISBN, book.TotalCopies, book.AvailableCopies).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}
	var id int64
	if err := sqlx.GetContext(ctx, r.conn(ctx), &id, q, args...); err != nil {
		if r.dialect.isUniqueViolation(err) {
			return 0, ErrDuplicate
		}
		r.log.Error("CreateBook", zap.String("q", q), zap.Any("args", args), zap.Error(err))
		return 0, errors.Wrap(err, "create book")
	}
	return id, nil
}

func (r *repository) GetBook(ctx context.Context, id int64) (model.Book, error) {
	return r.getBook(ctx, r.qb.Select(bookColumns...).From(booksTableName).Where(sq.Eq{"id": id}))
}

// GetBookForUpdate locks the book row until the surrounding transaction ends.
// SQLite has no row locks; its single connection already serializes writers.
func (r *repository) GetBookForUpdate(ctx context.Context, id int64) (model.Book, error) {
	b := r.qb.Select(bookColumns...).From(booksTableName).Where(sq.Eq{"id": id})
	if r.dialect == dialectPostgres {
		b = b.Suffix("FOR UPDATE")
	}
	return r.getBook(ctx, b)
}

func (r *repository) GetBookByISBN(ctx context.Context, isbn string) (model.Book, error) {
	return r.getBook(ctx, r.qb.Select(bookColumns...).From(booksTableName).Where(sq.Eq{"isbn": isbn}))
}

func (r *repository) getBook(ctx context.Context, b sq.SelectBuilder) (model.Book, error) {
	q, args, err := b.Limit(1).ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := sqlx.GetContext(ctx, r.conn(ctx), &book, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, ErrNotFound
		}
		r.log.Error("getBook", zap.String("q", q), zap.Any("args", args), zap.Error(err))
		return model.Book{}, errors.Wrap(err, "get book")
	}
	return book, nil
}

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	return r.selectBooks(ctx, r.qb.Select(bookColumns...).From(booksTableName).OrderBy("id"))
}

func (r *repository) SearchBooks(ctx context.Context, term string, by model.SearchType) ([]model.Book, error) {
	b := r.qb.Select(bookColumns...).From(booksTableName).OrderBy("id")
	switch by {
	case model.SearchByISBN:
		b = b.Where(sq.Eq{"isbn": term})
	case model.SearchByTitle, model.SearchByAuthor:
		pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
		b = b.Where(sq.Expr(r.dialect.lower(string(by))+" LIKE ? ESCAPE '\\'", pattern))
	default:
		return nil, nil
	}
	return r.selectBooks(ctx, b)
}

func (r *repository) selectBooks(ctx context.Context, b sq.SelectBuilder) ([]model.Book, error) {
	q, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("selectBooks", zap.String("query", q), zap.Any("args", args))
	books := make([]model.Book, 0)
	if err := sqlx.SelectContext(ctx, r.conn(ctx), &books, q, args...); err != nil {
		return nil, errors.Wrap(err, "select books")
	}
	return books, nil
}

// AdjustAvailableCopies applies delta (+1 or -1) only if the result stays
// within [0, total_copies]; the guard lives in the WHERE clause so the check
// and the write are a single statement.
func (r *repository) AdjustAvailableCopies(ctx context.Context, bookID int64, delta int) error {
	b := r.qb.Update(booksTableName).
		Set("available_copies", sq.Expr("available_copies + ?", delta)).
		Where(sq.Eq{"id": bookID})
	guardErr := ErrNoCopies
	switch delta {
	case -1:
		b = b.Where(sq.Gt{"available_copies": 0})
	case 1:
		b = b.Where("available_copies < total_copies")
		guardErr = ErrAllCopiesIn
	default:
		return errors.Errorf("invalid delta %d", delta)
	}
	q, args, err := b.ToSql()
	if err != nil {
		return err
	}
	res, err := r.conn(ctx).ExecContext(ctx, q, args...)
	if err != nil {
		return errors.Wrap(err, "adjust available copies")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if n == 0 {
		return guardErr
	}
	return nil
}

func (r *repository) CreateBorrowRecord(ctx context.Context, rec model.BorrowRecord) (int64, error) {
	q, args, err := r.qb.Insert(borrowRecordsTableName).
		Columns("patron_id", "book_id", "borrow_date", "due_date").
		Values(rec.PatronID, rec.BookID, rec.BorrowDate.UTC(), rec.DueDate.UTC()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}
	var id int64
	if err := sqlx.GetContext(ctx, r.conn(ctx), &id, q, args...); err != nil {
		if r.dialect.isUniqueViolation(err) {
			return 0, ErrDuplicate
		}
		r.log.Error("CreateBorrowRecord", zap.String("q", q), zap.Any("args", args), zap.Error(err))
		return 0, errors.Wrap(err, "create borrow record")
	}
	return id, nil
}

func (r *repository) FindActiveRecord(ctx context.Context, patronID string, bookID int64) (model.BorrowRecord, error) {
	q, args, err := r.qb.Select("id", "patron_id", "book_id", "borrow_date", "due_date", "return_date").
		From(borrowRecordsTableName).
		Where(sq.Eq{"patron_id": patronID, "book_id": bookID, "return_date": nil}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.BorrowRecord{}, err
	}
	var rec model.BorrowRecord
	if err := sqlx.GetContext(ctx, r.conn(ctx), &rec, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BorrowRecord{}, ErrNotFound
		}
		return model.BorrowRecord{}, errors.Wrap(err, "find active record")
	}
	return normalizeRecord(rec), nil
}

func (r *repository) CountActiveRecords(ctx context.Context, patronID string) (int, error) {
	q, args, err := r.qb.Select("COUNT(*)").
		From(borrowRecordsTableName).
		Where(sq.Eq{"patron_id": patronID, "return_date": nil}).
		ToSql()
	if err != nil {
		return 0, err
	}
	var count int
	if err := sqlx.GetContext(ctx, r.conn(ctx), &count, q, args...); err != nil {
		return 0, errors.Wrap(err, "count active records")
	}
	return count, nil
}

func (r *repository) ListActiveRecords(ctx context.Context, patronID string) ([]model.LoanView, error) {
	return r.listLoans(ctx, sq.Eq{"r.patron_id": patronID, "r.return_date": nil})
}

func (r *repository) ListAllRecords(ctx context.Context, patronID string) ([]model.LoanView, error) {
	return r.listLoans(ctx, sq.Eq{"r.patron_id": patronID})
}

func (r *repository) listLoans(ctx context.Context, where sq.Eq) ([]model.LoanView, error) {
	q, args, err := r.qb.Select(
		"r.id AS id", "r.patron_id AS patron_id", "r.book_id AS book_id",
		"r.borrow_date AS borrow_date", "r.due_date AS due_date", "r.return_date AS return_date",
		"b.title AS title", "b.author AS author").
		From(borrowRecordsTableName+" r").
		Join(booksTableName+" b ON b.id = r.book_id").
		Where(where).
		OrderBy("r.borrow_date", "r.id").
		ToSql()
	if err != nil {
		return nil, err
	}
	loans := make([]model.LoanView, 0)
	if err := sqlx.SelectContext(ctx, r.conn(ctx), &loans, q, args...); err != nil {
		return nil, errors.Wrap(err, "list loans")
	}
	for i := range loans {
		loans[i].BorrowRecord = normalizeRecord(loans[i].BorrowRecord)
	}
	return loans, nil
}

func (r *repository) FinalizeReturn(ctx context.Context, patronID string, bookID int64, returnedAt time.Time) error {
	q, args, err := r.qb.Update(borrowRecordsTableName).
		Set("return_date", returnedAt.UTC()).
		Where(sq.Eq{"patron_id": patronID, "book_id": bookID, "return_date": nil}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.conn(ctx).ExecContext(ctx, q, args...)
	if err != nil {
		return errors.Wrap(err, "finalize return")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func normalizeRecord(rec model.BorrowRecord) model.BorrowRecord {
	rec.BorrowDate = rec.BorrowDate.UTC()
	rec.DueDate = rec.DueDate.UTC()
	if rec.ReturnDate != nil {
		t := rec.ReturnDate.UTC()
		rec.ReturnDate = &t
	}
	return rec
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
