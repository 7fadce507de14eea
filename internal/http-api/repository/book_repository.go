package repository

import (
	"context"
	"fmt"
	"strings"

	"bookhive/internal/http-api/dto"
	"bookhive/internal/http-api/models"

	"gorm.io/gorm"
)

// AnnotatedBook is a Book row augmented with the like aggregate computed by
// the list query.
type AnnotatedBook struct {
	models.Book
	AnnotatedLikes int64 `gorm:"column:annotated_likes"`
}

type BookRepository interface {
	List(ctx context.Context, query dto.BookListQuery) ([]AnnotatedBook, error)
	GetByID(ctx context.Context, id int64) (*models.Book, error)
	GetAnnotatedByID(ctx context.Context, id int64) (*AnnotatedBook, error)
	Create(ctx context.Context, book *models.Book) error
	Update(ctx context.Context, book *models.Book) error
	Delete(ctx context.Context, id int64) error
	CountLikes(ctx context.Context, bookID int64) (int64, error)
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

// Columns the ordering parameter may reference. Anything else is rejected at
// parse time, so values never reach the SQL string.
var orderableColumns = map[string]string{
	"id":     "books.id",
	"name":   "books.name",
	"price":  "books.price",
	"author": "books.author",
}

// annotated returns the base query for books with the per-book like count
// computed in a single grouped LEFT JOIN, so the whole result set costs one
// round trip regardless of size.
func (r *bookRepository) annotated(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Book{}).
		Select(`books.*, COUNT(user_book_relations.id) AS annotated_likes`).
		Joins(`LEFT JOIN user_book_relations ON user_book_relations.book_id = books.id AND user_book_relations."like" = TRUE`).
		Group("books.id")
}

func (r *bookRepository) List(ctx context.Context, query dto.BookListQuery) ([]AnnotatedBook, error) {
	db := r.annotated(ctx)

	if query.Price != nil {
		db = db.Where("books.price = ?", *query.Price)
	}

	if query.Search != "" {
		p := "%" + escapeLike(query.Search) + "%"
		db = db.Where("books.name ILIKE ? OR books.author ILIKE ?", p, p)
	}

	db = db.Order(orderClause(query.Ordering))

	var list []AnnotatedBook
	if err := db.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return list, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE metacharacters in user input so a search for
// "100%" matches the literal substring, not "100" followed by anything.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// orderClause translates an ordering parameter ("price", "-price") into a SQL
// order expression against the whitelist. Unknown or empty values fall back to
// the primary key.
func orderClause(ordering string) string {
	direction := "ASC"
	field := ordering
	if strings.HasPrefix(ordering, "-") {
		direction = "DESC"
		field = ordering[1:]
	}
	column, ok := orderableColumns[field]
	if !ok {
		return "books.id ASC"
	}
	return column + " " + direction
}

func (r *bookRepository) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	var b models.Book
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookRepository) GetAnnotatedByID(ctx context.Context, id int64) (*AnnotatedBook, error) {
	var b AnnotatedBook
	if err := r.annotated(ctx).Where("books.id = ?", id).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookRepository) Create(ctx context.Context, book *models.Book) error {
	if err := r.db.WithContext(ctx).Create(book).Error; err != nil {
		return fmt.Errorf("create book: %w", err)
	}
	return nil
}

func (r *bookRepository) Update(ctx context.Context, book *models.Book) error {
	if err := r.db.WithContext(ctx).Save(book).Error; err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	return nil
}

func (r *bookRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Book{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete book: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountLikes recomputes the like count for one book with a direct COUNT.
// This is the second code path for the same number the list aggregate
// produces; the two must agree for any book at the same instant.
func (r *bookRepository) CountLikes(ctx context.Context, bookID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.UserBookRelation{}).
		Where(`book_id = ? AND "like" = TRUE`, bookID).
		Count(&count).Error
	return count, err
}
