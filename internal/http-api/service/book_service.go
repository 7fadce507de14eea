package service

import (
	"context"
	"errors"

	"bookhive/internal/http-api/dto"
	"bookhive/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrBookNotFound     = errors.New("book not found")
	ErrPermissionDenied = errors.New("permission denied")
)

type BookService interface {
	List(ctx context.Context, query dto.BookListQuery) ([]dto.BookResponse, error)
	Get(ctx context.Context, id int64) (*dto.BookResponse, error)
	Create(ctx context.Context, caller Identity, in dto.CreateBookDTO) (*dto.BookResponse, error)
	Update(ctx context.Context, caller Identity, id int64, in dto.CreateBookDTO) (*dto.BookResponse, error)
	Delete(ctx context.Context, caller Identity, id int64) error
}

type bookService struct {
	repo repository.BookRepository
}

func NewBookService(repo repository.BookRepository) BookService {
	return &bookService{repo: repo}
}

// List returns the filtered, annotated, ordered book set. Both like fields of
// the response come from the single grouped aggregate, so a list of any size
// costs one query.
func (s *bookService) List(ctx context.Context, query dto.BookListQuery) ([]dto.BookResponse, error) {
	books, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.BookResponse, 0, len(books))
	for _, b := range books {
		resp = append(resp, dto.FromModelToBookResponse(b.Book, b.AnnotatedLikes, b.AnnotatedLikes))
	}
	return resp, nil
}

// Get returns one book. like_count is recomputed with a direct COUNT while
// annotated_likes comes from the join aggregate; both are read within the
// same request and must agree.
func (s *bookService) Get(ctx context.Context, id int64) (*dto.BookResponse, error) {
	b, err := s.repo.GetAnnotatedByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	likeCount, err := s.repo.CountLikes(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromModelToBookResponse(b.Book, b.AnnotatedLikes, likeCount)
	return &resp, nil
}

// Create stores a new book owned by the caller. The owner never comes from
// the request body.
func (s *bookService) Create(ctx context.Context, caller Identity, in dto.CreateBookDTO) (*dto.BookResponse, error) {
	book := in.ToModel()
	ownerID := caller.ID
	book.OwnerID = &ownerID

	if err := s.repo.Create(ctx, &book); err != nil {
		return nil, err
	}

	resp := dto.FromModelToBookResponse(book, 0, 0)
	return &resp, nil
}

// Update replaces the mutable fields of a book. The permission check runs
// before any field is touched; a denied caller leaves the row exactly as it
// was.
func (s *bookService) Update(ctx context.Context, caller Identity, id int64, in dto.CreateBookDTO) (*dto.BookResponse, error) {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}

	if !CanModify(caller, book) {
		return nil, ErrPermissionDenied
	}

	in.ApplyTo(book)
	if err := s.repo.Update(ctx, book); err != nil {
		return nil, err
	}

	likeCount, err := s.repo.CountLikes(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromModelToBookResponse(*book, likeCount, likeCount)
	return &resp, nil
}

func (s *bookService) Delete(ctx context.Context, caller Identity, id int64) error {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookNotFound
		}
		return err
	}

	if !CanModify(caller, book) {
		return ErrPermissionDenied
	}

	return s.repo.Delete(ctx, id)
}
