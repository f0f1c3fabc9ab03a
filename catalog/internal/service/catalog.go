package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/catalog/internal/repository"
	"github.com/Astemirdum/library-catalog/pkg/kafka"
	"github.com/Astemirdum/library-catalog/pkg/validate"
)

const (
	maxTitleLen  = 200
	maxAuthorLen = 100
)

func (s *Service) AddBook(ctx context.Context, req model.AddBookRequest, now time.Time) (model.AddBookResponse, error) {
	title := strings.TrimSpace(req.Title)
	author := strings.TrimSpace(req.Author)
	switch {
	case title == "":
		return model.AddBookResponse{}, errs.ErrTitleRequired
	case utf8.RuneCountInString(title) > maxTitleLen:
		return model.AddBookResponse{}, errs.ErrTitleTooLong
	case author == "":
		return model.AddBookResponse{}, errs.ErrAuthorRequired
	case utf8.RuneCountInString(author) > maxAuthorLen:
		return model.AddBookResponse{}, errs.ErrAuthorTooLong
	case !validate.ISBN13(req.ISBN):
		return model.AddBookResponse{}, errs.ErrInvalidISBN
	case req.TotalCopies <= 0:
		return model.AddBookResponse{}, errs.ErrInvalidCopies
	}

	_, err := s.repo.GetBookByISBN(ctx, req.ISBN)
	switch {
	case err == nil:
		return model.AddBookResponse{}, errs.ErrDuplicateISBN
	case !errors.Is(err, repository.ErrNotFound):
		return model.AddBookResponse{}, s.storageErr("adding the book", err)
	}

	book := model.Book{
		Title:           title,
		Author:          author,
		ISBN:            req.ISBN,
		TotalCopies:     req.TotalCopies,
		AvailableCopies: req.TotalCopies,
	}
	book.ID, err = s.repo.CreateBook(ctx, book)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return model.AddBookResponse{}, errs.ErrDuplicateISBN
		}
		return model.AddBookResponse{}, s.storageErr("adding the book", err)
	}

	s.publish(ctx, kafka.LendingEvent{Type: kafka.EventBookAdded, BookID: book.ID, Timestamp: now})
	return model.AddBookResponse{
		Book:    book,
		Message: fmt.Sprintf("Book \"%s\" has been successfully added to the catalog.", title),
	}, nil
}

func (s *Service) GetBook(ctx context.Context, id int64) (model.Book, error) {
	book, err := s.repo.GetBook(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Book{}, errs.ErrBookNotFound
		}
		return model.Book{}, s.storageErr("loading the book", err)
	}
	return book, nil
}

func (s *Service) ListBooks(ctx context.Context) ([]model.Book, error) {
	books, err := s.repo.ListBooks(ctx)
	if err != nil {
		return nil, s.storageErr("listing books", err)
	}
	return books, nil
}

// SearchBooks never fails on bad input: a blank term or unknown mode yields
// an empty result.
func (s *Service) SearchBooks(ctx context.Context, term string, by model.SearchType) ([]model.Book, error) {
	term = strings.TrimSpace(term)
	if term == "" || !by.Valid() {
		return []model.Book{}, nil
	}
	books, err := s.repo.SearchBooks(ctx, term, by)
	if err != nil {
		return nil, s.storageErr("searching books", err)
	}
	return books, nil
}
