package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/catalog/internal/errs"
	"github.com/Astemirdum/library-catalog/catalog/internal/repository"
	"github.com/Astemirdum/library-catalog/pkg/kafka"
)

// MaxActiveLoans is the most books a patron may hold at once.
const MaxActiveLoans = 5

type Service struct {
	log     *zap.Logger
	repo    repository.Repository
	gateway Gateway
	events  EventPublisher
	locks   *bookLocks
}

func NewService(repo repository.Repository, gateway Gateway, events EventPublisher, log *zap.Logger) *Service {
	return &Service{
		log:     log.Named("service"),
		repo:    repo,
		gateway: gateway,
		events:  events,
		locks:   newBookLocks(),
	}
}

func (s *Service) storageErr(op string, err error) error {
	s.log.Error("storage", zap.String("op", op), zap.Error(err))
	return errs.Storage(op, err)
}

// publish runs after the unit of work has committed; a lost event is logged only.
func (s *Service) publish(ctx context.Context, event kafka.LendingEvent) {
	if err := s.events.Publish(ctx, event); err != nil {
		s.log.Warn("publish event",
			zap.String("type", string(event.Type)),
			zap.Int64("bookId", event.BookID),
			zap.Error(err))
	}
}
