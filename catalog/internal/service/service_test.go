package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/catalog/internal/model"
	"github.com/Astemirdum/library-catalog/catalog/internal/repository"
	"github.com/Astemirdum/library-catalog/catalog/internal/service"
	mock_service "github.com/Astemirdum/library-catalog/catalog/internal/service/mocks"
	"github.com/Astemirdum/library-catalog/catalog/internal/testdb"
	"github.com/Astemirdum/library-catalog/pkg/kafka"
)

const (
	patron      = "123456"
	cleanCodeID = "9780132350884"
)

var t0 = time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

func days(n int) time.Duration { return time.Duration(n) * 24 * time.Hour }

type decimalMatcher struct{ want decimal.Decimal }

func decimalEq(s string) gomock.Matcher {
	return decimalMatcher{want: decimal.RequireFromString(s)}
}

func (m decimalMatcher) Matches(x interface{}) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string { return "is decimal " + m.want.String() }

type env struct {
	svc     *service.Service
	gateway *mock_service.MockGateway
}

// newEnv wires the service to a fresh SQLite database and a mocked gateway.
func newEnv(t *testing.T) env {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo, err := repository.NewRepository(testdb.SQLite(t), zap.NewNop())
	require.NoError(t, err)
	gw := mock_service.NewMockGateway(ctrl)
	return env{
		svc:     service.NewService(repo, gw, kafka.NewNopPublisher(), zap.NewNop()),
		gateway: gw,
	}
}

func (e env) addBook(t *testing.T, title, isbn string, copies int) model.Book {
	t.Helper()
	resp, err := e.svc.AddBook(testCtx(t), model.AddBookRequest{
		Title:       title,
		Author:      "Robert C. Martin",
		ISBN:        isbn,
		TotalCopies: copies,
	}, t0)
	require.NoError(t, err)
	return resp.Book
}

func isbn(i int) string {
	return fmt.Sprintf("978000000%04d", i)
}

func testCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
