package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-catalog/catalog/config"
	"github.com/Astemirdum/library-catalog/catalog/internal/handler"
	"github.com/Astemirdum/library-catalog/catalog/internal/payment"
	"github.com/Astemirdum/library-catalog/catalog/internal/repository"
	"github.com/Astemirdum/library-catalog/catalog/internal/server"
	"github.com/Astemirdum/library-catalog/catalog/internal/service"
	"github.com/Astemirdum/library-catalog/catalog/migrations"
	"github.com/Astemirdum/library-catalog/pkg/clock"
	"github.com/Astemirdum/library-catalog/pkg/kafka"
	"github.com/Astemirdum/library-catalog/pkg/logger"
	"github.com/Astemirdum/library-catalog/pkg/postgres"
	"github.com/Astemirdum/library-catalog/pkg/sqlite"
)

// OpenDB connects to the configured store and brings its schema up to date.
func OpenDB(ctx context.Context, cfg config.Database) (*sqlx.DB, error) {
	var (
		db      *sqlx.DB
		dialect migrations.Dialect
		err     error
	)
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err = postgres.NewPostgresDB(ctx, &cfg.Postgres)
		dialect = migrations.DialectPostgres
	case config.DriverSQLite:
		db, err = sqlite.NewSQLiteDB(ctx, &cfg.SQLite)
		dialect = migrations.DialectSQLite
	default:
		return nil, errors.Errorf("unknown driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}
	if err := migrations.Up(db.DB, dialect); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func Run(cfg config.Config) {
	log := logger.NewLogger(cfg.Log, "catalog")
	defer log.Sync() //nolint:errcheck

	db, err := OpenDB(context.Background(), cfg.Database)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo", zap.Error(err))
	}

	clk := clock.NewSystem()

	var gateway service.Gateway
	if cfg.Payment.Sandbox() {
		log.Warn("PAYMENT_BASE_URL not set, using sandbox payment gateway")
		gateway = payment.NewSandbox(clk, log)
	} else {
		gateway = payment.NewClient(cfg.Payment, log)
	}

	var (
		events   service.EventPublisher = kafka.NewNopPublisher()
		producer sarama.SyncProducer
	)
	if cfg.Kafka.Enabled() {
		producer, err = kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		events = kafka.NewPublisher(producer, cfg.Kafka.Topic)
	}

	svc := service.NewService(repo, gateway, events, log)
	h := handler.New(svc, clk, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Error("producer.Close", zap.Error(err))
		}
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}
