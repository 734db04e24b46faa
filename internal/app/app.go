package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/goodbooks/goodbooks-service/config"
	"github.com/goodbooks/goodbooks-service/internal/handler"
	"github.com/goodbooks/goodbooks-service/internal/repository"
	"github.com/goodbooks/goodbooks-service/internal/server"
	authsvc "github.com/goodbooks/goodbooks-service/internal/service/auth"
	"github.com/goodbooks/goodbooks-service/internal/service/catalog"
	"github.com/goodbooks/goodbooks-service/internal/service/ratings"
	reviewsvc "github.com/goodbooks/goodbooks-service/internal/service/review"
	"github.com/goodbooks/goodbooks-service/migrations"
	"github.com/goodbooks/goodbooks-service/pkg/kafka"
	"github.com/goodbooks/goodbooks-service/pkg/logger"
	"github.com/goodbooks/goodbooks-service/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "goodbooks")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}

	catalogRepo, err := repository.NewCatalogRepository(db, log)
	if err != nil {
		log.Fatal("catalog repo", zap.Error(err))
	}
	reviewRepo, err := repository.NewReviewRepository(db, log)
	if err != nil {
		log.Fatal("review repo", zap.Error(err))
	}
	userRepo, err := repository.NewUserRepository(db, log)
	if err != nil {
		log.Fatal("user repo", zap.Error(err))
	}

	catalogSvc := catalog.NewService(catalogRepo, log)
	ratingsSvc := ratings.NewService(log, cfg.Ratings)
	reviewSvc := reviewsvc.NewService(catalogSvc, ratingsSvc, reviewRepo, log)
	authSvc := authsvc.NewService(userRepo, cfg.JWT, log)

	var enqueuer handler.Enqueuer
	if len(cfg.Kafka.Addrs) > 0 {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewProducer", zap.Error(err))
		}
		defer producer.Close() //nolint:errcheck
		enqueuer = handler.NewEnqueuer(producer)

		consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.StatsConsumerGroup)
		if err != nil {
			log.Fatal("kafka.NewConsumer", zap.Error(err))
		}
		defer func(consumer sarama.ConsumerGroup) {
			_ = consumer.Close()
		}(consumer)
		go kafka.Consume(consumer, handler.NewConsumer(reviewRepo.IncrReviewStats, log), kafka.ReviewTopic)
	}

	h := handler.New(catalogSvc, reviewSvc, authSvc, enqueuer, cfg.JWT, log)
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
	db.Close()
	log.Info("Graceful shutdown finished")
}
