package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VitaminP8/board/graph"
	"github.com/VitaminP8/board/internal/board"
	"github.com/VitaminP8/board/internal/comment"
	"github.com/VitaminP8/board/internal/config"
	"github.com/VitaminP8/board/internal/httpapi"
	"github.com/VitaminP8/board/internal/logging"
	"github.com/VitaminP8/board/internal/member"
	"github.com/VitaminP8/board/internal/post"
	"github.com/VitaminP8/board/internal/storage/memory"
	"github.com/VitaminP8/board/internal/storage/postgres"

	"github.com/jinzhu/gorm"
	"go.uber.org/zap"
)

func main() {
	storageType := flag.String("storage", "", "storage backend: memory, postgres or sqlite (overrides STORAGE)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *storageType != "" {
		cfg.Storage = *storageType
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	var (
		memberStore  member.MemberStorage
		postStore    post.PostStorage
		commentStore comment.CommentStorage
		db           *gorm.DB
	)

	switch cfg.Storage {
	case config.StoragePostgres, config.StorageSQLite:
		db, err = postgres.Open(cfg, log)
		if err != nil {
			log.Fatal("failed to open database", zap.Error(err))
		}

		memberStore = postgres.NewMemberPostgresStorage(db, log)
		postStore = postgres.NewPostPostgresStorage(db, log)
		commentStore = postgres.NewCommentPostgresStorage(db, log)

	case config.StorageMemory:
		memberStore = memory.NewMemberMemoryStorage(log)
		postStore = memory.NewPostMemoryStorage(log)
		commentStore = memory.NewCommentMemoryStorage(log)
	}
	log.Info("storage selected", zap.String("storage", cfg.Storage))

	svc := board.NewService(memberStore, postStore, commentStore, log)

	resolver := &graph.Resolver{Service: svc, PostsPerPage: cfg.PostsPerPage, Log: log.Named("graphql")}
	router := httpapi.NewRouter(svc, httpapi.Options{
		PostsPerPage: cfg.PostsPerPage,
		Logger:       log,
		GraphQL:      graph.NewHandler(resolver),
	})

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("http server starting", zap.String("addr", cfg.HTTPAddr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("http server shutdown", zap.Error(err))
	}

	if err := postgres.Close(db); err != nil {
		log.Error("database close", zap.Error(err))
	}

	log.Info("server stopped")
}
