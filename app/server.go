package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/social-feed/internal/adapter"
	"github.com/Guyuepp/social-feed/internal/adapter/httpclient"
	"github.com/Guyuepp/social-feed/internal/config"
	"github.com/Guyuepp/social-feed/internal/query"
	apiRepo "github.com/Guyuepp/social-feed/internal/repository/api"
	mysqlRepo "github.com/Guyuepp/social-feed/internal/repository/mysql"
	"github.com/Guyuepp/social-feed/internal/repository/mysql/model"
	myRedisCache "github.com/Guyuepp/social-feed/internal/repository/redis"
	"github.com/Guyuepp/social-feed/internal/rest"
	"github.com/Guyuepp/social-feed/internal/rest/middleware"
	"github.com/Guyuepp/social-feed/internal/usecase/comment"
	"github.com/Guyuepp/social-feed/internal/usecase/post"
	"github.com/Guyuepp/social-feed/internal/workers"
)

const (
	dbRetryInterval = 2 * time.Second
	shutdownTimeout = 5 * time.Second
)

func runServer(ctx context.Context, cfg *config.Config) error {
	//prepare database
	db, err := openDB(cfg.DSN(), cfg.DBMaxRetry)
	if err != nil {
		return fmt.Errorf("could not connect to database after retries: %w", err)
	}
	defer closeDB(db)
	if err := migrate(db); err != nil {
		return err
	}

	// prepare cache
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.CacheAddr(),
		Password: cfg.CachePass,
		DB:       cfg.CacheDB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Error("got error when closing the cache connection: ", err)
		}
	}()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return fmt.Errorf("failed to open connection to cache: %w", err)
	}

	// Upstream API -> adapters -> repositories
	upstream := httpclient.New(httpclient.Config{
		BaseURL: cfg.UpstreamBaseURL,
		Token:   cfg.UpstreamToken,
		Timeout: cfg.UpstreamTimeout,

		RatePerSecond: cfg.UpstreamRPS,
		Burst:         cfg.UpstreamBurst,
	})
	userRepo := apiRepo.NewUserRepository(adapter.NewUserAdapter(upstream))
	postRepo := apiRepo.NewPostRepository(adapter.NewPostAdapter(upstream))
	commentRepo := apiRepo.NewCommentRepository(adapter.NewCommentAdapter(upstream))

	likesSyncer := workers.NewSyncLikesWorker(mysqlRepo.NewLikeLedger(db))

	// Build service Layer
	postSvc := post.NewService(postRepo, commentRepo, userRepo, likesSyncer)
	commentSvc := comment.NewService(commentRepo, userRepo, likesSyncer)

	queryCache := myRedisCache.NewQueryCache(client, cfg.QueryGCTime)
	queryClient := query.NewClient(queryCache, cfg.QueryStaleTime).WithFetchTimeout(cfg.ContextTimeout)
	queries := query.NewQueries(queryClient, postSvc, commentSvc)

	postHandler := rest.NewPostHandler(postSvc, queries)
	commentHandler := rest.NewCommentHandler(commentSvc, queries)
	userHandler := rest.NewUserHandler(userRepo)

	// prepare gin
	gin.SetMode(cfg.GinMode())
	route := gin.New()
	route.Use(gin.Recovery())
	route.Use(middleware.RequestID())
	route.Use(middleware.AccessLog())
	route.Use(middleware.CORS(cfg.CORSOrigins()))
	route.Use(middleware.SetRequestContextWithTimeout(cfg.ContextTimeout))

	// Register routes
	route.GET("/metrics", gin.WrapH(promhttp.Handler()))
	route.GET("/posts", postHandler.FetchPosts)
	route.GET("/posts/search", postHandler.SearchPosts)
	route.GET("/posts/:id", postHandler.GetByID)
	route.GET("/posts/:id/comments", commentHandler.FetchCommentsByPost)
	route.GET("/comments/:id", commentHandler.GetByID)

	authorized := route.Group("/")
	authorized.Use(middleware.Authenticate(userRepo))
	{
		authorized.GET("/users/me", userHandler.Me)

		authorized.POST("/posts", postHandler.Store)
		authorized.PUT("/posts/:id", postHandler.Update)
		authorized.DELETE("/posts/:id", postHandler.Delete)
		authorized.POST("/posts/:id/like", postHandler.Like)
		authorized.DELETE("/posts/:id/like", postHandler.Unlike)

		authorized.POST("/posts/:id/comments", commentHandler.CreateComment)
		authorized.PUT("/comments/:id", commentHandler.UpdateComment)
		authorized.DELETE("/comments/:id", commentHandler.DeleteComment)
		authorized.POST("/comments/:id/like", commentHandler.Like)
		authorized.DELETE("/comments/:id/like", commentHandler.Unlike)
	}

	srv := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: route,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		likesSyncer.Start(gctx)
		return nil
	})
	g.Go(func() error {
		logrus.Infof("Server is running on %s", cfg.ServerAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logrus.Info("Shutdown signal received, stopping server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	logrus.Info("Server exiting")
	return err
}

// migrate creates the like ledger table
func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.UserLike{}); err != nil {
		return fmt.Errorf("failed to migrate user_likes: %w", err)
	}
	return nil
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.Error("got error when getting sql.DB from gorm.DB: ", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		logrus.Error("got error when closing the DB connection: ", err)
	}
}

func openDB(dsn string, maxRetry int) (*gorm.DB, error) {
	var err error
	for i := range maxRetry {
		var db *gorm.DB
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr != nil {
				err = dbErr
			} else if err = sqlDB.Ping(); err == nil {
				return db, nil
			} else {
				_ = sqlDB.Close()
			}
		}
		logrus.Warnf("failed to connect to database (attempt %d/%d): %v", i+1, maxRetry, err)
		time.Sleep(dbRetryInterval)
	}
	return nil, err
}
