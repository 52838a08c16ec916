package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/hopeworks/fundtrack/internal/blobstore"
	"github.com/hopeworks/fundtrack/internal/config"
	"github.com/hopeworks/fundtrack/internal/handlers"
	"github.com/hopeworks/fundtrack/internal/repo"
	"github.com/hopeworks/fundtrack/internal/service"
	"github.com/hopeworks/fundtrack/internal/storage"
	"github.com/hopeworks/fundtrack/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg   *config.Config
	api   *handlers.Handlers
	srv   *service.Services
	repo  *repo.Repositories
	store *storage.Store
	kv    blobstore.Store

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	kv, err := blobstore.OpenFileStore(cfg.StorageDir)
	if err != nil {
		zap.L().Error("open blob store failed: ", zap.Error(err))
		return fmt.Errorf("can't open blob store: %w", err)
	}

	store := storage.New(kv)
	if err := store.Init(ctx); err != nil {
		zap.L().Error("storage init failed: ", zap.Error(err))
		return fmt.Errorf("can't init storage: %w", err)
	}

	a.cfg = cfg
	a.kv = kv
	a.store = store
	a.repo = repo.New(store)
	a.srv = service.New(a.repo)
	a.api = handlers.New(a.srv, a.repo.UserRepo, cfg.AdminEmail)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
		a.kv.Close()
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
