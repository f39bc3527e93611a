package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"laptop-service-center/config"
	"laptop-service-center/database"
	"laptop-service-center/jobs"
	"laptop-service-center/middleware"
	"laptop-service-center/routes"
	"laptop-service-center/services"
	"laptop-service-center/storage"
	"laptop-service-center/store"
	ws "laptop-service-center/websocket"
)

// serve wires every component and runs the HTTP server until ctx is cancelled
func serve(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	if cfg.Server.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := database.Initialize(cfg.Database, log); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close(database.DB)

	images, err := storage.New(ctx, cfg.Upload)
	if err != nil {
		return fmt.Errorf("failed to initialize image storage: %w", err)
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	hub := ws.NewHub(log.Named("ws"))
	go hub.Run(hubCtx)

	notifiers := services.MultiNotifier{services.NewLogNotifier(log.Named("events")), hub}
	if cfg.Mail.Enabled() {
		mailer := services.NewAsyncNotifier(services.NewMailNotifier(cfg.Mail, log.Named("mail")), 0, log.Named("mail"))
		go mailer.Run(hubCtx)
		defer func() {
			stopHub()
			select {
			case <-mailer.Done():
			case <-time.After(5 * time.Second):
				log.Warn("Mail notifier did not stop in time")
			}
		}()
		notifiers = append(notifiers, mailer)
		log.Info("📧 Email notifications enabled", zap.String("smtp_host", cfg.Mail.Host))
	}

	complaints := services.NewComplaintService(
		store.NewComplaintStore(database.DB),
		log.Named("complaints"),
		services.WithNotifier(notifiers),
		services.WithTurnaround(cfg.Complaint.EstimatedCompletion),
	)
	feedback := services.NewFeedbackService(store.NewFeedbackStore(database.DB), log.Named("feedback"))

	auth, err := services.NewStaticAuthenticator(cfg.Admin)
	if err != nil {
		return err
	}

	overdue, err := jobs.NewOverdueJob(complaints, cfg.Jobs.OverdueCron, log.Named("jobs"))
	if err != nil {
		return err
	}
	overdue.Start()
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		overdue.Stop(stopCtx)
	}()

	limiter := middleware.NewRateLimiter()
	go cleanupLimiter(hubCtx, limiter)

	router := routes.NewRouter(routes.Dependencies{
		Config:      cfg,
		Logger:      log.Named("http"),
		DB:          database.DB,
		Complaints:  complaints,
		Feedback:    feedback,
		Auth:        auth,
		Tokens:      services.NewTokenIssuer(cfg.JWT),
		Images:      images,
		Hub:         hub,
		RateLimiter: limiter,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("🚀 Server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	}

	log.Info("🛑 Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stopHub()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info("✅ Server stopped")
	return nil
}

func cleanupLimiter(ctx context.Context, limiter *middleware.RateLimiter) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			limiter.Cleanup(time.Hour)
		}
	}
}
