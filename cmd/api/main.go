package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sarthi-backend/internal/advisor"
	"sarthi-backend/internal/app"
	"sarthi-backend/internal/config"
	"sarthi-backend/internal/events"
	"sarthi-backend/internal/handlers"
	"sarthi-backend/internal/jobs"
	"sarthi-backend/internal/middleware"
	"sarthi-backend/internal/notification"
	"sarthi-backend/internal/payment"
	"sarthi-backend/internal/reports"
	"sarthi-backend/internal/routes"
	"sarthi-backend/internal/session"
	"sarthi-backend/internal/triage"
	"sarthi-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Load Env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	utils.SetTokenSecret(cfg.JWTSecret)

	// 2. Session store
	repo, err := sessionRepository(cfg)
	if err != nil {
		log.Fatalf("Session store error: %v", err)
	}

	// 3. AI advisor (Gemini)
	var adv advisor.Advisor = advisor.Unconfigured{}
	if cfg.GeminiAPIKey != "" {
		gemini, err := advisor.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("Gemini error: %v", err)
		}
		adv = gemini
	} else {
		log.Println("Warning: GEMINI_API_KEY empty, AI features use fallbacks")
	}

	// 4. Integrasi opsional
	feed := notification.NewFeed(notification.DemoNotifications())
	if cfg.FCMCredentialsFile != "" {
		pusher, err := notification.NewFCMPusher(ctx, cfg.FCMCredentialsFile, cfg.FCMDeviceToken)
		if err != nil {
			log.Printf("Warning: FCM disabled: %v", err)
		} else {
			feed.SetPusher(pusher)
		}
	}

	var publisher events.Publisher = events.Nop{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	}
	defer publisher.Close()

	var storage reports.Storage = reports.Placeholder{}
	if cfg.ReportsBucket != "" {
		s3Storage, err := reports.NewS3Storage(ctx, cfg.ReportsBucket)
		if err != nil {
			log.Printf("Warning: report storage disabled: %v", err)
		} else {
			storage = s3Storage
		}
	}

	var gateway *payment.Gateway
	if cfg.MidtransServerKey != "" {
		gateway = payment.NewGateway(cfg.MidtransServerKey, cfg.MidtransProduction)
	}

	var narrator triage.Narrator
	if cfg.NarrateReplies {
		narrator = triage.LogNarrator{}
	}

	// 5. Application state
	store := app.New(app.Deps{
		Sessions:  session.NewService(repo),
		Advisor:   adv,
		Feed:      feed,
		Publisher: publisher,
		Reports:   storage,
		Payments:  gateway,
		Narrator:  narrator,
	})
	if _, err := store.Restore(ctx); err != nil {
		log.Printf("Warning: %v", err)
	}

	// 6. Job harian
	scheduler := jobs.NewScheduler(store, store)
	if err := scheduler.Start(cfg.TipSchedule); err != nil {
		log.Fatalf("Scheduler error: %v", err)
	}
	defer scheduler.Stop()

	// 7. Init Router
	limiter := middleware.NewIPRateLimiter(5, 10)
	go limiter.RunCleanup(time.Minute, ctx.Done())

	r := gin.Default()
	routes.SetupRoutes(r, handlers.New(store), store, limiter)

	// 8. Run Server
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		log.Println("Server berjalan di port " + cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}

func sessionRepository(cfg config.Config) (session.Repository, error) {
	switch cfg.SessionStore {
	case "memory":
		return session.NewMemoryRepository(), nil
	case "sql":
		db, err := config.ConnectDB(cfg)
		if err != nil {
			return nil, err
		}
		return session.NewGormRepository(db)
	default:
		repo := session.NewFileRepository(cfg.SessionFileDir)
		log.Printf("Session disimpan di %s", repo.Path())
		return repo, nil
	}
}
