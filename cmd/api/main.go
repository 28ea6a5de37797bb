package main

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/shirshiz/studio-crm/internal/config"
	"github.com/shirshiz/studio-crm/internal/infra/database"
	"github.com/shirshiz/studio-crm/internal/infra/http/handlers"
	"github.com/shirshiz/studio-crm/internal/infra/http/middleware"
	"github.com/shirshiz/studio-crm/internal/infra/mail"
	"github.com/shirshiz/studio-crm/internal/infra/queue"
	"github.com/shirshiz/studio-crm/internal/logger"
	"github.com/shirshiz/studio-crm/internal/snapshot"
	"github.com/shirshiz/studio-crm/internal/usecase"
)

func main() {
	godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.Env)
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.NewMongoConnection(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("connecting to MongoDB", zap.Error(err))
	}
	defer db.Client().Disconnect(context.Background())

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitURL)
	if err != nil {
		log.Fatal("connecting to RabbitMQ", zap.Error(err))
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositories
	leadRepo := database.NewLeadRepository(db, log)
	userRepo := database.NewUserRepository(db)

	// 2. Adapters
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(
		cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPassword,
		cfg.NotifyFrom, cfg.NotifyTo,
	)

	// 3. Worker (consumes the deal-closed queue and sends the email)
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender, log)
	go worker.Start(queue.QueueName)

	// 4. Snapshot. The subscription is owned here and nowhere else; every
	// read surface serves whatever the holder currently has.
	holder := snapshot.NewHolder()
	snapshots, err := leadRepo.Subscribe(ctx)
	if err != nil {
		log.Fatal("subscribing to lead collection", zap.Error(err))
	}
	go func() {
		for snap := range snapshots {
			holder.Replace(snap)
			middleware.RecordSnapshotRefresh()
			log.Debug("snapshot refreshed",
				zap.Int("leads", len(snap)),
				zap.Uint64("version", holder.Version()))
		}
		log.Warn("snapshot stream closed, serving last known state")
	}()

	// 5. UseCases
	saveLeadUC := usecase.NewSaveLeadUseCase(leadRepo, holder, producer, log)
	loginUC := usecase.NewLoginUseCase(userRepo)

	// 6. Handlers
	leadHandler := handlers.NewLeadHandler(saveLeadUC, holder)
	statsHandler := handlers.NewStatsHandler(holder)
	calendarHandler := handlers.NewCalendarHandler(holder)
	tasksHandler := handlers.NewTasksHandler(holder)
	paymentsHandler := handlers.NewPaymentsHandler(saveLeadUC)
	loginHandler := handlers.NewLoginHandler(loginUC)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn, holder)

	// 7. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: strings.Split(cfg.AllowedOrigins, ","),
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(middleware.Metrics)

	r.Post("/login", loginHandler.HandleLogin)

	r.Get("/leads", leadHandler.HandleList)
	r.Post("/leads", leadHandler.HandleCreate)
	r.Put("/leads/{id}", leadHandler.HandleUpdate)
	r.Delete("/leads/{id}", leadHandler.HandleDelete)
	r.Put("/leads/{id}/payments", paymentsHandler.HandleSave)

	r.Get("/payments/templates", paymentsHandler.HandleTemplates)
	r.Get("/stats", statsHandler.HandleStats)
	r.Get("/calendar/{year}/{month}", calendarHandler.HandleMonth)
	r.Get("/tasks", tasksHandler.HandleTasks)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	log.Info("studio CRM listening", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
