package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/salman854/inventory-agents/internal/ai"
	"github.com/salman854/inventory-agents/internal/config"
	"github.com/salman854/inventory-agents/internal/handlers"
	"github.com/salman854/inventory-agents/internal/monitor"
	"github.com/salman854/inventory-agents/internal/notify"
	"github.com/salman854/inventory-agents/internal/routes"
	"github.com/salman854/inventory-agents/internal/store"
)

func newLogger(appEnv string) *zap.Logger {
	if appEnv == "development" {
		logger, _ := zap.NewDevelopment()
		return logger
	}
	logger, _ := zap.NewProduction()
	return logger
}

func main() {
	_ = godotenv.Load() // .env is optional, system env works too
	cfg := config.LoadEnv()

	logger := newLogger(cfg.AppEnv)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Record store ---
	st, err := store.Open(cfg.Store, logger)
	if err != nil {
		if errors.Is(err, store.ErrStateReset) {
			logger.Warn("previous state could not be loaded, starting empty", zap.Error(err))
		} else {
			logger.Fatal("failed to open store", zap.Error(err))
		}
	}

	// --- AI service ---
	aiService, err := ai.NewService(ctx, cfg.Gemini.APIKey)
	if err != nil {
		logger.Warn("AI service unavailable, suggestions disabled", zap.Error(err))
	}
	defer aiService.Close()

	// --- Notification channels ---
	whatsapp := notify.NewWhatsAppAgent(st, aiService, logger, cfg.Twilio, cfg.Monitor.SendTimeout)
	email := notify.NewEmailAgent(st, logger, cfg.SMTP)

	// --- Background monitor ---
	mon := monitor.New(st, []notify.Alerter{whatsapp, email}, whatsapp, email, logger, monitor.Config{
		Interval:     cfg.Monitor.Interval,
		ReportHour:   cfg.Monitor.ReportHour,
		ReportMinute: cfg.Monitor.ReportMinute,
		SendTimeout:  cfg.Monitor.SendTimeout,
	})
	mon.Start(ctx)

	// --- Optional HTTP surface ---
	if cfg.HTTPAddr != "" {
		app := &handlers.Handlers{Store: st, WhatsApp: whatsapp, Email: email, Logger: logger}
		router := routes.SetupRouter(app)
		go func() {
			logger.Info("starting inventory API server", zap.String("addr", cfg.HTTPAddr))
			if err := router.Run(cfg.HTTPAddr); err != nil {
				logger.Error("API server stopped", zap.Error(err))
			}
		}()
	}

	whatsapp.SendMessage(ctx, "🔄 Inventory system initialized and ready!")
	email.Send(ctx, "System Initialized", "Inventory management system is now running", nil)

	// --- Demonstration scenario ---
	logger.Info("adding sample products")
	st.Add("P001", "Wireless Mouse", 50, decimal.NewFromFloat(19.99), "Electronics")
	st.Add("P002", "Mechanical Keyboard", 15, decimal.NewFromFloat(89.99), "Electronics")
	st.Add("P003", "Monitor Stand", 3, decimal.NewFromFloat(29.99), "Accessories")
	st.Add("P004", "USB-C Cable", 0, decimal.NewFromFloat(9.99), "Accessories") // out of stock

	logger.Info("simulating sales")
	st.Sell("P001", 5)
	st.Sell("P002", 10)

	logger.Info("updating stock")
	st.UpdateQuantity("P003", -2)

	logger.Info("sending WhatsApp notifications")
	whatsapp.NotifyActivity(ctx)
	whatsapp.SuggestActions(ctx)

	logger.Info("sending email report")
	email.SendDailyReport(ctx)

	logger.Info("monitoring inventory", zap.Duration("runtime", cfg.DemoRuntime))
	select {
	case <-time.After(cfg.DemoRuntime):
	case <-ctx.Done():
		logger.Info("interrupted, shutting down early")
	}

	// --- Shutdown ---
	logger.Info("shutting down")
	mon.Stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Monitor.SendTimeout)
	defer cancel()
	whatsapp.SendMessage(shutdownCtx, "🛑 Inventory system shutting down. Goodbye!")
	email.Send(shutdownCtx, "System Shutdown", "Inventory management system is shutting down", nil)
	logger.Info("shutdown complete")
}
