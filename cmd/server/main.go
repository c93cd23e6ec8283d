package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/saulo-duarte/quizai/internal/config"
	"github.com/saulo-duarte/quizai/internal/container"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(); err != nil {
		logrus.WithError(err).Fatal("Application error")
	}
}

func run() error {
	settings, err := config.Load()
	if err != nil {
		return err
	}
	config.InitLogger(settings.Log, settings.Server.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := container.New(ctx, settings)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			logrus.WithError(err).Error("Failed to release resources")
		}
	}()

	server := &http.Server{
		Addr:         ":" + settings.Server.Port,
		Handler:      c.Router,
		ReadTimeout:  settings.Server.ReadTimeout,
		WriteTimeout: settings.Server.WriteTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{
			"port": settings.Server.Port,
			"env":  settings.Server.Env,
		}).Info("Server listening")
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logrus.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), settings.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}
	return nil
}
