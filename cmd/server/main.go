package main

import (
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/fritter-app/fritter-backend/db"
	"github.com/fritter-app/fritter-backend/metrics"
	"github.com/fritter-app/fritter-backend/router"
	"github.com/fritter-app/fritter-backend/routes"
	"github.com/fritter-app/fritter-backend/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using environment variables")
	}
	logrus.SetFormatter(&logrus.JSONFormatter{})

	store, err := db.Init()
	if err != nil {
		logrus.WithError(err).Fatal("DB connection failed")
	}
	defer store.Close()

	var notifier services.Notifier
	if path := os.Getenv("FIREBASE_CREDENTIALS_PATH"); path != "" {
		if err := services.InitFirebase(path); err != nil {
			logrus.WithError(err).Warn("Firebase init failed, push notifications disabled")
		} else {
			notifier = services.NewFCMNotifier(store)
		}
	}

	env := &router.Env{
		Store:    store,
		Notifier: notifier,
		Metrics:  metrics.InitMetrics(),
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           routes.Init(env),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logrus.WithField("port", port).Info("Fritter server listening")
	if err := srv.ListenAndServe(); err != nil {
		logrus.WithError(err).Fatal("Server stopped")
	}
}
