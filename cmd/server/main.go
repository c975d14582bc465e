// Точка входа сервера игрового автомата
package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"slot_backend/internal/app"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if level, err := log.ParseLevel(os.Getenv("APP_LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}

	if err := app.NewApp().Run(); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
