package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"roomwatch/internal/config"
	"roomwatch/internal/database"
	httpapi "roomwatch/internal/http"
	"roomwatch/internal/logger"
	"roomwatch/internal/mqtt"
	"roomwatch/internal/repository"
	"roomwatch/internal/service"
)

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, "roomwatch")
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	usersRepo := repository.NewPostgresUsersRepo(db)
	areasRepo := repository.NewPostgresAreasRepo(db)
	roomsRepo := repository.NewPostgresRoomsRepo(db)
	sensorsRepo := repository.NewPostgresSensorsRepo(db)

	authService := service.NewAuthService(usersRepo, log)
	sensorService := service.NewSensorService(sensorsRepo, log)

	gate := httpapi.NewAuthGate(authService, log)
	router := httpapi.NewRouter(log)
	router.RegisterHealthRoutes(httpapi.NewHealthHandler(db, log))
	router.RegisterAuthRoutes(httpapi.NewAuthHandler(authService, log))
	router.RegisterRoomRoutes(httpapi.NewRoomHandler(roomsRepo, log))
	router.RegisterAreaRoutes(httpapi.NewAreaHandler(areasRepo, log))
	router.RegisterSensorRoutes(httpapi.NewSensorHandler(sensorService, log), httpapi.NewMapHandler(sensorService, log), gate)

	// Status ingest over MQTT is opt-in; the API works without a broker.
	var mqttClient *mqtt.Client
	if cfg.MQTT.Enabled {
		mqttClient, err = mqtt.NewClient(&cfg.MQTT, log)
		if err != nil {
			log.Fatal("Failed to connect to MQTT broker", zap.Error(err))
		}
		broker := mqtt.NewStatusBroker(sensorService, log)
		if err := mqttClient.Subscribe(cfg.MQTT.Topic, cfg.MQTT.QoS, broker.HandleMessage); err != nil {
			log.Fatal("Failed to subscribe to status topic", zap.Error(err))
		}
		log.Info("MQTT status ingest enabled", zap.String("topic", cfg.MQTT.Topic))
	}

	srv := service.NewServer(cfg.HTTP.Addr, router, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("Shutting down", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("HTTP server stopped", zap.Error(err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Stop(shutdownCtx)
	if mqttClient != nil {
		mqttClient.Disconnect()
	}
}
