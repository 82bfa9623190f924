package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"dinebook/config"
	"dinebook/database"
	"dinebook/feed"
	"dinebook/handler"
	"dinebook/helper"
	"dinebook/repository"
	"dinebook/router"
	"dinebook/service"
	"dinebook/slotlock"
	"dinebook/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
)

func main() {
	settings, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(settings)
	if err != nil {
		log.Fatal(err)
	}
	if settings.SeedDemo {
		database.SeedData(db)
	}

	var (
		locker  slotlock.Locker = slotlock.NewMemoryLocker()
		changes feed.Feed       = feed.NewMemoryFeed()
	)
	if settings.LockBackend == "redis" {
		rdb := redis.NewClient(&redis.Options{Addr: settings.RedisAddr, Password: settings.RedisPassword})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("redis: %v", err)
		}
		defer rdb.Close()
		locker = slotlock.NewRedisLocker(rdb, settings.LockTTL)
		changes = feed.NewRedisFeed(rdb)
		log.Printf("redis: connected to %s", settings.RedisAddr)
	}

	var notifier service.Notifier = service.LogNotifier{}
	if settings.MailerConfigured() {
		notifier = utils.NewMailer(utils.MailerConfig{
			Host:     settings.SMTPHost,
			Port:     settings.SMTPPort,
			Username: settings.SMTPUsername,
			Password: settings.SMTPPassword,
			From:     settings.SMTPFrom,
		})
	}

	bookings := service.NewBookingService(
		repository.NewRestaurantRepository(db),
		repository.NewUserRepository(db),
		repository.NewBookingRepository(db),
		locker,
		changes,
		notifier,
		service.Options{
			LockTimeout:   settings.LockTimeout,
			NotifyTimeout: settings.NotifyTimeout,
			Location:      settings.Location,
		},
	)

	scheduler, err := helper.StartScheduler(settings.Location, bookings.CompletePastBookingsJob, bookings.PurgeSlotLocksJob)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New()
	app.Use(recover.New())

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal(err)
	}
	router.SetupRoutes(app, router.Deps{
		Handler:   handler.New(bookings),
		JWTSecret: settings.JWTSecret,
		Ping:      sqlDB.PingContext,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("server: shutting down")
		if err := app.Shutdown(); err != nil {
			log.Printf("server: shutdown: %v", err)
		}
	}()

	if err := app.Listen(settings.HTTPAddr); err != nil {
		log.Printf("server: %v", err)
	}

	scheduler.Stop()
	bookings.Wait()
}
