package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/siinmedia/jastiphemat/config"
	"github.com/siinmedia/jastiphemat/controllers"
	"github.com/siinmedia/jastiphemat/repository"
	"github.com/siinmedia/jastiphemat/routes"
	"github.com/siinmedia/jastiphemat/services"
	"github.com/siinmedia/jastiphemat/utils"
	"github.com/siinmedia/jastiphemat/views"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	settings := config.LoadSettings()

	if settings.JWTSecret == "" {
		settings.JWTSecret = utils.GenerateJWTSecret()
		log.Println("JWT_SECRET not set, using a random secret; sessions end on restart")
	}

	db, err := config.ConnectDB(settings.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := config.Migrate(db); err != nil {
		log.Fatal(err)
	}

	pesananRepo := repository.NewPesananRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	var revoked services.RevocationStore = services.NewMemoryRevocationStore()
	redisClient, err := config.ConnectRedis(settings)
	if err != nil {
		log.Printf("Redis unavailable, keeping sign-outs in memory: %v", err)
	} else if redisClient != nil {
		defer redisClient.Close()
		revoked = services.NewRedisRevocationStore(redisClient)
		log.Printf("Session revocations stored in redis at %s", settings.RedisAddr)
	}

	var events services.EventPublisher = services.NopPublisher{}
	if len(settings.KafkaBrokers) > 0 {
		producer, err := services.DialKafka(settings.KafkaBrokers)
		if err != nil {
			log.Printf("Kafka unavailable, events disabled: %v", err)
		} else {
			publisher := services.NewKafkaPublisher(producer, settings.KafkaTopicPrefix)
			defer publisher.Close()
			events = publisher
			log.Printf("Publishing events to kafka %s", strings.Join(settings.KafkaBrokers, ","))
		}
	}

	var mailer services.Mailer
	if settings.SMTPUser != "" && settings.SMTPPass != "" {
		mailer = services.NewGomailMailer(settings.SMTPHost, settings.SMTPPort, settings.SMTPUser, settings.SMTPPass)
	}
	var whatsapp services.WhatsAppSender
	if settings.TwilioAccountSID != "" && settings.TwilioAuthToken != "" && settings.TwilioFrom != "" {
		whatsapp = services.NewTwilioSender(settings.TwilioAccountSID, settings.TwilioAuthToken, settings.TwilioFrom)
	}
	notifier := services.NewNotifier(mailer, whatsapp, settings.AdminNotifyEmail)
	links := services.LinkBuilder{BaseURL: settings.PublicBaseURL}

	authService := services.NewAuthService(adminRepo, revoked, settings.JWTSecret, settings.JWTExpiry)
	orderService := services.NewOrderService(pesananRepo, events, notifier)
	dashboardService := services.NewDashboardService(pesananRepo, invoiceRepo)
	invoiceService := services.NewInvoiceService(pesananRepo, invoiceRepo, events, notifier, links)

	if settings.AdminEmail != "" {
		created, err := authService.EnsureAdmin(context.Background(), settings.AdminEmail, settings.AdminPassword)
		if err != nil {
			log.Fatalf("Failed to seed admin: %v", err)
		}
		if created {
			log.Printf("Admin account %s created", settings.AdminEmail)
		}
	}

	digest := services.NewDigestService(invoiceRepo, notifier, links)
	if settings.DigestSchedule != "" {
		if err := digest.Start(settings.DigestSchedule); err != nil {
			log.Fatal(err)
		}
		defer digest.Stop()
	}

	renderer, err := views.New()
	if err != nil {
		log.Fatal(err)
	}

	secure := strings.HasPrefix(settings.PublicBaseURL, "https://")
	r := routes.SetupRouter(routes.Dependencies{
		Auth:           authService,
		Pages:          controllers.NewPageController(orderService, invoiceService),
		Admin:          controllers.NewAdminController(authService, dashboardService, orderService, invoiceService, secure),
		API:            controllers.NewAPIController(authService, dashboardService, orderService, invoiceService, secure),
		HTML:           renderer,
		AllowedOrigins: settings.AllowedOrigins,
	})
	printRoutes(r)
	if err := r.Run(":" + settings.Port); err != nil {
		log.Fatal(err)
	}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
