package main // Entry point package

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/cinema-chatbot/internal/chat"
	"github.com/iliyamo/cinema-chatbot/internal/config"
	"github.com/iliyamo/cinema-chatbot/internal/database"
	"github.com/iliyamo/cinema-chatbot/internal/handler"
	"github.com/iliyamo/cinema-chatbot/internal/middleware"
	"github.com/iliyamo/cinema-chatbot/internal/queue"
	"github.com/iliyamo/cinema-chatbot/internal/repository"
	"github.com/iliyamo/cinema-chatbot/internal/router"
	queue_publisher "github.com/iliyamo/cinema-chatbot/internal/service"
	"github.com/iliyamo/cinema-chatbot/internal/utils"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	passHash, err := utils.HashPassphrase(cfg.AdminPass, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("hash admin passphrase: %v", err)
	}

	stepTTL := time.Duration(cfg.StepTTLMin) * time.Minute

	// Conversation state lives in Redis when available so the admin flow
	// survives restarts; otherwise an in-memory store with the same TTL.
	rdb := config.NewRedisClient()
	var sessions chat.SessionStore
	if rdb != nil {
		sessions = chat.NewRedisStore(rdb, stepTTL)
	} else {
		log.Println("redis unavailable, using in-memory session store")
		sessions = chat.NewMemoryStore(stepTTL)
	}

	movies := repository.NewMovieRepo(db)
	showings := repository.NewShowingRepo(db)
	reservations := repository.NewReservationRepo(db)

	engine := chat.NewEngine(movies, showings, reservations, sessions, passHash,
		queue_publisher.PublishReservationConfirmed)

	go queue.StartReservationConsumer()

	e := echo.New()
	e.Use(echomw.CORS())

	router.RegisterRoutes(e)
	router.RegisterChat(e,
		handler.NewChatHandler(engine),
		handler.NewWSHandler(engine),
		middleware.SessionID(),
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
