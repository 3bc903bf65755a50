package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/meeting-room-reservation/internal/config"
	"github.com/iliyamo/meeting-room-reservation/internal/database"
	"github.com/iliyamo/meeting-room-reservation/internal/handler"
	"github.com/iliyamo/meeting-room-reservation/internal/middleware"
	"github.com/iliyamo/meeting-room-reservation/internal/queue"
	"github.com/iliyamo/meeting-room-reservation/internal/repository"
	"github.com/iliyamo/meeting-room-reservation/internal/router"
	"github.com/iliyamo/meeting-room-reservation/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	reservations := newReservationRepo(cfg)
	rooms, users := newDirectoryRepos(cfg)

	// Redis is optional. Without it the rate limiter passes through and
	// refresh tokens live in process memory.
	rdb := config.NewRedisClient()
	var tokens repository.TokenStore
	if rdb != nil {
		tokens = repository.NewRedisTokenStore(rdb)
	} else {
		tokens = repository.NewInMemoryTokenStore()
	}

	reservationSvc := service.NewReservationService(reservations, rooms, users)
	roomSvc := service.NewRoomService(rooms)

	publishEvents := os.Getenv("DISABLE_EVENTS") == ""
	authHandler := handler.NewAuthHandler(cfg, users, tokens)
	roomHandler := handler.NewRoomHandler(roomSvc)
	reservationHandler := handler.NewReservationHandler(reservationSvc, publishEvents)

	e := echo.New()
	e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterRooms(e, roomHandler, cfg.JWTSecret)
	router.RegisterReservations(e, reservationHandler, cfg.JWTSecret)

	if publishEvents {
		go func() {
			if err := queue.StartReservationConsumer(); err != nil {
				log.Printf("reservation consumer stopped: %v", err)
			}
		}()
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// newReservationRepo builds the reservation store selected by
// RESERVATION_STORE. File stores are initialised eagerly so a corrupt
// data file aborts startup instead of failing the first request.
func newReservationRepo(cfg config.Config) repository.ReservationRepository {
	switch cfg.ReservationStore {
	case "memory":
		return repository.NewInMemoryReservationRepo()
	case "file":
		repo := repository.NewFileReservationRepo(filepath.Join(cfg.DataDir, "reservations.json"))
		if err := repo.Init(); err != nil {
			log.Fatalf("init reservation store: %v", err)
		}
		return repo
	default:
		log.Fatalf("unknown RESERVATION_STORE: %q", cfg.ReservationStore)
		return nil
	}
}

// newDirectoryRepos builds the room and user stores selected by
// DIRECTORY_STORE.
func newDirectoryRepos(cfg config.Config) (repository.RoomRepository, repository.UserRepository) {
	switch cfg.DirectoryStore {
	case "memory":
		return repository.NewInMemoryRoomRepo(), repository.NewInMemoryUserRepo()
	case "file":
		rooms := repository.NewFileRoomRepo(filepath.Join(cfg.DataDir, "rooms.json"))
		if err := rooms.Init(); err != nil {
			log.Fatalf("init room store: %v", err)
		}
		users := repository.NewFileUserRepo(filepath.Join(cfg.DataDir, "users.json"))
		if err := users.Init(); err != nil {
			log.Fatalf("init user store: %v", err)
		}
		return rooms, users
	case "mysql":
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("connect to database: %v", err)
		}
		return repository.NewMySQLRoomRepo(db), repository.NewMySQLUserRepo(db)
	default:
		log.Fatalf("unknown DIRECTORY_STORE: %q", cfg.DirectoryStore)
		return nil, nil
	}
}
