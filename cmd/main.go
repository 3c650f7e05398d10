package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"gitlab.com/codeduel-2025.net/internal/adapter/judge0"
	"gitlab.com/codeduel-2025.net/internal/adapter/memgate"
	"gitlab.com/codeduel-2025.net/internal/adapter/memproblems"
	"gitlab.com/codeduel-2025.net/internal/adapter/memstate"
	"gitlab.com/codeduel-2025.net/internal/adapter/postgres/problemrepository"
	redisgate "gitlab.com/codeduel-2025.net/internal/adapter/redis/submissiongate"
	"gitlab.com/codeduel-2025.net/internal/config"
	"gitlab.com/codeduel-2025.net/internal/core/ports/secondary"
	"gitlab.com/codeduel-2025.net/internal/core/services/duel"
	"gitlab.com/codeduel-2025.net/internal/core/services/matchmaking"
	"gitlab.com/codeduel-2025.net/internal/core/services/rooms"
	"gitlab.com/codeduel-2025.net/internal/core/services/session"
	"gitlab.com/codeduel-2025.net/internal/dispatch"
	logger2 "gitlab.com/codeduel-2025.net/internal/global/logger"
	http2 "gitlab.com/codeduel-2025.net/internal/http"
	"gitlab.com/codeduel-2025.net/internal/sweep"
	"gitlab.com/codeduel-2025.net/internal/ws"
)

func main() {
	InitReader()
	// Set up graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	logger2.Info("Starting duel server")

	logger := logger2.Logger

	sysCfg := config.NewSystemConfig()

	// SECONDARY PORTS
	directory := memstate.NewSessionDirectory()
	queueStore := memstate.NewQueue()
	roomStore := memstate.NewRooms()
	duelStore := memstate.NewDuels()

	problemRepo := setupProblemRepository(sysCfg)
	gate := setupSubmissionGate(sysCfg)
	executor := judge0.NewClient(sysCfg.JudgeConfig, logger)

	// the dispatcher serializes every state mutation
	dispatcher := dispatch.NewSerial(logger)
	dispatcher.Start()

	// services and transport; the ws server is also the notifier, so the
	// two are wired in two steps
	matchmakingSvc := matchmaking.NewMatchmakingService(queueStore, directory, duelStore, problemRepo, nil, logger)
	roomSvc := rooms.NewRoomService(roomStore, directory, duelStore, problemRepo, nil, logger, sysCfg.DuelConfig)
	duelSvc := duel.NewDuelService(directory, duelStore, problemRepo, gate, executor, nil, dispatcher, logger, sysCfg.DuelConfig)
	sessionSvc := session.NewSessionService(directory, duelStore, gate, matchmakingSvc, roomSvc, nil, logger)

	wsServer := ws.NewWSServer(sessionSvc, matchmakingSvc, roomSvc, duelSvc, dispatcher, logger)
	matchmakingSvc.SetNotifier(wsServer)
	roomSvc.SetNotifier(wsServer)
	duelSvc.SetNotifier(wsServer)
	sessionSvc.SetNotifier(wsServer)

	httpServer := http2.NewServer(sysCfg.ServerConfig.Port, "duelServer", wsServer, executor, logger)
	if err := httpServer.Init(); err != nil {
		panic(err)
	}

	ctxBg, cancelBg := context.WithCancel(context.Background())
	httpServer.Start(ctxBg)

	sweepEngine := sweep.NewEngine(sysCfg.DuelConfig, roomSvc, dispatcher, logger)
	sweepEngine.Start(ctxBg)

	<-quit
	logger.Info("Shutting down server...")

	cancelBg()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	httpServer.Stop(ctx)
	dispatcher.Stop(ctx)

	logger.Info("successfully shutdown server")
}

// setupProblemRepository picks the PostgreSQL problem bank when configured
// and the seeded in-memory pool otherwise
func setupProblemRepository(sysCfg *config.AppConfig) secondary.ProblemRepository {
	if !sysCfg.PostgresConfig.Enabled {
		return memproblems.New(time.Now().UnixNano())
	}

	db, err := sqlx.Open("postgres", sysCfg.PostgresConfig.URL)
	if err != nil {
		panic(err)
	}
	if err := db.Ping(); err != nil {
		panic(err)
	}
	return problemrepository.NewProblemRepository(db, logger2.Logger)
}

// setupSubmissionGate picks the Redis gate when configured and the
// in-process gate otherwise
func setupSubmissionGate(sysCfg *config.AppConfig) secondary.SubmissionGate {
	duelCfg := sysCfg.DuelConfig
	if !sysCfg.RedisConfig.Enabled {
		return memgate.NewGate(duelCfg.SubmitWindow, duelCfg.SubmitLimit)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     sysCfg.RedisConfig.Addr,
		Password: sysCfg.RedisConfig.Password,
		DB:       sysCfg.RedisConfig.DB,
	})
	return redisgate.NewGate(redisClient, duelCfg.SubmitWindow, duelCfg.SubmitLimit, logger2.Logger)
}

func InitReader() {
	environment := ""
	if len(os.Args) < 2 {
		log.Fatalf("Env not supplied in argument")
	} else {
		environment = os.Args[1]
	}

	err := godotenv.Load(environment + ".env")
	if err != nil {
		log.Fatalf("Error loading %s.env file", environment)
	}
}
