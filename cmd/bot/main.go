package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/strike/internal/common/clock"
	"github.com/KirkDiggler/strike/internal/common/scheduler"
	"github.com/KirkDiggler/strike/internal/common/uuid"
	"github.com/KirkDiggler/strike/internal/dice"
	"github.com/KirkDiggler/strike/internal/handlers/discord"
	"github.com/KirkDiggler/strike/internal/repositories/snapshot"
	gameService "github.com/KirkDiggler/strike/internal/services/game"
	"github.com/KirkDiggler/strike/internal/services/messaging"
	"github.com/KirkDiggler/strike/internal/services/round"
	"github.com/KirkDiggler/strike/internal/services/stats"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	location, err := cfg.location()
	if err != nil {
		log.Fatalf("Failed to load timezone: %v", err)
	}

	// Initialize the snapshot repository
	snapshotRepo, closeRepo, err := openSnapshotRepo(cfg)
	if err != nil {
		log.Fatalf("Failed to create snapshot repository: %v", err)
	}
	defer closeRepo()

	clk := clock.New()
	sched := scheduler.New()

	// Initialize services
	roundSvc, err := round.New(&round.Config{
		HistoryLimit:  cfg.HistoryLimit,
		HistoryMaxAge: cfg.HistoryMaxAge,
		Clock:         clk,
		Scheduler:     sched,
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create round service: %v", err)
	}

	gameSvc, err := gameService.New(&gameService.Config{
		PrizeCount:       cfg.PrizeCount,
		Location:         location,
		SnapshotInterval: cfg.SnapshotInterval,
		SnapshotRepo:     snapshotRepo,
		RoundService:     roundSvc,
		DiceRoller:       dice.New(&dice.Config{}),
		Clock:            clk,
		Scheduler:        sched,
	})
	if err != nil {
		log.Fatalf("Failed to create game service: %v", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		Location: location,
	})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	tracker, err := stats.New(&stats.Config{Clock: clk})
	if err != nil {
		log.Fatalf("Failed to create stats tracker: %v", err)
	}

	// Load the saved history before accepting commands
	restoreCtx, cancelRestore := context.WithTimeout(context.Background(), 10*time.Second)
	restored, err := gameSvc.Restore(restoreCtx, &gameService.RestoreInput{})
	cancelRestore()
	if err != nil {
		log.Printf("Failed to restore snapshot, starting empty: %v", err)
	} else if restored.Found {
		log.Printf("Restored %d rounds and %d standings", restored.Rounds, restored.Standings)
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:             cfg.DiscordToken,
		ApplicationID:     cfg.ApplicationID,
		GuildID:           cfg.GuildID,
		AdminIDs:          cfg.AdminIDs,
		AnnounceChannelID: cfg.AnnounceChannelID,
		GameService:       gameSvc,
		MessagingService:  messagingSvc,
		Tracker:           tracker,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	runDone := make(chan struct{})
	go func() {
		defer close(runDone)
		if err := gameSvc.Run(ctx); err != nil {
			log.Printf("Snapshot loop stopped: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	// Stop the snapshot loop, which saves one last time
	cancel()
	<-runDone

	log.Println("Bot has been shut down")
}

// openSnapshotRepo connects the configured snapshot backend
func openSnapshotRepo(cfg *config) (snapshot.Repository, func(), error) {
	if cfg.SnapshotBackend == backendSQLite {
		store, err := snapshot.OpenSQLite(&snapshot.SQLiteConfig{
			Path:      cfg.SQLitePath,
			Namespace: cfg.SnapshotNamespace,
		})
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				log.Printf("Failed to close SQLite store: %v", err)
			}
		}, nil
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	repo, err := snapshot.NewRedis(&snapshot.Config{
		RedisClient: redisClient,
		Namespace:   cfg.SnapshotNamespace,
	})
	if err != nil {
		_ = redisClient.Close()
		return nil, nil, err
	}

	return repo, func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Failed to close Redis client: %v", err)
		}
	}, nil
}
