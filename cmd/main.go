package main

import (
	"context"
	"fmt"
	"ideation-lab/internal"
	"ideation-lab/moderation"
	"ideation-lab/repositories"
	"ideation-lab/runtime"
	"ideation-lab/runtime/workers"
	"ideation-lab/search"
	"ideation-lab/sink"
	"ideation-lab/substitute"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the process lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for the background workers.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	maskRune, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return err
	}

	// 2. Database (BadgerDB) & full-text index (Bluge)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	//  Defer will be executed before run() returned anything to main()
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	writer, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("index opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing idea index...")
		_ = writer.Close()
	}()

	// 3. Moderation & substitute contributor
	censored, err := moderation.LoadCensoredWords()
	if err != nil {
		return fmt.Errorf("loading censored words: %w", err)
	}
	log.Info("Loaded censored words", "count", len(censored.Words), "languages", censored.Languages)
	moderator, err := moderation.NewModerator(censored.Words, maskRune, log)
	if err != nil {
		return fmt.Errorf("building moderator: %w", err)
	}
	generator := substitute.NewResilientGenerator(nil, config.GeneratorTimeout, log)

	// 4. Supervision & orchestration
	sup := workers.NewSupervisor(log, config.RestartInterval)
	registry := runtime.NewRegistry(log, config.SinkTimeout)
	repository := repositories.NewSessionRepository(db, log, config.LimitIdeas)
	engine := runtime.NewRotationEngine(log, repository, generator, registry, &moderator)
	orchestrator := runtime.NewOrchestrator(
		log, sup, registry, engine,
		config.BufferSize, config.SinkTimeout, config.MetricInterval,
	)

	index := search.NewIdeaIndex(writer, log)
	orchestrator.Add(sink.NewTimeline(), sink.NewIndexSink(index, log))

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Start the pipeline; Start blocks until shutdown
	errChan := make(chan error, 1)
	go func() {
		if err := orchestrator.Start(ctx); err != nil {
			errChan <- fmt.Errorf("orchestrator error: %w", err)
		}
	}()

	// 7. Debug surface
	internal.StartDebugServer(db, config.DebugPort, "/inspect", internal.DefaultMapper, orchestrator.Stats)
	log.Info("Debug server started", "port", config.DebugPort)

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 9. Final Cleanup
	orchestrator.Stop()
	log.Info("Program stopped cleanly")

	return nil
}
