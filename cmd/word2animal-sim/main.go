// Command word2animal-sim serves the word2animal gRPC contract with a
// deterministic keyword table. It stands in for the real inference backend
// in development and end-to-end tests.
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"brainball/api/internal/simulator"
)

func main() {
	defaultAddr := ":50051"
	if v := os.Getenv("WORD2ANIMAL_ADDR"); v != "" {
		defaultAddr = v
	}
	addr := flag.String("addr", defaultAddr, "gRPC listen address, e.g. :50051")
	tablePath := flag.String("table", "", "Optional YAML keyword table (defaults to the built-in animals)")
	delay := flag.Duration("delay", 0, "Artificial per-call delay, useful for timeout testing")
	flag.Parse()

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	table := simulator.DefaultTable()
	if *tablePath != "" {
		var err error
		table, err = simulator.LoadTable(*tablePath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *tablePath).Msg("load table")
		}
	}

	svc := simulator.NewService(table, log)
	svc.Delay = *delay

	srv := simulator.NewServer(svc)
	go func() {
		log.Info().Str("addr", *addr).Int("animals", len(table)).Msg("word2animal simulator listening")
		if err := srv.Serve(*addr); err != nil {
			log.Fatal().Err(err).Msg("serve")
		}
	}()

	// Serve until interrupted, then drain in-flight calls.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	srv.GracefulStop()
}
