package main

import (
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/hciworks/interaction-core/internal/cache"
	"github.com/hciworks/interaction-core/internal/interop"
	"github.com/hciworks/interaction-core/internal/store"
	"google.golang.org/grpc"
)

// #region main

func main() {
	dbPath := envOr("INTERACTION_DB", "interaction.db")
	addr := envOr("INTEROP_ADDR", "localhost:50061")

	st, err := store.Open(dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer st.Close()

	// Live message cache fed by incoming publishes. The cache is
	// single-owner, so publishes from handler goroutines are funneled
	// through one draining goroutine.
	live := store.NewMessageCache(cache.DefaultPruneConfig())
	incoming := make(chan store.Message, 256)
	go func() {
		for m := range incoming {
			live.Add(m)
		}
	}()

	srv := interop.NewServer(st, func(m store.Message) {
		select {
		case incoming <- m:
		default:
			log.Printf("[INTEROPD] live cache backlog full, dropping message %d", m.ID)
		}
	})

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("failed to listen on %s: %v", addr, err)
	}

	g := grpc.NewServer()
	srv.Register(g)

	log.Printf("[INTEROPD] serving on %s (db=%s)", addr, dbPath)
	go func() {
		if err := g.Serve(lis); err != nil {
			log.Fatalf("serve: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Printf("[INTEROPD] shutting down")
	g.GracefulStop()
}

// #endregion main

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
// #endregion helpers
