package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/osse101/DailyGarden_Go/internal/bootstrap"
	"github.com/osse101/DailyGarden_Go/internal/config"
)

// reset wipes every persisted garden key from the configured store.
// The next start of the app begins with a fresh player.
func main() {
	confirm := flag.Bool("yes", false, "skip the confirmation prompt")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if !*confirm {
		fmt.Printf("This deletes all saved garden state in the %s store. Type 'yes' to continue: ", cfg.StoreBackend)
		var answer string
		_, _ = fmt.Scanln(&answer)
		if answer != "yes" {
			log.Println("Aborted")
			return
		}
	}

	ctx := context.Background()
	st, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()

	if err := st.Clear(ctx); err != nil {
		log.Fatalf("Failed to clear store: %v", err)
	}
	log.Printf("✅ Garden state cleared from %s store", cfg.StoreBackend)
}
