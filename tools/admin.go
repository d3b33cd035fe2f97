package main

import (
	"context"
	"fmt"
	"os"

	"emptyleg-marketplace/database"
	"emptyleg-marketplace/database/seeders"
	"emptyleg-marketplace/repository"
	flightService "emptyleg-marketplace/services/flight"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage:")
		fmt.Println("  go run tools/admin.go migrate  - Run database migrations")
		fmt.Println("  go run tools/admin.go seed     - Seed reference airports")
		fmt.Println("  go run tools/admin.go sweep    - Complete departed flights")
		fmt.Println("  go run tools/admin.go recount  - Rebuild operator flight counters")
		return
	}

	command := os.Args[1]

	db, err := database.InitDB()
	if err != nil {
		fmt.Printf("❌ Database connection failed: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	store := repository.NewStore(db)

	switch command {
	case "migrate":
		// InitDB already ran the migrations.
		fmt.Println("✅ Migration completed successfully!")

	case "seed":
		fmt.Println("🚀 Seeding reference airports...")
		seeders.SeedAirports(db)

	case "sweep":
		fmt.Println("🚀 Completing departed flights...")
		n, err := flightService.NewService(store).MarkDeparted(ctx)
		if err != nil {
			fmt.Printf("❌ Sweep failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✅ Sweep completed, %d flights marked completed\n", n)

	case "recount":
		fmt.Println("🚀 Rebuilding operator flight counters...")
		if err := store.Operators().RecountFlights(ctx); err != nil {
			fmt.Printf("❌ Recount failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✅ Recount completed successfully!")

	default:
		fmt.Printf("Unknown command: %s\n", command)
		fmt.Println("Available commands: migrate, seed, sweep, recount")
	}
}
