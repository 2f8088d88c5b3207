// Command seed runs the database seeder for Forkful.
package main

import (
	"flag"
	"log"

	"forkful/internal/config"
	"forkful/internal/database"
	"forkful/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of users to create")
	numRestaurants := flag.Int("restaurants", 50, "Number of restaurants to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d users, %d restaurants, clean=%v\n", *numUsers, *numRestaurants, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:       *numUsers,
		NumRestaurants: *numRestaurants,
		ShouldClean:    *shouldClean,
	}); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with test data.")
	log.Println("📧 All test users have the password: password123")
}
