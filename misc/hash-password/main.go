package main

import (
	"fmt"
	"log"
	"os"

	"freight-quotes/internal/modules/admin"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run ./misc/hash-password <password>")
	}

	hash, err := admin.HashPassword(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	// Single quotes keep the .env loader from expanding the $ segments.
	fmt.Printf("ADMIN_PASSWORD_HASH='%s'\n", hash)
}
