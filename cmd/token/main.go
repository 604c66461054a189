package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/openmarket/markethub/lib/service"
	"github.com/openmarket/markethub/lib/tokens"
)

// Mints an access token for the given account id using the service's
// JWT secret. Useful for local development and smoke tests.
func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s <account-id>", os.Args[0])
	}
	accountID := os.Args[1]

	c := &service.Config{}
	err := godotenv.Load(".env")
	if err != nil {
		fmt.Println("Failed to load .env file")
	}
	err = envconfig.Process("", c)
	if err != nil {
		log.Fatalf("Error loading environment variables: %v", err)
	}

	token, err := tokens.GenerateAccessToken(c.JWTSecret, c.JWTAccessTokenExpiry, accountID)
	if err != nil {
		log.Fatalf("Error generating token: %v", err)
	}
	fmt.Println(token)
}
