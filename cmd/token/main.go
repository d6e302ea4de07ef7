// Command token prints an editor token for the question routes.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/atahmasb/trivia-api/internal/config"
	"github.com/atahmasb/trivia-api/internal/services"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, using environment")
	}

	fs := config.Flags("token")
	fs.String("subject", "editor", "subject claim of the token")
	fs.String("auth-secret", "", "HMAC secret, overrides TRIVIA_AUTH_SECRET")
	cfg, err := config.Load(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	if cfg.Auth.Secret == "" {
		log.Fatal("auth.secret is not set, editor tokens are disabled")
	}
	subject, _ := fs.GetString("subject")

	token, err := services.NewAuthService(cfg.Auth.Secret, cfg.Auth.TTL).GenerateToken(subject)
	if err != nil {
		log.Fatalf("failed to sign token: %v", err)
	}
	fmt.Println(token)
}
