// Command issue-token signs a bearer token the gateway accepts. Production tokens come from the
// identity provider that shares JWT_SECRET; this is for local runs and smoke tests.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"overcooked-delivery/auth"
	"overcooked-delivery/config"
)

func main() {
	userID := flag.Int("user", 0, "user id to embed in the token")
	role := flag.String("role", "customer", "role claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	config.LoadDotEnv()
	secret := config.Env("JWT_SECRET", "")
	if secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}
	if *userID <= 0 {
		log.Fatal("-user must be a positive id")
	}

	token, err := auth.NewTokenManager(secret, *ttl).Issue(*userID, *role)
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}
	fmt.Println(token)
}
