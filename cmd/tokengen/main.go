// Command tokengen mints a bearer token for a named caller, signed with the
// same key the server reads from JWT_SIGNING_KEY. Intended for issuing
// credentials to integrations, not for production token management.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	jwttoken "github.com/SeanJibowu555/dealer-qualifier/internal/jwt_token"
	"github.com/SeanJibowu555/dealer-qualifier/internal/platform/config"
)

func main() {
	client := flag.String("client", "", "caller name embedded in the token")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *client == "" {
		fmt.Fprintln(os.Stderr, "usage: tokengen -client <name> [-ttl <duration>]")
		os.Exit(2)
	}

	cfg := config.FromEnv()
	service := jwttoken.NewJWTService(cfg.JWTSigningKey, "dealer-qualifier", "qualify-api")

	token, err := service.GenerateAccessToken(*client, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tokengen: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
