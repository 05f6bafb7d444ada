// Command issue-token mints a bearer token for the catalog write endpoints.
// It is used to bootstrap admin access when auth.enabled is true.
//
// Usage:
//
//	issue-token --subject=ops@example.com [--role=admin] [--ttl=24h]
//
// The secret and issuer come from the usual config file / AUTH_* variables.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/foodcatalog-backend/internal/auth"
	"github.com/heartmarshall/foodcatalog-backend/internal/config"
	"github.com/heartmarshall/foodcatalog-backend/pkg/ctxutil"
)

func main() {
	subject := flag.String("subject", "", "token subject, e.g. an operator email")
	role := flag.String("role", ctxutil.RoleAdmin, "role claim")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime; 0 means no expiry")
	flag.Parse()

	if *subject == "" {
		fmt.Fprintln(os.Stderr, "Usage: issue-token --subject=ops@example.com [--role=admin] [--ttl=24h]")
		os.Exit(1)
	}

	cfg, err := config.LoadAuth()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	token, err := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer).GenerateToken(*subject, *role, *ttl)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
}
