// Command admintoken prints a bearer token for the query API, signed with
// ADMIN_JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"pix-funnel/internal/pkg/jwt"

	"github.com/kelseyhightower/envconfig"
)

type tokenConfig struct {
	Secret string `envconfig:"ADMIN_JWT_SECRET" required:"true"`
}

func main() {
	subject := flag.String("subject", "", "who the token is issued to (required)")
	ttl := flag.Duration("ttl", 12*time.Hour, "token lifetime")
	flag.Parse()

	if *subject == "" {
		fmt.Fprintln(os.Stderr, "admintoken: -subject is required")
		os.Exit(2)
	}

	var cfg tokenConfig
	if err := envconfig.Process("", &cfg); err != nil {
		fmt.Fprintln(os.Stderr, "admintoken:", err)
		os.Exit(1)
	}

	token, err := jwt.NewService(cfg.Secret, *ttl).GenerateToken(*subject)
	if err != nil {
		fmt.Fprintln(os.Stderr, "admintoken:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
