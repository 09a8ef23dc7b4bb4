package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"carepush/config"
	"carepush/internal/infra/auth"

	"github.com/pkg/errors"
)

// Issues a bridge credential for a native shell instance, signed with the configured secret.
//
//	bridgetoken -subject shell-1 -ttl 720h
func main() {
	subject := flag.String("subject", "", "Shell instance the credential is issued to")
	ttl := flag.Duration("ttl", 30*24*time.Hour, "Credential lifetime")
	flag.Parse()

	token, err := issue(*subject, *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}

func issue(subject string, ttl time.Duration) (string, error) {
	cfg, err := config.New()
	if err != nil {
		return "", errors.Wrap(err, "failed to load config")
	}

	tokens, err := auth.NewBridgeTokenService(cfg)
	if err != nil {
		return "", err
	}

	return tokens.IssueToken(subject, ttl)
}
