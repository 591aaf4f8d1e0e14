// Command admintoken prints a signed admin JWT for the catalog
// management endpoints. The secret must match the server's JWT_SECRET.
//
// Usage:
//
//	JWT_SECRET=... admintoken [operator-name]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/whiskerforge/catcombo/api/internal/auth"
)

func main() {
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "JWT_SECRET is required")
		os.Exit(1)
	}

	name := "admin"
	if flag.NArg() > 0 {
		name = flag.Arg(0)
	}

	token, err := auth.NewTokenManager(secret).GenerateAdminToken(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
