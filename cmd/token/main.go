// Command token mints a signed access token for the starmap API using the
// server's JWT configuration.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"starmap-server/internal/auth"
	"starmap-server/internal/shared/config"
)

func main() {
	user := flag.String("user", "operator", "username placed in the token")
	role := flag.String("role", auth.RoleAdmin, "role placed in the token")
	ttl := flag.Duration("ttl", 0, "token lifetime (defaults to JWT_EXPIRATION_HOURS)")
	flag.Parse()

	if err := config.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg := config.GlobalConfig.Auth

	lifetime := cfg.TokenExpiration
	if *ttl > 0 {
		lifetime = *ttl
	}

	token, err := auth.GenerateJWT(cfg.JWTSecret, fmt.Sprintf("cli_%d", time.Now().Unix()), *user, *role, lifetime)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(token)
}
