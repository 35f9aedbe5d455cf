// Command token mints a bearer JWT for API clients using the server's
// JWT_SECRET and JWT_EXPIRATION_HOURS settings.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"swapi-server/internal/auth"
	"swapi-server/internal/shared/config"
)

func main() {
	client := flag.String("client", "", "name of the API client the token is issued to")
	scopes := flag.String("scopes", auth.ScopeWrite, "comma separated scopes")
	flag.Parse()

	if err := config.Init(); err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	token, err := auth.GenerateJWT(config.GlobalConfig.Auth, *client, splitScopes(*scopes), time.Now())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(token)
}

func splitScopes(s string) []string {
	var out []string
	for _, scope := range strings.Split(s, ",") {
		if scope = strings.TrimSpace(scope); scope != "" {
			out = append(out, scope)
		}
	}
	return out
}
