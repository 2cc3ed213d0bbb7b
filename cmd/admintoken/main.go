// cmd/admintoken/main.go
package main

import (
	"flag"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/imi-catalog/internal/config"
	"github.com/javajoker/imi-catalog/internal/utils"
)

// Prints a bearer token for the admin routes, signed with JWT_SECRET.
func main() {
	subject := flag.String("subject", "catalog-admin", "token subject")
	role := flag.String("role", utils.RoleAdmin, "token role (admin or viewer)")
	ttl := flag.Int("ttl", 0, "token lifetime in hours (defaults to JWT_ACCESS_TTL)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	if *ttl <= 0 {
		*ttl = cfg.JWT.AccessTokenTTL
	}

	utils.SetJWTSecret(cfg.JWT.SecretKey)
	token, err := utils.GenerateJWT(*subject, *role, *ttl)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to sign token")
	}

	fmt.Println(token)
}
