// Command tokengen issues an operator token for the dashboard API.
//
//	JWT_SECRET=... tokengen -sub alice -email alice@whitebay.test -role manager
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/whitebay/backoffice/config"
	"github.com/whitebay/backoffice/internal/models"
	"github.com/whitebay/backoffice/pkg/auth"
)

func main() {
	sub := flag.String("sub", "", "subject (staff id)")
	email := flag.String("email", "", "operator email")
	role := flag.String("role", string(models.RoleStaff), "staff, manager or admin")
	ttl := flag.Duration("ttl", 12*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}
	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET is not set")
		os.Exit(1)
	}
	r := models.StaffRole(*role)
	if *sub == "" || !r.Valid() {
		flag.Usage()
		os.Exit(2)
	}

	tok, err := auth.Issue(cfg.JWTSecret, auth.Claims{Subject: *sub, Email: *email, Role: r}, *ttl, time.Now())
	if err != nil {
		slog.Error("issue token", "err", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
