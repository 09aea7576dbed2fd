package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"roomwatch/internal/config"
	"roomwatch/internal/database"
	"roomwatch/internal/domain"
	"roomwatch/internal/repository"
	"roomwatch/internal/service"
	"roomwatch/internal/validate"
)

// Creates (or resets the password of) an account. Users are administered out
// of band; this is the bootstrap path for the first admin login.
func main() {
	username := flag.String("username", "admin", "account name")
	password := flag.String("password", "", "plaintext password (hashed before storage)")
	email := flag.String("email", "", "optional email")
	phone := flag.String("phone", "", "optional phone")
	role := flag.Int("role", domain.RoleAdmin, "0 = user, 1 = admin")
	flag.Parse()

	payload := validate.UserPayload{
		Username: *username,
		Password: *password,
		Role:     role,
	}
	if *email != "" {
		payload.Email = email
	}
	if *phone != "" {
		payload.Phone = phone
	}
	if errs := validate.User(payload); len(errs) > 0 {
		log.Fatalf("Invalid account:\n  %s", strings.Join(errs, "\n  "))
	}

	hash, err := service.HashPassword(*password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	cfg := config.Load()
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Cannot connect to database: %v", err)
	}
	defer db.Close()

	user := &domain.User{
		Username:     *username,
		PasswordHash: hash,
		Role:         *role,
	}
	if *email != "" {
		user.Email.String, user.Email.Valid = *email, true
	}
	if *phone != "" {
		user.Phone.String, user.Phone.Valid = *phone, true
	}

	users := repository.NewPostgresUsersRepo(db)
	id, err := users.UpsertUser(context.Background(), user)
	if err != nil {
		log.Fatalf("Failed to upsert user: %v", err)
	}

	fmt.Printf("User %q (id %d, role %s) is ready\n", *username, id, user.RoleName())
}
