// Command seed writes a generated marketplace dataset to a JSON file that the
// API loads through DATASET_PATH. With -token it prints a signed development
// token instead.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"go-marketplace/internal/config"
	"go-marketplace/internal/models"
	"go-marketplace/internal/store"
	"go-marketplace/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	out := flag.String("out", "dataset.json", "output file, - for stdout")
	seed := flag.Uint64("seed", cfg.Seed, "generator seed")
	count := flag.Int("count", cfg.SeedExtensions, "number of generated extensions")
	nowFlag := flag.String("now", "", "reference time (RFC 3339), defaults to the current time")

	token := flag.Bool("token", false, "print a signed token instead of writing a dataset")
	userID := flag.String("user", store.DemoUserID, "token user id")
	name := flag.String("name", "John Doe", "token user name")
	role := flag.String("role", string(models.RoleStandardUser), "token role: standard_user, developer or admin")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	if *token {
		r := models.UserRole(*role)
		if !r.Valid() {
			logger.Fatal("Unknown role", zap.String("role", *role))
		}
		utils.SetSecret(cfg.JWTSecret)
		signed, err := utils.GenerateToken(models.CurrentUser{ID: *userID, Name: *name, Role: r}, *ttl)
		if err != nil {
			logger.Fatal("Failed to sign token", zap.Error(err))
		}
		os.Stdout.WriteString(signed + "\n")
		return
	}

	now := time.Now()
	if *nowFlag != "" {
		now, err = time.Parse(time.RFC3339, *nowFlag)
		if err != nil {
			logger.Fatal("Invalid -now", zap.Error(err))
		}
	}

	d := store.NewGenerator(*seed, now).Generate(*count)

	w := os.Stdout
	if *out != "-" {
		f, err := os.Create(*out)
		if err != nil {
			logger.Fatal("Failed to create output file", zap.Error(err))
		}
		defer f.Close()
		w = f
	}
	if err := d.Write(w); err != nil {
		logger.Fatal("Failed to write dataset", zap.Error(err))
	}

	logger.Info("Dataset written",
		zap.String("out", *out),
		zap.Uint64("seed", *seed),
		zap.Int("extensions", len(d.Extensions)),
		zap.Int("reviews", len(d.Reviews)),
		zap.Int("audit_logs", len(d.AuditLogs)),
	)
}
