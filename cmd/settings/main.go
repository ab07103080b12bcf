package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/DaanHessen/pagebot/internal/settings"
	"github.com/DaanHessen/pagebot/internal/store"
	"github.com/DaanHessen/pagebot/internal/ui"
)

var (
	version = "0.1.0"
	// defaultProfile is overridden at build time with
	// -ldflags "-X main.defaultProfile=literal".
	defaultProfile = "env"
)

func main() {
	profileFlag := flag.String("profile", defaultProfile, "Settings profile: env|literal")
	envFile := flag.String("env-file", settings.DefaultEnvFile, "Env file loaded before reading the environment (empty to skip)")
	theme := flag.String("theme", "catppuccin", "Theme for show/inspect")
	level := flag.String("log-level", "info", "Log level: debug|info|warn|error")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "settings [--profile env|literal] [--env-file PATH] [--theme NAME] show | inspect | check [bot|llm|db...] | ping-db | version\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	log.SetOutput(os.Stderr)
	lvl, err := log.ParseLevel(*level)
	if err != nil {
		log.WithError(err).Fatal("invalid log level")
	}
	log.SetLevel(lvl)

	args := flag.Args()
	cmd := "show"
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}
	if cmd == "version" {
		fmt.Println("settings", version)
		return
	}

	profile, err := settings.ParseProfile(*profileFlag)
	if err != nil {
		log.WithError(err).Fatal("invalid profile")
	}
	cfg := settings.Load(settings.WithProfile(profile), settings.WithEnvFile(*envFile))

	ctx := context.Background()
	switch cmd {
	case "show":
		fmt.Println(ui.Render(cfg, *theme))
	case "inspect":
		if err := ui.Run(ctx, cfg, *theme); err != nil {
			log.WithError(err).Fatal("inspector failed")
		}
	case "check":
		if err := cfg.Check(args...); err != nil {
			log.WithError(err).Error("configuration incomplete")
			os.Exit(1)
		}
		log.Info("configuration complete")
	case "ping-db":
		if err := pingDB(ctx, cfg); err != nil {
			log.WithError(err).Error("database unavailable")
			os.Exit(1)
		}
		fmt.Println("database reachable")
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func pingDB(ctx context.Context, cfg settings.Settings) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	db, err := store.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	return db.Ping(ctx)
}
