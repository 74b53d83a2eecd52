package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load подгружает переменные из .env (уже выставленные в окружении не перезаписываются)
// и применяет флаги командной строки поверх окружения.
func Load(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil {
		return err
	}

	return applyFlags(flag.CommandLine, os.Args[1:])
}

func applyFlags(fs *flag.FlagSet, args []string) error {
	var portFlag string
	var migrateFlag bool
	fs.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	fs.BoolVar(&migrateFlag, "migrate", false, "Apply database migrations on start (overrides POSTGRES_MIGRATE)")

	err := fs.Parse(args)
	if err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	if portFlag != "" {
		err := os.Setenv("PORT", portFlag)
		if err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	if migrateFlag {
		err := os.Setenv("POSTGRES_MIGRATE", "true")
		if err != nil {
			return fmt.Errorf("failed to set POSTGRES_MIGRATE environment variable: %w", err)
		}
	}
	return nil
}
