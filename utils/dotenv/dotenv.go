package dotenv

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnvs loads .env files into the process environment. Lookup order is
// .env.local first, then .env, matching the convention that local overrides
// win. Missing files are not an error so that production-style environments
// can rely on real env vars only.
func LoadDotEnvs() error {
	for _, name := range []string{".env.local", ".env"} {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			return err
		}
	}
	return nil
}
