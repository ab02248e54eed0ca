package env

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/amirrezaask/setadt/errors"
	"github.com/amirrezaask/setadt/set"

	"github.com/joho/godotenv"
)

var (
	dotEnvMu  sync.Mutex
	dotEnvMap = map[string]string{}
)

// Load merges the given dotenv files, ".env" when none are given. Missing
// files are skipped, later files win.
func Load(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	dotEnvMu.Lock()
	defer dotEnvMu.Unlock()
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		values, err := godotenv.Read(f)
		if err != nil {
			return errors.Wrap(err, "cannot read dotenv file %s", f)
		}
		for k, v := range values {
			dotEnvMap[k] = v
		}
	}
	return nil
}

func getEnv(key string) string {
	dotEnvMu.Lock()
	value := dotEnvMap[key]
	dotEnvMu.Unlock()

	if v := os.Getenv(key); v != "" {
		value = v
	}

	return value
}

func GetEnvDefault(key, def string) string {
	value := getEnv(key)
	if value == "" {
		return def
	}
	return value
}

func GetEnvIntDefault(key string, def int) int {
	value, err := strconv.Atoi(getEnv(key))
	if err != nil {
		return def
	}
	return value
}

func GetEnvRequiredNotEmpty(key string) (string, error) {
	value := getEnv(key)
	if value == "" {
		return "", errors.Newf("`%s` is not set or is empty", key)
	}
	return value, nil
}

// ParseCommaSeparatedAsSet splits input on commas, trims each item and
// drops empty ones. Items keep their first position in input.
func ParseCommaSeparatedAsSet(input string) *set.Bounded[string] {
	segs := strings.Split(input, ",")
	output, _ := set.NewBounded[string](len(segs))
	for _, seg := range segs {
		if seg = strings.TrimSpace(seg); seg != "" {
			_ = output.Add(seg)
		}
	}
	return output
}
