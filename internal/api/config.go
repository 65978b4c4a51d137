package api

import (
	"fmt"
	"os"
	"strconv"
)

//Config keeps the settings of the ballistics service
type Config struct {
	Addr              string
	RequestsPerMinute float64 //per client address
	Burst             int
}

//DefaultConfig returns the settings used when nothing is overridden
func DefaultConfig() Config {
	return Config{
		Addr:              ":8080",
		RequestsPerMinute: 600,
		Burst:             60,
	}
}

//ConfigFromEnv overrides base with INGALLS_ADDR and INGALLS_RATE (requests per minute)
//when they are set. The burst follows the rate the same way as the default one does.
func ConfigFromEnv(base Config) (Config, error) {
	if addr := os.Getenv("INGALLS_ADDR"); addr != "" {
		base.Addr = addr
	}
	if s := os.Getenv("INGALLS_RATE"); s != "" {
		rate, err := strconv.ParseFloat(s, 64)
		if err != nil || !(rate > 0) {
			return base, fmt.Errorf("INGALLS_RATE %q is not a positive number", s)
		}
		base.RequestsPerMinute = rate
		base.Burst = max(1, int(rate/10))
	}
	return base, nil
}
