// Package strength scores passwords with zxcvbn and estimates crack times
// under a set of standard attack scenarios. It only consumes passwords; it
// never stores or transmits them.
package strength

import (
	"fmt"
	"math"

	zxcvbn "github.com/nbutton23/zxcvbn-go"

	"github.com/strongpass/strongpass-go/internal/model"
)

// Guesses per second under each attack scenario. Names and rates follow the
// zxcvbn reference estimator.
var scenarios = map[string]float64{
	"online_throttling_100_per_hour":       100.0 / 3600.0,
	"online_no_throttling_10_per_second":   10,
	"offline_slow_hashing_1e4_per_second":  1e4,
	"offline_fast_hashing_1e10_per_second": 1e10,
}

// Analyze scores password and returns the 0-4 score, estimated entropy, and
// a crack-time display string per attack scenario.
func Analyze(password string) model.StrengthReport {
	result := zxcvbn.PasswordStrength(password, nil)

	display := make(map[string]string, len(scenarios))
	for name, rate := range scenarios {
		display[name] = DisplayTime(crackSeconds(result.Entropy, rate))
	}

	return model.StrengthReport{
		Score:             result.Score,
		EntropyBits:       result.Entropy,
		CrackTimesDisplay: display,
	}
}

// crackSeconds is the expected time to hit the password at the given guess
// rate, assuming the attacker searches half the space on average.
func crackSeconds(entropyBits, guessesPerSecond float64) float64 {
	return 0.5 * math.Pow(2, entropyBits) / guessesPerSecond
}

const (
	minute  = 60
	hour    = 60 * minute
	day     = 24 * hour
	month   = 31 * day
	year    = 365 * day
	century = 100 * year
)

// DisplayTime renders a duration in seconds on the zxcvbn display ladder,
// from "less than a second" up to "centuries".
func DisplayTime(seconds float64) string {
	switch {
	case seconds < 1:
		return "less than a second"
	case seconds < minute:
		return plural(seconds, "second")
	case seconds < hour:
		return plural(seconds/minute, "minute")
	case seconds < day:
		return plural(seconds/hour, "hour")
	case seconds < month:
		return plural(seconds/day, "day")
	case seconds < year:
		return plural(seconds/month, "month")
	case seconds < century:
		return plural(seconds/year, "year")
	default:
		return "centuries"
	}
}

func plural(v float64, unit string) string {
	n := int64(math.Round(v))
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
