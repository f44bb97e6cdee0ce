package main

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
)

// DefaultDataRate is applied to links that omit dataRate.
const DefaultDataRate = "1000Gbps"

// rateUnits maps a unit token to its multiplier in bits per second.
var rateUnits = map[string]int64{
	"bps": 1,
	"b/s": 1,
	"Bps": 8,
	"B/s": 8,

	"kbps": 1000,
	"kb/s": 1000,
	"Kbps": 1000,
	"Kb/s": 1000,
	"kBps": 8000,
	"kB/s": 8000,
	"KBps": 8000,
	"KB/s": 8000,

	"Kibps": 1024,
	"Kib/s": 1024,
	"KiBps": 8 * 1024,
	"KiB/s": 8 * 1024,

	"Mbps": 1000000,
	"Mb/s": 1000000,
	"MBps": 8000000,
	"MB/s": 8000000,

	"Mibps": 1 << 20,
	"Mib/s": 1 << 20,
	"MiBps": 8 << 20,
	"MiB/s": 8 << 20,

	"Gbps": 1000000000,
	"Gb/s": 1000000000,
	"GBps": 8000000000,
	"GB/s": 8000000000,

	"Gibps": 1 << 30,
	"Gib/s": 1 << 30,
	"GiBps": 8 << 30,
	"GiB/s": 8 << 30,
}

var rateRe = regexp.MustCompile(`^\s*([0-9]*\.?[0-9]+)\s*([A-Za-z/]+)\s*$`)

var bitsPerMegabit = big.NewInt(1000000)

// ParseRate converts a rate such as "10Gbps" or "1.5 MiB/s" to
// megabits per second, truncated toward zero.
func ParseRate(s string) (int64, error) {
	m := rateRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedRate, s)
	}

	mult, ok := rateUnits[m[2]]
	if !ok {
		return 0, fmt.Errorf("%w: unknown unit %q in %q", ErrMalformedRate, m[2], s)
	}

	value, ok := new(big.Rat).SetString(m[1])
	if !ok {
		return 0, fmt.Errorf("%w: bad number %q in %q", ErrMalformedRate, m[1], s)
	}

	// Exact: value * mult / 1e6, then integer quotient.
	bits := value.Mul(value, new(big.Rat).SetInt64(mult))
	num := new(big.Int).Set(bits.Num())
	den := new(big.Int).Mul(bits.Denom(), bitsPerMegabit)
	mbps := num.Quo(num, den)
	if !mbps.IsInt64() {
		return 0, fmt.Errorf("%w: %q out of range", ErrMalformedRate, s)
	}
	return mbps.Int64(), nil
}

// FormatMbps is the canonical spelling of a rate in megabits per second.
func FormatMbps(mbps int64) string {
	return strconv.FormatInt(mbps, 10) + "Mbps"
}
