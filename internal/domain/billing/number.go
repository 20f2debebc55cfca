package billing

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Invoice numbers are a 6-digit date prefix followed by a 4-digit daily
// sequence: 2405010003 is the third invoice of 2024-05-01.
const (
	prefixLen = 6
	seqDigits = 4
)

// NumberPrefix returns the YYMMDD prefix for the given date.
func NumberPrefix(t time.Time) string {
	return t.Format("060102")
}

// NextNumber scans the existing numbers sharing the prefix, extracts the
// numeric suffix after the 6-digit prefix and assigns max+1, zero-padded to
// 4 digits. Numbers under other prefixes or with malformed suffixes are
// ignored. With no prior number for the day the sequence starts at 0001.
//
// Uniqueness under concurrent callers is not guaranteed by this function; the
// caller runs it inside the invoice transaction and the store's unique index
// on the number is the final arbiter.
func NextNumber(prefix string, existing []string) string {
	max := 0
	for _, n := range existing {
		if !strings.HasPrefix(n, prefix) || len(n) <= prefixLen {
			continue
		}
		seq, err := strconv.Atoi(n[prefixLen:])
		if err != nil {
			continue
		}
		if seq > max {
			max = seq
		}
	}
	return fmt.Sprintf("%s%0*d", prefix, seqDigits, max+1)
}
