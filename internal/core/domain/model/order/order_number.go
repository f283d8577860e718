package order

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const orderNumberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateOrderNumber produces a human-readable order reference of the form
// "ORD-<timestamp>-<suffix>", where the timestamp is the current Unix
// milliseconds in base36 and the suffix is 4 random base36 characters.
//
// The result is unique for practical purposes but not guaranteed; the store
// enforces uniqueness with a unique index on the order number column.
func GenerateOrderNumber() string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))

	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = orderNumberAlphabet[rand.IntN(len(orderNumberAlphabet))]
	}

	return "ORD-" + ts + "-" + string(suffix)
}
