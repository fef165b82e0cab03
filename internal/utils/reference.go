package utils

import (
	"crypto/md5"
	"fmt"
	"strings"
	"time"
)

// BookingReference builds the human-facing reference printed on
// e-tickets: BKG + first 8 hex chars of md5(id-name-YYYYMMDDHHMM).
// Not a security token, just a short stable handle for support calls.
func BookingReference(ticketID int64, passengerName string, at time.Time) string {
	data := fmt.Sprintf("%d-%s-%s", ticketID, passengerName, at.Format("200601021504"))
	sum := md5.Sum([]byte(data))
	return "BKG" + strings.ToUpper(fmt.Sprintf("%x", sum)[:8])
}
