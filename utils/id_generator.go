package utils

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateID returns "<unix millis in base36>_<12 random hex chars>".
// The random part keeps ids distinct when several are created in the same millisecond.
func GenerateID() string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + "_" + random[:12]
}
