package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// QueryIDLength is the number of random bytes in a query ID (16 hex chars)
const QueryIDLength = 8

// QueryIDPrefix marks query IDs in log output
const QueryIDPrefix = "qry_"

// RunIDPrefix marks one command invocation in log output
const RunIDPrefix = "run_"

var (
	randReader = rand.Reader

	// queryIDPool reuses buffers for query ID generation (8 bytes)
	queryIDPool = sync.Pool{
		New: func() any {
			b := make([]byte, QueryIDLength)
			return &b
		},
	}
)

// NewQueryID generates a new query ID (prefix plus 16 hex characters)
func NewQueryID() string {
	bufPtr := queryIDPool.Get().(*[]byte)
	defer queryIDPool.Put(bufPtr)
	buf := *bufPtr

	if _, err := randReader.Read(buf); err != nil {
		// Fallback to time-based ID if random fails
		return fmt.Sprintf("%s%016x", QueryIDPrefix, time.Now().UnixNano())
	}

	return QueryIDPrefix + hex.EncodeToString(buf)
}

// NewRunID generates a short ID tagging one command invocation
func NewRunID() string {
	return RunIDPrefix + uuid.New().String()[:8]
}

// NewUUID generates a new UUID v4
func NewUUID() string {
	return uuid.New().String()
}

// ValidateQueryID validates a query ID format
func ValidateQueryID(id string) bool {
	rest, ok := strings.CutPrefix(id, QueryIDPrefix)
	if !ok || len(rest) != QueryIDLength*2 {
		return false
	}
	_, err := hex.DecodeString(rest)
	return err == nil
}

// ValidateUUID validates a UUID format
func ValidateUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
