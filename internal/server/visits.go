package server

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
)

// untrackedPrefixes are paths the access log skips.
var untrackedPrefixes = []string{"/static/", "/favicon", "/healthz"}

// visitLog logs page views with hashed client addresses. Nothing is
// stored; the salt lives only as long as the process.
type visitLog struct {
	salt string
}

func newVisitLog() *visitLog {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatal("Failed to generate hashing salt:", err)
	}
	return &visitLog{salt: hex.EncodeToString(b)}
}

// hashIP returns a short stable digest of ip for this process.
func (v *visitLog) hashIP(ip string) string {
	h := sha256.New()
	h.Write([]byte(ip + v.salt))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// tracked reports whether a request should be logged. Static assets are
// skipped and "DNT: 1" is honored.
func tracked(path, dnt string) bool {
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(path, p) {
			return false
		}
	}
	return dnt != "1"
}

func (v *visitLog) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		c.Next()
		if !tracked(path, c.GetHeader("DNT")) {
			return
		}
		log.Printf("[visit] %s %s %s %d", v.hashIP(c.ClientIP()), c.Request.Method, path, c.Writer.Status())
	}
}
