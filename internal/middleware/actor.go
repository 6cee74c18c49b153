package middleware

import (
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
)

const (
	ActorHeader = "X-Actor"
	actorKey    = "actor"
	maxActorLen = 255 // characters, as counted by varchar(255)
)

// Actor records who is making the request, as reported by the X-Actor header.
// The value is not verified; it only labels audit entries.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := strings.TrimSpace(strings.ToValidUTF8(c.GetHeader(ActorHeader), ""))
		if utf8.RuneCountInString(actor) > maxActorLen {
			actor = string([]rune(actor)[:maxActorLen])
		}
		c.Set(actorKey, actor)
		c.Next()
	}
}

// ActorFrom returns the actor set by Actor, or "" when there is none.
func ActorFrom(c *gin.Context) string {
	return c.GetString(actorKey)
}
