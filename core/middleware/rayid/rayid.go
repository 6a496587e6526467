package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the header carrying the request's RayID.
const HeaderName = "X-Ray-Id"

// New creates a middleware that assigns a unique RayID to every request.
// The id is stored in the request locals under "ray_id" and echoed back
// in the response headers. An incoming X-Ray-Id is honored so proxies
// can propagate their own correlation ids.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Locals("ray_id", rid)
		c.Set(HeaderName, rid)

		return c.Next()
	}
}
