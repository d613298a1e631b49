package logging

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestIDHeader carries the request ID in and out of the service.
const RequestIDHeader = "X-Request-ID"

// Middleware assigns every request an ID, exposes it through the user
// context and writes one access log line when the handler returns.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		id := c.Get(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = GenerateRequestID()
		}
		c.Set(RequestIDHeader, id)
		c.SetUserContext(ContextWithRequestID(c.UserContext(), id))

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		ev := Ctx(c.UserContext()).Info()
		if status >= fiber.StatusInternalServerError {
			ev = Ctx(c.UserContext()).Error().Err(err)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}
