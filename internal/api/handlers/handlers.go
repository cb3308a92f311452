package handlers

import (
	"bytes"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
)

// decodeBody parses a JSON request body strictly: unknown fields are rejected
// at the boundary rather than silently dropped.
func decodeBody(c *fiber.Ctx, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// detail is the uniform error body shape.
func detail(message string) fiber.Map {
	return fiber.Map{"detail": message}
}
