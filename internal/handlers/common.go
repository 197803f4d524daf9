package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// pagination reads page/limit query params with the same clamps every list
// endpoint shares.
func pagination(c *fiber.Ctx) (page, limit, offset int) {
	page = c.QueryInt("page", 1)
	limit = c.QueryInt("limit", 20)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit, (page - 1) * limit
}
