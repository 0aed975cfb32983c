package folio

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Render writes doc as an HTTP 200 HTML response.
func Render(c echo.Context, doc *Document) error {
	return RenderStatus(c, http.StatusOK, doc)
}

// RenderStatus writes doc with a specific HTTP status code. The document is
// rendered before anything is written, so a failing block yields an error
// response instead of a truncated page.
func RenderStatus(c echo.Context, code int, doc *Document) error {
	html, err := doc.HTML(c.Request().Context())
	if err != nil {
		return err
	}
	return c.HTMLBlob(code, html)
}
