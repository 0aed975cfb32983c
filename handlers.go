package folio

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// handlePage serves every generated page. Paths are resolved against the
// current snapshot, so the preview always matches what Build would write.
func (a *App) handlePage(c echo.Context) error {
	snap, err := a.Cache.Snapshot(c.Request().Context())
	if err != nil {
		return err
	}
	t, ok := snap.Lookup(c.Request().URL.Path)
	if !ok {
		return echo.ErrNotFound
	}
	return Render(c, snap.Assembler.Assemble(t))
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		if rerr := RenderStatus(c, http.StatusNotFound, a.notFound(c)); rerr != nil {
			c.Logger().Errorf("render not found: %v", rerr)
		}
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

// notFound builds the not-found document from the cached snapshot, or from
// the bare configuration when content failed to load.
func (a *App) notFound(c echo.Context) *Document {
	path := c.Request().URL.Path
	if snap, err := a.Cache.Snapshot(c.Request().Context()); err == nil {
		return snap.Assembler.NotFound(path)
	}
	return NewAssembler(a.Config, nil, nil).NotFound(path)
}
