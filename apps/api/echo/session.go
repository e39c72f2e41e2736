package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/zulkitech/traindesk/core/session"
)

type sessionAPI struct {
	svc *session.Service
}

func registerSessionAPI(g *echo.Group, svc *session.Service) {
	api := sessionAPI{svc: svc}

	sg := g.Group("/sessions")
	sg.POST("", api.create)
	sg.GET("", api.query)
	sg.DELETE("", api.destroyMultiple)
	sg.GET("/:id", api.retrieve)
	sg.PUT("/:id", api.update)
	sg.DELETE("/:id", api.destroy)
}

func (api *sessionAPI) create(ctx echo.Context) error {
	var data session.NewSession
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewSession")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	ses, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, ses)
}

// query returns sessions ordered by date. When a `course` parameter is given,
// only the sessions for that exact course title are returned; an empty title
// matches no sessions.
func (api *sessionAPI) query(ctx echo.Context) error {
	var (
		sessions []session.Session
		err      error
	)
	if ctx.QueryParams().Has("course") {
		sessions, err = api.svc.QueryByCourse(ctx.Request().Context(), ctx.QueryParam("course"))
	} else {
		sessions, err = api.svc.QueryAll(ctx.Request().Context())
	}
	if err != nil {
		return err
	}
	if sessions == nil {
		sessions = []session.Session{}
	}
	return ctx.JSON(http.StatusOK, sessions)
}

func (api *sessionAPI) retrieve(ctx echo.Context) error {
	ses, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == session.ErrNotFound {
			return errHTTPNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusOK, ses)
}

func (api *sessionAPI) update(ctx echo.Context) error {
	rctx := ctx.Request().Context()
	orig, err := api.svc.GetByID(rctx, ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == session.ErrNotFound {
			return errHTTPNotFound
		}
		return err
	}

	var data session.UpdateSession
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateSession")
	}
	if err := data.Validate(orig); err != nil {
		return err
	}

	ses, err := api.svc.Update(rctx, orig.ID, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ses)
}

func (api *sessionAPI) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *sessionAPI) destroyMultiple(ctx echo.Context) error {
	var query DestroyMultipleRequest
	if err := ctx.Bind(&query); err != nil {
		return errors.Wrap(err, "binding to DestroyMultipleRequest")
	}
	if len(query.IDs) == 0 {
		return ctx.NoContent(http.StatusNoContent)
	}
	if err := api.svc.Delete(ctx.Request().Context(), query.IDs...); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
