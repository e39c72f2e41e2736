package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/zulkitech/traindesk/core/certification"
)

type certificationAPI struct {
	svc *certification.Service

	// now is swappable in tests
	now func() time.Time
}

func registerCertificationAPI(g *echo.Group, svc *certification.Service) {
	api := certificationAPI{svc: svc, now: time.Now}

	cg := g.Group("/certifications")
	cg.POST("", api.create)
	cg.GET("", api.query)
	cg.DELETE("", api.destroyMultiple)
	cg.GET("/:id", api.retrieve)
	cg.PUT("/:id", api.update)
	cg.DELETE("/:id", api.destroy)
}

// certificationResponse carries the derived status alongside the stored
// fields. The status is computed at render time and never persisted.
type certificationResponse struct {
	certification.Certification
	Status certification.Status `json:"status"`
}

func (api *certificationAPI) render(cert certification.Certification) certificationResponse {
	return certificationResponse{Certification: cert, Status: cert.Status(api.now())}
}

func (api *certificationAPI) create(ctx echo.Context) error {
	var data certification.NewCertification
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewCertification")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	cert, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, api.render(cert))
}

func (api *certificationAPI) query(ctx echo.Context) error {
	certs, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return err
	}
	resp := make([]certificationResponse, 0, len(certs))
	for _, cert := range certs {
		resp = append(resp, api.render(cert))
	}
	return ctx.JSON(http.StatusOK, resp)
}

func (api *certificationAPI) retrieve(ctx echo.Context) error {
	cert, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == certification.ErrNotFound {
			return errHTTPNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusOK, api.render(cert))
}

func (api *certificationAPI) update(ctx echo.Context) error {
	rctx := ctx.Request().Context()
	orig, err := api.svc.GetByID(rctx, ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == certification.ErrNotFound {
			return errHTTPNotFound
		}
		return err
	}

	var data certification.UpdateCertification
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateCertification")
	}
	if err := data.Validate(orig); err != nil {
		return err
	}

	cert, err := api.svc.Update(rctx, orig.ID, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.render(cert))
}

func (api *certificationAPI) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *certificationAPI) destroyMultiple(ctx echo.Context) error {
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
