// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package page

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/optakt/sui-dapp/models/dapp"
	"github.com/optakt/sui-dapp/models/failure"
	"github.com/optakt/sui-dapp/models/sui"
)

// TemplateIndex is the name of the page template.
const TemplateIndex = "index"

// FieldCSRF is the form field carrying the anti-forgery token. API clients
// send the same token in the X-CSRF-Token header instead; they obtain it
// from the header of the panel state response.
const FieldCSRF = "_csrf"

const (
	cookieCSRF  = "_csrf"
	contextCSRF = "csrf"
)

// View is what the page template renders.
type View struct {
	dapp.Panel
	Addresses []sui.Address
	CSRF      string
}

// Controller serves the dapp page and its actions.
type Controller struct {
	panel Panel
}

func NewController(panel Panel) *Controller {
	c := Controller{
		panel: panel,
	}
	return &c
}

// Register adds the page routes to the server. Every action requires the
// anti-forgery token issued with the page.
func (c *Controller) Register(server *echo.Echo) {
	protect := csrf()
	server.GET("/", c.Index, protect)
	server.GET("/api/panel", c.State, protect)
	server.POST("/connect", c.Connect, protect)
	server.POST("/disconnect", c.Disconnect, protect)
	server.POST("/mint", c.Mint, protect)
	server.POST("/send", c.Send, protect)
	server.POST("/reload", c.Reload, protect)
	server.POST("/networks/:name", c.Network, protect)
}

func (c *Controller) Index(ctx echo.Context) error {
	view := View{
		Panel:     c.panel.Render(ctx.Request().Context()),
		Addresses: c.panel.Addresses(),
		CSRF:      token(ctx),
	}
	return ctx.Render(http.StatusOK, TemplateIndex, view)
}

func (c *Controller) State(ctx echo.Context) error {
	panel := c.panel.Render(ctx.Request().Context())
	ctx.Response().Header().Set(echo.HeaderXCSRFToken, token(ctx))
	return ctx.JSON(http.StatusOK, panel)
}

func (c *Controller) Connect(ctx echo.Context) error {

	var address sui.Address
	value := ctx.FormValue("address")
	if value != "" {
		var err error
		address, err = sui.ParseAddress(value)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	report := c.panel.Connect(address)
	return c.respond(ctx, report)
}

func (c *Controller) Disconnect(ctx echo.Context) error {
	return c.respond(ctx, c.panel.Disconnect())
}

func (c *Controller) Mint(ctx echo.Context) error {
	return c.respond(ctx, c.panel.Mint(ctx.Request().Context()))
}

func (c *Controller) Send(ctx echo.Context) error {
	return c.respond(ctx, c.panel.Send(ctx.Request().Context()))
}

func (c *Controller) Reload(ctx echo.Context) error {
	return c.respond(ctx, c.panel.Reload(ctx.Request().Context()))
}

func (c *Controller) Network(ctx echo.Context) error {
	name := ctx.Param("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "network name missing")
	}
	return c.respond(ctx, c.panel.SelectNetwork(name))
}

// respond answers an action with its report for API clients, and redirects
// browsers back to the page, which shows the report in its feed.
func (c *Controller) respond(ctx echo.Context, report dapp.Report) error {
	accept := ctx.Request().Header.Get(echo.HeaderAccept)
	if !strings.Contains(accept, echo.MIMEApplicationJSON) {
		return ctx.Redirect(http.StatusSeeOther, "/")
	}
	return ctx.JSON(StatusCode(report.Kind), report)
}

// StatusCode maps a report kind to the HTTP status of the JSON answer.
func StatusCode(kind failure.Kind) int {
	switch kind {
	case failure.KindSuccess:
		return http.StatusOK
	case failure.KindNoAccount:
		return http.StatusConflict
	case failure.KindNetwork:
		return http.StatusBadGateway
	case failure.KindRejected:
		return http.StatusUnprocessableEntity
	case failure.KindUnknownNetwork, failure.KindUnknownAccount:
		return http.StatusNotFound
	case failure.KindInvalid:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// csrf checks the anti-forgery token of unsafe requests against the token
// cookie. The token is read from the header when one is sent, and from the
// form otherwise.
func csrf() echo.MiddlewareFunc {

	config := middleware.CSRFConfig{
		ContextKey:     contextCSRF,
		CookieName:     cookieCSRF,
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSameSite: http.SameSiteStrictMode,
	}
	form := config
	form.TokenLookup = "form:" + FieldCSRF
	header := config
	header.TokenLookup = "header:" + echo.HeaderXCSRFToken

	viaForm := middleware.CSRFWithConfig(form)
	viaHeader := middleware.CSRFWithConfig(header)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		formNext := viaForm(next)
		headerNext := viaHeader(next)
		return func(ctx echo.Context) error {
			if ctx.Request().Header.Get(echo.HeaderXCSRFToken) != "" {
				return headerNext(ctx)
			}
			return formNext(ctx)
		}
	}
}

func token(ctx echo.Context) string {
	value, _ := ctx.Get(contextCSRF).(string)
	return value
}
