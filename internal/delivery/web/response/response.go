// Package response writes pages and JSON bodies in one place so every
// handler carries the request ID the same way.
package response

import (
	"net/http"

	deliverycontext "homeat/internal/delivery/context"
	"homeat/internal/delivery/web/view"

	"github.com/labstack/echo/v4"
)

// MetaInfo represents response metadata.
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// SuccessResponse defines the structure for successful JSON responses.
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorInfo contains error information of a JSON error response.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse defines the structure for JSON error responses.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// NewPage builds the layout data for the current request.
func NewPage(c echo.Context, title string) view.Page {
	return view.Page{
		Title:     title,
		Identity:  deliverycontext.GetIdentity(c),
		RequestID: deliverycontext.GetRequestID(c),
	}
}

// Render writes an HTML page.
func Render(c echo.Context, statusCode int, name string, data any) error {
	return c.Render(statusCode, name, data)
}

// ErrorPage writes the HTML error page.
func ErrorPage(c echo.Context, statusCode int, message string) error {
	return c.Render(statusCode, view.TemplateError, view.ErrorPage{
		Page:    NewPage(c, "Error"),
		Status:  statusCode,
		Message: message,
	})
}

// SeeOther redirects a form post back to a page.
func SeeOther(c echo.Context, location string) error {
	return c.Redirect(http.StatusSeeOther, location)
}

// Success returns a JSON body.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: &MetaInfo{RequestID: deliverycontext.GetRequestID(c)},
	})
}

// Error returns a JSON error body.
func Error(c echo.Context, statusCode int, errorCode, message string) error {
	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{Code: errorCode, Message: message},
		Meta:  &MetaInfo{RequestID: deliverycontext.GetRequestID(c)},
	})
}

// WantsJSON reports whether the client asked for JSON instead of a page.
func WantsJSON(c echo.Context) bool {
	accept := c.Request().Header.Get(echo.HeaderAccept)

	return accept == echo.MIMEApplicationJSON || c.Request().Header.Get(echo.HeaderContentType) == echo.MIMEApplicationJSON
}
