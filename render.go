package main

import (
	"context"
	"html/template"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"
)

// templRender lets gin write a templ component as a response.
type templRender struct {
	ctx       context.Context
	component templ.Component
}

var _ render.Render = templRender{}

func (t templRender) Render(w http.ResponseWriter) error {
	t.WriteContentType(w)
	return t.component.Render(t.ctx, w)
}

func (t templRender) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = []string{"text/html; charset=utf-8"}
	}
}

func renderComponent(c *gin.Context, status int, component templ.Component) {
	c.Render(status, templRender{ctx: c.Request.Context(), component: component})
}

// componentHTML renders component for embedding in an html/template page.
func componentHTML(ctx context.Context, component templ.Component) (template.HTML, error) {
	var b strings.Builder
	if err := component.Render(ctx, &b); err != nil {
		return "", err
	}
	return template.HTML(b.String()), nil
}
