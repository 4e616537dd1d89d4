package server

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"

	"github.com/wisdomalbert/portfolio/internal/nav"
	"github.com/wisdomalbert/portfolio/internal/page"
	"github.com/wisdomalbert/portfolio/pkg/logger"
)

func (s *Server) pageOptions() page.Options {
	opts := page.DefaultOptions()
	if s.cfg.SiteTitle != "" {
		opts.Title = s.cfg.SiteTitle
	}
	return opts
}

// handleIndex renders the page. The menu links carry the bar state in the
// query for browsers running without scripts.
func (s *Server) handleIndex(c *gin.Context) {
	opts := s.pageOptions()
	q := c.Request.URL.Query()
	if q.Has(nav.MenuParam) {
		opts.Nav = nav.ParseState(q)
		if s.metrics != nil {
			s.metrics.RecordMenuRender(opts.Nav.MenuOpen)
		}
	}
	s.render(c, http.StatusOK, page.Document(opts))
}

// handleContact drops the submission. 204 keeps the browser on the page.
func (s *Server) handleContact(c *gin.Context) {
	if s.metrics != nil {
		s.metrics.RecordContactDiscard()
	}
	s.log.Debug(c.Request.Context(), "contact submission discarded",
		logger.String("request_id", c.GetString(requestIDKey)))
	c.Status(http.StatusNoContent)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) render(c *gin.Context, status int, comp templ.Component) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := comp.Render(c.Request.Context(), c.Writer); err != nil {
		s.log.Error(c.Request.Context(), "render failed", logger.Error(err),
			logger.String("path", c.Request.URL.Path))
		_ = c.Error(err)
	}
}
