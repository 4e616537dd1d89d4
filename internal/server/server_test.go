package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/wisdomalbert/portfolio/internal/config"
	"github.com/wisdomalbert/portfolio/internal/content"
	"github.com/wisdomalbert/portfolio/internal/metrics"
	"github.com/wisdomalbert/portfolio/internal/nav"
	"github.com/wisdomalbert/portfolio/pkg/logger"
)

func newTestServer(mutate func(*config.Config)) *Server {
	cfg := config.New()
	cfg.GinMode = "test"
	if mutate != nil {
		mutate(cfg)
	}
	var m *metrics.Manager
	if cfg.MetricsEnabled {
		m = metrics.NewManager()
	}
	return New(cfg, logger.Nop(), m)
}

func do(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func scrape(s *Server) string {
	return do(s, httptest.NewRequest(http.MethodGet, "/metrics", nil)).Body.String()
}

func TestIndex(t *testing.T) {
	Convey("Given a server", t, func() {
		s := newTestServer(nil)

		Convey("When the page is requested", func() {
			rec := do(s, httptest.NewRequest(http.MethodGet, "/", nil))

			Convey("Then the full document is served", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Header().Get("Content-Type"), ShouldStartWith, "text/html")
				body := rec.Body.String()
				So(body, ShouldStartWith, "<!DOCTYPE html>")
				for _, l := range content.NavLinks() {
					So(body, ShouldContainSubstring, `id="`+l.ID+`"`)
				}
			})

			Convey("Then a request id is returned", func() {
				So(rec.Header().Get(requestIDHeader), ShouldNotBeEmpty)
			})

			Convey("Then the visit is counted", func() {
				So(scrape(s), ShouldContainSubstring, `portfolio_page_views_total{path="/"} 1`)
			})
		})

		Convey("When the caller sends a request id", func() {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(requestIDHeader, "abc-123")
			rec := do(s, req)

			Convey("Then it is echoed back", func() {
				So(rec.Header().Get(requestIDHeader), ShouldEqual, "abc-123")
			})
		})

		Convey("When the visitor sends Do Not Track", func() {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("DNT", "1")
			So(do(s, req).Code, ShouldEqual, http.StatusOK)

			Convey("Then no page view is recorded", func() {
				So(scrape(s), ShouldNotContainSubstring, "portfolio_page_views_total{")
			})
		})
	})

	Convey("Given a configured site title", t, func() {
		s := newTestServer(func(c *config.Config) { c.SiteTitle = "Custom" })
		rec := do(s, httptest.NewRequest(http.MethodGet, "/", nil))
		So(rec.Body.String(), ShouldContainSubstring, "<title>Custom</title>")
	})
}

func TestMenuState(t *testing.T) {
	Convey("Given a server", t, func() {
		s := newTestServer(nil)

		Convey("When a browser without scripts follows the open-menu link", func() {
			rec := do(s, httptest.NewRequest(http.MethodGet, "/"+nav.StateURL(nav.State{MenuOpen: true}), nil))

			Convey("Then the whole page is served with the menu open", func() {
				body := rec.Body.String()
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(body, ShouldStartWith, "<!DOCTYPE html>")
				So(body, ShouldContainSubstring, `data-menu="open"`)
				So(body, ShouldContainSubstring, `aria-expanded="true"`)
				So(body, ShouldContainSubstring, `id="`+content.SectionContact+`"`)
			})

			Convey("Then the render is counted by menu state", func() {
				So(scrape(s), ShouldContainSubstring, `portfolio_nav_menu_renders_total{menu="open"} 1`)
			})
		})

		Convey("When the page is requested without a menu state", func() {
			body := do(s, httptest.NewRequest(http.MethodGet, "/", nil)).Body.String()

			Convey("Then the menu starts closed and nothing is counted", func() {
				So(body, ShouldContainSubstring, `data-menu="closed"`)
				So(scrape(s), ShouldNotContainSubstring, "portfolio_nav_menu_renders_total{")
			})
		})
	})
}

func TestContact(t *testing.T) {
	Convey("Given a contact form submission", t, func() {
		s := newTestServer(nil)
		req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader("name=Ada&vision=Engines"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := do(s, req)

		Convey("Then it is discarded without a body", func() {
			So(rec.Code, ShouldEqual, http.StatusNoContent)
			So(rec.Body.Len(), ShouldEqual, 0)
			So(scrape(s), ShouldContainSubstring, "portfolio_contact_discarded_total 1")
		})
	})
}

func TestProbesAndAssets(t *testing.T) {
	Convey("Given a server", t, func() {
		s := newTestServer(nil)

		Convey("Then the health probe reports ok", func() {
			rec := do(s, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldEqual, `{"status":"ok"}`)
		})

		Convey("Then the runtime script is served", func() {
			rec := do(s, httptest.NewRequest(http.MethodGet, "/static/app.js", nil))
			So(rec.Code, ShouldEqual, http.StatusOK)
			So(rec.Body.String(), ShouldContainSubstring, "data-action")
		})

		Convey("Then request metrics use the route pattern", func() {
			do(s, httptest.NewRequest(http.MethodGet, "/healthz", nil))
			So(scrape(s), ShouldContainSubstring, `portfolio_http_requests_total{method="GET",route="/healthz",status="200"} 1`)
		})
	})

	Convey("Given a custom metrics path", t, func() {
		s := newTestServer(func(c *config.Config) { c.MetricsPath = "/internal/metrics" })
		rec := do(s, httptest.NewRequest(http.MethodGet, "/internal/metrics", nil))
		So(rec.Code, ShouldEqual, http.StatusOK)
	})

	Convey("Given metrics are disabled", t, func() {
		s := newTestServer(func(c *config.Config) { c.MetricsEnabled = false })
		rec := do(s, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		So(rec.Code, ShouldEqual, http.StatusNotFound)
	})
}

func TestMetricsPathCannotShadowRoutes(t *testing.T) {
	Convey("Given every route the server registers besides metrics", t, func() {
		s := newTestServer(nil)

		for _, r := range s.engine.Routes() {
			if r.Path == s.cfg.MetricsPath {
				continue
			}
			path := r.Path
			if i := strings.Index(path, "/*"); i >= 0 {
				path = path[:i] + "/x"
			}

			Convey("Then config rejects it as the metrics path: "+r.Method+" "+path, func() {
				cfg := config.New()
				cfg.MetricsPath = path
				So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), ShouldBeTrue)
			})
		}
	})
}
