package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManager(t *testing.T) {
	Convey("Given a fresh manager", t, func() {
		m := NewManager()

		Convey("When page views are recorded", func() {
			m.RecordPageView("/")
			m.RecordPageView("/")

			Convey("Then the counter tracks them per path", func() {
				So(testutil.ToFloat64(m.pageViews.WithLabelValues("/")), ShouldEqual, 2)
			})
		})

		Convey("When requests and menu renders are recorded", func() {
			m.RecordHTTPRequest("/", "GET", "200", 15*time.Millisecond)
			m.RecordMenuRender(true)
			m.RecordMenuRender(false)
			m.RecordMenuRender(false)
			m.RecordContactDiscard()

			Convey("Then each collector reflects it", func() {
				So(testutil.ToFloat64(m.httpRequests.WithLabelValues("/", "GET", "200")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.menuRenders.WithLabelValues("open")), ShouldEqual, 1)
				So(testutil.ToFloat64(m.menuRenders.WithLabelValues("closed")), ShouldEqual, 2)
				So(testutil.ToFloat64(m.contactDiscards), ShouldEqual, 1)
			})
		})

		Convey("When the handler is scraped", func() {
			m.RecordPageView("/")
			rec := httptest.NewRecorder()
			m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

			Convey("Then it exposes namespaced metrics", func() {
				So(rec.Code, ShouldEqual, 200)
				So(strings.Contains(rec.Body.String(), `portfolio_page_views_total{path="/"} 1`), ShouldBeTrue)
			})
		})
	})

	Convey("Given a custom namespace", t, func() {
		m := NewManager(WithNamespace("site"), WithHistogramBuckets([]float64{0.1, 1}))
		m.RecordContactDiscard()
		n, err := testutil.GatherAndCount(m.Registry(), "site_contact_discarded_total")
		So(err, ShouldBeNil)
		So(n, ShouldEqual, 1)
	})
}
