package view

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func render(n *Node) string {
	var b bytes.Buffer
	if err := Render(&b, n); err != nil {
		panic(err)
	}
	return b.String()
}

func TestRender(t *testing.T) {
	convey.Convey("Given a small tree", t, func() {
		tree := El("div", Attrs{"id": "root", "class": "a b"},
			C("p", "", Text("Tom & <Jerry>")),
			El("img", Attrs{"src": "x.png", "alt": `say "hi"`}),
			nil,
		)

		out := render(tree)

		convey.Convey("Then attributes come out in key order", func() {
			convey.So(out, convey.ShouldStartWith, `<div class="a b" id="root">`)
		})

		convey.Convey("Then text and attribute values are escaped", func() {
			convey.So(out, convey.ShouldContainSubstring, "Tom &amp; &lt;Jerry&gt;")
			convey.So(out, convey.ShouldContainSubstring, `alt="say &#34;hi&#34;"`)
		})

		convey.Convey("Then void elements have no closing tag", func() {
			convey.So(out, convey.ShouldNotContainSubstring, "</img>")
			convey.So(out, convey.ShouldEndWith, "</div>")
		})

		convey.Convey("Then nil children are dropped", func() {
			convey.So(tree.Children, convey.ShouldHaveLength, 2)
		})
	})

	convey.Convey("Given every kind of void element", t, func() {
		for _, tag := range []string{"br", "wbr", "img", "input", "track", "embed", "param", "source"} {
			out := render(C("p", "", El(tag, nil)))
			convey.So(out, convey.ShouldEqual, "<p><"+tag+"/></p>")
		}
	})

	convey.Convey("Given a whole document", t, func() {
		var b bytes.Buffer
		convey.So(RenderDocument(&b, El("html", Attrs{"lang": "en"}, El("body", nil))), convey.ShouldBeNil)
		convey.So(b.String(), convey.ShouldEqual, `<!DOCTYPE html><html lang="en"><body></body></html>`)
	})

	convey.Convey("Given nodes bound to actions", t, func() {
		link := El("a", Attrs{"href": "#contact"}, Text("Go")).
			On(Action{Kind: ScrollTo, Target: "contact"})
		form := El("form", nil).On(Action{Kind: DiscardSubmit})

		convey.Convey("Then the action is emitted as data attributes", func() {
			convey.So(render(link), convey.ShouldEqual,
				`<a href="#contact" data-action="scroll-to" data-target="contact">Go</a>`)
			convey.So(render(form), convey.ShouldEqual, `<form data-action="discard-submit"></form>`)
			convey.So(render(El("a", nil).On(Action{Kind: ToggleMenu})), convey.ShouldEqual, `<a data-action="toggle-menu"></a>`)
			convey.So(render(El("a", nil).On(Action{Kind: CloseMenu})), convey.ShouldEqual, `<a data-action="close-menu"></a>`)
		})

		convey.Convey("Then a templ component renders the same markup", func() {
			var b bytes.Buffer
			convey.So(Component(link).Render(context.Background(), &b), convey.ShouldBeNil)
			convey.So(b.String(), convey.ShouldEqual, render(link))
		})
	})
}

func TestTraversal(t *testing.T) {
	convey.Convey("Given a nested tree", t, func() {
		inner := El("a", Attrs{"id": "x"}, Text("two")).On(Action{Kind: ScrollTo, Target: "y"})
		tree := C("div", "", Text("one "), C("span", "", inner), Text(" three"))

		convey.Convey("Then TextContent joins leaves in document order", func() {
			convey.So(TextContent(tree), convey.ShouldEqual, "one two three")
		})

		convey.Convey("Then FindAll finds action-bound nodes", func() {
			found := FindAll(tree, HasAction(ScrollTo))
			convey.So(found, convey.ShouldHaveLength, 1)
			convey.So(found[0].ID(), convey.ShouldEqual, "x")
		})

		convey.Convey("Then Walk can prune subtrees", func() {
			var tags []string
			Walk(tree, func(n *Node) bool {
				if !n.IsText() {
					tags = append(tags, n.Tag)
				}
				return n.Tag != "span"
			})
			convey.So(strings.Join(tags, ","), convey.ShouldEqual, "div,span")
		})
	})
}
