package widget

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/brickrouge-dev/brickrouge/pkg/element"
	"github.com/brickrouge-dev/brickrouge/pkg/ordered"
)

// Pagination attributes.
const (
	// Count is the number of records.
	Count = "#count"

	// Limit is the number of records per page. It defaults to 10.
	Limit = "#limit"

	// Page is the index of the current page, starting at 0.
	Page = "#page"

	// URL is the URL the page parameter is added to.
	URL = "#url"

	// Using names the page parameter. It defaults to "page".
	Using = "#using"
)

const (
	defaultLimit = 10
	pageWindow   = 2
)

type paginationHooks struct {
	widgetHooks
}

func (paginationHooks) Kind() string { return "pagination" }

func (paginationHooks) AlterClassNames(_ context.Context, _ *element.Element, names *ordered.Map[string, any]) *ordered.Map[string, any] {
	return prepend(names, "pagination")
}

// RenderInnerHTML renders the previous link, the pages around the current
// one with the first and last pages, and the next link. Pages out of the
// window collapse into a gap. A single page renders nothing.
func (paginationHooks) RenderInnerHTML(ctx context.Context, e *element.Element) (element.Result, error) {
	p, err := newPager(e)
	if err != nil {
		return element.Empty(), err
	}
	if p.pages <= 1 {
		return element.Empty(), nil
	}

	var b strings.Builder
	if p.page > 0 {
		b.WriteString(`<li class="previous"><a href="` + p.href(p.page-1) + `">&laquo;</a></li>`)
	} else {
		b.WriteString(`<li class="previous disabled"><span>&laquo;</span></li>`)
	}

	gap := false
	for i := 0; i < p.pages; i++ {
		if i != 0 && i != p.pages-1 && (i < p.page-pageWindow || i > p.page+pageWindow) {
			if !gap {
				b.WriteString(`<li class="gap"><span>&hellip;</span></li>`)
				gap = true
			}
			continue
		}
		gap = false

		n := strconv.Itoa(i + 1)
		if i == p.page {
			b.WriteString(`<li class="active"><span>` + n + `</span></li>`)
			continue
		}
		b.WriteString(`<li><a href="` + p.href(i) + `">` + n + `</a></li>`)
	}

	if p.page < p.pages-1 {
		b.WriteString(`<li class="next"><a href="` + p.href(p.page+1) + `">&raquo;</a></li>`)
	} else {
		b.WriteString(`<li class="next disabled"><span>&raquo;</span></li>`)
	}
	return element.HTML(b.String()), nil
}

type pager struct {
	pages int
	page  int
	base  *url.URL
	using string
}

func newPager(e *element.Element) (*pager, error) {
	count, err := intAttribute(e, Count, 0)
	if err != nil {
		return nil, err
	}
	limit, err := intAttribute(e, Limit, defaultLimit)
	if err != nil {
		return nil, err
	}
	page, err := intAttribute(e, Page, 0)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	base, err := url.Parse(e.GetString(URL))
	if err != nil {
		return nil, unexpectedValue("pagination url: %v", err)
	}

	p := &pager{
		pages: (count + limit - 1) / limit,
		page:  page,
		base:  base,
		using: e.GetString(Using),
	}
	if p.using == "" {
		p.using = "page"
	}
	if p.page >= p.pages {
		p.page = p.pages - 1
	}
	if p.page < 0 {
		p.page = 0
	}
	return p, nil
}

func (p *pager) href(page int) string {
	u := *p.base
	q := u.Query()
	q.Set(p.using, strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return element.EscapeAttr(u.String())
}

func intAttribute(e *element.Element, name string, def int) (int, error) {
	v := e.Get(name)
	if v == nil {
		return def, nil
	}
	s := element.Stringify(v)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, unexpectedValue("%s must be an integer, got %q", name, s)
	}
	return n, nil
}

// NewPagination creates a pagination list.
func NewPagination(attrs ...element.Attr) *element.Element {
	return element.NewWithHooks(paginationHooks{}, "ul", attrs...)
}
