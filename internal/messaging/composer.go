// Package messaging builds the WhatsApp messages and deep links the storefront hands out.
package messaging

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Config is the fixed business identity every message is composed with.
type Config struct {
	Phone        string
	BusinessName string
	Location     string
	SiteURL      string
	FacebookPage string
}

// ProductContext is the product a customer asks about. A nil Price means the
// price is not published.
type ProductContext struct {
	Name     string
	Price    *int
	Category string
	Image    string
}

// Message is a composed text plus the link that opens it in WhatsApp.
type Message struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

type Composer struct {
	cfg     Config
	phone   string
	link    LinkBuilder
	printer *message.Printer
}

// NewComposer returns a composer for cfg. A nil link builder falls back to WebLink.
func NewComposer(cfg Config, link LinkBuilder) *Composer {
	if link == nil {
		link = WebLink
	}
	return &Composer{
		cfg:     cfg,
		phone:   NormalizePhone(cfg.Phone),
		link:    link,
		printer: message.NewPrinter(language.English),
	}
}

// WithLinkBuilder returns a copy of c that builds links with link.
func (c *Composer) WithLinkBuilder(link LinkBuilder) *Composer {
	if link == nil {
		link = WebLink
	}
	cp := *c
	cp.link = link
	return &cp
}

func (c *Composer) Config() Config {
	return c.cfg
}

// Phone returns the business number in E.164 digits without the leading plus.
func (c *Composer) Phone() string {
	return c.phone
}

func (c *Composer) compose(text string) Message {
	return Message{Text: text, Link: c.link(c.phone, text)}
}

// FormatPrice renders a price as "KES 45,000".
func (c *Composer) FormatPrice(price int) string {
	return c.printer.Sprintf("KES %d", price)
}

// ProductInquiry composes the message a customer sends about a specific product.
func (c *Composer) ProductInquiry(p ProductContext) Message {
	price := "Contact for price"
	if p.Price != nil {
		price = c.FormatPrice(*p.Price)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🛋 *%s*\n", p.Name)
	fmt.Fprintf(&b, "💵 Price: %s\n", price)
	fmt.Fprintf(&b, "📂 Category: %s\n", p.Category)
	b.WriteString("\n🖼 Product Image:\n")
	b.WriteString(c.absoluteURL(p.Image))
	b.WriteString("\n\nI'm interested in purchasing this item. Please let me know about availability and delivery options.\n\nThank you!")

	return c.compose(b.String())
}

// GeneralInquiry composes a short greeting. An empty productName asks about the
// whole collection.
func (c *Composer) GeneralInquiry(productName string) Message {
	if productName == "" {
		return c.compose("Hello! I'd like to inquire about your furniture collection.")
	}
	return c.compose(fmt.Sprintf("Hello! I'm interested in the %s from %s.", productName, c.cfg.BusinessName))
}

// absoluteURL resolves site-relative image paths against the configured site URL.
func (c *Composer) absoluteURL(ref string) string {
	if c.cfg.SiteURL == "" {
		return ref
	}
	base, err := url.Parse(c.cfg.SiteURL)
	if err != nil {
		return ref
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	if u.IsAbs() {
		return ref
	}
	return base.ResolveReference(u).String()
}
