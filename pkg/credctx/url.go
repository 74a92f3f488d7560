package credctx

import (
	"bytes"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// DestructureURL fills Protocol, Host, Username, and Path from the URL
// field.
//
// Helpers are commonly handed a full URL and expected to match on its
// parts, so the parts are split out before the context goes on the wire.
// Fields that are already set are left alone; URL itself is kept as-is.
// The host keeps its :port suffix when one is present, and the path is
// stored without its leading slash and only when non-empty.
//
// The URL must be valid UTF-8 and absolute (a scheme and a host).
func (c *Context) DestructureURL() error {
	if c.URL == nil {
		return fmt.Errorf("credctx: no url to destructure")
	}
	if !utf8.Valid(c.URL) {
		return &UTF8Error{Key: "url", Value: bytes.Clone(c.URL)}
	}
	u, err := url.Parse(string(c.URL))
	if err != nil {
		return fmt.Errorf("credctx: invalid url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("credctx: url %q is not absolute, need scheme://host", c.URL)
	}

	if c.Protocol == nil {
		scheme := u.Scheme
		c.Protocol = &scheme
	}
	if c.Host == nil {
		host := u.Host
		c.Host = &host
	}
	if c.Username == nil && u.User != nil {
		if name := u.User.Username(); name != "" {
			c.Username = &name
		}
	}
	if c.Path == nil {
		if path := strings.TrimPrefix(u.Path, "/"); path != "" {
			c.Path = []byte(path)
		}
	}
	return nil
}
