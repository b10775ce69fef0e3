// Package xmltext holds the tag-level XML helpers shared by the
// fetcher adapters: parse the body, read mandatory and optional tags,
// convert the wire value types.
package xmltext

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/antchfx/xmlquery"

	"kheritage-client/internal/core/domain"
)

// Wire time layouts the API mixes freely.
const (
	layoutCompactDate = "20060102"
	layoutDateTime    = "2006-01-02 15:04:05"
)

func Parse(body []byte) (*xmlquery.Node, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, &domain.MalformedResponseError{Reason: "response is not well-formed XML", Err: err}
	}
	return doc, nil
}

// RequiredText returns the text of a mandatory child tag, failing when
// the tag is absent.
func RequiredText(n *xmlquery.Node, tag string) (string, error) {
	el := xmlquery.FindOne(n, tag)
	if el == nil {
		return "", domain.NewMissingTagError(tag)
	}
	return strings.TrimSpace(el.InnerText()), nil
}

// OptionalText returns the text of a child tag, or an empty string when
// the tag is absent.
func OptionalText(n *xmlquery.Node, tag string) string {
	el := xmlquery.FindOne(n, tag)
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.InnerText())
}

func RequiredInt(n *xmlquery.Node, tag string) (int, error) {
	text, err := RequiredText(n, tag)
	if err != nil {
		return 0, err
	}
	v, convErr := strconv.Atoi(text)
	if convErr != nil {
		return 0, &domain.MalformedResponseError{
			Reason: fmt.Sprintf("tag <%s> is not an integer: %q", tag, text),
			Err:    convErr,
		}
	}
	return v, nil
}

// ParseTime accepts the two date layouts the API emits. A present but
// malformed value is a fatal parse error.
func ParseTime(tag, value string) (time.Time, error) {
	layout := layoutCompactDate
	if strings.Contains(value, ":") {
		layout = layoutDateTime
	}
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, &domain.MalformedResponseError{
			Reason: fmt.Sprintf("tag <%s> holds an unparseable date: %q", tag, value),
			Err:    err,
		}
	}
	return t, nil
}

func RequiredTime(n *xmlquery.Node, tag string) (time.Time, error) {
	text, err := RequiredText(n, tag)
	if err != nil {
		return time.Time{}, err
	}
	return ParseTime(tag, text)
}
