package components

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dasdy/foamslides/model"
)

// svgLink returns the URL of the rendered slide.
func svgLink(index int) string {
	return fmt.Sprintf("/svg?index=%d", index)
}

// navAction returns the form target for a navigation action. Following pages
// come back to the current slide afterwards.
func navAction(action string, follow bool) string {
	if follow {
		return "/" + action + "?follow=1"
	}

	return "/" + action
}

// pageLink returns the URL that shows the slide at index, or the current one
// when following.
func pageLink(index int, follow bool) string {
	if follow {
		return "/?follow=1"
	}

	q := url.Values{}
	q.Set("index", fmt.Sprint(index))

	return "/slide?" + q.Encode()
}

// slideTitle is "position/total name".
func slideTitle(c *SlideContext) string {
	title := fmt.Sprintf("%d/%d", c.Index+1, c.Total)
	if c.Name != "" {
		title += " " + c.Name
	}

	return title
}

// refreshContent is the meta refresh of a following page, empty otherwise.
func refreshContent(c *SlideContext) string {
	if !c.Follow {
		return ""
	}

	return fmt.Sprintf("%d;url=%s", max(c.RefreshSeconds, 1), pageLink(c.Index, true))
}

// barWidth scales count to a percentage of maxVal.
func barWidth(count, maxVal int) int {
	if maxVal <= 0 {
		return 0
	}

	return count * 100 / maxVal
}

func barStyle(count, maxVal int) string {
	return fmt.Sprintf("width:%dpx", barWidth(count, maxVal))
}

// transitionsText lists where the audience went next, 1-based.
func transitionsText(ts []model.Transition) string {
	parts := make([]string, len(ts))
	for i, tr := range ts {
		parts[i] = fmt.Sprintf("%d (%dx)", tr.To+1, tr.Count)
	}

	return strings.Join(parts, ", ")
}
