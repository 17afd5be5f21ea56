package terminal

import (
	"context"
	"strconv"
	"strings"
)

// MenuItem is one selectable line of a menu.
type MenuItem struct {
	Key   string
	Label string
}

// Choose shows a menu and returns the key of the selected item.
// An empty answer selects def when def is not empty.
func (c *Console) Choose(ctx context.Context, header, note string, items []MenuItem, def string) (string, error) {
	for {
		c.println("")
		c.println(header)
		if note != "" {
			c.println(note)
		}
		for _, item := range items {
			c.println("  [" + item.Key + "] " + item.Label)
		}

		label := "Choice"
		if def != "" {
			label += " [" + def + "]"
		}
		answer, err := c.Prompt(ctx, label)
		if err != nil {
			return "", err
		}
		if answer == "" && def != "" {
			return def, nil
		}
		for _, item := range items {
			if strings.EqualFold(answer, item.Key) {
				return item.Key, nil
			}
		}
		c.println(msgInvalidChoice)
	}
}

// buildMainMenu builds the top level menu.
func buildMainMenu(canSelectFile bool) []MenuItem {
	items := []MenuItem{
		{Key: "r", Label: "Start review"},
		{Key: "m", Label: "Change mode"},
	}
	if canSelectFile {
		items = append(items, MenuItem{Key: "f", Label: "Select file"})
	}
	return append(items,
		MenuItem{Key: "p", Label: "Show skipped lines"},
		MenuItem{Key: "h", Label: "Show history"},
		MenuItem{Key: "q", Label: "Quit"},
	)
}

// buildListMenu numbers values from 1, showing at most limit of them.
func buildListMenu(values []string, limit int) []MenuItem {
	if limit > 0 && len(values) > limit {
		values = values[:limit]
	}
	items := make([]MenuItem, 0, len(values))
	for i, v := range values {
		items = append(items, MenuItem{Key: strconv.Itoa(i + 1), Label: v})
	}
	return items
}
