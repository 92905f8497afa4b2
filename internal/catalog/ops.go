package catalog

import (
	"fmt"
	"strings"
)

func (c Catalog) Find(name string) (Entry, bool) {
	for _, e := range c {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

func (c *Catalog) Add(e Entry) error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("entry name is required")
	}
	if _, ok := c.Find(e.Name); ok {
		return fmt.Errorf("%q: %w", e.Name, ErrDuplicateName)
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
	*c = append(*c, e)
	return nil
}

func (c *Catalog) Remove(name string) error {
	for i := range *c {
		if (*c)[i].Name != name {
			continue
		}
		*c = append((*c)[:i], (*c)[i+1:]...)
		return nil
	}
	return fmt.Errorf("%q: %w", name, ErrNotFound)
}
