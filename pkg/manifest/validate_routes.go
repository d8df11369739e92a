package manifest

import "fmt"

// validateRoutes normalizes every route and rejects duplicate method+path pairs.
// Routes without methods are checked later, once the endpoint's own methods
// are known.
func (c *Config) validateRoutes() error {
	seen := map[string]int{}
	for i := range c.Routes {
		if err := c.Routes[i].normalize(); err != nil {
			return fmt.Errorf("route %d: %w", i, err)
		}
		if err := c.Routes[i].validate(); err != nil {
			return fmt.Errorf("route %d (%s): %w", i, c.Routes[i].Path, err)
		}
		for _, m := range c.Routes[i].Methods {
			key := m + " " + c.Routes[i].Path
			if j, dup := seen[key]; dup {
				return fmt.Errorf("route %d: %s duplicates route %d", i, key, j)
			}
			seen[key] = i
		}
	}
	return nil
}
