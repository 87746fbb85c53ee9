package cli

import (
	"time"

	"github.com/mkessler-dev/habitkit/internal/analytics"
	"github.com/mkessler-dev/habitkit/internal/storage"
	"github.com/mkessler-dev/habitkit/internal/utils"
)

type Context struct {
	Store storage.Provider
}

// Now reads the wall clock in the configured timezone. Commands pass the
// result down explicitly so a single invocation sees one consistent instant.
func (c *Context) Now() (time.Time, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return time.Time{}, err
	}
	return utils.NowFromSettings(settings)
}

func (c *Context) Analytics() *analytics.Service {
	return analytics.New(c.Store)
}
