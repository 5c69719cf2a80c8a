package routes

import (
	"log"

	"github.com/milk9111/scenedemo/anim"
)

// Controller swaps the session's animation set whenever the route changes.
type Controller struct {
	session *anim.Session
	table   *Table

	current string
	config  Config

	// OnProgress, if set, receives every update notification.
	OnProgress anim.UpdateFunc
	// OnComplete, if set, runs after the completion is logged.
	OnComplete anim.CompleteFunc
}

func NewController(session *anim.Session, table *Table) *Controller {
	return &Controller{session: session, table: table}
}

// Navigate clears the session and loads the default descriptors of the
// config matching path.
func (c *Controller) Navigate(path string) Config {
	cfg := c.table.Lookup(path)

	c.session.Clear()
	for _, d := range cfg.Animations {
		c.session.Add(d)
	}
	c.session.SetCallbacks(anim.Callbacks{
		OnComplete: c.completed,
		OnUpdate:   c.progressed,
	})

	c.current = path
	c.config = cfg
	return cfg
}

// Reload swaps the table and re-applies the current path against it.
func (c *Controller) Reload(table *Table) Config {
	c.table = table
	return c.Navigate(c.current)
}

// Current returns the last navigated path.
func (c *Controller) Current() string { return c.current }

func (c *Controller) Config() Config { return c.config }

func (c *Controller) Table() *Table { return c.table }

func (c *Controller) completed(id string) {
	log.Printf("animation %s completed on %s", id, c.current)
	if c.OnComplete != nil {
		c.OnComplete(id)
	}
}

func (c *Controller) progressed(id string, progress float64) {
	if c.OnProgress != nil {
		c.OnProgress(id, progress)
	}
}
