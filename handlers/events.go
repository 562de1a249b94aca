package handlers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"time"

	"notes-app/app"

	"github.com/gofiber/fiber/v2"
)

// keepAliveInterval is how often an idle stream gets a comment line
const keepAliveInterval = 15 * time.Second

// StreamEvents streams note changes as server-sent events. Clients reload the
// list when an event arrives.
func StreamEvents(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Content-Type", "text/event-stream")
		c.Set("Cache-Control", "no-cache")
		c.Set("Connection", "keep-alive")

		changes, cancel := a.Broker.Subscribe()
		logger := a.Logger

		c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
			defer cancel()

			ticker := time.NewTicker(keepAliveInterval)
			defer ticker.Stop()

			fmt.Fprint(w, ": connected\n\n")
			if err := w.Flush(); err != nil {
				return
			}

			for {
				select {
				case ev, ok := <-changes:
					if !ok {
						return
					}
					data, err := json.Marshal(ev)
					if err != nil {
						logger.Error("failed to encode change event", "error", err)
						continue
					}
					fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Kind, data)
				case <-ticker.C:
					fmt.Fprint(w, ": ping\n\n")
				}

				// Flush fails once the client has gone away
				if err := w.Flush(); err != nil {
					return
				}
			}
		})

		return nil
	}
}
