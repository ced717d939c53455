package main

import (
	"context"

	"go.uber.org/zap"
)

// worker is a named routine living until the application context is done.
type worker struct {
	name string
	run  func(context.Context)
}

func (c *cfg) addWorker(name string, run func(context.Context)) {
	c.workers = append(c.workers, worker{name: name, run: run})
}

func startWorkers(c *cfg) {
	for _, w := range c.workers {
		c.wg.Add(1)

		go func(w worker) {
			defer c.wg.Done()

			c.log.Debug("worker started", zap.String("name", w.name))
			w.run(c.ctx)
			c.log.Debug("worker stopped", zap.String("name", w.name))
		}(w)
	}
}
