// Package tasks provides a simple manager for delayed function execution,
// used to batch up work such as bulk existence probes and run it later,
// sequentially or with bounded concurrency.
package tasks

import (
	"context"
	"fmt"
	"sync"
)

// Manager collects functions for later execution.
type Manager struct {
	sync.Mutex
	Tasks []func()
}

// NewManager returns a pointer to a new [Manager].
func NewManager() *Manager {
	return &Manager{
		Tasks: []func(){},
	}
}

// Add adds a new taskedFunc to the [Manager].
// Functions with parameters can be added by invoking a parameterized function
// that immediately returns a func(), capturing any parameters in the closure.
func (m *Manager) Add(taskedFunc func()) {
	m.Lock()
	defer m.Unlock()

	m.Tasks = append(m.Tasks, taskedFunc)
}

// Len returns the number of collected functions.
func (m *Manager) Len() int {
	m.Lock()
	defer m.Unlock()

	return len(m.Tasks)
}

// Run sequentially executes the functions stored in a [Manager].
// An error is only returned in case of a mid-flight context cancellation.
func (m *Manager) Run(ctx context.Context) error {
	m.Lock()
	defer m.Unlock()

	for _, task := range m.Tasks {
		if ctx.Err() != nil {
			break
		}

		task()
	}

	if ctx.Err() != nil {
		return fmt.Errorf("(tasks) %w", ctx.Err())
	}

	return nil
}

// RunConcWait concurrently executes the functions stored in a [Manager],
// waiting for completion. An error is only returned in case of a mid-flight
// context cancellation.
//
// It is the responsibility of the taskedFunc to ensure thread-safety for
// anything happening inside the taskedFunc, with the [Manager] only
// guaranteeing thread-safety for itself.
func (m *Manager) RunConcWait(ctx context.Context, maxWorkers int) error {
	m.Lock()
	defer m.Unlock()

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, maxWorkers)

	for _, task := range m.Tasks {
		select {
		case <-ctx.Done():
			wg.Wait()

			return fmt.Errorf("(tasks-conc) %w", ctx.Err())
		case semaphore <- struct{}{}:
		}

		wg.Add(1)
		go func(task func()) {
			defer wg.Done()
			defer func() { <-semaphore }()

			task()
		}(task)
	}

	wg.Wait()

	if ctx.Err() != nil {
		return fmt.Errorf("(tasks-conc) %w", ctx.Err())
	}

	return nil
}
