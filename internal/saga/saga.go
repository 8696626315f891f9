package saga

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusInProgress  Status = "in_progress"
	StatusCompleted   Status = "completed"
	StatusFailed      Status = "failed"
	StatusCompensated Status = "compensated"
)

type StepStatus string

const (
	StepStatusPending   StepStatus = "pending"
	StepStatusCompleted StepStatus = "completed"
	StepStatusFailed    StepStatus = "failed"
)

// Step is one forward action of a compound operation. Compensate, when set,
// undoes a completed Run; it is only ever invoked after Run succeeded.
type Step struct {
	Name       string
	Run        func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

type StepRecord struct {
	Name   string
	Status StepStatus
	Err    error
}

type Execution struct {
	ID               string
	Name             string
	Status           Status
	Steps            []StepRecord
	CompensationErrs []error
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Coordinator runs compound multi-step operations and keeps their execution
// records queryable. On a mid-sequence failure the compensations of every
// completed step run in reverse order before the error is surfaced.
type Coordinator struct {
	mu         sync.RWMutex
	executions map[string]*Execution
}

func NewCoordinator() *Coordinator {
	return &Coordinator{
		executions: make(map[string]*Execution),
	}
}

func (c *Coordinator) Execute(ctx context.Context, name string, steps []Step) (*Execution, error) {
	now := time.Now()
	execution := &Execution{
		ID:        uuid.New().String(),
		Name:      name,
		Status:    StatusInProgress,
		CreatedAt: now,
		UpdatedAt: now,
	}
	c.record(execution)

	var completed []Step
	for _, step := range steps {
		record := StepRecord{Name: step.Name, Status: StepStatusPending}

		if err := step.Run(ctx); err != nil {
			record.Status = StepStatusFailed
			record.Err = err
			execution.Steps = append(execution.Steps, record)
			execution.Status = StatusFailed
			c.record(execution)
			c.compensate(ctx, execution, completed)
			return execution, fmt.Errorf("%s: %s: %w", name, step.Name, err)
		}

		record.Status = StepStatusCompleted
		execution.Steps = append(execution.Steps, record)
		if step.Compensate != nil {
			completed = append(completed, step)
		}
		c.record(execution)
	}

	execution.Status = StatusCompleted
	c.record(execution)
	return execution, nil
}

func (c *Coordinator) compensate(ctx context.Context, execution *Execution, steps []Step) {
	if len(steps) == 0 {
		return
	}
	execution.Status = StatusCompensated

	for i := len(steps) - 1; i >= 0; i-- {
		step := steps[i]
		if err := step.Compensate(ctx); err != nil {
			log.Printf("saga %s: compensation failed for %s: %v", execution.Name, step.Name, err)
			execution.CompensationErrs = append(execution.CompensationErrs,
				fmt.Errorf("%s: %w", step.Name, err))
		}
	}
	c.record(execution)
}

func (c *Coordinator) record(execution *Execution) {
	execution.UpdatedAt = time.Now()
	c.mu.Lock()
	c.executions[execution.ID] = execution
	c.mu.Unlock()
}

func (c *Coordinator) Execution(id string) (*Execution, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	execution, exists := c.executions[id]
	if !exists {
		return nil, fmt.Errorf("saga execution not found: %s", id)
	}
	return execution, nil
}

func (c *Coordinator) Executions() []*Execution {
	c.mu.RLock()
	defer c.mu.RUnlock()

	executions := make([]*Execution, 0, len(c.executions))
	for _, execution := range c.executions {
		executions = append(executions, execution)
	}
	return executions
}
