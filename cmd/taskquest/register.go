package main

import (
	"context"
	"time"

	"github.com/taskquest/backend/domain"
	"github.com/taskquest/backend/usecase"
	"github.com/taskquest/backend/usecase/calendar"
	"github.com/taskquest/backend/usecase/gamification"
	"github.com/taskquest/backend/usecase/task"
)

// Request payloads for the dispatched operations.
type CreateTaskRequest struct {
	OwnerID string
	Draft   task.Draft
}

type UpdateTaskRequest struct {
	ID    string
	Patch task.Patch
}

type CompleteTaskResult struct {
	Task  *domain.Task
	Delta *domain.PointsDelta
}

// registerOperations exposes the core to outer collaborators under stable
// operation names.
func registerOperations(d *usecase.Dispatcher, tasks *task.Service, game *gamification.Service) {
	d.RegisterCommand("task.create", func(ctx context.Context, payload interface{}) (interface{}, error) {
		req, ok := payload.(CreateTaskRequest)
		if !ok {
			return nil, domain.NewError(domain.ErrCodeValidation, "task.create expects a CreateTaskRequest")
		}
		return tasks.Create(ctx, req.OwnerID, req.Draft)
	})

	d.RegisterCommand("task.update", func(ctx context.Context, payload interface{}) (interface{}, error) {
		req, ok := payload.(UpdateTaskRequest)
		if !ok {
			return nil, domain.NewError(domain.ErrCodeValidation, "task.update expects an UpdateTaskRequest")
		}
		return tasks.Update(ctx, req.ID, req.Patch)
	})

	d.RegisterCommand("task.delete", func(ctx context.Context, payload interface{}) (interface{}, error) {
		id, ok := payload.(string)
		if !ok {
			return nil, domain.NewError(domain.ErrCodeValidation, "task.delete expects a task id")
		}
		return nil, tasks.Delete(ctx, id)
	})

	d.RegisterCommand("task.complete", func(ctx context.Context, payload interface{}) (interface{}, error) {
		id, ok := payload.(string)
		if !ok {
			return nil, domain.NewError(domain.ErrCodeValidation, "task.complete expects a task id")
		}
		completed, delta, err := tasks.Complete(ctx, id)
		if err != nil {
			return nil, err
		}
		return CompleteTaskResult{Task: completed, Delta: delta}, nil
	})

	d.RegisterQuery("task.get", func(ctx context.Context, params interface{}) (interface{}, error) {
		id, ok := params.(string)
		if !ok {
			return nil, domain.NewError(domain.ErrCodeValidation, "task.get expects a task id")
		}
		return tasks.GetByID(ctx, id)
	})

	d.RegisterQuery("task.listByOwner", func(ctx context.Context, params interface{}) (interface{}, error) {
		ownerID, ok := params.(string)
		if !ok {
			return nil, domain.NewError(domain.ErrCodeValidation, "task.listByOwner expects an owner id")
		}
		return tasks.ListByOwner(ctx, ownerID), nil
	})

	d.RegisterQuery("gamification.level", func(ctx context.Context, params interface{}) (interface{}, error) {
		points, ok := params.(int)
		if !ok {
			return nil, domain.NewError(domain.ErrCodeValidation, "gamification.level expects a point total")
		}
		return game.Level(points), nil
	})

	d.RegisterQuery("gamification.progress", func(ctx context.Context, params interface{}) (interface{}, error) {
		points, ok := params.(int)
		if !ok {
			return nil, domain.NewError(domain.ErrCodeValidation, "gamification.progress expects a point total")
		}
		return game.Progress(points), nil
	})

	d.RegisterQuery("gamification.badges", func(ctx context.Context, params interface{}) (interface{}, error) {
		ownerID, ok := params.(string)
		if !ok {
			return nil, domain.NewError(domain.ErrCodeValidation, "gamification.badges expects an owner id")
		}
		return game.Badges(ctx, ownerID, tasks.List(ctx))
	})

	d.RegisterQuery("gamification.leaderboard", func(ctx context.Context, params interface{}) (interface{}, error) {
		return game.Ranking(ctx)
	})

	d.RegisterQuery("calendar.grouped", func(ctx context.Context, params interface{}) (interface{}, error) {
		return calendar.GroupByDueDate(tasks.List(ctx)), nil
	})

	d.RegisterQuery("calendar.byDate", func(ctx context.Context, params interface{}) (interface{}, error) {
		date, ok := params.(time.Time)
		if !ok {
			return nil, domain.NewError(domain.ErrCodeValidation, "calendar.byDate expects a date")
		}
		return calendar.TasksOnDate(tasks.List(ctx), date), nil
	})
}
