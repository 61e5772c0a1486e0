package scheduler

import (
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

// Horários da rotina diária, no fuso configurado.
const (
	cronCollect   = "0 9 * * *"
	cronDispatch1 = "0 11 * * *"
	cronDispatch2 = "0 14 * * *"
	cronReconcile = "0 17 * * *"
	cronReport    = "0 18 * * *"
)

// Periodic registra a agenda do agente num asynq.Scheduler. O Worker do
// outro lado consome as tarefas que ele enfileira.
type Periodic struct {
	scheduler *asynq.Scheduler
}

func NewPeriodic(redisURL, timezone string) (*Periodic, error) {
	opt, err := redisClientOpt(redisURL)
	if err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("fuso horário inválido %q: %w", timezone, err)
	}

	scheduler := asynq.NewScheduler(opt, &asynq.SchedulerOpts{Location: loc})

	entries := []struct {
		cron string
		task *asynq.Task
	}{
		{cronCollect, NewCollectLeadsTask()},
		{cronDispatch1, NewDispatchCycleTask()},
		{cronDispatch2, NewDispatchCycleTask()},
		{cronReconcile, NewReconcileSalesTask()},
		{cronReport, NewDailyReportTask()},
	}

	for _, e := range entries {
		if _, err := scheduler.Register(e.cron, e.task); err != nil {
			return nil, fmt.Errorf("registro da tarefa %s: %w", e.task.Type(), err)
		}
	}

	return &Periodic{scheduler: scheduler}, nil
}

func (p *Periodic) Run() error {
	return p.scheduler.Run()
}

func (p *Periodic) Shutdown() {
	if p == nil || p.scheduler == nil {
		return
	}
	p.scheduler.Shutdown()
}

func redisClientOpt(redisURL string) (asynq.RedisClientOpt, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return asynq.RedisClientOpt{}, err
	}

	return asynq.RedisClientOpt{
		Addr:      opt.Addr,
		Password:  opt.Password,
		DB:        opt.DB,
		TLSConfig: opt.TLSConfig,
	}, nil
}
