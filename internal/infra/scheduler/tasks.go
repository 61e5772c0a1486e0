package scheduler

import (
	"github.com/hibiken/asynq"
)

// Tarefas periódicas do agente. Nenhuma carrega payload: cada handler lê o
// estado do dia direto do banco.
const (
	TaskCollectLeads   = "agent.collect"
	TaskDispatchCycle  = "agent.dispatch"
	TaskReconcileSales = "agent.reconcile"
	TaskDailyReport    = "agent.report"
)

func NewCollectLeadsTask() *asynq.Task {
	return asynq.NewTask(TaskCollectLeads, nil)
}

func NewDispatchCycleTask() *asynq.Task {
	return asynq.NewTask(TaskDispatchCycle, nil)
}

func NewReconcileSalesTask() *asynq.Task {
	return asynq.NewTask(TaskReconcileSales, nil)
}

func NewDailyReportTask() *asynq.Task {
	return asynq.NewTask(TaskDailyReport, nil)
}
