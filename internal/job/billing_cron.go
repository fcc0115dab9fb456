package job

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"hostel-admin/internal/service"
)

// billingRunTimeout 单次账单生成的超时时间
const billingRunTimeout = 4 * time.Minute

// BillingCron 定时生成月度账单
// 与 POST /generate-bills/ 共用同一 BillingService，同月重复执行不会产生重复记录
type BillingCron struct {
	cron    *cron.Cron
	billing service.BillingService
	logger  *zap.Logger
	now     func() time.Time
}

// NewBillingCron 按 cron 表达式（如 "0 6 1 * *"）注册账单任务，上一次未结束时跳过本次
func NewBillingCron(schedule string, billing service.BillingService, logger *zap.Logger) (*BillingCron, error) {
	j := &BillingCron{
		billing: billing,
		logger:  logger.Named("billing-cron"),
		now:     func() time.Time { return time.Now().UTC() },
	}

	cl := newCronLogger(j.logger)
	j.cron = cron.New(
		cron.WithLogger(cl),
		cron.WithChain(
			cron.Recover(cl),
			cron.SkipIfStillRunning(cl),
		),
	)
	if _, err := j.cron.AddFunc(schedule, j.run); err != nil {
		return nil, fmt.Errorf("注册账单定时任务失败: %w", err)
	}

	j.logger.Info("账单定时任务已注册", zap.String("schedule", schedule))
	return j, nil
}

// Start 启动调度器（非阻塞）
func (j *BillingCron) Start() {
	j.cron.Start()
}

// Stop 停止调度并等待正在执行的任务结束
func (j *BillingCron) Stop(ctx context.Context) {
	select {
	case <-j.cron.Stop().Done():
	case <-ctx.Done():
		j.logger.Warn("等待账单任务结束超时")
	}
}

func (j *BillingCron) run() {
	ctx, cancel := context.WithTimeout(context.Background(), billingRunTimeout)
	defer cancel()

	result, err := j.billing.GenerateMonthlyBills(ctx, j.now())
	if err != nil {
		j.logger.Error("定时生成账单失败", zap.Error(err))
		return
	}
	j.logger.Info("定时生成账单完成",
		zap.String("month", result.Month),
		zap.Int("bills_created", result.BillsCreated),
	)
}
