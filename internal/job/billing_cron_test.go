package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"hostel-admin/internal/dto"
)

type mockBillingService struct {
	calls   int
	gotDate time.Time
	err     error
	panics  bool
}

func (m *mockBillingService) GenerateMonthlyBills(_ context.Context, today time.Time) (*dto.GenerateBillsResult, error) {
	m.calls++
	m.gotDate = today
	if m.panics {
		panic("billing exploded")
	}
	if m.err != nil {
		return nil, m.err
	}
	return &dto.GenerateBillsResult{BillsCreated: 2, Month: "March 2025"}, nil
}

func TestNewBillingCron_InvalidSchedule(t *testing.T) {
	if _, err := NewBillingCron("not a schedule", &mockBillingService{}, zap.NewNop()); err == nil {
		t.Error("invalid cron expression should fail")
	}
}

func TestBillingCron_Run(t *testing.T) {
	mock := &mockBillingService{}
	j, err := NewBillingCron("0 6 1 * *", mock, zap.NewNop())
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}
	fixed := time.Date(2025, time.March, 1, 6, 0, 0, 0, time.UTC)
	j.now = func() time.Time { return fixed }

	j.run()
	if mock.calls != 1 || !mock.gotDate.Equal(fixed) {
		t.Errorf("expected one run at %v, got %d at %v", fixed, mock.calls, mock.gotDate)
	}

	// 失败只记录日志
	mock.err = errors.New("db down")
	j.run()
	if mock.calls != 2 {
		t.Errorf("expected 2 calls, got %d", mock.calls)
	}
}

func TestBillingCron_StartStop(t *testing.T) {
	j, err := NewBillingCron("@every 1h", &mockBillingService{}, zap.NewNop())
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}
	j.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	j.Stop(ctx)
}

func TestBillingCron_PanicRecoveredIntoZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	j, err := NewBillingCron("@every 1h", &mockBillingService{panics: true}, zap.New(core))
	if err != nil {
		t.Fatalf("注册失败: %v", err)
	}

	entries := j.cron.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	// WrappedJob 经过 Recover 包装，panic 不应向外传播
	entries[0].WrappedJob.Run()

	panicLogs := logs.FilterMessage("panic").FilterLevelExact(zapcore.ErrorLevel).All()
	if len(panicLogs) != 1 {
		t.Fatalf("expected 1 recovered panic in zap, got %d", len(panicLogs))
	}
	if panicLogs[0].LoggerName != "billing-cron" {
		t.Errorf("logger name = %q", panicLogs[0].LoggerName)
	}
	if _, ok := panicLogs[0].ContextMap()["error"]; !ok {
		t.Error("missing error field")
	}
}
