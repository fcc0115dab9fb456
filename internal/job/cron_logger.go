package job

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// cronLogger 将 robfig/cron 的日志接口转接到 zap
// cron 以交替的 key/value 传递字段，对应 SugaredLogger 的 *w 系列方法
type cronLogger struct {
	sugar *zap.SugaredLogger
}

var _ cron.Logger = (*cronLogger)(nil)

func newCronLogger(logger *zap.Logger) *cronLogger {
	return &cronLogger{sugar: logger.Sugar()}
}

// Info 调度器的常规输出（启动、唤醒、执行）量大，降为 Debug
func (l *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

// Error 任务 panic 被 Recover 捕获时调用
func (l *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, append(keysAndValues, "error", err)...)
}
