package middleware

import (
	"io"

	applog "github.com/darkkaiser/healthcheck-server/pkg/log"
	"github.com/labstack/gommon/log"
)

// echoComponent Echo 프레임워크 내부에서 기록하는 로그의 컴포넌트 이름입니다.
const echoComponent = "api.echo"

// Logger Echo의 log.Logger 인터페이스를 애플리케이션 로거(logrus)로 연결하는 어댑터입니다.
//
// Echo가 남기는 로그도 다른 로그와 같은 형식과 파일로 기록되도록 e.Logger에 설정합니다.
type Logger struct {
	*applog.Logger
}

// 로그 레벨 대응표입니다. Trace, Panic, Fatal은 Echo에 대응하는 레벨이 없습니다.
var (
	toEchoLevel = map[applog.Level]log.Lvl{
		applog.DebugLevel: log.DEBUG,
		applog.InfoLevel:  log.INFO,
		applog.WarnLevel:  log.WARN,
		applog.ErrorLevel: log.ERROR,
	}

	fromEchoLevel = map[log.Lvl]applog.Level{
		log.DEBUG: applog.DebugLevel,
		log.INFO:  applog.InfoLevel,
		log.WARN:  applog.WarnLevel,
		log.ERROR: applog.ErrorLevel,
	}
)

func (l Logger) entry() *applog.Entry {
	return l.Logger.WithField("component", echoComponent)
}

func (l Logger) entryJ(j log.JSON) *applog.Entry {
	return l.entry().WithFields(applog.Fields(j))
}

// Output 현재 출력 Writer를 반환합니다.
func (l Logger) Output() io.Writer {
	return l.Logger.Out
}

func (l Logger) SetOutput(w io.Writer) {
	l.Logger.SetOutput(w)
}

func (l Logger) Prefix() string {
	return ""
}

func (l Logger) SetPrefix(string) {}

// Level logrus의 로그 레벨을 Echo의 로그 레벨로 변환합니다.
func (l Logger) Level() log.Lvl {
	if lvl, ok := toEchoLevel[l.Logger.GetLevel()]; ok {
		return lvl
	}
	return log.OFF
}

// SetLevel Echo의 로그 레벨을 logrus의 로그 레벨로 변환하여 설정합니다. log.OFF는 무시합니다.
func (l Logger) SetLevel(lvl log.Lvl) {
	if level, ok := fromEchoLevel[lvl]; ok {
		l.Logger.SetLevel(level)
	}
}

func (l Logger) SetHeader(string) {}

func (l Logger) Print(i ...any)                    { l.entry().Print(i...) }
func (l Logger) Printf(format string, args ...any) { l.entry().Printf(format, args...) }
func (l Logger) Printj(j log.JSON)                 { l.entryJ(j).Print() }

func (l Logger) Debug(i ...any)                    { l.entry().Debug(i...) }
func (l Logger) Debugf(format string, args ...any) { l.entry().Debugf(format, args...) }
func (l Logger) Debugj(j log.JSON)                 { l.entryJ(j).Debug() }

func (l Logger) Info(i ...any)                    { l.entry().Info(i...) }
func (l Logger) Infof(format string, args ...any) { l.entry().Infof(format, args...) }
func (l Logger) Infoj(j log.JSON)                 { l.entryJ(j).Info() }

func (l Logger) Warn(i ...any)                    { l.entry().Warn(i...) }
func (l Logger) Warnf(format string, args ...any) { l.entry().Warnf(format, args...) }
func (l Logger) Warnj(j log.JSON)                 { l.entryJ(j).Warn() }

func (l Logger) Error(i ...any)                    { l.entry().Error(i...) }
func (l Logger) Errorf(format string, args ...any) { l.entry().Errorf(format, args...) }
func (l Logger) Errorj(j log.JSON)                 { l.entryJ(j).Error() }

func (l Logger) Fatal(i ...any)                    { l.entry().Fatal(i...) }
func (l Logger) Fatalf(format string, args ...any) { l.entry().Fatalf(format, args...) }
func (l Logger) Fatalj(j log.JSON)                 { l.entryJ(j).Fatal() }

func (l Logger) Panic(i ...any)                    { l.entry().Panic(i...) }
func (l Logger) Panicf(format string, args ...any) { l.entry().Panicf(format, args...) }
func (l Logger) Panicj(j log.JSON)                 { l.entryJ(j).Panic() }
