package log

import (
	stdlog "log"
	"strings"
)

// NewStdLogger 표준 라이브러리 *log.Logger를 반환합니다.
// 반환된 로거로 기록된 메시지는 지정한 component와 레벨로 logrus에 전달됩니다.
// http.Server.ErrorLog처럼 *log.Logger만 받는 API를 logrus로 연결할 때 사용합니다.
func NewStdLogger(component string, level Level) *stdlog.Logger {
	return stdlog.New(&levelWriter{component: component, level: level}, "", 0)
}

// levelWriter 쓰기 요청 한 번을 로그 한 줄로 변환합니다.
// logrus.Logger.WriterLevel과 달리 파이프나 고루틴을 만들지 않습니다.
type levelWriter struct {
	component string
	level     Level
}

func (w *levelWriter) Write(p []byte) (int, error) {
	msg := strings.TrimRight(string(p), "\r\n")
	if msg != "" {
		WithComponent(w.component).Log(w.level, msg)
	}
	return len(p), nil
}
