package log

import (
	"runtime"
	"strconv"
	"strings"
	"time"
)

// silentFormatter 표준 로거 자체의 포맷팅을 생략하기 위한 포맷터입니다.
// 실제 출력은 hook이 자신의 포맷터로 수행합니다.
type silentFormatter struct{}

func (f *silentFormatter) Format(_ *Entry) ([]byte, error) {
	return nil, nil
}

// newTextFormatter hook에서 사용하는 텍스트 포맷터를 생성합니다.
// 호출자 정보는 "함수(line:N)" 형태로 출력되고 callerPathPrefix는 "..."로 축약됩니다.
func newTextFormatter(callerPathPrefix string) *TextFormatter {
	return &TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			function = frame.Function + "(line:" + strconv.Itoa(frame.Line) + ")"
			if callerPathPrefix != "" {
				if cut, found := strings.CutPrefix(function, callerPathPrefix); found {
					function = "..." + cut
				}
			}
			return function, ""
		},
	}
}
