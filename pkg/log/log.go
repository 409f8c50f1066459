// Package log 애플리케이션 전역에서 사용하는 구조화 로깅 계층입니다.
//
// 내부적으로 logrus 표준 로거를 사용하며, Setup 호출 이후에는 모든 로그가
// 레벨에 따라 메인/중요/상세 로그 파일과 콘솔로 분배됩니다.
// 모든 로그에는 발생 위치를 식별할 수 있도록 component 필드를 붙이는 것을 원칙으로 합니다.
//
//	applog.WithComponentAndFields("probe.runner", applog.Fields{
//		"run_id": runID,
//	}).Debug("헬스체크 프로브 실행 완료")
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// componentKey 로그를 남긴 컴포넌트를 식별하는 필드 이름
const componentKey = "component"

// StandardLogger 전역 표준 로거를 반환합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// SetOutput 표준 로거의 기본 출력 대상을 변경합니다.
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

// SetFormatter 표준 로거의 기본 포맷터를 변경합니다.
func SetFormatter(f Formatter) {
	logrus.SetFormatter(f)
}

// SetLevel 표준 로거의 로그 레벨을 변경합니다.
func SetLevel(level Level) {
	logrus.SetLevel(level)
}

// GetLevel 표준 로거의 현재 로그 레벨을 반환합니다.
func GetLevel() Level {
	return logrus.GetLevel()
}

// SetDebugMode 디버그 모드 여부에 따라 로그 레벨을 Debug 또는 Info로 전환합니다.
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(DebugLevel)
		return
	}
	logrus.SetLevel(InfoLevel)
}

func WithField(key string, value any) *Entry {
	return logrus.WithField(key, value)
}

func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

func WithError(err error) *Entry {
	return logrus.WithError(err)
}

// WithComponent component 필드가 설정된 로그 엔트리를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField(componentKey, component)
}

// WithComponentAndFields component 필드와 추가 필드가 함께 설정된 로그 엔트리를 반환합니다.
// fields에 component 키가 있더라도 인자로 전달된 component가 우선합니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	merged := make(Fields, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged[componentKey] = component

	return logrus.WithFields(merged)
}
