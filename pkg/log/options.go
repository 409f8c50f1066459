package log

import (
	"fmt"
	"os"
)

// Options 로깅 시스템 초기화 옵션입니다.
type Options struct {
	Name  string // 로그 파일 이름의 접두어 (애플리케이션 식별자)
	Dir   string // 로그 디렉토리 (빈 값이면 실행 위치의 logs)
	Level Level  // 최소 로그 레벨 (0이면 Info)

	Rotation Rotation

	EnableCriticalLog bool // ERROR 이상을 <Name>.critical.log에 별도로 기록
	EnableVerboseLog  bool // DEBUG 이하를 <Name>.verbose.log에 별도로 기록
	EnableConsoleLog  bool // 모든 로그를 표준 출력에도 기록

	// ReportCaller 로그를 호출한 함수와 줄 번호를 함께 기록할지 여부
	ReportCaller bool

	// CallerPathPrefix 호출 함수 이름에서 잘라낼 접두어 (예: 모듈 경로)
	CallerPathPrefix string
}

// Rotation 로그 파일 로테이션 정책입니다. 0은 기본값을 의미합니다.
type Rotation struct {
	MaxAgeDays int // 로테이션된 파일 보관 기간 (0: 삭제하지 않음)
	MaxSizeMB  int // 파일 하나의 최대 크기
	MaxBackups int // 보관할 백업 파일 수
}

// Validate 옵션 값을 검증합니다.
func (opts *Options) Validate() error {
	if opts.Name == "" {
		return fmt.Errorf("애플리케이션 식별자(Name)가 설정되지 않았습니다")
	}

	if opts.Dir != "" {
		if info, err := os.Stat(opts.Dir); err == nil && !info.IsDir() {
			return fmt.Errorf("로그 디렉토리 경로(%s)가 이미 파일로 존재합니다", opts.Dir)
		}
	}

	if opts.Rotation.MaxAgeDays < 0 || opts.Rotation.MaxSizeMB < 0 || opts.Rotation.MaxBackups < 0 {
		return fmt.Errorf("로그 로테이션 설정값은 0 이상이어야 합니다: %+v", opts.Rotation)
	}

	return nil
}
