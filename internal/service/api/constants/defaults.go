package constants

import "time"

// 서버 설정 기본값 상수입니다.
const (
	// DefaultReadHeaderTimeout HTTP 헤더 읽기 최대 대기 시간 (10초)
	// 헤더를 매우 느리게 전송하는 클라이언트가 연결을 점유하지 못하도록 제한합니다.
	DefaultReadHeaderTimeout = 10 * time.Second

	// DefaultReadTimeout 요청 전체 읽기 최대 대기 시간 (10초)
	DefaultReadTimeout = 10 * time.Second

	// DefaultIdleTimeout Keep-Alive 연결의 최대 유휴 시간 (120초)
	DefaultIdleTimeout = 120 * time.Second

	// WriteTimeoutMargin 응답 쓰기 제한 시간은 프로브 제한 시간에 이 값을 더해 정합니다.
	// 프로브가 제한 시간을 모두 사용한 뒤에도 에러 응답을 보낼 수 있어야 합니다.
	WriteTimeoutMargin = 10 * time.Second

	// DefaultShutdownTimeout Graceful Shutdown 시 최대 대기 시간 (5초)
	DefaultShutdownTimeout = 5 * time.Second
)
