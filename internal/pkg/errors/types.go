package errors

//go:generate stringer -type=ErrorType

// ErrorType 에러의 종류를 나타내는 타입입니다.
type ErrorType int

// 에러 타입 상수
const (
	// Unknown 알 수 없는 에러
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (버그 등)
	Internal

	// System 시스템 또는 인프라 오류 (프로세스 실행 실패, 포트 바인딩 실패 등)
	System

	// InvalidInput 잘못된 입력값 (설정값 유효성 검사 실패 등)
	InvalidInput

	// NotFound 리소스를 찾을 수 없음
	NotFound

	// ExecutionFailed 외부 프로세스가 비정상 종료됨
	ExecutionFailed

	// ParsingFailed 데이터 파싱 또는 형식 검증 실패
	ParsingFailed

	// Timeout 작업 시간 초과
	Timeout
)
