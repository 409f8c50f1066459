package constants

// 클라이언트에게 반환되는 응답 상수입니다.
// 기존 모니터링 도구와의 호환을 위해 영문 메시지를 그대로 유지합니다.
const (
	// ErrorEnvelopeStatus 에러 응답 본문의 status 필드 값
	ErrorEnvelopeStatus = "error"

	// NotFoundBody 404 응답 본문 (공백 포함 형태 그대로 전송됩니다)
	NotFoundBody = `{"error": "Not found"}`

	// ErrMsgInternalServer 500 Internal Server Error 메시지
	ErrMsgInternalServer = "Internal server error"

	// ErrMsgServerShuttingDown 서버 종료가 시작된 뒤 들어온 헬스체크 요청에 대한 메시지
	ErrMsgServerShuttingDown = "Health check error: server is shutting down"

	// PongBody /ping 응답 본문
	PongBody = "pong"
)
