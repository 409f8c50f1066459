package probe

import "time"

// Result 프로브 1회 실행 결과입니다. 요청 하나가 만들고, 응답을 쓴 뒤 버려집니다.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int  // 스스로 종료하지 않았으면(타임아웃, 실행 실패) -1
	TimedOut bool // 제한 시간 초과로 강제 종료됨
	Err      error

	RunID    string // 로그 상관관계용 UUID
	Duration time.Duration
}

// Failed 프로브가 정상(종료 코드 0)으로 끝나지 않았는지 여부를 반환합니다.
func (r Result) Failed() bool {
	return r.TimedOut || r.Err != nil || r.ExitCode != 0
}
