package probe

import (
	"strings"

	"github.com/tidwall/gjson"
)

// eofMarker 프로브 출력에 셸의 here-document 잔여물이 섞였는지 판단하는 표식입니다.
const eofMarker = "EOF"

// Sanitize 프로브 stdout에서 응답 본문이 될 텍스트를 추려 냅니다.
//
// 앞뒤 공백을 제거하고, 텍스트에 "EOF"가 포함되어 있으면 commandPath로 시작하는 줄
// (셸이 출력한 스크립트 경로 포함 진단 메시지)을 모두 제거한 뒤 다시 공백을 정리합니다.
// JSON 복구를 시도하지는 않습니다.
func Sanitize(stdout, commandPath string) string {
	output := strings.TrimSpace(stdout)
	if !strings.Contains(output, eofMarker) {
		return output
	}

	lines := strings.Split(output, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if commandPath != "" && strings.HasPrefix(line, commandPath) {
			continue
		}
		kept = append(kept, line)
	}

	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// Inspect 실행 결과를 분류하여 응답 본문 또는 에러를 반환합니다.
//
// 판정 순서는 타임아웃, 실행 실패, 비정상 종료 코드, 출력 형식 순입니다.
// 정상인 경우 정리된 stdout을 변형 없이 반환합니다.
func Inspect(res Result, commandPath string) (string, error) {
	switch {
	case res.TimedOut:
		return "", newErrTimedOut()
	case res.Err != nil:
		return "", newErrLaunchFailed(res.Err)
	case res.ExitCode != 0:
		return "", newErrNonZeroExit(res.Stderr)
	}

	body := Sanitize(res.Stdout, commandPath)
	if !gjson.Valid(body) {
		return "", ErrInvalidOutput
	}

	return body, nil
}
