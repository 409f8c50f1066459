// Package validation 설정값처럼 외부에서 주어진 입력이 실제 환경에서 사용 가능한지 검사하는 기능을 제공합니다.
//
// 모든 검증 함수는 유효하지 않은 입력에 대해 원인을 설명하는 error를 반환합니다.
package validation
