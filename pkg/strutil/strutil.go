// Package strutil 로깅에 쓰이는 문자열 유틸리티를 제공합니다.
package strutil

import "unicode/utf8"

// truncatedSuffix Truncate로 잘린 문자열 끝에 붙는 표시입니다.
const truncatedSuffix = "...(생략됨)"

// Truncate 문자열을 최대 maxRunes 글자(rune)까지만 남기고 나머지를 잘라냅니다.
// 잘린 경우 끝에 "...(생략됨)"을 덧붙이며, 멀티바이트 문자가 중간에 깨지지 않도록 rune 단위로 자릅니다.
func Truncate(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}

	count := 0
	for i := range s {
		if count == maxRunes {
			return s[:i] + truncatedSuffix
		}
		count++
	}

	return s
}
