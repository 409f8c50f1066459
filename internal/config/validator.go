package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	apperrors "github.com/darkkaiser/healthcheck-server/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// validate 패키지 전역에서 공유하는 Validator 인스턴스입니다. (동시 사용에 안전)
var validate = newValidator()

// newValidator 새로운 Validator 인스턴스를 생성하고 커스텀 유효성 검사 함수를 등록합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 에러 메시지에 Go 필드명 대신 JSON 키 이름이 표시되도록 합니다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("abs_path", validateAbsPath); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'abs_path' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}

	return v
}

// validateAbsPath 절대 경로인지 검증합니다.
// 프로브 출력 정리 시 실행 경로를 줄 접두어로 비교하므로 상대 경로는 허용하지 않습니다.
func validateAbsPath(fl validator.FieldLevel) bool {
	return filepath.IsAbs(fl.Field().String())
}

// checkStruct 구조체를 태그 규칙에 따라 검증하고, 첫 번째 위반 항목을 사용자 친화적인 에러로 변환합니다.
func checkStruct(v *validator.Validate, s any, contextName string) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("%s 유효성 검증에 실패했습니다", contextName))
	}

	firstErr := validationErrors[0]
	switch firstErr.StructField() {
	case "CommandPath":
		if firstErr.Tag() == "required" {
			return apperrors.New(apperrors.InvalidInput, "프로브 실행 경로(command_path)는 필수입니다")
		}
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("프로브 실행 경로(command_path)는 절대 경로여야 합니다: '%v'", firstErr.Value()))
	case "Timeout":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("프로브 제한 시간(timeout)은 0보다 크고 %s 이하여야 합니다: '%v'", maxProbeTimeout, firstErr.Value()))
	case "MaxOutputSize":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("프로브 출력 최대 크기(max_output_size)는 %d바이트 이상이어야 합니다: '%v'", minProbeMaxOutputSize, firstErr.Value()))
	case "ListenPort":
		return apperrors.New(apperrors.InvalidInput, "HTTP 서버 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다")
	case "ShutdownTimeout":
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("종료 대기 시간(shutdown_timeout)은 0보다 커야 합니다: '%v'", firstErr.Value()))
	}

	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("%s의 설정이 올바르지 않습니다: %s (조건: %s)", contextName, firstErr.Field(), firstErr.Tag()))
}
