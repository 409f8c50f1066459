// Package health 헬스체크 엔드포인트 핸들러를 제공합니다.
//
// 외부 프로브의 실행 결과를 HTTP 응답으로 변환하는 일만 담당하며, 프로브 실행과 출력 검증은 HealthChecker에 위임합니다.
package health

import (
	"context"
	"net/http"

	apperrors "github.com/darkkaiser/healthcheck-server/internal/pkg/errors"
	"github.com/darkkaiser/healthcheck-server/internal/pkg/version"
	"github.com/darkkaiser/healthcheck-server/internal/service/api/constants"
	"github.com/darkkaiser/healthcheck-server/internal/service/api/httputil"
	applog "github.com/darkkaiser/healthcheck-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// HealthChecker 헬스체크 한 번을 수행하는 인터페이스입니다.
//
// 성공 시 응답 본문으로 그대로 전달할 JSON 문자열을, 실패 시 클라이언트에게 보여줄 메시지를 담은 *apperrors.AppError를 반환합니다.
type HealthChecker interface {
	Check(ctx context.Context) (string, error)
}

// Handler 헬스체크, Ping, 버전 정보 엔드포인트 핸들러
type Handler struct {
	healthChecker HealthChecker

	buildInfo version.Info
}

// New Handler 인스턴스를 생성합니다.
func New(healthChecker HealthChecker, buildInfo version.Info) *Handler {
	if healthChecker == nil {
		panic(constants.PanicMsgHealthCheckerRequired)
	}

	return &Handler{
		healthChecker: healthChecker,

		buildInfo: buildInfo,
	}
}

// HealthCheckHandler 프로브를 실행하고 결과를 응답합니다.
//
// 프로브가 정상 종료하고 올바른 JSON을 출력하면 그 내용을 200 응답 본문으로 그대로 전달합니다.
// 그 밖의 모든 경우(타임아웃, 실행 실패, 비정상 종료, JSON 아님)는 500 에러 응답이 됩니다.
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandlerHealth, applog.Fields{
		"path":      c.Request().URL.Path,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	body, err := h.healthChecker.Check(c.Request().Context())
	if err != nil {
		return httputil.NewInternalServerError(clientMessage(err), err)
	}

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(body))
}

// PingHandler 프로브를 실행하지 않고 서버의 응답 여부만 확인합니다.
func (h *Handler) PingHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandlerHealth, applog.Fields{
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgPing)

	return c.Blob(http.StatusOK, echo.MIMETextPlain, []byte(constants.PongBody))
}

// VersionHandler 서버의 빌드 정보를 반환합니다.
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandlerHealth, applog.Fields{
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, h.buildInfo)
}

// clientMessage 에러에서 클라이언트에게 전달할 메시지를 꺼냅니다.
// AppError가 아닌 에러는 내부 정보가 노출되지 않도록 공통 메시지로 대체합니다.
func clientMessage(err error) string {
	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		return appErr.Message()
	}
	return constants.ErrMsgInternalServer
}
