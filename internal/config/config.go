package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/healthcheck-server/internal/pkg/errors"
	"github.com/darkkaiser/healthcheck-server/pkg/validation"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "healthcheck-server"

	// DefaultFilename 실행 인자로 경로가 주어지지 않았을 때 찾는 설정 파일명입니다.
	// 이 파일은 없어도 되며, 없으면 기본값과 환경 변수만으로 구성됩니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정을 덮어쓰는 환경 변수의 접두사입니다.
	// 예: HEALTHCHECK_PROBE__TIMEOUT=5s -> probe.timeout
	EnvPrefix = "HEALTHCHECK_"
)

// 기본 설정값
const (
	DefaultProbeCommandPath     = "/usr/local/bin/global-health-check.sh"
	DefaultProbeTimeout         = 10 * time.Second
	DefaultProbeMaxOutputSize   = 1 << 20 // 1MiB
	DefaultListenPort           = 9999
	DefaultShutdownTimeout      = 5 * time.Second
	maxProbeTimeout             = 5 * time.Minute
	minProbeMaxOutputSize       = 1 << 10
	privilegedPortUpperBoundary = 1024
)

// AppConfig 애플리케이션의 모든 설정을 관장하는 최상위 루트 구조체
type AppConfig struct {
	Debug      bool             `json:"debug"`
	Probe      ProbeConfig      `json:"probe"`
	HTTPServer HTTPServerConfig `json:"http_server"`
}

// ProbeConfig 헬스체크 프로브(외부 진단 프로그램) 실행 설정
type ProbeConfig struct {
	// CommandPath 실행할 프로브의 절대 경로. 출력 정리 시 이 경로로 시작하는 줄을 걸러내는 기준으로도 사용됩니다.
	CommandPath string `json:"command_path" validate:"required,abs_path"`

	// Timeout 프로브 실행 제한 시간. 초과하면 프로세스 그룹 전체를 강제 종료합니다.
	Timeout time.Duration `json:"timeout" validate:"gt=0,lte=5m"`

	// MaxOutputSize stdout/stderr 각각에 대해 보관하는 최대 바이트 수
	MaxOutputSize int `json:"max_output_size" validate:"min=1024"`
}

// HTTPServerConfig 헬스체크 HTTP 서버 설정
type HTTPServerConfig struct {
	ListenPort      int           `json:"listen_port" validate:"min=1,max=65535"`
	AccessLog       bool          `json:"access_log"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" validate:"gt=0"`
}

// newDefaultConfig 모든 설정 레이어의 바탕이 되는 기본값을 반환합니다.
func newDefaultConfig() AppConfig {
	return AppConfig{
		Debug: false,
		Probe: ProbeConfig{
			CommandPath:   DefaultProbeCommandPath,
			Timeout:       DefaultProbeTimeout,
			MaxOutputSize: DefaultProbeMaxOutputSize,
		},
		HTTPServer: HTTPServerConfig{
			ListenPort:      DefaultListenPort,
			AccessLog:       false,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
	}
}

// validate 설정 로드 직후 각 항목의 유효성을 검증합니다.
func (c *AppConfig) validate() error {
	if err := checkStruct(validate, c.Probe, "프로브(probe)"); err != nil {
		return err
	}
	if err := checkStruct(validate, c.HTTPServer, "HTTP 서버(http_server)"); err != nil {
		return err
	}
	return nil
}

// VerifyRecommendations 강제하지는 않지만 운영상 권장되는 설정인지 진단하고 경고 메시지를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.HTTPServer.ListenPort < privilegedPortUpperBoundary {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.HTTPServer.ListenPort))
	}

	if err := validation.ValidateExecutable(c.Probe.CommandPath); err != nil {
		warnings = append(warnings, fmt.Sprintf("프로브를 실행할 수 없는 상태입니다(%v). 헬스체크 요청은 실행 오류로 응답됩니다", err))
	}

	return warnings
}

// Load 기본 설정 파일(없어도 됨)과 환경 변수로 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return load(DefaultFilename, true)
}

// LoadWithFile 지정된 설정 파일을 읽어 애플리케이션 설정을 로드합니다. 파일이 없으면 에러입니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	return load(filename, false)
}

func load(filename string, optional bool) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 로드 (가장 낮은 우선순위)
	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 기본값에 있는 키가 곧 설정 가능한 전체 키입니다.
	knownKeys := make(map[string]struct{}, len(k.Keys()))
	for _, key := range k.Keys() {
		knownKeys[key] = struct{}{}
	}

	// 2. JSON 설정 파일 로드
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist) && optional:
			// 기본 설정 파일은 선택 사항입니다.
		case errors.Is(err, fs.ErrNotExist):
			return nil, apperrors.Wrap(err, apperrors.NotFound, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
		default:
			return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
		}
	}

	// 3. 환경 변수 로드 (최우선 순위)
	// 접두사가 같더라도 설정 키에 대응하지 않는 환경 변수는 다른 도구의 것일 수 있으므로 무시합니다.
	envKey := func(s string) string {
		key := normalizeEnvKey(s)
		if _, ok := knownKeys[key]; !ok {
			return ""
		}
		return key
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 언마샬링
	var appConfig AppConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			Result:           &appConfig,
			ErrorUnused:      true, // 설정 파일에서 구조체에 없는 키는 오타로 간주
			WeaklyTypedInput: true, // 환경 변수(문자열)를 숫자/불리언으로 변환
		},
	}
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 5. 유효성 검사
	if err := appConfig.validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 유효성 검증에 실패했습니다")
	}

	return &appConfig, nil
}

// normalizeEnvKey 환경 변수 이름을 koanf 키 경로로 변환합니다.
// 접두사를 제거하고 소문자로 바꾼 뒤, 이중 언더스코어(__)를 계층 구분자(.)로 바꿉니다.
//
//	HEALTHCHECK_HTTP_SERVER__LISTEN_PORT -> http_server.listen_port
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}
