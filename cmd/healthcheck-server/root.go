package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/darkkaiser/healthcheck-server/internal/config"
	apperrors "github.com/darkkaiser/healthcheck-server/internal/pkg/errors"
	"github.com/darkkaiser/healthcheck-server/internal/pkg/version"
	applog "github.com/darkkaiser/healthcheck-server/pkg/log"
	"github.com/spf13/cobra"
)

const componentMain = "main"

// 아스키아트(폰트: standard)
const banner = `
  _   _            _ _   _        ____ _               _
 | | | | ___  __ _| | |_| |__    / ___| |__   ___  ___| | __
 | |_| |/ _ \/ _` + "`" + ` | | __| '_ \  | |   | '_ \ / _ \/ __| |/ /
 |  _  |  __/ (_| | | |_| | | | | |___| | | |  __/ (__|   <
 |_| |_|\___|\__,_|_|\__|_| |_|  \____|_| |_|\___|\___|_|\_\
                                                        %s
                                                        developed by DarkKaiser
--------------------------------------------------------------------------------
`

// rootOptions 모든 하위 명령이 공유하는 실행 옵션입니다.
type rootOptions struct {
	configFile string
}

// newRootCmd 서버 실행(기본 동작), check, version 명령을 구성합니다.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   config.AppName,
		Short: "외부 진단 프로그램의 JSON 출력을 HTTP로 제공하는 헬스체크 서버",
		Long: "요청마다 설정된 프로브를 제한 시간 안에서 실행하고, 출력이 올바른 JSON이면 그대로 응답합니다.\n" +
			"설정은 기본값, JSON 설정 파일, " + config.EnvPrefix + " 접두사 환경 변수 순서로 덮어씁니다.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, opts, cmd.OutOrStdout())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "설정 파일 경로 (기본값: 실행 디렉토리의 "+config.DefaultFilename+", 없어도 됨)")

	root.AddCommand(newCheckCmd(opts))
	root.AddCommand(newVersionCmd())

	return root
}

// loadConfig 설정 파일 경로가 주어지면 그 파일을, 아니면 기본 설정 파일(선택)을 읽습니다.
func loadConfig(opts *rootOptions) (*config.AppConfig, error) {
	if opts.configFile != "" {
		return config.LoadWithFile(opts.configFile)
	}
	return config.Load()
}

// serve 설정과 로그 시스템을 초기화하고, ctx가 취소될 때까지 서버를 실행합니다.
func serve(ctx context.Context, opts *rootOptions, stdout io.Writer) error {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := loadConfig(opts)
	if err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, "환경설정 로드 실패")
	}

	// 2. 로그 시스템 초기화
	logOpts := applog.NewProductionOptions(config.AppName)
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		return apperrors.Wrap(err, apperrors.System, "로그 시스템 초기화 실패")
	}
	defer appLogCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()
	fmt.Fprintf(stdout, banner, buildInfo.Version)

	applog.WithComponentAndFields(componentMain, applog.Fields{
		"version":    buildInfo.String(),
		"env":        map[bool]string{true: "development", false: "production"}[appConfig.Debug],
		"probe_path": appConfig.Probe.CommandPath,
		"timeout":    appConfig.Probe.Timeout.String(),
		"port":       appConfig.HTTPServer.ListenPort,
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent(componentMain).Warn(warning)
	}

	return runServices(ctx, appConfig, buildInfo)
}
