package main

import (
	"context"
	"sync"

	"github.com/darkkaiser/healthcheck-server/internal/config"
	"github.com/darkkaiser/healthcheck-server/internal/pkg/version"
	"github.com/darkkaiser/healthcheck-server/internal/service"
	"github.com/darkkaiser/healthcheck-server/internal/service/api"
	"github.com/darkkaiser/healthcheck-server/internal/service/probe"
	applog "github.com/darkkaiser/healthcheck-server/pkg/log"
)

// newChecker 설정에 따라 프로브 실행기를 구성합니다.
func newChecker(appConfig *config.AppConfig) *probe.Checker {
	runner := probe.NewRunner(appConfig.Probe.MaxOutputSize)
	return probe.NewChecker(runner, appConfig.Probe.CommandPath, appConfig.Probe.Timeout)
}

// runServices 서비스를 생성하고 시작한 뒤, ctx가 취소되면 모든 서비스가 종료될 때까지 기다립니다.
// 서비스 하나라도 시작에 실패하면 이미 시작된 서비스를 종료하고 그 에러를 반환합니다.
func runServices(ctx context.Context, appConfig *config.AppConfig, buildInfo version.Info) error {
	apiService := api.NewService(appConfig, newChecker(appConfig), buildInfo)

	serviceStopCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	serviceStopWG := &sync.WaitGroup{}

	services := []service.Service{apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields(componentMain, applog.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel() // 다른 서비스들도 종료
			serviceStopWG.Wait()

			return err
		}
	}

	applog.WithComponent(componentMain).Info("서버 가동 완료")

	<-serviceStopCtx.Done() // 종료 신호를 받을 때까지 대기

	applog.WithComponent(componentMain).Info("Shutdown signal received")
	serviceStopWG.Wait()

	return nil
}
