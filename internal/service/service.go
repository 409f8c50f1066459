// Package service 장시간 실행되는 서비스가 공통으로 구현하는 생명주기 인터페이스를 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service 시작과 종료를 외부에서 제어하는 서비스입니다.
//
// Start는 서비스를 시작한 뒤 바로 반환해야 합니다. serviceStopCtx가 취소되면 서비스는 종료 절차를 밟고,
// 완전히 종료되었을 때 serviceStopWG.Done()을 호출합니다. Start가 에러를 반환하는 경우에도 Done()은 호출됩니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
